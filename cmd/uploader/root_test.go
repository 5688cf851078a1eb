package main

import (
	"bytes"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"article-uploader/config"
	"article-uploader/internal/article"
	"article-uploader/pkg/docx/docxtest"
	"article-uploader/pkg/wptest"
)

func setup(t *testing.T, srv *wptest.Server, user, pass string) string {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("WP_URL", srv.PostsURL())
	t.Setenv("WP_USER", user)
	t.Setenv("WP_APP_PASSWORD", pass)
	t.Setenv("LOGGER_LEVEL", "error")
	return dir
}

func execute(args ...string) (string, error) {
	var buf bytes.Buffer
	cmd := newRootCmd(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestRootCommand(t *testing.T) {
	t.Run("Missing credentials abort before any request", func(t *testing.T) {
		srv := wptest.New("editor", "app-pass")
		defer srv.Close()
		dir := setup(t, srv, "editor", "")

		out, err := execute("--dir", filepath.Join(dir, "does-not-exist"))
		if !errors.Is(err, config.ErrMissingCredentials) {
			t.Fatalf("expected ErrMissingCredentials, got %v", err)
		}
		if out != "" || len(srv.Calls()) != 0 {
			t.Errorf("expected no output and no calls, got %q and %+v", out, srv.Calls())
		}
	})

	t.Run("Publishes every article", func(t *testing.T) {
		srv := wptest.New("editor", "app-pass")
		defer srv.Close()
		dir := setup(t, srv, "editor", "app-pass")

		root := filepath.Join(dir, "articles")
		docxtest.Write(t, filepath.Join(root, "News", "my-first-post.docx"), "Hello", "", "World")
		docxtest.Write(t, filepath.Join(root, "News", "second.docx"), "Again")

		out, err := execute("--dir", root)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		posts := srv.Posts()
		if len(posts) != 2 {
			t.Fatalf("expected 2 posts, got %d", len(posts))
		}
		if posts[0].Request.Title != "My First Post" || posts[0].Request.Content != "Hello\nWorld" {
			t.Errorf("unexpected first post: %+v", posts[0].Request)
		}
		if srv.CountCalls(http.MethodPost, wptest.CategoriesPath) != 1 {
			t.Errorf("expected the category to be created once, got %+v", srv.Calls())
		}
		if !strings.Contains(out, "Done: 2 published, 0 failed, 2 total.") {
			t.Errorf("unexpected output: %s", out)
		}
	})

	t.Run("Failures keep exit status zero by default", func(t *testing.T) {
		srv := wptest.New("editor", "app-pass")
		defer srv.Close()
		srv.FailPostCreate = func(title string) bool { return title == "Broken" }
		dir := setup(t, srv, "editor", "app-pass")

		root := filepath.Join(dir, "articles")
		docxtest.Write(t, filepath.Join(root, "Tech", "broken.docx"), "x")
		docxtest.Write(t, filepath.Join(root, "Tech", "fine.docx"), "y")

		out, err := execute("--dir", root)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "❌ Failed to publish broken.docx") || len(srv.Posts()) != 1 {
			t.Errorf("unexpected output: %s", out)
		}
	})

	t.Run("Fail on error", func(t *testing.T) {
		srv := wptest.New("editor", "app-pass")
		defer srv.Close()
		srv.FailPostCreate = func(title string) bool { return true }
		srv.FailCategoryCreate = func(name string) bool { return name == "Locked" }
		dir := setup(t, srv, "editor", "app-pass")

		root := filepath.Join(dir, "articles")
		docxtest.Write(t, filepath.Join(root, "Tech", "a.docx"), "x")
		docxtest.Write(t, filepath.Join(root, "Locked", "b.docx"), "y")

		_, err := execute("--dir", root, "--fail-on-error")
		if !errors.Is(err, errArticlesFailed) {
			t.Fatalf("expected errArticlesFailed, got %v", err)
		}
		if !errors.Is(err, article.ErrPublication) || !errors.Is(err, article.ErrCategoryResolution) {
			t.Errorf("expected every article failure in the returned error, got %v", err)
		}
		if !strings.Contains(err.Error(), "a.docx") || !strings.Contains(err.Error(), "b.docx") {
			t.Errorf("expected both files named in %q", err.Error())
		}
	})

	t.Run("Dry run sends nothing", func(t *testing.T) {
		srv := wptest.New("editor", "app-pass")
		defer srv.Close()
		dir := setup(t, srv, "editor", "app-pass")

		root := filepath.Join(dir, "articles")
		docxtest.Write(t, filepath.Join(root, "Tech", "a.docx"), "x")

		if _, err := execute("--dir", root, "--dry-run"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(srv.Calls()) != 0 {
			t.Errorf("expected no calls, got %+v", srv.Calls())
		}
	})

	t.Run("Missing directory", func(t *testing.T) {
		srv := wptest.New("editor", "app-pass")
		defer srv.Close()
		dir := setup(t, srv, "editor", "app-pass")

		_, err := execute("--dir", filepath.Join(dir, "nope"))
		if !errors.Is(err, article.ErrArticlesDirNotFound) {
			t.Fatalf("expected ErrArticlesDirNotFound, got %v", err)
		}
	})

	t.Run("Empty directory", func(t *testing.T) {
		srv := wptest.New("editor", "app-pass")
		defer srv.Close()
		dir := setup(t, srv, "editor", "app-pass")

		out, err := execute("--dir", dir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "No .docx files found to upload.") {
			t.Errorf("unexpected output: %s", out)
		}
	})
}

// chdir changes the working directory for the duration of the test,
// mirroring testing.T.Chdir (Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
