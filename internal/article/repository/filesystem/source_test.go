package filesystem_test

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"testing"

	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"article-uploader/internal/article/repository"
	"article-uploader/internal/article/repository/filesystem"
	"article-uploader/pkg/docx"
	"article-uploader/pkg/docx/docxtest"
	pkgLog "article-uploader/pkg/log"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func TestListArticleFiles(t *testing.T) {
	root := t.TempDir()
	docxtest.Write(t, filepath.Join(root, "Tech", "my-great-article.docx"), "Hello")
	docxtest.Write(t, filepath.Join(root, "Tech", "Go", "deep-dive.docx"), "Deep")
	docxtest.Write(t, filepath.Join(root, "top-level.docx"), "Top")
	if err := os.WriteFile(filepath.Join(root, "Tech", "notes.txt"), []byte("skip"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "Tech", "upper.DOCX"), []byte("skip"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(root, "folder.docx"), 0o755); err != nil {
		t.Fatal(err)
	}

	repo := filesystem.New(docx.New(), &mockLogger{})
	ctx := context.Background()

	t.Run("Recursive match", func(t *testing.T) {
		files, err := repo.ListArticleFiles(ctx, root)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		sort.Strings(files)
		want := []string{
			filepath.Join(root, "Tech", "Go", "deep-dive.docx"),
			filepath.Join(root, "Tech", "my-great-article.docx"),
			filepath.Join(root, "top-level.docx"),
		}
		if !reflect.DeepEqual(files, want) {
			t.Errorf("got %v, want %v", files, want)
		}
	})

	t.Run("Paths are absolute", func(t *testing.T) {
		wd, _ := os.Getwd()
		defer os.Chdir(wd)
		if err := os.Chdir(root); err != nil {
			t.Fatal(err)
		}
		files, err := repo.ListArticleFiles(ctx, ".")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		for _, f := range files {
			if !filepath.IsAbs(f) {
				t.Errorf("expected absolute path, got %s", f)
			}
		}
	})

	t.Run("Empty directory", func(t *testing.T) {
		files, err := repo.ListArticleFiles(ctx, t.TempDir())
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(files) != 0 {
			t.Errorf("expected no files, got %v", files)
		}
	})

	t.Run("Missing root", func(t *testing.T) {
		_, err := repo.ListArticleFiles(ctx, filepath.Join(root, "missing"))
		if !errors.Is(err, repository.ErrRootNotFound) {
			t.Errorf("expected ErrRootNotFound, got %v", err)
		}
	})

	t.Run("Root is a file", func(t *testing.T) {
		_, err := repo.ListArticleFiles(ctx, filepath.Join(root, "top-level.docx"))
		if !errors.Is(err, repository.ErrRootNotFound) {
			t.Errorf("expected ErrRootNotFound, got %v", err)
		}
	})

	t.Run("ReadParagraphs", func(t *testing.T) {
		got, err := repo.ReadParagraphs(ctx, filepath.Join(root, "Tech", "my-great-article.docx"))
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !reflect.DeepEqual(got, []string{"Hello"}) {
			t.Errorf("unexpected paragraphs: %q", got)
		}

		_, err = repo.ReadParagraphs(ctx, filepath.Join(root, "Tech", "notes.txt"))
		if !errors.Is(err, docx.ErrNotDocx) {
			t.Errorf("expected ErrNotDocx, got %v", err)
		}
	})
}

func TestListArticleFilesUnreadable(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}
	ctx := context.Background()

	lock := func(t *testing.T, dir string) {
		t.Helper()
		if err := os.Chmod(dir, 0o000); err != nil {
			t.Fatalf("chmod: %v", err)
		}
		t.Cleanup(func() { os.Chmod(dir, 0o755) })
	}

	t.Run("Unreadable subdirectory is skipped", func(t *testing.T) {
		root := t.TempDir()
		docxtest.Write(t, filepath.Join(root, "Open", "visible.docx"), "x")
		docxtest.Write(t, filepath.Join(root, "Locked", "hidden.docx"), "y")
		lock(t, filepath.Join(root, "Locked"))

		core, logs := observer.New(zapcore.WarnLevel)
		repo := filesystem.New(docx.New(), pkgLog.NewWithCore(core))

		got, err := repo.ListArticleFiles(ctx, root)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []string{filepath.Join(root, "Open", "visible.docx")}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
		if logs.FilterMessageSnippet("Locked").Len() != 1 {
			t.Errorf("expected one warning for the locked folder, got %v", logs.All())
		}
	})

	t.Run("Unreadable root fails", func(t *testing.T) {
		root := t.TempDir()
		docxtest.Write(t, filepath.Join(root, "Open", "visible.docx"), "x")
		lock(t, root)

		repo := filesystem.New(docx.New(), &mockLogger{})

		_, err := repo.ListArticleFiles(ctx, root)
		if err == nil {
			t.Fatal("expected an error for an unreadable root")
		}
		if errors.Is(err, repository.ErrRootNotFound) {
			t.Errorf("unreadable root must not look missing: %v", err)
		}
		if !errors.Is(err, fs.ErrPermission) {
			t.Errorf("expected a permission error, got %v", err)
		}
	})
}
