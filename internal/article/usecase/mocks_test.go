package usecase_test

import (
	"context"
	"errors"
	"fmt"

	"article-uploader/internal/article/repository"
	"article-uploader/internal/model"
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

type mockSource struct {
	files      []string
	paragraphs map[string][]string
	readErr    map[string]error
	listErr    error
	listCalls  int
}

func (m *mockSource) ListArticleFiles(ctx context.Context, root string) ([]string, error) {
	m.listCalls++
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.files, nil
}

func (m *mockSource) ReadParagraphs(ctx context.Context, path string) ([]string, error) {
	if err := m.readErr[path]; err != nil {
		return nil, err
	}
	return m.paragraphs[path], nil
}

type mockWordPressRepo struct {
	existing       []model.Category
	searchErr      error
	failCategories map[string]bool
	failPosts      map[string]bool

	nextID int
	calls  []string
	posts  []repository.CreatePostOptions
}

var errDown = errors.New("connection refused")

func (m *mockWordPressRepo) SearchCategories(ctx context.Context, name string) ([]model.Category, error) {
	m.calls = append(m.calls, "search:"+name)
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	var found []model.Category
	for _, c := range m.existing {
		if c.Name == name {
			found = append(found, c)
		}
	}
	return found, nil
}

func (m *mockWordPressRepo) CreateCategory(ctx context.Context, name string) (model.Category, error) {
	m.calls = append(m.calls, "create_category:"+name)
	if m.failCategories[name] {
		return model.Category{}, fmt.Errorf("%w: 403 rest_forbidden", repository.ErrUnexpectedStatus)
	}
	m.nextID++
	c := model.Category{ID: m.nextID, Name: name}
	m.existing = append(m.existing, c)
	return c, nil
}

func (m *mockWordPressRepo) CreatePost(ctx context.Context, opt repository.CreatePostOptions) (model.Post, error) {
	m.calls = append(m.calls, "create_post:"+opt.Title)
	if m.failPosts[opt.Title] {
		return model.Post{}, fmt.Errorf("%w: wordpress API create post error 500: boom", repository.ErrUnexpectedStatus)
	}
	m.posts = append(m.posts, opt)
	m.nextID++
	return model.Post{ID: m.nextID, Title: opt.Title, Status: opt.Status}, nil
}

func (m *mockWordPressRepo) count(prefix string) int {
	n := 0
	for _, c := range m.calls {
		if len(c) >= len(prefix) && c[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}
