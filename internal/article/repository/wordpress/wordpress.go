package wordpress

import (
	"context"
	"errors"
	"fmt"

	"article-uploader/internal/article/repository"
	"article-uploader/internal/model"
	pkgLog "article-uploader/pkg/log"
	pkgWordPress "article-uploader/pkg/wordpress"
)

type implRepository struct {
	client pkgWordPress.IWordPress
	l      pkgLog.Logger
}

// New creates a new WordPress repository.
func New(client pkgWordPress.IWordPress, l pkgLog.Logger) repository.WordPressRepository {
	return &implRepository{
		client: client,
		l:      l,
	}
}

func (r *implRepository) SearchCategories(ctx context.Context, name string) ([]model.Category, error) {
	found, err := r.client.SearchCategories(ctx, name)
	if err != nil {
		r.l.Warnf(ctx, "wordpress repository: category search %q failed: %v", name, err)
		return nil, classify(err)
	}

	categories := make([]model.Category, 0, len(found))
	for _, c := range found {
		categories = append(categories, toCategory(c))
	}
	return categories, nil
}

func (r *implRepository) CreateCategory(ctx context.Context, name string) (model.Category, error) {
	created, err := r.client.CreateCategory(ctx, pkgWordPress.CreateCategoryRequest{Name: name})
	if err != nil {
		r.l.Errorf(ctx, "wordpress repository: failed to create category %q: %v", name, err)
		return model.Category{}, classify(err)
	}
	return toCategory(*created), nil
}

func (r *implRepository) CreatePost(ctx context.Context, opt repository.CreatePostOptions) (model.Post, error) {
	status := opt.Status
	if status == "" {
		status = pkgWordPress.StatusPublish
	}

	categories := opt.CategoryIDs
	if categories == nil {
		categories = []int{}
	}

	post, err := r.client.CreatePost(ctx, pkgWordPress.CreatePostRequest{
		Title:      opt.Title,
		Content:    opt.Content,
		Categories: categories,
		Status:     status,
	})
	if err != nil {
		r.l.Errorf(ctx, "wordpress repository: failed to create post %q: %v", opt.Title, err)
		return model.Post{}, classify(err)
	}

	return model.Post{
		ID:          post.ID,
		Title:       opt.Title,
		Content:     opt.Content,
		CategoryIDs: categories,
		Status:      status,
		Link:        post.Link,
	}, nil
}

// classify tags status-code failures with repository.ErrUnexpectedStatus so
// callers can tell them apart from transport and decoding failures.
func classify(err error) error {
	var apiErr *pkgWordPress.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("%w: %w", repository.ErrUnexpectedStatus, err)
	}
	return err
}

func toCategory(c pkgWordPress.Category) model.Category {
	return model.Category{ID: c.ID, Name: c.Name}
}
