package wordpress

import (
	"context"
	"net/http"
)

// IWordPress is the subset of the WordPress REST API used by the uploader.
type IWordPress interface {
	SearchCategories(ctx context.Context, name string) ([]Category, error)
	CreateCategory(ctx context.Context, req CreateCategoryRequest) (*Category, error)
	CreatePost(ctx context.Context, req CreatePostRequest) (*Post, error)
}

// HTTPDoer sends a single HTTP request. *http.Client satisfies it.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}
