package article

import (
	"context"

	"article-uploader/internal/model"
)

// UseCase defines the business logic interface for the article domain.
type UseCase interface {
	// Upload discovers every .docx under input.Dir and publishes each one in turn.
	// Per-article failures are recorded in the output and never stop the run.
	Upload(ctx context.Context, input UploadInput) (UploadOutput, error)

	// BuildArticle derives title, category and content for a single file.
	BuildArticle(ctx context.Context, path string) (model.Article, error)

	// ResolveCategory returns the ID of the category with the given name, creating it when absent.
	ResolveCategory(ctx context.Context, name string) (model.Category, error)

	// Publish resolves the article's category and creates the post.
	Publish(ctx context.Context, a model.Article) (PublishOutput, error)
}
