package repository

import (
	"context"

	"article-uploader/internal/model"
)

// SourceRepository reads article documents from the local filesystem.
type SourceRepository interface {
	// ListArticleFiles walks root recursively and returns absolute paths of every .docx file.
	ListArticleFiles(ctx context.Context, root string) ([]string, error)
	// ReadParagraphs returns the body paragraphs of a document, blanks included.
	ReadParagraphs(ctx context.Context, path string) ([]string, error)
}

// WordPressRepository is the interface for WordPress data access operations.
type WordPressRepository interface {
	// SearchCategories returns categories matching name in the order WordPress lists them.
	SearchCategories(ctx context.Context, name string) ([]model.Category, error)
	CreateCategory(ctx context.Context, name string) (model.Category, error)
	CreatePost(ctx context.Context, opt CreatePostOptions) (model.Post, error)
}
