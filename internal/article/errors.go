package article

import (
	"errors"
	"fmt"
)

// Error kinds. Every per-article failure wraps exactly one of these.
var (
	ErrArticlesDirNotFound = errors.New("articles directory not found")
	ErrExtraction          = errors.New("extraction failed")
	ErrCategoryResolution  = errors.New("category resolution failed")
	ErrPublication         = errors.New("publication failed")
)

// ArticleError ties a failure to the file it happened on.
// errors.Is matches both Kind and the underlying Err.
type ArticleError struct {
	File string
	Kind error
	Err  error
}

func (e *ArticleError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.File, e.Kind, e.Err)
}

func (e *ArticleError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

func newArticleError(file string, kind, err error) *ArticleError {
	return &ArticleError{File: file, Kind: kind, Err: err}
}

// NewExtractionError wraps err as an extraction failure for file.
func NewExtractionError(file string, err error) *ArticleError {
	return newArticleError(file, ErrExtraction, err)
}

// NewCategoryError wraps err as a category resolution failure for file.
func NewCategoryError(file string, err error) *ArticleError {
	return newArticleError(file, ErrCategoryResolution, err)
}

// NewPublicationError wraps err as a publication failure for file.
func NewPublicationError(file string, err error) *ArticleError {
	return newArticleError(file, ErrPublication, err)
}
