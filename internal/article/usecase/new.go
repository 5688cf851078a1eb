package usecase

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"article-uploader/internal/article/repository"
	"article-uploader/internal/model"
	pkgLog "article-uploader/pkg/log"
)

// Options tunes a UseCase.
type Options struct {
	// CategoryCacheSize bounds the per-run cache of resolved categories. <= 0 disables it.
	CategoryCacheSize int
	// StopOnExtractError aborts the run on the first unreadable document
	// instead of recording it and moving on.
	StopOnExtractError bool
}

type implUseCase struct {
	l                  pkgLog.Logger
	source             repository.SourceRepository
	wp                 repository.WordPressRepository
	categories         *lru.Cache[string, model.Category]
	stopOnExtractError bool
}

// New creates a new article UseCase instance.
func New(
	l pkgLog.Logger,
	source repository.SourceRepository,
	wp repository.WordPressRepository,
	opt Options,
) *implUseCase {
	uc := &implUseCase{
		l:                  l,
		source:             source,
		wp:                 wp,
		stopOnExtractError: opt.StopOnExtractError,
	}
	if opt.CategoryCacheSize > 0 {
		// lru.New only fails for non-positive sizes.
		uc.categories, _ = lru.New[string, model.Category](opt.CategoryCacheSize)
	}
	return uc
}
