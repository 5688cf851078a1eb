package usecase

import (
	"context"
	"path/filepath"

	"article-uploader/internal/article"
	"article-uploader/internal/model"
)

// BuildArticle reads path and derives the post fields from it.
func (uc *implUseCase) BuildArticle(ctx context.Context, path string) (model.Article, error) {
	name := filepath.Base(path)

	paragraphs, err := uc.source.ReadParagraphs(ctx, path)
	if err != nil {
		return model.Article{}, article.NewExtractionError(name, err)
	}

	return model.Article{
		FilePath:     path,
		FileName:     name,
		Title:        TitleFromFileName(name),
		CategoryName: CategoryFromPath(path),
		Content:      JoinParagraphs(paragraphs),
	}, nil
}
