package usecase

import (
	"context"

	"article-uploader/internal/article"
	"article-uploader/internal/article/repository"
	"article-uploader/internal/model"
)

// Publish resolves the category of a and creates the post. No post is
// created when the category cannot be resolved.
func (uc *implUseCase) Publish(ctx context.Context, a model.Article) (article.PublishOutput, error) {
	cat, err := uc.ResolveCategory(ctx, a.CategoryName)
	if err != nil {
		return article.PublishOutput{}, article.NewCategoryError(a.FileName, err)
	}

	post, err := uc.wp.CreatePost(ctx, repository.CreatePostOptions{
		Title:       a.Title,
		Content:     a.Content,
		CategoryIDs: []int{cat.ID},
		Status:      model.PostStatusPublish,
	})
	if err != nil {
		return article.PublishOutput{Category: cat}, article.NewPublicationError(a.FileName, err)
	}

	return article.PublishOutput{Category: cat, Post: post}, nil
}
