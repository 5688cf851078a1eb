package usecase

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"go.uber.org/multierr"

	"article-uploader/internal/article"
	"article-uploader/internal/article/repository"
)

// Upload discovers every .docx under input.Dir and publishes them one by one.
// A missing directory is returned as article.ErrArticlesDirNotFound; an empty
// one is a successful no-op. Per-article failures are collected in the output.
func (uc *implUseCase) Upload(ctx context.Context, input article.UploadInput) (article.UploadOutput, error) {
	files, err := uc.source.ListArticleFiles(ctx, input.Dir)
	if err != nil {
		if errors.Is(err, repository.ErrRootNotFound) {
			return article.UploadOutput{}, fmt.Errorf("%w: %s", article.ErrArticlesDirNotFound, input.Dir)
		}
		return article.UploadOutput{}, fmt.Errorf("failed to list articles: %w", err)
	}

	out := article.UploadOutput{
		Discovered: len(files),
		Results:    make([]article.Result, 0, len(files)),
	}
	if len(files) == 0 {
		uc.l.Warnf(ctx, "Upload: no .docx files found under %s", input.Dir)
		return out, nil
	}

	uc.l.Infof(ctx, "Upload: found %d articles dry_run=%t", len(files), input.DryRun)

	for i, path := range files {
		if err := ctx.Err(); err != nil {
			return out, err
		}

		res := uc.uploadOne(ctx, path, input.DryRun)
		out.Results = append(out.Results, res)

		if !res.Failed() {
			if res.Status == article.StatusPublished {
				out.Published++
			}
			continue
		}

		out.Failed++
		out.Err = multierr.Append(out.Err, res.Err)

		if res.Status == article.StatusExtractFailed && uc.stopOnExtractError {
			uc.l.Errorf(ctx, "Upload: stopping after %d/%d articles on extraction failure", i+1, len(files))
			return out, res.Err
		}
	}

	uc.l.Infof(ctx, "Upload: done published=%d failed=%d total=%d", out.Published, out.Failed, out.Discovered)
	return out, nil
}

func (uc *implUseCase) uploadOne(ctx context.Context, path string, dryRun bool) article.Result {
	res := article.Result{
		FilePath: path,
		FileName: filepath.Base(path),
	}

	a, err := uc.BuildArticle(ctx, path)
	if err != nil {
		uc.l.Errorf(ctx, "Upload: extract %s: %v", res.FileName, err)
		res.Status = article.StatusExtractFailed
		res.Err = err
		return res
	}
	res.Title = a.Title
	res.Category = a.CategoryName

	if dryRun {
		uc.l.Infof(ctx, "Upload: dry run %s title=%q category=%q content_length=%d", a.FileName, a.Title, a.CategoryName, len(a.Content))
		res.Status = article.StatusDryRun
		return res
	}

	published, err := uc.Publish(ctx, a)
	if err != nil {
		res.Err = err
		if errors.Is(err, article.ErrCategoryResolution) {
			uc.l.Errorf(ctx, "Upload: resolve category %q for %s: %v", a.CategoryName, a.FileName, err)
			res.Status = article.StatusCategoryFailed
		} else {
			uc.l.Errorf(ctx, "Upload: publish %s: %v", a.FileName, err)
			res.Status = article.StatusPublishFailed
		}
		return res
	}

	uc.l.Infof(ctx, "Upload: published %s post_id=%d category_id=%d", a.FileName, published.Post.ID, published.Category.ID)
	res.Status = article.StatusPublished
	res.PostID = published.Post.ID
	res.PostLink = published.Post.Link
	return res
}
