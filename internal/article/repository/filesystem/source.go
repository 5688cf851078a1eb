package filesystem

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"article-uploader/internal/article/repository"
	"article-uploader/pkg/docx"
	pkgLog "article-uploader/pkg/log"
)

// ArticleExtension is the only input format the uploader reads.
const ArticleExtension = ".docx"

type implRepository struct {
	extractor docx.IExtractor
	l         pkgLog.Logger
}

// New creates a new filesystem source repository.
func New(extractor docx.IExtractor, l pkgLog.Logger) repository.SourceRepository {
	return &implRepository{
		extractor: extractor,
		l:         l,
	}
}

func (r *implRepository) ListArticleFiles(ctx context.Context, root string) ([]string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", root, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", repository.ErrRootNotFound, abs)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", abs, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", repository.ErrRootNotFound, abs)
	}

	var files []string
	err = filepath.WalkDir(abs, func(path string, d fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			if path == abs {
				return walkErr
			}
			r.l.Warnf(ctx, "filesystem repository: skipping %s: %v", path, walkErr)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || filepath.Ext(d.Name()) != ArticleExtension {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", abs, err)
	}

	r.l.Debugf(ctx, "filesystem repository: found %d %s files under %s", len(files), ArticleExtension, abs)
	return files, nil
}

func (r *implRepository) ReadParagraphs(ctx context.Context, path string) ([]string, error) {
	paragraphs, err := r.extractor.Paragraphs(ctx, path)
	if err != nil {
		r.l.Errorf(ctx, "filesystem repository: failed to read %s: %v", path, err)
		return nil, err
	}
	return paragraphs, nil
}
