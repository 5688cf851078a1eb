package console

import (
	"context"
	"io"

	"article-uploader/internal/article"
	pkgLog "article-uploader/pkg/log"
)

// Handler is the interface for the console delivery handler.
type Handler interface {
	// Run performs one uploader run and prints a status line per article.
	Run(ctx context.Context, input article.UploadInput) (article.UploadOutput, error)
}

// New creates a new console delivery handler writing to out.
func New(l pkgLog.Logger, uc article.UseCase, out io.Writer) Handler {
	return &handler{
		l:   l,
		uc:  uc,
		out: out,
	}
}
