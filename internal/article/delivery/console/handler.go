package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/multierr"

	"article-uploader/internal/article"
	pkgLog "article-uploader/pkg/log"
)

type handler struct {
	l   pkgLog.Logger
	uc  article.UseCase
	out io.Writer
}

func (h *handler) Run(ctx context.Context, input article.UploadInput) (article.UploadOutput, error) {
	fmt.Fprintf(h.out, "🔍 Scanning %s for .docx articles...\n", input.Dir)

	output, err := h.uc.Upload(ctx, input)
	for _, r := range output.Results {
		fmt.Fprintln(h.out, formatResult(r))
	}

	if err != nil {
		if errors.Is(err, article.ErrArticlesDirNotFound) {
			fmt.Fprintf(h.out, "❌ Articles folder not found: %s\n", input.Dir)
		} else {
			fmt.Fprintf(h.out, "❌ Upload stopped: %v\n", err)
		}
		h.l.Errorf(ctx, "console handler: Upload failed: %v", err)
		return output, err
	}

	if output.Discovered == 0 {
		fmt.Fprintln(h.out, "⚠️ No .docx files found to upload.")
		return output, nil
	}

	if output.Err != nil {
		h.l.Warnf(ctx, "console handler: %d article(s) failed: %v", len(multierr.Errors(output.Err)), output.Err)
	}
	fmt.Fprintln(h.out, formatSummary(output, input.DryRun))
	return output, nil
}
