package docx

import "context"

// IExtractor reads a Word document and returns its body paragraphs in order.
type IExtractor interface {
	Paragraphs(ctx context.Context, path string) ([]string, error)
}
