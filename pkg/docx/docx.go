// Package docx extracts paragraph text from Office Open XML word documents.
//
// Only paragraphs that are direct children of the document body are
// returned; table cells, headers, footers and text boxes are ignored.
// Within a paragraph, text runs are concatenated, tabs become "\t" and
// line breaks become "\n". Page and column breaks contribute nothing.
package docx

import (
	"archive/zip"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	documentPart = "word/document.xml"
	wordNS       = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
)

// Extractor is the archive/zip + encoding/xml implementation of IExtractor.
type Extractor struct{}

// New creates a new Extractor.
func New() *Extractor {
	return &Extractor{}
}

// Paragraphs opens the .docx file at path and returns its body paragraphs.
// Empty paragraphs are kept so callers decide how to filter them.
func (e *Extractor) Paragraphs(ctx context.Context, path string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	zr, err := zip.OpenReader(path)
	if err != nil {
		if errors.Is(err, zip.ErrFormat) {
			return nil, fmt.Errorf("%s: %w", path, ErrNotDocx)
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != documentPart {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open %s in %s: %w", documentPart, path, err)
		}
		defer rc.Close()

		paragraphs, err := ReadParagraphs(rc)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return paragraphs, nil
	}

	return nil, fmt.Errorf("%s: %w", path, ErrNoDocumentPart)
}

// ReadParagraphs parses a word/document.xml stream.
func ReadParagraphs(r io.Reader) ([]string, error) {
	dec := xml.NewDecoder(r)

	var (
		paragraphs []string
		stack      []string
		current    strings.Builder
		inPara     bool
		inText     bool
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Space == wordNS {
				switch t.Name.Local {
				case "p":
					if isBodyLevel(stack) {
						inPara = true
						current.Reset()
					}
				case "t":
					inText = inPara && inParagraphRun(stack)
				case "tab":
					if inPara && inParagraphRun(stack) {
						current.WriteByte('\t')
					}
				case "noBreakHyphen":
					if inPara && inParagraphRun(stack) {
						current.WriteByte('-')
					}
				case "cr":
					if inPara && inParagraphRun(stack) {
						current.WriteByte('\n')
					}
				case "br":
					if inPara && inParagraphRun(stack) && isLineBreak(t) {
						current.WriteByte('\n')
					}
				}
			}
			stack = append(stack, wordLocal(t.Name))

		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
			if t.Name.Space != wordNS {
				continue
			}
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				if inPara && isBodyLevel(stack) {
					paragraphs = append(paragraphs, current.String())
					inPara = false
				}
			}

		case xml.CharData:
			if inText {
				current.Write(t)
			}
		}
	}

	if len(stack) != 0 {
		return nil, fmt.Errorf("%w: unexpected end of document", ErrMalformed)
	}
	return paragraphs, nil
}

// isBodyLevel reports whether the open elements are exactly w:document > w:body.
func isBodyLevel(stack []string) bool {
	return len(stack) == 2 && stack[0] == "w:document" && stack[1] == "w:body"
}

// inParagraphRun reports whether the innermost open element is a run of the
// body paragraph itself, optionally wrapped in a hyperlink. Runs nested in
// drawings, text boxes or alternate content do not qualify.
func inParagraphRun(stack []string) bool {
	if len(stack) < 4 || stack[2] != "w:p" {
		return false
	}
	switch rest := stack[3:]; len(rest) {
	case 1:
		return rest[0] == "w:r"
	case 2:
		return rest[0] == "w:hyperlink" && rest[1] == "w:r"
	}
	return false
}

// isLineBreak is false for page and column breaks.
func isLineBreak(el xml.StartElement) bool {
	for _, a := range el.Attr {
		if a.Name.Local == "type" {
			return a.Value == "" || a.Value == "textWrapping"
		}
	}
	return true
}

func wordLocal(n xml.Name) string {
	if n.Space == wordNS {
		return "w:" + n.Local
	}
	return n.Space + ":" + n.Local
}
