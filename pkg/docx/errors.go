package docx

import "errors"

var (
	// ErrNotDocx is returned when the file is not a zip archive.
	ErrNotDocx = errors.New("not a docx archive")

	// ErrNoDocumentPart is returned when word/document.xml is missing.
	ErrNoDocumentPart = errors.New("word/document.xml not found")

	// ErrMalformed is returned when word/document.xml cannot be parsed.
	ErrMalformed = errors.New("malformed document xml")
)
