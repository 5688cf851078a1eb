// Package docxtest writes minimal .docx files for tests.
package docxtest

import (
	"archive/zip"
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const header = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`

const footer = `<w:sectPr/></w:body></w:document>`

// BodyXML renders one plain-run paragraph per entry.
func BodyXML(paragraphs ...string) string {
	var sb strings.Builder
	for _, p := range paragraphs {
		if p == "" {
			sb.WriteString(`<w:p/>`)
			continue
		}
		sb.WriteString(`<w:p><w:r><w:t xml:space="preserve">`)
		xml.EscapeText(&sb, []byte(p))
		sb.WriteString(`</w:t></w:r></w:p>`)
	}
	return sb.String()
}

// DocumentXML wraps body in a w:document/w:body envelope.
func DocumentXML(body string) string {
	return header + body + footer
}

// Write creates a .docx at path whose body holds the given paragraphs.
// Parent directories are created as needed.
func Write(t testing.TB, path string, paragraphs ...string) {
	t.Helper()
	WriteRaw(t, path, DocumentXML(BodyXML(paragraphs...)))
}

// WriteRaw creates a .docx at path with documentXML as word/document.xml.
func WriteRaw(t testing.TB, path, documentXML string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("zip entry: %v", err)
	}
	if _, err := w.Write([]byte(documentXML)); err != nil {
		t.Fatalf("write document.xml: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
}
