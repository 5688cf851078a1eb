package usecase

import (
	"path/filepath"
	"strings"
	"unicode"
)

// TitleFromFileName turns "my-great-article.docx" into "My Great Article":
// the extension is dropped, every "-" becomes a space, then titleCase applies.
func TitleFromFileName(name string) string {
	return titleCase(strings.ReplaceAll(stem(name), "-", " "))
}

// CategoryFromPath returns the name of the directory directly containing path.
func CategoryFromPath(path string) string {
	return filepath.Base(filepath.Dir(path))
}

// JoinParagraphs drops blank and whitespace-only paragraphs and joins the
// rest with "\n". No surviving paragraphs yields "".
func JoinParagraphs(paragraphs []string) string {
	kept := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		if strings.TrimSpace(p) == "" {
			continue
		}
		kept = append(kept, p)
	}
	return strings.Join(kept, "\n")
}

// stem strips the last extension from a file name. A leading dot does not
// start an extension and neither does a trailing one, so ".docx" and
// "draft." are returned unchanged.
func stem(name string) string {
	name = filepath.Base(name)
	i := strings.LastIndexByte(name, '.')
	if i > 0 && i < len(name)-1 {
		return name[:i]
	}
	return name
}

// titleCase upper-cases every cased letter that follows an uncased character
// and lower-cases every cased letter that follows a cased one. Word breaks are
// therefore any non-letter, not only whitespace: "don't" becomes "Don'T" and
// "web3-intro" becomes "Web3 Intro".
func titleCase(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))

	prevCased := false
	for _, r := range s {
		switch {
		case isCased(r):
			if prevCased {
				sb.WriteRune(unicode.ToLower(r))
			} else {
				sb.WriteRune(unicode.ToTitle(r))
			}
			prevCased = true
		default:
			sb.WriteRune(r)
			prevCased = false
		}
	}
	return sb.String()
}

func isCased(r rune) bool {
	return unicode.IsUpper(r) || unicode.IsLower(r) || unicode.IsTitle(r)
}
