package model

// Article is one input document mapped to one remote post.
type Article struct {
	FilePath     string // Path of the source .docx file
	FileName     string // Base name, used in status lines
	Title        string // Derived from the file name
	CategoryName string // Name of the immediate parent directory
	Content      string // Non-blank paragraphs joined by "\n"
}
