package repository

// CreatePostOptions holds the parameters for creating a post in WordPress.
type CreatePostOptions struct {
	Title       string
	Content     string // Plain text, paragraphs separated by "\n"
	CategoryIDs []int
	Status      string // Always "publish" for the uploader
}
