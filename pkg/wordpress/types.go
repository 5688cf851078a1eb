package wordpress

// Category is the WordPress REST category object.
type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Count       int    `json:"count"`
	Link        string `json:"link"`
	Parent      int    `json:"parent"`
}

// CreateCategoryRequest is the body for POST /categories.
type CreateCategoryRequest struct {
	Name string `json:"name"`
}

// CreatePostRequest is the body for POST /posts.
type CreatePostRequest struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	Categories []int  `json:"categories"`
	Status     string `json:"status"`
}

// Post is the subset of the WordPress REST post object the uploader reads.
type Post struct {
	ID         int          `json:"id"`
	Link       string       `json:"link"`
	Status     string       `json:"status"`
	Title      RenderedText `json:"title"`
	Categories []int        `json:"categories"`
}

// RenderedText is the {"rendered": "..."} wrapper WordPress uses for titles and content.
type RenderedText struct {
	Raw      string `json:"raw,omitempty"`
	Rendered string `json:"rendered"`
}

// ErrorResponse is the WordPress REST error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    struct {
		Status int `json:"status"`
		TermID int `json:"term_id,omitempty"`
	} `json:"data"`
}
