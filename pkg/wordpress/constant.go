package wordpress

const (
	// StatusPublish is the only post status the uploader creates.
	StatusPublish = "publish"

	// APIError.Op values.
	OpSearchCategories = "search categories"
	OpCreateCategory   = "create category"
	OpCreatePost       = "create post"

	postsSegment      = "/posts"
	categoriesSegment = "/categories"
)
