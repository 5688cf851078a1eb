package model

// PostStatusPublish is the only status the uploader assigns.
const PostStatusPublish = "publish"

// Category is a remote taxonomy term resolved by name.
type Category struct {
	ID   int
	Name string
}

// Post is the remote content object created from an Article.
type Post struct {
	ID          int
	Title       string
	Content     string
	CategoryIDs []int
	Status      string
	Link        string
}
