package article

import "article-uploader/internal/model"

// ResultStatus is the outcome of one article.
type ResultStatus string

const (
	StatusPublished      ResultStatus = "published"
	StatusDryRun         ResultStatus = "dry_run"
	StatusExtractFailed  ResultStatus = "extract_failed"
	StatusCategoryFailed ResultStatus = "category_failed"
	StatusPublishFailed  ResultStatus = "publish_failed"
)

// UploadInput is the input for one uploader run.
type UploadInput struct {
	Dir    string // Root directory scanned recursively for .docx files
	DryRun bool   // Extract and report without calling WordPress
}

// Result is the per-file record emitted by a run.
type Result struct {
	FilePath string
	FileName string
	Title    string
	Category string
	Status   ResultStatus
	PostID   int    // Set when Status is StatusPublished
	PostLink string // Set when Status is StatusPublished
	Err      error  // *ArticleError when the article failed
}

// Failed reports whether the article did not reach WordPress.
func (r Result) Failed() bool {
	return r.Err != nil
}

// UploadOutput is the result of one uploader run.
type UploadOutput struct {
	Discovered int
	Published  int
	Failed     int
	Results    []Result
	// Err combines every per-article error of the run, nil when none failed.
	Err error
}

// PublishOutput is the result of publishing a single article.
type PublishOutput struct {
	Category model.Category
	Post     model.Post
}
