package console

import (
	"errors"
	"fmt"

	"article-uploader/internal/article"
	pkgWordPress "article-uploader/pkg/wordpress"
)

func formatResult(r article.Result) string {
	switch r.Status {
	case article.StatusPublished:
		if r.PostLink != "" {
			return fmt.Sprintf("✅ %s published as post ID %d (%s)", r.FileName, r.PostID, r.PostLink)
		}
		return fmt.Sprintf("✅ %s published as post ID %d", r.FileName, r.PostID)
	case article.StatusDryRun:
		return fmt.Sprintf("📝 %s would be published as %q in category %q", r.FileName, r.Title, r.Category)
	case article.StatusCategoryFailed:
		return fmt.Sprintf("❌ Category error for %s: %s", r.FileName, categoryMessage(r))
	case article.StatusPublishFailed:
		return fmt.Sprintf("❌ Failed to publish %s: %s", r.FileName, errorMessage(r.Err))
	case article.StatusExtractFailed:
		return fmt.Sprintf("❌ Could not read %s: %s", r.FileName, errorMessage(r.Err))
	default:
		return fmt.Sprintf("❔ %s: %s", r.FileName, r.Status)
	}
}

func formatSummary(out article.UploadOutput, dryRun bool) string {
	if dryRun {
		return fmt.Sprintf("Dry run: %d article(s) checked, %d unreadable.", out.Discovered, out.Failed)
	}
	return fmt.Sprintf("Done: %d published, %d failed, %d total.", out.Published, out.Failed, out.Discovered)
}

// categoryMessage names the category when WordPress refused to create it.
func categoryMessage(r article.Result) string {
	var apiErr *pkgWordPress.APIError
	if errors.As(r.Err, &apiErr) && apiErr.Op == pkgWordPress.OpCreateCategory {
		return fmt.Sprintf("Failed to create category '%s': %s", r.Category, errorMessage(r.Err))
	}
	return errorMessage(r.Err)
}

// errorMessage renders WordPress answers as "<status> - <message>" and other
// failures as their message, without the file/kind prefix of ArticleError.
func errorMessage(err error) string {
	if err == nil {
		return ""
	}

	var apiErr *pkgWordPress.APIError
	if errors.As(err, &apiErr) {
		if detail, ok := apiErr.Detail(); ok && detail.Message != "" {
			return fmt.Sprintf("%d - %s (%s)", apiErr.StatusCode, detail.Message, detail.Code)
		}
		return fmt.Sprintf("%d - %s", apiErr.StatusCode, apiErr.Body)
	}

	var artErr *article.ArticleError
	if errors.As(err, &artErr) {
		return artErr.Err.Error()
	}
	return err.Error()
}
