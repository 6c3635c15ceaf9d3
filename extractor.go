package newsclip

import "time"

// ArticleExtractor turns a listing page into article records.
type ArticleExtractor interface {
	// ExtractArticles scans the HTML for candidate content blocks and
	// builds a record from each block that yields a resolvable link and
	// a usable title. Records are deduplicated by URL (first seen wins)
	// and returned in scan order. The capture time now is used as the
	// FetchedAt value and as the PublishedAt fallback.
	ExtractArticles(html, baseURL string, source Source, now time.Time) ([]*Article, error)
}

// ContentExtractor extracts the main body of an article page, with
// boilerplate (nav, footer, sidebar, ads) removed.
type ContentExtractor interface {
	// Extract processes raw HTML and returns the main content.
	// The title comes from page metadata (meta tags, JSON+LD, etc.).
	Extract(html string) (*ExtractResult, error)
}

// ExtractResult holds the extracted content from an article page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML.
	ContentHTML string
}

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be clean HTML (e.g., from a ContentExtractor).
	Convert(html string) (string, error)
}

// ImageExtractor finds the best hero image for an article page.
type ImageExtractor interface {
	// ExtractImage runs all discovery strategies against the HTML,
	// ranks the surviving candidates, and returns the best image URL.
	// Returns ENOTFOUND if no candidate passes filtering.
	ExtractImage(html, baseURL string) (string, error)
}
