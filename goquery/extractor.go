package goquery

import (
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/ajablonski/newsclip"
)

// Ensure Extractor implements newsclip.ArticleExtractor at compile time.
var _ newsclip.ArticleExtractor = (*Extractor)(nil)

// Extractor implements newsclip.ArticleExtractor by scanning parsed HTML
// with an ordered selector list and building records from each surviving
// block.
type Extractor struct {
	// Selectors is the ordered block selector list.
	// Defaults to DefaultBlockSelectors.
	Selectors []string
}

// NewExtractor creates an Extractor with the default selector list.
func NewExtractor() *Extractor {
	return &Extractor{Selectors: DefaultBlockSelectors}
}

// ExtractArticles scans the listing page HTML and returns article records
// deduplicated by URL in scan order.
func (e *Extractor) ExtractArticles(html, baseURL string, source newsclip.Source, now time.Time) ([]*newsclip.Article, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, newsclip.Errorf(newsclip.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, newsclip.Errorf(newsclip.EINVALID, "failed to parse HTML: %v", err)
	}

	selectors := e.Selectors
	if len(selectors) == 0 {
		selectors = DefaultBlockSelectors
	}

	var articles []*newsclip.Article
	for _, block := range ScanBlocks(doc, selectors) {
		if article, ok := BuildRecord(block, base, source, now); ok {
			articles = append(articles, article)
		}
	}

	return newsclip.DedupeArticles(articles), nil
}

// resolveURL resolves a relative URL against a base URL.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}

// isNonHTTPLink reports whether href uses a scheme that cannot be
// fetched (javascript:, mailto:, tel:, and friends).
func isNonHTTPLink(href string) bool {
	lower := strings.ToLower(strings.TrimSpace(href))
	for _, prefix := range []string{"javascript:", "mailto:", "tel:", "data:", "ftp:"} {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}
