package goquery

import (
	"net/url"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/ajablonski/newsclip"
)

// titleSelector finds heading elements at any level inside a block.
const titleSelector = "h1, h2, h3, h4, h5, h6"

// summarySelector finds paragraph-like elements flagged as summaries.
const summarySelector = "p, .summary, .excerpt, .description, .abstract"

// dateShape matches ISO dates and slash dates in either digit-width
// variant. Matches are validated against the calendar before use.
var dateShape = regexp.MustCompile(`\d{4}-\d{2}-\d{2}|\d{1,2}/\d{1,2}/\d{4}`)

// BuildRecord extracts an article record from one candidate block.
// The block's first hyperlink descendant supplies the URL, resolved
// against base. The title cascade tries headings first, then the link's
// own text; titles shorter than newsclip.MinTitleLength after trimming
// drop the record. The second return value is false when the block
// cannot yield a valid record; that is expected filtering, not an error.
func BuildRecord(block *goquery.Selection, base *url.URL, source newsclip.Source, now time.Time) (*newsclip.Article, bool) {
	link := block.Find("a[href]").First()
	href, ok := link.Attr("href")
	if !ok || href == "" || isNonHTTPLink(href) {
		return nil, false
	}
	resolved := resolveURL(base, href)
	if resolved == "" {
		return nil, false
	}

	title := normalizeSpace(block.Find(titleSelector).First().Text())
	if title == "" {
		title = normalizeSpace(link.Text())
	}
	if utf8.RuneCountInString(title) < newsclip.MinTitleLength {
		return nil, false
	}

	summary := normalizeSpace(block.Find(summarySelector).First().Text())
	summary = truncate(summary, newsclip.MaxSummaryLength)

	publishedAt := now
	if parsed, ok := findDate(block.Text()); ok {
		publishedAt = parsed
	}

	return &newsclip.Article{
		URL:          resolved,
		Title:        title,
		Summary:      summary,
		SourceName:   source.Name,
		QualityScore: source.TrustWeight,
		PublishedAt:  publishedAt,
		FetchedAt:    now,
	}, true
}

// findDate scans text for a date-shaped substring and returns the first
// one that is a real calendar date. Slash dates are read as month/day.
func findDate(text string) (time.Time, bool) {
	for _, match := range dateShape.FindAllString(text, -1) {
		layout := "2006-01-02"
		if strings.Contains(match, "/") {
			layout = "1/2/2006"
		}
		if t, err := time.Parse(layout, match); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// truncate limits s to n runes.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}
