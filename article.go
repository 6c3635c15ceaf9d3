package newsclip

import (
	"context"
	"net/url"
	"strings"
	"time"
)

// MinTitleLength is the minimum trimmed title length for a valid article.
// Shorter titles are almost always "Read more" style link chrome.
const MinTitleLength = 10

// MaxSummaryLength is the maximum stored summary length. Longer summaries
// are truncated at extraction time.
const MaxSummaryLength = 500

// Article represents one extracted article record.
type Article struct {
	ID      string `json:"id"`
	URL     string `json:"url"`
	Title   string `json:"title"`
	Summary string `json:"summary"`

	// Content is the full article body as Markdown, filled by the
	// enrichment stage. Empty if the article page was never fetched.
	Content     string `json:"content,omitempty"`
	ContentHash string `json:"contentHash,omitempty"`

	SourceName string `json:"sourceName"`

	// QualityScore is the configured trust weight of the source the
	// article came from. It is never derived from content.
	QualityScore int `json:"qualityScore"`

	ImageURL string `json:"imageUrl,omitempty"`

	WhyItMatters string   `json:"whyItMatters,omitempty"`
	Takeaways    []string `json:"takeaways,omitempty"`

	// PublishedAt is best-effort: the first date-shaped substring found
	// in the source block, falling back to FetchedAt.
	PublishedAt time.Time `json:"publishedAt"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the article contains invalid fields.
func (a *Article) Validate() error {
	if len(strings.TrimSpace(a.Title)) < MinTitleLength {
		return Errorf(EINVALID, "article title too short")
	}
	if a.URL == "" {
		return Errorf(EINVALID, "article URL required")
	}
	u, err := url.Parse(a.URL)
	if err != nil || !u.IsAbs() {
		return Errorf(EINVALID, "article URL must be absolute")
	}
	if a.SourceName == "" {
		return Errorf(EINVALID, "article source name required")
	}
	return nil
}

// ArticleService represents a service for persisting and querying articles.
type ArticleService interface {
	// CreateArticle persists a new article. Articles are keyed by URL:
	// if an article with the same URL already exists the call is a
	// no-op and returns ECONFLICT.
	CreateArticle(ctx context.Context, article *Article) error

	// FindArticleByURL retrieves an article by its URL.
	// Returns ENOTFOUND if no article exists.
	FindArticleByURL(ctx context.Context, url string) (*Article, error)

	// FindArticles retrieves articles matching the filter, newest first.
	FindArticles(ctx context.Context, filter ArticleFilter) ([]*Article, error)

	// DeleteArticles permanently removes all articles matching the
	// filter and returns the number removed.
	DeleteArticles(ctx context.Context, filter ArticleFilter) (int, error)
}

// ArticleFilter represents a filter for FindArticles and DeleteArticles.
type ArticleFilter struct {
	URL        *string `json:"url"`
	SourceName *string `json:"sourceName"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
