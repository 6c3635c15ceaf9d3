// Package feed collects articles from RSS and Atom feeds and exports
// harvested articles as an RSS 2.0 digest.
package feed

import (
	"context"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/ajablonski/newsclip"
	"github.com/mmcdole/gofeed"
)

// DefaultFeedItemLimit caps the number of items taken from a single feed.
const DefaultFeedItemLimit = 20

// Collector parses syndication feeds into articles. Feed bodies are
// retrieved through the configured fetcher so transport concerns
// (timeouts, user agent, logging) stay in one place.
type Collector struct {
	fetcher newsclip.Fetcher
	parser  *gofeed.Parser
}

// NewCollector creates a Collector that retrieves feeds with fetcher.
func NewCollector(fetcher newsclip.Fetcher) *Collector {
	return &Collector{
		fetcher: fetcher,
		parser:  gofeed.NewParser(),
	}
}

// Collect fetches and parses the feed at source.URL and returns up to
// limit articles. A limit of zero or less falls back to
// DefaultFeedItemLimit. Items without a usable title or link are
// skipped.
func (c *Collector) Collect(ctx context.Context, source newsclip.Source, limit int, now time.Time) ([]*newsclip.Article, error) {
	if limit <= 0 {
		limit = DefaultFeedItemLimit
	}

	body, err := c.fetcher.Fetch(ctx, source.URL)
	if err != nil {
		return nil, err
	}

	parsed, err := c.parser.ParseString(body)
	if err != nil {
		return nil, newsclip.Errorf(newsclip.EINVALID, "parse feed %s: %v", source.URL, err)
	}

	base, err := url.Parse(source.URL)
	if err != nil {
		return nil, newsclip.Errorf(newsclip.EINVALID, "invalid feed URL %s: %v", source.URL, err)
	}

	articles := make([]*newsclip.Article, 0, limit)
	for _, item := range parsed.Items {
		if len(articles) >= limit {
			break
		}

		title := strings.Join(strings.Fields(item.Title), " ")
		if utf8.RuneCountInString(title) < newsclip.MinTitleLength {
			continue
		}
		link := resolveLink(base, item.Link)
		if link == "" {
			continue
		}

		summary := stripTags(item.Description)
		if utf8.RuneCountInString(summary) > newsclip.MaxSummaryLength {
			summary = string([]rune(summary)[:newsclip.MaxSummaryLength])
		}

		publishedAt := now
		if item.PublishedParsed != nil {
			publishedAt = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			publishedAt = *item.UpdatedParsed
		}

		articles = append(articles, &newsclip.Article{
			URL:          link,
			Title:        title,
			Summary:      summary,
			SourceName:   source.Name,
			QualityScore: source.TrustWeight,
			PublishedAt:  publishedAt,
			FetchedAt:    now,
		})
	}

	return newsclip.DedupeArticles(articles), nil
}

// resolveLink resolves an item link against the feed URL and returns
// the absolute form, or "" when the link is empty or unusable.
func resolveLink(base *url.URL, link string) string {
	link = strings.TrimSpace(link)
	if link == "" {
		return ""
	}
	ref, err := url.Parse(link)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	if !resolved.IsAbs() || resolved.Host == "" {
		return ""
	}
	return resolved.String()
}

// stripTags reduces feed description markup to plain text.
func stripTags(s string) string {
	if !strings.Contains(s, "<") {
		return strings.Join(strings.Fields(s), " ")
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.Join(strings.Fields(s), " ")
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}
