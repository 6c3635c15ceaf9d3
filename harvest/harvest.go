// Package harvest orchestrates article harvesting: fetching source
// listings, extracting records, enriching them with full content and
// insights, and storing the results.
package harvest

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/ajablonski/newsclip"
	"golang.org/x/sync/errgroup"
)

// DefaultPaceDelay is the pause between source fetches. Sources are
// processed sequentially and paced to avoid hammering any single origin.
const DefaultPaceDelay = 2 * time.Second

// DefaultEnrichConcurrency bounds the enrichment worker pool.
const DefaultEnrichConcurrency = 4

// FeedCollector collects articles from a syndication feed source.
type FeedCollector interface {
	Collect(ctx context.Context, source newsclip.Source, limit int, now time.Time) ([]*newsclip.Article, error)
}

// Harvester coordinates source scanning and article enrichment.
// Fetcher and Extractor are required; everything else is optional and
// enables the corresponding stage when set.
type Harvester struct {
	Fetcher   newsclip.Fetcher
	Extractor newsclip.ArticleExtractor

	// Feeds handles sources with Kind == SourceFeed. Required only if
	// such sources are passed to Run.
	Feeds FeedCollector

	// Enrichment stage collaborators.
	Contents  newsclip.ContentExtractor
	Converter newsclip.Converter
	Images    newsclip.ImageExtractor
	Generator newsclip.Generator
	Limiter   *OriginLimiter

	// Articles, when set, lets HarvestAndStore persist results.
	Articles newsclip.ArticleService

	Logger      *slog.Logger
	Concurrency int
	PaceDelay   time.Duration
	RetryDelays []time.Duration

	// Now allows tests to pin the capture time. Defaults to time.Now.
	Now func() time.Time
}

// Result summarizes a HarvestAndStore run.
type Result struct {
	Harvested  int
	Saved      int
	Duplicates int
	Failed     int
}

// Run harvests up to limit articles from the given sources.
//
// Each source gets a sub-limit of limit divided by the number of
// sources, with a floor of one. Sources are processed sequentially in
// list order with a pacing delay between fetches, so callers control
// which records survive the final truncation by ordering the list
// (see newsclip.SortSourcesByTrust).
//
// A fetch or parse failure for one source is logged and swallowed; the
// run returns whatever the remaining sources produced. Only
// configuration errors (empty source list, non-positive limit, invalid
// source) abort the run, and those are reported as EINVALID before any
// fetch is attempted.
func (h *Harvester) Run(ctx context.Context, sources []newsclip.Source, limit int) ([]*newsclip.Article, error) {
	if len(sources) == 0 {
		return nil, newsclip.Errorf(newsclip.EINVALID, "at least one source required")
	}
	if limit <= 0 {
		return nil, newsclip.Errorf(newsclip.EINVALID, "limit must be positive, got %d", limit)
	}
	for _, source := range sources {
		if err := source.Validate(); err != nil {
			return nil, err
		}
	}

	subLimit := limit / len(sources)
	if subLimit < 1 {
		subLimit = 1
	}

	now := h.now()
	var merged []*newsclip.Article

	for i, source := range sources {
		if i > 0 {
			if err := h.pace(ctx); err != nil {
				// Canceled mid-run: return what we have.
				break
			}
		}

		articles, err := h.harvestSource(ctx, source, subLimit, now)
		if err != nil {
			h.logger().Warn("source failed", "source", source.Name, "url", source.URL, "error", err)
			continue
		}

		h.logger().Info("source harvested", "source", source.Name, "articles", len(articles))
		merged = append(merged, articles...)
	}

	merged = newsclip.DedupeArticles(merged)
	if len(merged) > limit {
		merged = merged[:limit]
	}
	return merged, nil
}

// harvestSource produces up to subLimit articles from one source.
func (h *Harvester) harvestSource(ctx context.Context, source newsclip.Source, subLimit int, now time.Time) ([]*newsclip.Article, error) {
	if source.Kind == newsclip.SourceFeed {
		if h.Feeds == nil {
			return nil, newsclip.Errorf(newsclip.EINVALID, "no feed collector configured for source %q", source.Name)
		}
		return h.Feeds.Collect(ctx, source, subLimit, now)
	}

	html, err := h.fetch(ctx, source.URL)
	if err != nil {
		return nil, err
	}

	articles, err := h.Extractor.ExtractArticles(html, source.URL, source, now)
	if err != nil {
		return nil, err
	}
	if len(articles) > subLimit {
		articles = articles[:subLimit]
	}
	return articles, nil
}

// Enrich fetches each article's own page and fills in full content,
// hero image, and generated insights. Articles are processed by a
// bounded worker pool with per-origin rate limiting.
//
// Enrichment is best-effort: a failure at any step leaves the article
// as harvested and moves on. Every input article appears in the output,
// enriched or not. Articles without insights get FallbackInsight.
func (h *Harvester) Enrich(ctx context.Context, articles []*newsclip.Article) {
	concurrency := h.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultEnrichConcurrency
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, article := range articles {
		article := article
		g.Go(func() error {
			h.enrichArticle(gctx, article)
			return nil
		})
	}
	_ = g.Wait()
}

// enrichArticle fills one article in place.
func (h *Harvester) enrichArticle(ctx context.Context, article *newsclip.Article) {
	defer func() {
		if article.WhyItMatters == "" {
			insight := newsclip.FallbackInsight(article.Title)
			article.WhyItMatters = insight.WhyItMatters
			article.Takeaways = insight.Takeaways
		}
	}()

	if h.Contents == nil || h.Converter == nil {
		return
	}

	if h.Limiter != nil {
		if err := h.Limiter.WaitURL(ctx, article.URL); err != nil {
			return
		}
	}

	html, err := h.fetch(ctx, article.URL)
	if err != nil {
		h.logger().Warn("enrich fetch failed", "url", article.URL, "error", err)
		return
	}

	extracted, err := h.Contents.Extract(html)
	if err == nil && extracted.ContentHTML != "" {
		if markdown, err := h.Converter.Convert(extracted.ContentHTML); err == nil {
			article.Content = markdown
			if article.Summary == "" {
				article.Summary = summarize(markdown)
			}
		}
	}

	if h.Images != nil && article.ImageURL == "" {
		if imageURL, err := h.Images.ExtractImage(html, article.URL); err == nil {
			article.ImageURL = imageURL
		}
	}

	if h.Generator != nil {
		insight, err := h.Generator.Generate(ctx, article.Title, article.Content, article.Summary)
		if err != nil {
			h.logger().Warn("insight generation failed", "url", article.URL, "error", err)
			return
		}
		article.WhyItMatters = insight.WhyItMatters
		article.Takeaways = insight.Takeaways
	}
}

// HarvestAndStore runs a full harvest, enriches the results, and
// persists them. Duplicate URLs already in the store are counted, not
// treated as failures.
func (h *Harvester) HarvestAndStore(ctx context.Context, sources []newsclip.Source, limit int) (*Result, error) {
	articles, err := h.Run(ctx, sources, limit)
	if err != nil {
		return nil, err
	}

	h.Enrich(ctx, articles)

	result := &Result{Harvested: len(articles)}
	if h.Articles == nil {
		return result, nil
	}

	for _, article := range articles {
		err := h.Articles.CreateArticle(ctx, article)
		switch newsclip.ErrorCode(err) {
		case "":
			result.Saved++
		case newsclip.ECONFLICT:
			result.Duplicates++
		default:
			result.Failed++
			h.logger().Warn("store failed", "url", article.URL, "error", err)
		}
	}

	return result, nil
}

// fetch retrieves a URL with retry.
func (h *Harvester) fetch(ctx context.Context, url string) (string, error) {
	delays := h.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	return FetchWithRetryDelays(ctx, url, h.Fetcher.Fetch, h.Logger, delays)
}

// pace sleeps the configured delay between source fetches.
func (h *Harvester) pace(ctx context.Context) error {
	delay := h.PaceDelay
	if delay == 0 {
		delay = DefaultPaceDelay
	}
	if delay < 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(delay):
		return nil
	}
}

// summarize derives a summary from extracted content, collapsing
// whitespace and truncating to the stored summary limit.
func summarize(content string) string {
	summary := strings.Join(strings.Fields(content), " ")
	if runes := []rune(summary); len(runes) > newsclip.MaxSummaryLength {
		summary = string(runes[:newsclip.MaxSummaryLength])
	}
	return summary
}

func (h *Harvester) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now().UTC()
}

func (h *Harvester) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return slog.New(slog.DiscardHandler)
}
