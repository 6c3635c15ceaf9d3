package feed_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/ajablonski/newsclip"
	"github.com/ajablonski/newsclip/feed"
	"github.com/ajablonski/newsclip/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var feedSource = newsclip.Source{
	URL:         "https://example.com/rss.xml",
	Name:        "Example Wire",
	TrustWeight: 70,
	Kind:        newsclip.SourceFeed,
}

func fetcherReturning(body string) *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (string, error) {
			return body, nil
		},
	}
}

func TestCollector_Collect(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("parses items into articles", func(t *testing.T) {
		t.Parallel()

		body := `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel>
<title>Example Wire</title>
<item>
<title>Satellite Launch Succeeds on Third Attempt</title>
<link>https://example.com/satellite-launch</link>
<description>The launch vehicle reached orbit after two scrubbed attempts.</description>
<pubDate>Tue, 10 Mar 2026 08:30:00 +0000</pubDate>
</item>
<item>
<title>Battery Prices Fall to Record Low</title>
<link>https://example.com/battery-prices</link>
<description>Pack prices dropped below the symbolic threshold this quarter.</description>
</item>
</channel></rss>`

		collector := feed.NewCollector(fetcherReturning(body))
		articles, err := collector.Collect(context.Background(), feedSource, 10, now)

		require.NoError(t, err)
		require.Len(t, articles, 2)

		assert.Equal(t, "Satellite Launch Succeeds on Third Attempt", articles[0].Title)
		assert.Equal(t, "https://example.com/satellite-launch", articles[0].URL)
		assert.Equal(t, "The launch vehicle reached orbit after two scrubbed attempts.", articles[0].Summary)
		assert.Equal(t, "Example Wire", articles[0].SourceName)
		assert.Equal(t, 70, articles[0].QualityScore)
		assert.Equal(t, time.Date(2026, 3, 10, 8, 30, 0, 0, time.UTC), articles[0].PublishedAt.UTC())

		// No pubDate falls back to collection time.
		assert.Equal(t, now, articles[1].PublishedAt)
		assert.Equal(t, now, articles[1].FetchedAt)
	})

	t.Run("skips items with short titles", func(t *testing.T) {
		t.Parallel()

		body := `<?xml version="1.0"?>
<rss version="2.0"><channel><title>Wire</title>
<item><title>Short</title><link>https://example.com/a</link></item>
<item><title>A Headline Long Enough to Keep</title><link>https://example.com/b</link></item>
</channel></rss>`

		collector := feed.NewCollector(fetcherReturning(body))
		articles, err := collector.Collect(context.Background(), feedSource, 10, now)

		require.NoError(t, err)
		require.Len(t, articles, 1)
		assert.Equal(t, "https://example.com/b", articles[0].URL)
	})

	t.Run("skips items without links", func(t *testing.T) {
		t.Parallel()

		body := `<?xml version="1.0"?>
<rss version="2.0"><channel><title>Wire</title>
<item><title>A Headline Without Any Link at All</title></item>
</channel></rss>`

		collector := feed.NewCollector(fetcherReturning(body))
		articles, err := collector.Collect(context.Background(), feedSource, 10, now)

		require.NoError(t, err)
		assert.Empty(t, articles)
	})

	t.Run("resolves relative links against the feed URL", func(t *testing.T) {
		t.Parallel()

		body := `<?xml version="1.0"?>
<rss version="2.0"><channel><title>Wire</title>
<item><title>A Story Linked by Relative Path Only</title><link>/stories/1</link></item>
<item><title>A Story With a Scheme-Relative Link</title><link>//example.com/stories/2</link></item>
</channel></rss>`

		collector := feed.NewCollector(fetcherReturning(body))
		articles, err := collector.Collect(context.Background(), feedSource, 10, now)

		require.NoError(t, err)
		require.Len(t, articles, 2)
		assert.Equal(t, "https://example.com/stories/1", articles[0].URL)
		assert.Equal(t, "https://example.com/stories/2", articles[1].URL)
		for _, a := range articles {
			require.NoError(t, a.Validate())
		}
	})

	t.Run("caps items at limit", func(t *testing.T) {
		t.Parallel()

		var items strings.Builder
		for i := 0; i < 30; i++ {
			items.WriteString(`<item><title>Numbered Headline for the Feed Cap Test</title>`)
			items.WriteString(`<link>https://example.com/item-`)
			items.WriteString(strings.Repeat("x", i+1))
			items.WriteString(`</link></item>`)
		}
		body := `<?xml version="1.0"?><rss version="2.0"><channel><title>Wire</title>` +
			items.String() + `</channel></rss>`

		collector := feed.NewCollector(fetcherReturning(body))
		articles, err := collector.Collect(context.Background(), feedSource, 5, now)

		require.NoError(t, err)
		assert.Len(t, articles, 5)
	})

	t.Run("strips markup from descriptions", func(t *testing.T) {
		t.Parallel()

		body := `<?xml version="1.0"?>
<rss version="2.0"><channel><title>Wire</title>
<item>
<title>Grid Operator Reports Stable Demand</title>
<link>https://example.com/grid</link>
<description>&lt;p&gt;Demand held &lt;b&gt;steady&lt;/b&gt; through the
heat wave.&lt;/p&gt;</description>
</item>
</channel></rss>`

		collector := feed.NewCollector(fetcherReturning(body))
		articles, err := collector.Collect(context.Background(), feedSource, 10, now)

		require.NoError(t, err)
		require.Len(t, articles, 1)
		assert.Equal(t, "Demand held steady through the heat wave.", articles[0].Summary)
	})

	t.Run("truncates long descriptions", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("a", 600)
		body := `<?xml version="1.0"?>
<rss version="2.0"><channel><title>Wire</title>
<item>
<title>An Item With a Very Long Description</title>
<link>https://example.com/long</link>
<description>` + long + `</description>
</item>
</channel></rss>`

		collector := feed.NewCollector(fetcherReturning(body))
		articles, err := collector.Collect(context.Background(), feedSource, 10, now)

		require.NoError(t, err)
		require.Len(t, articles, 1)
		assert.Len(t, articles[0].Summary, newsclip.MaxSummaryLength)
	})

	t.Run("deduplicates repeated links", func(t *testing.T) {
		t.Parallel()

		body := `<?xml version="1.0"?>
<rss version="2.0"><channel><title>Wire</title>
<item><title>The Same Story Published Twice Over</title><link>https://example.com/dup</link></item>
<item><title>The Same Story Published Twice Over</title><link>https://example.com/dup</link></item>
</channel></rss>`

		collector := feed.NewCollector(fetcherReturning(body))
		articles, err := collector.Collect(context.Background(), feedSource, 10, now)

		require.NoError(t, err)
		assert.Len(t, articles, 1)
	})

	t.Run("returns EINVALID for malformed feed", func(t *testing.T) {
		t.Parallel()

		collector := feed.NewCollector(fetcherReturning("this is not xml"))
		_, err := collector.Collect(context.Background(), feedSource, 10, now)

		require.Error(t, err)
		assert.Equal(t, newsclip.EINVALID, newsclip.ErrorCode(err))
	})

	t.Run("propagates fetch errors", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", newsclip.Errorf(newsclip.EUNAVAILABLE, "fetch %s: status 503", url)
			},
		}

		collector := feed.NewCollector(fetcher)
		_, err := collector.Collect(context.Background(), feedSource, 10, now)

		require.Error(t, err)
		assert.Equal(t, newsclip.EUNAVAILABLE, newsclip.ErrorCode(err))
	})
}
