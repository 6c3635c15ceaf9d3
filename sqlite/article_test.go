package sqlite_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/ajablonski/newsclip"
	"github.com/ajablonski/newsclip/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testArticle(url string) *newsclip.Article {
	return &newsclip.Article{
		URL:          url,
		Title:        "Regulators Approve Long Awaited Merger",
		Summary:      "The deal cleared its final hurdle on Friday.",
		SourceName:   "Example Wire",
		QualityScore: 80,
		PublishedAt:  time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC),
	}
}

func TestArticleService_CreateArticle(t *testing.T) {
	t.Parallel()

	t.Run("creates article with generated ID", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewArticleService(db)
		ctx := context.Background()

		article := testArticle("https://example.com/merger")
		article.Content = "# Merger\n\nThe deal cleared its final hurdle."

		err := svc.CreateArticle(ctx, article)
		require.NoError(t, err)

		assert.NotEmpty(t, article.ID, "ID should be generated")
		assert.NotEmpty(t, article.ContentHash, "ContentHash should be generated")
		assert.False(t, article.FetchedAt.IsZero(), "FetchedAt should be set")
	})

	t.Run("returns ECONFLICT for duplicate URL", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewArticleService(db)
		ctx := context.Background()

		require.NoError(t, svc.CreateArticle(ctx, testArticle("https://example.com/merger")))

		dup := testArticle("https://example.com/merger")
		dup.Title = "A Different Headline for the Same Story"
		err := svc.CreateArticle(ctx, dup)

		require.Error(t, err)
		assert.Equal(t, newsclip.ECONFLICT, newsclip.ErrorCode(err))

		// The stored row is untouched.
		stored, err := svc.FindArticleByURL(ctx, "https://example.com/merger")
		require.NoError(t, err)
		assert.Equal(t, "Regulators Approve Long Awaited Merger", stored.Title)
	})

	t.Run("returns EINVALID for invalid article", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewArticleService(db)

		err := svc.CreateArticle(context.Background(), &newsclip.Article{})
		require.Error(t, err)
		assert.Equal(t, newsclip.EINVALID, newsclip.ErrorCode(err))
	})

	t.Run("round-trips insight fields", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewArticleService(db)
		ctx := context.Background()

		article := testArticle("https://example.com/merger")
		article.ImageURL = "https://images.example.com/merger.jpg"
		article.WhyItMatters = "Consolidation reshapes pricing for the whole sector."
		article.Takeaways = []string{"Deal approved", "Integration starts next quarter", "Rivals expected to respond"}

		require.NoError(t, svc.CreateArticle(ctx, article))

		stored, err := svc.FindArticleByURL(ctx, article.URL)
		require.NoError(t, err)
		assert.Equal(t, article.ImageURL, stored.ImageURL)
		assert.Equal(t, article.WhyItMatters, stored.WhyItMatters)
		assert.Equal(t, article.Takeaways, stored.Takeaways)
		assert.Equal(t, article.PublishedAt, stored.PublishedAt.UTC())
	})
}

func TestArticleService_FindArticleByURL(t *testing.T) {
	t.Parallel()

	t.Run("returns ENOTFOUND for missing URL", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewArticleService(db)

		_, err := svc.FindArticleByURL(context.Background(), "https://example.com/nope")
		require.Error(t, err)
		assert.Equal(t, newsclip.ENOTFOUND, newsclip.ErrorCode(err))
	})
}

func TestArticleService_FindArticles(t *testing.T) {
	t.Parallel()

	seed := func(t *testing.T, svc *sqlite.ArticleService, n int, sourceName string) {
		t.Helper()
		for i := 0; i < n; i++ {
			article := testArticle(fmt.Sprintf("https://example.com/%s/%d", sourceName, i))
			article.SourceName = sourceName
			article.PublishedAt = time.Date(2026, 3, 1+i, 0, 0, 0, 0, time.UTC)
			require.NoError(t, svc.CreateArticle(context.Background(), article))
		}
	}

	t.Run("filters by source name", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewArticleService(db)
		seed(t, svc, 3, "wire-a")
		seed(t, svc, 2, "wire-b")

		sourceName := "wire-a"
		articles, err := svc.FindArticles(context.Background(), newsclip.ArticleFilter{SourceName: &sourceName})
		require.NoError(t, err)
		assert.Len(t, articles, 3)
		for _, a := range articles {
			assert.Equal(t, "wire-a", a.SourceName)
		}
	})

	t.Run("orders newest first", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewArticleService(db)
		seed(t, svc, 3, "wire-a")

		articles, err := svc.FindArticles(context.Background(), newsclip.ArticleFilter{})
		require.NoError(t, err)
		require.Len(t, articles, 3)
		assert.True(t, articles[0].PublishedAt.After(articles[1].PublishedAt))
		assert.True(t, articles[1].PublishedAt.After(articles[2].PublishedAt))
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewArticleService(db)
		seed(t, svc, 5, "wire-a")

		articles, err := svc.FindArticles(context.Background(), newsclip.ArticleFilter{Limit: 2, Offset: 1})
		require.NoError(t, err)
		assert.Len(t, articles, 2)
	})

	t.Run("returns empty result for no matches", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewArticleService(db)

		url := "https://example.com/absent"
		articles, err := svc.FindArticles(context.Background(), newsclip.ArticleFilter{URL: &url})
		require.NoError(t, err)
		assert.Empty(t, articles)
	})
}

func TestArticleService_DeleteArticles(t *testing.T) {
	t.Parallel()

	t.Run("deletes by source name and reports count", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewArticleService(db)
		ctx := context.Background()

		for i := 0; i < 3; i++ {
			article := testArticle(fmt.Sprintf("https://example.com/a/%d", i))
			article.SourceName = "wire-a"
			require.NoError(t, svc.CreateArticle(ctx, article))
		}
		keeper := testArticle("https://example.com/b/keep")
		keeper.SourceName = "wire-b"
		require.NoError(t, svc.CreateArticle(ctx, keeper))

		sourceName := "wire-a"
		n, err := svc.DeleteArticles(ctx, newsclip.ArticleFilter{SourceName: &sourceName})
		require.NoError(t, err)
		assert.Equal(t, 3, n)

		remaining, err := svc.FindArticles(ctx, newsclip.ArticleFilter{})
		require.NoError(t, err)
		require.Len(t, remaining, 1)
		assert.Equal(t, "wire-b", remaining[0].SourceName)
	})

	t.Run("empty filter deletes everything", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewArticleService(db)
		ctx := context.Background()

		require.NoError(t, svc.CreateArticle(ctx, testArticle("https://example.com/one")))
		require.NoError(t, svc.CreateArticle(ctx, testArticle("https://example.com/two")))

		n, err := svc.DeleteArticles(ctx, newsclip.ArticleFilter{})
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})
}
