package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/ajablonski/newsclip"
	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ newsclip.ArticleService = (*ArticleService)(nil)

// ArticleService implements newsclip.ArticleService using SQLite.
type ArticleService struct {
	db *DB
}

// NewArticleService creates a new ArticleService.
func NewArticleService(db *DB) *ArticleService {
	return &ArticleService{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// CreateArticle stores a new article. Articles are identified by URL:
// inserting a URL that already exists returns ECONFLICT and leaves the
// stored row untouched.
func (s *ArticleService) CreateArticle(ctx context.Context, article *newsclip.Article) error {
	if err := article.Validate(); err != nil {
		return err
	}

	article.ID = uuid.New().String()
	if article.FetchedAt.IsZero() {
		article.FetchedAt = time.Now().UTC()
	}
	if article.PublishedAt.IsZero() {
		article.PublishedAt = article.FetchedAt
	}
	if article.Content != "" {
		article.ContentHash = hashContent(article.Content)
	}

	takeaways, err := json.Marshal(article.Takeaways)
	if err != nil {
		return fmt.Errorf("failed to encode takeaways: %w", err)
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO articles (id, url, title, summary, content, content_hash, source_name,
			quality_score, image_url, why_it_matters, takeaways, published_at, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(url) DO NOTHING
	`, article.ID, article.URL, article.Title, article.Summary, article.Content,
		article.ContentHash, article.SourceName, article.QualityScore, article.ImageURL,
		article.WhyItMatters, string(takeaways),
		article.PublishedAt.Format(time.RFC3339), article.FetchedAt.Format(time.RFC3339))
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return newsclip.Errorf(newsclip.ECONFLICT, "article already exists: %s", article.URL)
	}

	return nil
}

// FindArticleByURL retrieves an article by its URL.
func (s *ArticleService) FindArticleByURL(ctx context.Context, url string) (*newsclip.Article, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, url, title, summary, content, content_hash, source_name,
			quality_score, image_url, why_it_matters, takeaways, published_at, fetched_at
		FROM articles
		WHERE url = ?
	`, url)

	article, err := scanArticle(row.Scan)
	if err == sql.ErrNoRows {
		return nil, newsclip.Errorf(newsclip.ENOTFOUND, "article not found: %s", url)
	}
	if err != nil {
		return nil, err
	}

	return article, nil
}

// FindArticles retrieves articles matching the filter, newest first.
func (s *ArticleService) FindArticles(ctx context.Context, filter newsclip.ArticleFilter) ([]*newsclip.Article, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT id, url, title, summary, content, content_hash, source_name,
		quality_score, image_url, why_it_matters, takeaways, published_at, fetched_at
		FROM articles WHERE 1=1`)

	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}
	if filter.SourceName != nil {
		query.WriteString(" AND source_name = ?")
		args = append(args, *filter.SourceName)
	}

	query.WriteString(" ORDER BY published_at DESC, url ASC")
	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []*newsclip.Article
	for rows.Next() {
		article, err := scanArticle(rows.Scan)
		if err != nil {
			return nil, err
		}
		articles = append(articles, article)
	}

	return articles, rows.Err()
}

// DeleteArticles removes articles matching the filter and reports how
// many were deleted. An empty filter deletes everything.
func (s *ArticleService) DeleteArticles(ctx context.Context, filter newsclip.ArticleFilter) (int, error) {
	var query strings.Builder
	var args []any

	query.WriteString("DELETE FROM articles WHERE 1=1")

	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}
	if filter.SourceName != nil {
		query.WriteString(" AND source_name = ?")
		args = append(args, *filter.SourceName)
	}

	result, err := s.db.ExecContext(ctx, query.String(), args...)
	if err != nil {
		return 0, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	return int(rows), nil
}

// scanArticle reads one article row using the given scan function.
func scanArticle(scan func(dest ...any) error) (*newsclip.Article, error) {
	var article newsclip.Article
	var takeaways, publishedAt, fetchedAt string

	if err := scan(&article.ID, &article.URL, &article.Title, &article.Summary,
		&article.Content, &article.ContentHash, &article.SourceName, &article.QualityScore,
		&article.ImageURL, &article.WhyItMatters, &takeaways, &publishedAt, &fetchedAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(takeaways), &article.Takeaways); err != nil {
		return nil, fmt.Errorf("failed to decode takeaways: %w", err)
	}

	var err error
	if article.PublishedAt, err = parseTimestamp(publishedAt, "published_at"); err != nil {
		return nil, err
	}
	if article.FetchedAt, err = parseTimestamp(fetchedAt, "fetched_at"); err != nil {
		return nil, err
	}

	return &article, nil
}

// parseTimestamp decodes an RFC3339 timestamp column, naming the column
// in the error to make bad rows traceable.
func parseTimestamp(value, column string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", column, err)
	}
	return t, nil
}
