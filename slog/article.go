package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/ajablonski/newsclip"
)

// Ensure LoggingArticleService implements newsclip.ArticleService.
var _ newsclip.ArticleService = (*LoggingArticleService)(nil)

// LoggingArticleService wraps an ArticleService with operation logging.
type LoggingArticleService struct {
	next   newsclip.ArticleService
	logger *slog.Logger
}

// NewLoggingArticleService creates a new LoggingArticleService.
func NewLoggingArticleService(next newsclip.ArticleService, logger *slog.Logger) *LoggingArticleService {
	return &LoggingArticleService{next: next, logger: logger}
}

// CreateArticle delegates to the wrapped service and logs the operation.
func (s *LoggingArticleService) CreateArticle(ctx context.Context, article *newsclip.Article) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create article",
			"url", article.URL,
			"source", article.SourceName,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateArticle(ctx, article)
}

// FindArticleByURL delegates to the wrapped service and logs the operation.
func (s *LoggingArticleService) FindArticleByURL(ctx context.Context, url string) (article *newsclip.Article, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find article by url",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindArticleByURL(ctx, url)
}

// FindArticles delegates to the wrapped service and logs the operation.
func (s *LoggingArticleService) FindArticles(ctx context.Context, filter newsclip.ArticleFilter) (articles []*newsclip.Article, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find articles",
			"count", len(articles),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindArticles(ctx, filter)
}

// DeleteArticles delegates to the wrapped service and logs the operation.
func (s *LoggingArticleService) DeleteArticles(ctx context.Context, filter newsclip.ArticleFilter) (n int, err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete articles",
			"count", n,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteArticles(ctx, filter)
}
