package mock

import (
	"context"

	"github.com/ajablonski/newsclip"
)

var _ newsclip.ArticleService = (*ArticleService)(nil)

// ArticleService is a mock implementation of newsclip.ArticleService.
type ArticleService struct {
	CreateArticleFn    func(ctx context.Context, article *newsclip.Article) error
	FindArticleByURLFn func(ctx context.Context, url string) (*newsclip.Article, error)
	FindArticlesFn     func(ctx context.Context, filter newsclip.ArticleFilter) ([]*newsclip.Article, error)
	DeleteArticlesFn   func(ctx context.Context, filter newsclip.ArticleFilter) (int, error)
}

func (s *ArticleService) CreateArticle(ctx context.Context, article *newsclip.Article) error {
	return s.CreateArticleFn(ctx, article)
}

func (s *ArticleService) FindArticleByURL(ctx context.Context, url string) (*newsclip.Article, error) {
	return s.FindArticleByURLFn(ctx, url)
}

func (s *ArticleService) FindArticles(ctx context.Context, filter newsclip.ArticleFilter) ([]*newsclip.Article, error) {
	return s.FindArticlesFn(ctx, filter)
}

func (s *ArticleService) DeleteArticles(ctx context.Context, filter newsclip.ArticleFilter) (int, error) {
	return s.DeleteArticlesFn(ctx, filter)
}
