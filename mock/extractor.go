package mock

import (
	"time"

	"github.com/ajablonski/newsclip"
)

var _ newsclip.ArticleExtractor = (*ArticleExtractor)(nil)

// ArticleExtractor is a mock implementation of newsclip.ArticleExtractor.
type ArticleExtractor struct {
	ExtractArticlesFn func(html, baseURL string, source newsclip.Source, now time.Time) ([]*newsclip.Article, error)
}

func (e *ArticleExtractor) ExtractArticles(html, baseURL string, source newsclip.Source, now time.Time) ([]*newsclip.Article, error) {
	return e.ExtractArticlesFn(html, baseURL, source, now)
}

var _ newsclip.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of newsclip.ContentExtractor.
type ContentExtractor struct {
	ExtractFn func(html string) (*newsclip.ExtractResult, error)
}

func (e *ContentExtractor) Extract(html string) (*newsclip.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ newsclip.ImageExtractor = (*ImageExtractor)(nil)

// ImageExtractor is a mock implementation of newsclip.ImageExtractor.
type ImageExtractor struct {
	ExtractImageFn func(html, baseURL string) (string, error)
}

func (e *ImageExtractor) ExtractImage(html, baseURL string) (string, error) {
	return e.ExtractImageFn(html, baseURL)
}
