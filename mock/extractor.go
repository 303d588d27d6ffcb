package mock

import "github.com/fwojciec/trendwatch"

var _ trendwatch.ArticleExtractor = (*ArticleExtractor)(nil)

// ArticleExtractor is a mock implementation of trendwatch.ArticleExtractor.
type ArticleExtractor struct {
	ExtractFn func(html string, baseURL string) ([]*trendwatch.Article, error)
}

func (e *ArticleExtractor) Extract(html string, baseURL string) ([]*trendwatch.Article, error) {
	return e.ExtractFn(html, baseURL)
}
