package mock

import (
	"context"

	"github.com/fwojciec/trendwatch"
)

var _ trendwatch.ArticleStore = (*ArticleStore)(nil)

// ArticleStore is a mock implementation of trendwatch.ArticleStore.
type ArticleStore struct {
	SaveArticlesFn func(ctx context.Context, articles []*trendwatch.Article) (string, error)
	LoadArticlesFn func(ctx context.Context) ([]*trendwatch.Article, error)
}

func (s *ArticleStore) SaveArticles(ctx context.Context, articles []*trendwatch.Article) (string, error) {
	return s.SaveArticlesFn(ctx, articles)
}

func (s *ArticleStore) LoadArticles(ctx context.Context) ([]*trendwatch.Article, error) {
	return s.LoadArticlesFn(ctx)
}
