package mock

import (
	"context"

	"github.com/fwojciec/trendwatch"
)

var _ trendwatch.WebSearcher = (*WebSearcher)(nil)

// WebSearcher is a mock implementation of trendwatch.WebSearcher.
type WebSearcher struct {
	SearchFn func(ctx context.Context, query string, maxResults int) ([]*trendwatch.SearchResult, error)
}

func (s *WebSearcher) Search(ctx context.Context, query string, maxResults int) ([]*trendwatch.SearchResult, error) {
	return s.SearchFn(ctx, query, maxResults)
}
