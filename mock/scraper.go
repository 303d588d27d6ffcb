package mock

import (
	"context"

	"github.com/fwojciec/trendwatch"
)

var _ trendwatch.Scraper = (*Scraper)(nil)

// Scraper is a mock implementation of trendwatch.Scraper.
type Scraper struct {
	ScrapeFn func(ctx context.Context) ([]*trendwatch.Article, error)
}

func (s *Scraper) Scrape(ctx context.Context) ([]*trendwatch.Article, error) {
	return s.ScrapeFn(ctx)
}
