// Package scrape provides newsletter scraping orchestration.
// It coordinates fetching the homepage, extracting article listings,
// and persisting the results.
package scrape

import (
	"context"
	"fmt"

	"github.com/fwojciec/trendwatch"
)

// Compile-time interface verification.
var _ trendwatch.Scraper = (*Scraper)(nil)

// Scraper fetches a newsletter homepage and extracts its article listings.
type Scraper struct {
	// URL is the newsletter homepage to scrape.
	URL string

	Fetcher   trendwatch.Fetcher
	Extractor trendwatch.ArticleExtractor
	Articles  trendwatch.ArticleStore
}

// Scrape downloads the homepage, extracts articles, and saves them to the
// store. The fetch is a single attempt, so a flaky network surfaces as an
// error rather than a stale result. An empty extraction result is returned
// as-is without touching the store, so a bad scrape never clobbers
// previously saved articles.
func (s *Scraper) Scrape(ctx context.Context) ([]*trendwatch.Article, error) {
	html, err := s.Fetcher.Fetch(ctx, s.URL)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", s.URL, err)
	}

	articles, err := s.Extractor.Extract(html, s.URL)
	if err != nil {
		return nil, err
	}

	if len(articles) == 0 {
		return articles, nil
	}

	if _, err := s.Articles.SaveArticles(ctx, articles); err != nil {
		return nil, fmt.Errorf("save articles: %w", err)
	}

	return articles, nil
}
