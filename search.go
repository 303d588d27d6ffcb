package trendwatch

import "context"

// SearchResult is one web-search hit used to enrich reports and chat.
type SearchResult struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	URL     string `json:"url"`
}

// WebSearcher finds recent web content for a query.
type WebSearcher interface {
	// Search returns up to maxResults hits. An unconfigured searcher
	// returns EUNAVAILABLE; callers treat search as best-effort.
	Search(ctx context.Context, query string, maxResults int) ([]*SearchResult, error)
}
