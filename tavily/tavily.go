// Package tavily implements web search using the Tavily API.
package tavily

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fwojciec/trendwatch"
	"github.com/go-resty/resty/v2"
)

const (
	defaultBaseURL = "https://api.tavily.com"
	defaultTimeout = 30 * time.Second

	// DefaultMaxResults is used when the caller does not say how many
	// results it wants.
	DefaultMaxResults = 5
)

// Compile-time interface verification.
var _ trendwatch.WebSearcher = (*Client)(nil)

// Client implements trendwatch.WebSearcher using the Tavily search API.
// A client with an empty API key is valid but reports EUNAVAILABLE on
// every search, so callers can treat search as best-effort.
type Client struct {
	apiKey string
	http   *resty.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint. Used in tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.http.SetBaseURL(baseURL)
	}
}

// WithTimeout sets the HTTP timeout for search requests.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.http.SetTimeout(timeout)
	}
}

// NewClient creates a new Client with the given API key.
func NewClient(apiKey string, opts ...Option) *Client {
	http := resty.New()
	http.SetBaseURL(defaultBaseURL)
	http.SetTimeout(defaultTimeout)

	c := &Client{apiKey: apiKey, http: http}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type searchRequest struct {
	APIKey      string `json:"api_key"`
	Query       string `json:"query"`
	MaxResults  int    `json:"max_results"`
	SearchDepth string `json:"search_depth"`
}

type searchResponse struct {
	Results []struct {
		Title   string `json:"title"`
		Content string `json:"content"`
		URL     string `json:"url"`
	} `json:"results"`
}

// Search returns up to maxResults recent web hits for the query.
func (c *Client) Search(ctx context.Context, query string, maxResults int) ([]*trendwatch.SearchResult, error) {
	if c.apiKey == "" {
		return nil, trendwatch.Errorf(trendwatch.EUNAVAILABLE, "web search is not configured")
	}
	if query == "" {
		return nil, trendwatch.Errorf(trendwatch.EINVALID, "search query required")
	}
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	res, err := c.http.R().
		SetContext(ctx).
		SetHeader("content-type", "application/json").
		SetBody(searchRequest{
			APIKey:      c.apiKey,
			Query:       query,
			MaxResults:  maxResults,
			SearchDepth: "basic",
		}).
		Post("/search")
	if err != nil {
		return nil, err
	}
	if res.IsError() {
		return nil, fmt.Errorf("tavily: HTTP %d: %s", res.StatusCode(), res.String())
	}

	var body searchResponse
	if err := json.Unmarshal(res.Body(), &body); err != nil {
		return nil, fmt.Errorf("tavily: decode response: %w", err)
	}

	results := make([]*trendwatch.SearchResult, 0, len(body.Results))
	for _, r := range body.Results {
		result := &trendwatch.SearchResult{Title: r.Title, Content: r.Content, URL: r.URL}
		if result.Title == "" {
			result.Title = "No title"
		}
		if result.Content == "" {
			result.Content = "No content"
		}
		if result.URL == "" {
			result.URL = "No URL"
		}
		results = append(results, result)
	}
	return results, nil
}
