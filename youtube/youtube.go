// Package youtube implements video search using the YouTube Data API.
package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/fwojciec/trendwatch"
	"github.com/go-resty/resty/v2"
)

const (
	defaultBaseURL = "https://www.googleapis.com/youtube/v3"
	defaultTimeout = 10 * time.Second

	// DefaultMaxResults is used when the caller does not say how many
	// videos it wants.
	DefaultMaxResults = 8

	// maxDescriptionChars caps video descriptions for dashboard display.
	maxDescriptionChars = 200
)

// Compile-time interface verification.
var _ trendwatch.VideoFinder = (*Client)(nil)

// Client implements trendwatch.VideoFinder using the YouTube Data API.
// A client with an empty API key is valid but reports EUNAVAILABLE on
// every search.
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

type searchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title        string `json:"title"`
			Description  string `json:"description"`
			ChannelTitle string `json:"channelTitle"`
			PublishedAt  string `json:"publishedAt"`
			Thumbnails   struct {
				High struct {
					URL string `json:"url"`
				} `json:"high"`
			} `json:"thumbnails"`
		} `json:"snippet"`
	} `json:"items"`
}

// Search returns up to maxResults medium-length videos matching the
// keywords, ordered by relevance.
func (c *Client) Search(ctx context.Context, keywords string, maxResults int) ([]*trendwatch.Video, error) {
	if c.apiKey == "" {
		return nil, trendwatch.Errorf(trendwatch.EUNAVAILABLE, "video search is not configured")
	}
	if keywords == "" {
		return nil, trendwatch.Errorf(trendwatch.EINVALID, "search keywords required")
	}
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"part":              "snippet",
			"q":                 keywords,
			"type":              "video",
			"maxResults":        strconv.Itoa(maxResults),
			"order":             "relevance",
			"relevanceLanguage": "en",
			"videoDuration":     "medium",
			"key":               c.apiKey,
		}).
		Get("/search")
	if err != nil {
		return nil, err
	}
	if res.IsError() {
		return nil, fmt.Errorf("youtube: HTTP %d: %s", res.StatusCode(), res.String())
	}

	var body searchResponse
	if err := json.Unmarshal(res.Body(), &body); err != nil {
		return nil, fmt.Errorf("youtube: decode response: %w", err)
	}

	videos := make([]*trendwatch.Video, 0, len(body.Items))
	for _, item := range body.Items {
		description := item.Snippet.Description
		if len([]rune(description)) > maxDescriptionChars {
			description = trendwatch.Truncate(description, maxDescriptionChars) + "..."
		}

		videos = append(videos, &trendwatch.Video{
			ID:          item.ID.VideoID,
			Title:       item.Snippet.Title,
			Description: description,
			Thumbnail:   item.Snippet.Thumbnails.High.URL,
			Channel:     item.Snippet.ChannelTitle,
			PublishedAt: item.Snippet.PublishedAt,
			URL:         "https://www.youtube.com/watch?v=" + item.ID.VideoID,
		})
	}
	return videos, nil
}
