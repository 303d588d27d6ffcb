package trendwatch

import "context"

// Fetcher retrieves raw HTML from URLs.
// Implementations make a single attempt per call; retry is a caller concern.
type Fetcher interface {
	// Fetch performs an HTTP GET and returns the response body.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any underlying resources.
	Close() error
}
