package mock

import (
	"context"

	"github.com/fwojciec/trendwatch"
)

var _ trendwatch.VideoFinder = (*VideoFinder)(nil)

// VideoFinder is a mock implementation of trendwatch.VideoFinder.
type VideoFinder struct {
	SearchFn func(ctx context.Context, keywords string, maxResults int) ([]*trendwatch.Video, error)
}

func (f *VideoFinder) Search(ctx context.Context, keywords string, maxResults int) ([]*trendwatch.Video, error) {
	return f.SearchFn(ctx, keywords, maxResults)
}
