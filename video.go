package trendwatch

import "context"

// Video is one recommended video.
type Video struct {
	ID          string `json:"video_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
	Channel     string `json:"channel"`
	PublishedAt string `json:"published_at"`
	URL         string `json:"url"`
}

// VideoFinder searches a video platform for content matching keywords.
type VideoFinder interface {
	// Search returns up to maxResults videos ordered by relevance. An
	// unconfigured finder returns EUNAVAILABLE.
	Search(ctx context.Context, keywords string, maxResults int) ([]*Video, error)
}
