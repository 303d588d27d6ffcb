package http_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/trendwatch"
)

func TestServer_Videos(t *testing.T) {
	t.Parallel()

	t.Run("searches with the assistant's keywords", func(t *testing.T) {
		t.Parallel()

		ts := newTestServer(t)
		ts.assistant.VideoKeywordsFn = func(ctx context.Context, profile *trendwatch.Profile) (string, error) {
			return "AI agents, LLM evaluation", nil
		}
		ts.videos.SearchFn = func(ctx context.Context, keywords string, maxResults int) ([]*trendwatch.Video, error) {
			assert.Equal(t, "AI agents, LLM evaluation", keywords)
			assert.Equal(t, 8, maxResults)
			return []*trendwatch.Video{
				{ID: "abc123", Title: "Agents in production", Channel: "AI Weekly", URL: "https://www.youtube.com/watch?v=abc123"},
			}, nil
		}

		status, body := doJSON(t, ts, authed(request(t, http.MethodPost, "/get-youtube-videos", nil)))

		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "AI agents, LLM evaluation", body["keywords"])

		videos := body["videos"].([]any)
		require.Len(t, videos, 1)
		first := videos[0].(map[string]any)
		assert.Equal(t, "abc123", first["video_id"])
		assert.Equal(t, "Agents in production", first["title"])
	})

	t.Run("falls back to profile tags when keyword generation fails", func(t *testing.T) {
		t.Parallel()

		ts := newTestServer(t)
		ts.assistant.VideoKeywordsFn = func(ctx context.Context, profile *trendwatch.Profile) (string, error) {
			return "", trendwatch.Errorf(trendwatch.EUNAVAILABLE, "model overloaded")
		}
		var gotKeywords string
		ts.videos.SearchFn = func(ctx context.Context, keywords string, maxResults int) ([]*trendwatch.Video, error) {
			gotKeywords = keywords
			return nil, nil
		}

		status, body := doJSON(t, ts, authed(request(t, http.MethodPost, "/get-youtube-videos", nil)))

		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "llms, agents", gotKeywords)
		assert.Equal(t, "llms, agents", body["keywords"])
	})

	t.Run("falls back to a generic query when the profile has no tags", func(t *testing.T) {
		t.Parallel()

		ts := newTestServer(t)
		ts.users.ProfileFn = func(ctx context.Context, username string) (*trendwatch.Profile, error) {
			return &trendwatch.Profile{Name: "Demo User", Email: "demo@example.com"}, nil
		}
		ts.assistant.VideoKeywordsFn = func(ctx context.Context, profile *trendwatch.Profile) (string, error) {
			return "", trendwatch.Errorf(trendwatch.EUNAVAILABLE, "model overloaded")
		}
		var gotKeywords string
		ts.videos.SearchFn = func(ctx context.Context, keywords string, maxResults int) ([]*trendwatch.Video, error) {
			gotKeywords = keywords
			return nil, nil
		}

		status, _ := doJSON(t, ts, authed(request(t, http.MethodPost, "/get-youtube-videos", nil)))

		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "artificial intelligence trends", gotKeywords)
	})

	t.Run("reports search failures", func(t *testing.T) {
		t.Parallel()

		ts := newTestServer(t)
		ts.assistant.VideoKeywordsFn = func(ctx context.Context, profile *trendwatch.Profile) (string, error) {
			return "AI agents", nil
		}
		ts.videos.SearchFn = func(ctx context.Context, keywords string, maxResults int) ([]*trendwatch.Video, error) {
			return nil, trendwatch.Errorf(trendwatch.EUNAVAILABLE, "video search is not configured")
		}

		status, body := doJSON(t, ts, authed(request(t, http.MethodPost, "/get-youtube-videos", nil)))

		assert.Equal(t, http.StatusServiceUnavailable, status)
		assert.Equal(t, "video search is not configured", body["error"])
	})
}
