package youtube_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fwojciec/trendwatch"
	"github.com/fwojciec/trendwatch/youtube"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Search(t *testing.T) {
	t.Parallel()

	t.Run("sends search parameters and maps videos", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/search", r.URL.Path)

			q := r.URL.Query()
			assert.Equal(t, "snippet", q.Get("part"))
			assert.Equal(t, "machine learning tutorials", q.Get("q"))
			assert.Equal(t, "video", q.Get("type"))
			assert.Equal(t, "2", q.Get("maxResults"))
			assert.Equal(t, "relevance", q.Get("order"))
			assert.Equal(t, "en", q.Get("relevanceLanguage"))
			assert.Equal(t, "medium", q.Get("videoDuration"))
			assert.Equal(t, "api-key", q.Get("key"))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"items": [{
				"id": {"videoId": "abc123"},
				"snippet": {
					"title": "Intro to Agents",
					"description": "A walkthrough.",
					"channelTitle": "AI Channel",
					"publishedAt": "2025-06-01T12:00:00Z",
					"thumbnails": {"high": {"url": "https://img.example.com/abc123.jpg"}}
				}
			}]}`))
		}))
		defer server.Close()

		client := youtube.NewClient("api-key", youtube.WithBaseURL(server.URL))

		videos, err := client.Search(context.Background(), "machine learning tutorials", 2)
		require.NoError(t, err)
		require.Len(t, videos, 1)

		assert.Equal(t, "abc123", videos[0].ID)
		assert.Equal(t, "Intro to Agents", videos[0].Title)
		assert.Equal(t, "A walkthrough.", videos[0].Description)
		assert.Equal(t, "https://img.example.com/abc123.jpg", videos[0].Thumbnail)
		assert.Equal(t, "AI Channel", videos[0].Channel)
		assert.Equal(t, "2025-06-01T12:00:00Z", videos[0].PublishedAt)
		assert.Equal(t, "https://www.youtube.com/watch?v=abc123", videos[0].URL)
	})

	t.Run("truncates long descriptions", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("d", 300)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"items": [{
				"id": {"videoId": "x"},
				"snippet": {"title": "T", "description": "` + long + `"}
			}]}`))
		}))
		defer server.Close()

		client := youtube.NewClient("api-key", youtube.WithBaseURL(server.URL))

		videos, err := client.Search(context.Background(), "query", 1)
		require.NoError(t, err)
		require.Len(t, videos, 1)
		assert.Equal(t, strings.Repeat("d", 200)+"...", videos[0].Description)
	})

	t.Run("keeps short descriptions as-is", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"items": [{
				"id": {"videoId": "x"},
				"snippet": {"title": "T", "description": "short"}
			}]}`))
		}))
		defer server.Close()

		client := youtube.NewClient("api-key", youtube.WithBaseURL(server.URL))

		videos, err := client.Search(context.Background(), "query", 1)
		require.NoError(t, err)
		require.Len(t, videos, 1)
		assert.Equal(t, "short", videos[0].Description)
	})

	t.Run("returns EUNAVAILABLE without an API key", func(t *testing.T) {
		t.Parallel()

		client := youtube.NewClient("")

		_, err := client.Search(context.Background(), "query", 5)
		require.Error(t, err)
		assert.Equal(t, trendwatch.EUNAVAILABLE, trendwatch.ErrorCode(err))
	})

	t.Run("rejects empty keywords", func(t *testing.T) {
		t.Parallel()

		client := youtube.NewClient("api-key")

		_, err := client.Search(context.Background(), "", 5)
		require.Error(t, err)
		assert.Equal(t, trendwatch.EINVALID, trendwatch.ErrorCode(err))
	})

	t.Run("surfaces API errors with status code", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "quota exceeded", http.StatusForbidden)
		}))
		defer server.Close()

		client := youtube.NewClient("api-key", youtube.WithBaseURL(server.URL))

		_, err := client.Search(context.Background(), "query", 5)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "403")
	})
}
