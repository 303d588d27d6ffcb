package tavily_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fwojciec/trendwatch"
	"github.com/fwojciec/trendwatch/tavily"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Search(t *testing.T) {
	t.Parallel()

	t.Run("sends query and returns results", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/search", r.URL.Path)

			var req map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "secret-key", req["api_key"])
			assert.Equal(t, "latest AI trends", req["query"])
			assert.Equal(t, float64(3), req["max_results"])
			assert.Equal(t, "basic", req["search_depth"])

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"results": [
				{"title": "Big Launch", "content": "A lab shipped a model.", "url": "https://web.example.com/launch"},
				{"title": "Chip News", "content": "Faster chips.", "url": "https://web.example.com/chips"}
			]}`))
		}))
		defer server.Close()

		client := tavily.NewClient("secret-key", tavily.WithBaseURL(server.URL))

		results, err := client.Search(context.Background(), "latest AI trends", 3)
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "Big Launch", results[0].Title)
		assert.Equal(t, "A lab shipped a model.", results[0].Content)
		assert.Equal(t, "https://web.example.com/launch", results[0].URL)
		assert.Equal(t, "Chip News", results[1].Title)
	})

	t.Run("returns EUNAVAILABLE without an API key", func(t *testing.T) {
		t.Parallel()

		client := tavily.NewClient("")

		_, err := client.Search(context.Background(), "anything", 5)
		require.Error(t, err)
		assert.Equal(t, trendwatch.EUNAVAILABLE, trendwatch.ErrorCode(err))
	})

	t.Run("rejects empty query", func(t *testing.T) {
		t.Parallel()

		client := tavily.NewClient("secret-key")

		_, err := client.Search(context.Background(), "", 5)
		require.Error(t, err)
		assert.Equal(t, trendwatch.EINVALID, trendwatch.ErrorCode(err))
	})

	t.Run("defaults max results when not positive", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var req map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, float64(tavily.DefaultMaxResults), req["max_results"])

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"results": []}`))
		}))
		defer server.Close()

		client := tavily.NewClient("secret-key", tavily.WithBaseURL(server.URL))

		results, err := client.Search(context.Background(), "query", 0)
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("fills placeholders for missing fields", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"results": [{}]}`))
		}))
		defer server.Close()

		client := tavily.NewClient("secret-key", tavily.WithBaseURL(server.URL))

		results, err := client.Search(context.Background(), "query", 1)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "No title", results[0].Title)
		assert.Equal(t, "No content", results[0].Content)
		assert.Equal(t, "No URL", results[0].URL)
	})

	t.Run("surfaces API errors with status code", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "invalid api key", http.StatusUnauthorized)
		}))
		defer server.Close()

		client := tavily.NewClient("bad-key", tavily.WithBaseURL(server.URL))

		_, err := client.Search(context.Background(), "query", 5)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "401")
	})
}
