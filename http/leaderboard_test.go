package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/trendwatch"
)

func TestServer_GenerateLeaderboard(t *testing.T) {
	t.Parallel()

	t.Run("starts generation and points at the newest page", func(t *testing.T) {
		t.Parallel()

		ts := newTestServer(t)
		generated := make(chan struct{})
		ts.leaderboard.GenerateLeaderboardFn = func(ctx context.Context) (*trendwatch.Leaderboard, error) {
			close(generated)
			return &trendwatch.Leaderboard{Filename: "livebench_leaderboard_20250605_090807.html"}, nil
		}
		ts.leaderboard.LatestLeaderboardFn = func(ctx context.Context) (string, error) {
			return "livebench_leaderboard_20250601_120000.html", nil
		}

		status, body := doJSON(t, ts, authed(request(t, http.MethodPost, "/generate-leaderboard", nil)))

		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "Leaderboard generation started", body["message"])
		assert.Equal(t, "livebench_leaderboard_20250601_120000.html", body["filename"])
		assert.Equal(t, false, body["generating"])

		select {
		case <-generated:
		case <-time.After(time.Second):
			t.Fatal("background generation never ran")
		}
	})

	t.Run("reports generating when no page exists yet", func(t *testing.T) {
		t.Parallel()

		ts := newTestServer(t)
		ts.leaderboard.GenerateLeaderboardFn = func(ctx context.Context) (*trendwatch.Leaderboard, error) {
			return &trendwatch.Leaderboard{Filename: "livebench_leaderboard_x.html"}, nil
		}
		ts.leaderboard.LatestLeaderboardFn = func(ctx context.Context) (string, error) {
			return "", trendwatch.Errorf(trendwatch.ENOTFOUND, "no leaderboard has been generated yet")
		}

		status, body := doJSON(t, ts, authed(request(t, http.MethodPost, "/generate-leaderboard", nil)))

		assert.Equal(t, http.StatusOK, status)
		assert.Nil(t, body["filename"])
		assert.Equal(t, true, body["generating"])
	})
}

func TestServer_LeaderboardIndex(t *testing.T) {
	t.Parallel()

	t.Run("redirects to the newest page", func(t *testing.T) {
		t.Parallel()

		ts := newTestServer(t)
		ts.leaderboard.LatestLeaderboardFn = func(ctx context.Context) (string, error) {
			return "livebench_leaderboard_20250601_120000.html", nil
		}

		rec := httptest.NewRecorder()
		ts.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/leaderboard", nil))

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/leaderboard/livebench_leaderboard_20250601_120000.html", rec.Header().Get("Location"))
	})

	t.Run("explains when nothing has been generated", func(t *testing.T) {
		t.Parallel()

		ts := newTestServer(t)
		ts.leaderboard.LatestLeaderboardFn = func(ctx context.Context) (string, error) {
			return "", trendwatch.Errorf(trendwatch.ENOTFOUND, "no leaderboard has been generated yet")
		}

		rec := httptest.NewRecorder()
		ts.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/leaderboard", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "No leaderboard has been generated yet")
	})
}

func TestServer_ServeLeaderboard(t *testing.T) {
	t.Parallel()

	t.Run("serves a generated page without a session", func(t *testing.T) {
		t.Parallel()

		ts := newTestServer(t)
		dir := t.TempDir()
		ts.LeaderboardDir = dir
		filename := "livebench_leaderboard_20250605_090807.html"
		require.NoError(t, os.WriteFile(filepath.Join(dir, filename), []byte("<html>leaderboard</html>"), 0o644))

		rec := httptest.NewRecorder()
		ts.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/leaderboard/"+filename, nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
		assert.Equal(t, "<html>leaderboard</html>", rec.Body.String())
	})

	t.Run("refuses filenames outside the expected pattern", func(t *testing.T) {
		t.Parallel()

		ts := newTestServer(t)
		ts.LeaderboardDir = t.TempDir()

		rec := httptest.NewRecorder()
		ts.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/leaderboard/secrets.html", nil))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid file")
	})

	t.Run("refuses traversal attempts", func(t *testing.T) {
		t.Parallel()

		ts := newTestServer(t)
		ts.LeaderboardDir = t.TempDir()

		rec := httptest.NewRecorder()
		// %5C decodes to a backslash inside the filename segment.
		ts.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/leaderboard/livebench_leaderboard_..%5Cevil.html", nil))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("explains a missing page", func(t *testing.T) {
		t.Parallel()

		ts := newTestServer(t)
		ts.LeaderboardDir = t.TempDir()

		rec := httptest.NewRecorder()
		ts.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/leaderboard/livebench_leaderboard_20990101_000000.html", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Leaderboard file not found. Please try generating again.")
	})
}
