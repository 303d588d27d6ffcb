package http_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fwojciec/trendwatch"
)

func TestServer_LinkedInPost(t *testing.T) {
	t.Parallel()

	t.Run("writes a post from the latest report", func(t *testing.T) {
		t.Parallel()

		ts := newTestServer(t)
		ts.reports.ReportsFn = func(ctx context.Context, username string, limit int) ([]*trendwatch.ReportFile, error) {
			assert.Equal(t, 1, limit)
			return []*trendwatch.ReportFile{
				{Filename: "demo_report_x.json", Report: &trendwatch.Report{Username: testUser, Markdown: "# Latest findings"}},
			}, nil
		}
		ts.assistant.PostFromReportFn = func(ctx context.Context, report string, profile *trendwatch.Profile) (string, error) {
			assert.Equal(t, "# Latest findings", report)
			return "Sharing this week's AI highlights...", nil
		}

		status, body := doJSON(t, ts, authed(request(t, http.MethodPost, "/generate-linkedin-post", map[string]string{
			"option": "from_report",
		})))

		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "Sharing this week's AI highlights...", body["post"])
	})

	t.Run("requires an existing report for from_report", func(t *testing.T) {
		t.Parallel()

		ts := newTestServer(t)
		ts.reports.ReportsFn = func(ctx context.Context, username string, limit int) ([]*trendwatch.ReportFile, error) {
			return nil, nil
		}

		status, body := doJSON(t, ts, authed(request(t, http.MethodPost, "/generate-linkedin-post", map[string]string{
			"option": "from_report",
		})))

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "No reports found. Please generate a report first.", body["error"])
	})

	t.Run("rejects an empty stored report", func(t *testing.T) {
		t.Parallel()

		ts := newTestServer(t)
		ts.reports.ReportsFn = func(ctx context.Context, username string, limit int) ([]*trendwatch.ReportFile, error) {
			return []*trendwatch.ReportFile{
				{Filename: "demo_report_x.json", Report: &trendwatch.Report{Username: testUser}},
			}, nil
		}

		status, body := doJSON(t, ts, authed(request(t, http.MethodPost, "/generate-linkedin-post", map[string]string{
			"option": "from_report",
		})))

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Report content not found.", body["error"])
	})

	t.Run("writes a post about a custom topic", func(t *testing.T) {
		t.Parallel()

		ts := newTestServer(t)
		ts.assistant.PostFromTopicFn = func(ctx context.Context, topic string, profile *trendwatch.Profile) (string, error) {
			assert.Equal(t, "open-weight models", topic)
			return "Open weights are winning...", nil
		}

		status, body := doJSON(t, ts, authed(request(t, http.MethodPost, "/generate-linkedin-post", map[string]string{
			"option": "custom_topic",
			"topic":  "open-weight models",
		})))

		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "Open weights are winning...", body["post"])
	})

	t.Run("requires a topic for custom posts", func(t *testing.T) {
		t.Parallel()

		ts := newTestServer(t)
		status, body := doJSON(t, ts, authed(request(t, http.MethodPost, "/generate-linkedin-post", map[string]string{
			"option": "custom_topic",
			"topic":  "  ",
		})))

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Please provide a topic.", body["error"])
	})

	t.Run("rejects unknown options", func(t *testing.T) {
		t.Parallel()

		ts := newTestServer(t)
		status, body := doJSON(t, ts, authed(request(t, http.MethodPost, "/generate-linkedin-post", map[string]string{
			"option": "surprise_me",
		})))

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, `Invalid option. Choose "from_report" or "custom_topic".`, body["error"])
	})
}
