package fs_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/trendwatch"
	"github.com/fwojciec/trendwatch/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeReportFile(t *testing.T, dir, filename string, report *trendwatch.Report) {
	t.Helper()
	data, err := json.Marshal(report)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, filename), data, 0644))
}

func TestReportStore_SaveReport(t *testing.T) {
	t.Parallel()

	t.Run("saved report round trips under a prefixed filename", func(t *testing.T) {
		t.Parallel()

		store := fs.NewReportStore(t.TempDir())
		report := &trendwatch.Report{
			ID:          "5f2a7c1e-0000-0000-0000-000000000001",
			Username:    "alice",
			Profile:     &trendwatch.Profile{Name: "Alice Lee", Email: "alice@example.com"},
			Markdown:    "# AI Trends Report for Alice Lee",
			References:  []string{"https://news.example.com/p/a-story"},
			GeneratedAt: time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC),
		}

		filename, err := store.SaveReport(context.Background(), report)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(filename, "alice_report_"))
		assert.True(t, strings.HasSuffix(filename, ".json"))

		loaded, err := store.Report(context.Background(), "alice", filename)
		require.NoError(t, err)
		assert.Equal(t, report, loaded)
	})

	t.Run("rejects report without a body", func(t *testing.T) {
		t.Parallel()

		store := fs.NewReportStore(t.TempDir())
		_, err := store.SaveReport(context.Background(), &trendwatch.Report{Username: "alice"})
		require.Error(t, err)
		assert.Equal(t, trendwatch.EINVALID, trendwatch.ErrorCode(err))
	})
}

func TestReportStore_Reports(t *testing.T) {
	t.Parallel()

	t.Run("lists newest first and honors the limit", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := fs.NewReportStore(dir)
		base := &trendwatch.Report{Username: "alice", Markdown: "# Report"}
		writeReportFile(t, dir, "alice_report_20250101_100000.json", base)
		writeReportFile(t, dir, "alice_report_20250101_110000.json", base)
		writeReportFile(t, dir, "alice_report_20250101_120000.json", base)
		writeReportFile(t, dir, "bob_report_20250101_130000.json", &trendwatch.Report{Username: "bob", Markdown: "# Report"})

		reports, err := store.Reports(context.Background(), "alice", 2)
		require.NoError(t, err)
		require.Len(t, reports, 2)
		assert.Equal(t, "alice_report_20250101_120000.json", reports[0].Filename)
		assert.Equal(t, "alice_report_20250101_110000.json", reports[1].Filename)
	})

	t.Run("limit of zero returns everything", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := fs.NewReportStore(dir)
		base := &trendwatch.Report{Username: "alice", Markdown: "# Report"}
		writeReportFile(t, dir, "alice_report_20250101_100000.json", base)
		writeReportFile(t, dir, "alice_report_20250101_110000.json", base)

		reports, err := store.Reports(context.Background(), "alice", 0)
		require.NoError(t, err)
		assert.Len(t, reports, 2)
	})

	t.Run("skips unreadable files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := fs.NewReportStore(dir)
		writeReportFile(t, dir, "alice_report_20250101_100000.json", &trendwatch.Report{Username: "alice", Markdown: "# Report"})
		require.NoError(t, os.WriteFile(filepath.Join(dir, "alice_report_20250101_110000.json"), []byte("not json"), 0644))

		reports, err := store.Reports(context.Background(), "alice", 0)
		require.NoError(t, err)
		require.Len(t, reports, 1)
		assert.Equal(t, "alice_report_20250101_100000.json", reports[0].Filename)
	})

	t.Run("missing reports directory yields empty listing", func(t *testing.T) {
		t.Parallel()

		store := fs.NewReportStore(filepath.Join(t.TempDir(), "never-created"))
		reports, err := store.Reports(context.Background(), "alice", 0)
		require.NoError(t, err)
		assert.Empty(t, reports)
	})
}

func TestReportStore_Report(t *testing.T) {
	t.Parallel()

	t.Run("rejects filename owned by another user", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := fs.NewReportStore(dir)
		writeReportFile(t, dir, "bob_report_20250101_100000.json", &trendwatch.Report{Username: "bob", Markdown: "# Report"})

		_, err := store.Report(context.Background(), "alice", "bob_report_20250101_100000.json")
		require.Error(t, err)
		assert.Equal(t, trendwatch.EINVALID, trendwatch.ErrorCode(err))
	})

	t.Run("rejects filename with path separators", func(t *testing.T) {
		t.Parallel()

		store := fs.NewReportStore(t.TempDir())
		_, err := store.Report(context.Background(), "alice", "alice_report_../../etc/passwd")
		require.Error(t, err)
		assert.Equal(t, trendwatch.EINVALID, trendwatch.ErrorCode(err))
	})

	t.Run("missing report returns ENOTFOUND", func(t *testing.T) {
		t.Parallel()

		store := fs.NewReportStore(t.TempDir())
		_, err := store.Report(context.Background(), "alice", "alice_report_20250101_100000.json")
		require.Error(t, err)
		assert.Equal(t, trendwatch.ENOTFOUND, trendwatch.ErrorCode(err))
	})
}

func TestReportStore_DeleteReport(t *testing.T) {
	t.Parallel()

	t.Run("deletes an owned report", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := fs.NewReportStore(dir)
		writeReportFile(t, dir, "alice_report_20250101_100000.json", &trendwatch.Report{Username: "alice", Markdown: "# Report"})

		require.NoError(t, store.DeleteReport(context.Background(), "alice", "alice_report_20250101_100000.json"))

		err := store.DeleteReport(context.Background(), "alice", "alice_report_20250101_100000.json")
		require.Error(t, err)
		assert.Equal(t, trendwatch.ENOTFOUND, trendwatch.ErrorCode(err))
	})

	t.Run("rejects deleting another user's report", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := fs.NewReportStore(dir)
		writeReportFile(t, dir, "bob_report_20250101_100000.json", &trendwatch.Report{Username: "bob", Markdown: "# Report"})

		err := store.DeleteReport(context.Background(), "alice", "bob_report_20250101_100000.json")
		require.Error(t, err)
		assert.Equal(t, trendwatch.EINVALID, trendwatch.ErrorCode(err))

		_, statErr := os.Stat(filepath.Join(dir, "bob_report_20250101_100000.json"))
		assert.NoError(t, statErr)
	})
}

func TestReportStore_Stats(t *testing.T) {
	t.Parallel()

	t.Run("aggregates totals across reports", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := fs.NewReportStore(dir)
		newest := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
		writeReportFile(t, dir, "alice_report_20250201_090000.json", &trendwatch.Report{
			Username: "alice", Markdown: "# Report",
			References:  []string{"https://a.example.com", "https://b.example.com"},
			GeneratedAt: time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC),
		})
		writeReportFile(t, dir, "alice_report_20250301_090000.json", &trendwatch.Report{
			Username: "alice", Markdown: "# Report",
			References:  []string{"https://c.example.com"},
			GeneratedAt: newest,
		})

		stats, err := store.Stats(context.Background(), "alice")
		require.NoError(t, err)
		assert.Equal(t, 2, stats.TotalReports)
		assert.Equal(t, 3, stats.TotalSourcesAnalyzed)
		assert.Equal(t, newest.Format(time.RFC3339), stats.LastReportDate)
	})

	t.Run("returns zero stats for a user with no reports", func(t *testing.T) {
		t.Parallel()

		store := fs.NewReportStore(t.TempDir())
		stats, err := store.Stats(context.Background(), "alice")
		require.NoError(t, err)
		assert.Equal(t, &trendwatch.Stats{}, stats)
	})
}
