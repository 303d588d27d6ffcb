package livebench

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/fwojciec/trendwatch"
)

// TopModels is how many models appear on a generated page.
const TopModels = 20

// Compile-time interface verification.
var _ trendwatch.LeaderboardService = (*Service)(nil)

// Service generates leaderboard pages and locates previously generated
// ones. Pages are written to DataDir under timestamped filenames so
// multiple runs never overwrite each other.
type Service struct {
	// Source provides benchmark judgment rows.
	Source EvaluationSource

	// DataDir is where rendered pages are written.
	DataDir string

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// GenerateLeaderboard fetches judgments, aggregates them per model, and
// writes a page ranking the top models by average score.
func (s *Service) GenerateLeaderboard(ctx context.Context) (*trendwatch.Leaderboard, error) {
	evals, lastModified, err := s.Source.FetchEvaluations(ctx)
	if err != nil {
		return nil, err
	}

	scores := trendwatch.AggregateScores(evals)
	top := scores[:min(len(scores), TopModels)]

	now := s.now()
	html, err := RenderPage(top, lastModified, now)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(s.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("create leaderboard directory: %w", err)
	}
	filename := trendwatch.LeaderboardFilePrefix + now.Format("20060102_150405") + trendwatch.LeaderboardFileSuffix
	if err := os.WriteFile(filepath.Join(s.DataDir, filename), []byte(html), 0644); err != nil {
		return nil, fmt.Errorf("write leaderboard page: %w", err)
	}

	if lastModified == "" {
		lastModified = "Unknown"
	}
	return &trendwatch.Leaderboard{
		Filename:     filename,
		Models:       top,
		LastModified: lastModified,
		Rows:         len(evals),
	}, nil
}

// LatestLeaderboard returns the filename of the most recently generated
// page. Timestamped filenames sort chronologically.
func (s *Service) LatestLeaderboard(ctx context.Context) (string, error) {
	pattern := filepath.Join(s.DataDir, trendwatch.LeaderboardFilePrefix+"*"+trendwatch.LeaderboardFileSuffix)
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return "", fmt.Errorf("list leaderboard pages: %w", err)
	}
	if len(matches) == 0 {
		return "", trendwatch.Errorf(trendwatch.ENOTFOUND, "no leaderboard has been generated yet")
	}
	sort.Strings(matches)
	return filepath.Base(matches[len(matches)-1]), nil
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
