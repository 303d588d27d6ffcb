package trendwatch

import (
	"context"
	"sort"
	"strings"
)

// LeaderboardFilePrefix and LeaderboardFileSuffix frame the filenames of
// generated leaderboard pages. Only files matching this shape are ever
// served back to browsers.
const (
	LeaderboardFilePrefix = "livebench_leaderboard_"
	LeaderboardFileSuffix = ".html"
)

// Evaluation is one model-judgment row from the benchmark dataset.
type Evaluation struct {
	Model    string
	Category string
	Score    float64
}

// ModelScore is the aggregate of all judgments for one model.
type ModelScore struct {
	Model     string
	AvgScore  float64
	Questions int
}

// Leaderboard is the result of one generation run.
type Leaderboard struct {
	// Filename of the rendered HTML page, relative to the data directory.
	Filename string

	// Models, best average score first.
	Models []ModelScore

	// LastModified is the dataset's last-modified timestamp as reported by
	// the source, or "Unknown" when unavailable.
	LastModified string

	// Rows is the number of judgment rows fetched.
	Rows int
}

// LeaderboardService fetches benchmark data and renders the static
// leaderboard page.
type LeaderboardService interface {
	// GenerateLeaderboard fetches judgments, aggregates them, and writes a
	// new timestamped HTML page.
	GenerateLeaderboard(ctx context.Context) (*Leaderboard, error)

	// LatestLeaderboard returns the filename of the most recently written
	// page, or ENOTFOUND when none exists yet.
	LatestLeaderboard(ctx context.Context) (string, error)
}

// AggregateScores computes the mean score and judgment count per model,
// sorted by mean score descending. Ties keep first-seen order.
func AggregateScores(evals []Evaluation) []ModelScore {
	type acc struct {
		sum   float64
		count int
	}
	totals := make(map[string]*acc)
	var order []string
	for _, e := range evals {
		a, ok := totals[e.Model]
		if !ok {
			a = &acc{}
			totals[e.Model] = a
			order = append(order, e.Model)
		}
		a.sum += e.Score
		a.count++
	}

	scores := make([]ModelScore, 0, len(order))
	for _, model := range order {
		a := totals[model]
		scores = append(scores, ModelScore{
			Model:     model,
			AvgScore:  a.sum / float64(a.count),
			Questions: a.count,
		})
	}
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].AvgScore > scores[j].AvgScore
	})
	return scores
}

// ValidLeaderboardFilename reports whether name is a file this application
// generated. Anything else, including names smuggling path separators, is
// rejected before touching the filesystem.
func ValidLeaderboardFilename(name string) bool {
	if !strings.HasPrefix(name, LeaderboardFilePrefix) || !strings.HasSuffix(name, LeaderboardFileSuffix) {
		return false
	}
	if strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return false
	}
	return true
}
