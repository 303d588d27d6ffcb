package trendwatch

import (
	"context"
	"time"
)

// Report is one generated AI-trends report. Reports are immutable once
// saved; regeneration always produces a new file.
type Report struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Profile  *Profile `json:"profile"`

	// Markdown is the full rendered report body.
	Markdown string `json:"report"`

	// References lists the article and search-result URLs the report drew
	// on. Feeds the sources-analyzed statistic.
	References []string `json:"references"`

	GeneratedAt time.Time `json:"generated_at"`
}

// Validate returns an error if the report is missing required fields.
func (r *Report) Validate() error {
	if r.Username == "" {
		return Errorf(EINVALID, "report username required")
	}
	if r.Markdown == "" {
		return Errorf(EINVALID, "report body required")
	}
	return nil
}

// ReportFile pairs a stored report with its filename, which doubles as the
// report's public identifier.
type ReportFile struct {
	Filename string  `json:"filename"`
	Report   *Report `json:"data"`
}

// Stats summarizes a user's report history for the dashboard.
type Stats struct {
	TotalReports         int    `json:"total_reports"`
	LastReportDate       string `json:"last_report_date"`
	TotalSourcesAnalyzed int    `json:"total_sources_analyzed"`
}

// ReportStore persists generated reports as per-user JSON files.
type ReportStore interface {
	// SaveReport writes the report under a timestamped, username-prefixed
	// filename and returns that filename.
	SaveReport(ctx context.Context, report *Report) (string, error)

	// Reports lists up to limit of the user's reports, newest first.
	Reports(ctx context.Context, username string, limit int) ([]*ReportFile, error)

	// Report loads one report by filename. The filename must carry the
	// user's prefix; violations return EINVALID, missing files ENOTFOUND.
	Report(ctx context.Context, username, filename string) (*Report, error)

	// DeleteReport removes one report, with the same ownership check.
	DeleteReport(ctx context.Context, username, filename string) error

	// Stats computes the user's report statistics.
	Stats(ctx context.Context, username string) (*Stats, error)
}

// ReportGenerator builds a complete personalized report for a user.
type ReportGenerator interface {
	GenerateReport(ctx context.Context, username string, profile *Profile) (*Report, error)
}
