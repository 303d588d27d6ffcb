package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fwojciec/trendwatch"
)

// Ensure ReportStore implements trendwatch.ReportStore at compile time.
var _ trendwatch.ReportStore = (*ReportStore)(nil)

// ReportStore persists generated reports as per-user JSON files named
// {username}_report_{timestamp}.json. The username prefix doubles as the
// ownership check: a user can only read or delete files carrying their own
// prefix.
type ReportStore struct {
	reportsDir string
}

// NewReportStore creates a ReportStore rooted at reportsDir.
func NewReportStore(reportsDir string) *ReportStore {
	return &ReportStore{reportsDir: reportsDir}
}

func reportPrefix(username string) string {
	return username + "_report_"
}

func reportFilename(username string, now time.Time) string {
	return fmt.Sprintf("%s%s.json", reportPrefix(username), now.Format("20060102_150405"))
}

// SaveReport writes the report under a timestamped, username-prefixed
// filename and returns that filename.
func (s *ReportStore) SaveReport(ctx context.Context, report *trendwatch.Report) (string, error) {
	if err := report.Validate(); err != nil {
		return "", err
	}

	data, err := marshalIndented(report)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.reportsDir, 0755); err != nil {
		return "", err
	}

	filename := reportFilename(report.Username, time.Now())
	if err := os.WriteFile(filepath.Join(s.reportsDir, filename), data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}

// Reports lists the user's reports, newest first. The timestamp suffix
// makes lexicographic filename order chronological. A limit of 0 or less
// returns everything.
func (s *ReportStore) Reports(ctx context.Context, username string, limit int) ([]*trendwatch.ReportFile, error) {
	entries, err := os.ReadDir(s.reportsDir)
	if os.IsNotExist(err) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, reportPrefix(username)) && strings.HasSuffix(name, ".json") {
			names = append(names, name)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))

	if limit > 0 && len(names) > limit {
		names = names[:limit]
	}

	var reports []*trendwatch.ReportFile
	for _, name := range names {
		report, err := s.readReport(name)
		if err != nil {
			// One unreadable file should not take down the whole listing.
			continue
		}
		reports = append(reports, &trendwatch.ReportFile{
			Filename: name,
			Report:   report,
		})
	}
	return reports, nil
}

// Report loads one report by filename, enforcing the ownership prefix.
func (s *ReportStore) Report(ctx context.Context, username, filename string) (*trendwatch.Report, error) {
	if err := checkOwnership(username, filename); err != nil {
		return nil, err
	}

	report, err := s.readReport(filename)
	if os.IsNotExist(err) {
		return nil, trendwatch.Errorf(trendwatch.ENOTFOUND, "report %q not found", filename)
	} else if err != nil {
		return nil, err
	}
	return report, nil
}

// DeleteReport removes one report, with the same ownership check.
func (s *ReportStore) DeleteReport(ctx context.Context, username, filename string) error {
	if err := checkOwnership(username, filename); err != nil {
		return err
	}

	err := os.Remove(filepath.Join(s.reportsDir, filename))
	if os.IsNotExist(err) {
		return trendwatch.Errorf(trendwatch.ENOTFOUND, "report %q not found", filename)
	}
	return err
}

// Stats computes the user's report statistics over the most recent 100
// reports.
func (s *ReportStore) Stats(ctx context.Context, username string) (*trendwatch.Stats, error) {
	reports, err := s.Reports(ctx, username, 100)
	if err != nil {
		return nil, err
	}
	if len(reports) == 0 {
		return &trendwatch.Stats{}, nil
	}

	stats := &trendwatch.Stats{
		TotalReports:   len(reports),
		LastReportDate: reports[0].Report.GeneratedAt.Format(time.RFC3339),
	}
	for _, rf := range reports {
		stats.TotalSourcesAnalyzed += len(rf.Report.References)
	}
	return stats, nil
}

func (s *ReportStore) readReport(filename string) (*trendwatch.Report, error) {
	data, err := os.ReadFile(filepath.Join(s.reportsDir, filename))
	if err != nil {
		return nil, err
	}

	var report trendwatch.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// checkOwnership rejects filenames that don't carry the user's prefix or
// that try to smuggle in path separators.
func checkOwnership(username, filename string) error {
	if filename != filepath.Base(filename) {
		return trendwatch.Errorf(trendwatch.EINVALID, "invalid report filename")
	}
	if !strings.HasPrefix(filename, reportPrefix(username)) {
		return trendwatch.Errorf(trendwatch.EINVALID, "report does not belong to this user")
	}
	return nil
}
