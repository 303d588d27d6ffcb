package mock

import (
	"context"

	"github.com/fwojciec/trendwatch"
)

var _ trendwatch.ReportStore = (*ReportStore)(nil)

// ReportStore is a mock implementation of trendwatch.ReportStore.
type ReportStore struct {
	SaveReportFn   func(ctx context.Context, report *trendwatch.Report) (string, error)
	ReportsFn      func(ctx context.Context, username string, limit int) ([]*trendwatch.ReportFile, error)
	ReportFn       func(ctx context.Context, username, filename string) (*trendwatch.Report, error)
	DeleteReportFn func(ctx context.Context, username, filename string) error
	StatsFn        func(ctx context.Context, username string) (*trendwatch.Stats, error)
}

func (s *ReportStore) SaveReport(ctx context.Context, report *trendwatch.Report) (string, error) {
	return s.SaveReportFn(ctx, report)
}

func (s *ReportStore) Reports(ctx context.Context, username string, limit int) ([]*trendwatch.ReportFile, error) {
	return s.ReportsFn(ctx, username, limit)
}

func (s *ReportStore) Report(ctx context.Context, username, filename string) (*trendwatch.Report, error) {
	return s.ReportFn(ctx, username, filename)
}

func (s *ReportStore) DeleteReport(ctx context.Context, username, filename string) error {
	return s.DeleteReportFn(ctx, username, filename)
}

func (s *ReportStore) Stats(ctx context.Context, username string) (*trendwatch.Stats, error) {
	return s.StatsFn(ctx, username)
}

var _ trendwatch.ReportGenerator = (*ReportGenerator)(nil)

// ReportGenerator is a mock implementation of trendwatch.ReportGenerator.
type ReportGenerator struct {
	GenerateReportFn func(ctx context.Context, username string, profile *trendwatch.Profile) (*trendwatch.Report, error)
}

func (g *ReportGenerator) GenerateReport(ctx context.Context, username string, profile *trendwatch.Profile) (*trendwatch.Report, error) {
	return g.GenerateReportFn(ctx, username, profile)
}
