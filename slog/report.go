package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/trendwatch"
)

// Ensure LoggingReportGenerator implements trendwatch.ReportGenerator.
var _ trendwatch.ReportGenerator = (*LoggingReportGenerator)(nil)

// LoggingReportGenerator wraps a ReportGenerator with debug logging.
type LoggingReportGenerator struct {
	next   trendwatch.ReportGenerator
	logger *slog.Logger
}

// NewLoggingReportGenerator creates a new LoggingReportGenerator.
func NewLoggingReportGenerator(next trendwatch.ReportGenerator, logger *slog.Logger) *LoggingReportGenerator {
	return &LoggingReportGenerator{next: next, logger: logger}
}

// GenerateReport delegates to the wrapped generator and logs the operation.
func (g *LoggingReportGenerator) GenerateReport(ctx context.Context, username string, profile *trendwatch.Profile) (report *trendwatch.Report, err error) {
	defer func(begin time.Time) {
		references := 0
		if report != nil {
			references = len(report.References)
		}
		g.logger.Info("report generation",
			"username", username,
			"references", references,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.GenerateReport(ctx, username, profile)
}
