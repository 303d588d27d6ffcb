package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/trendwatch"
)

// Ensure LoggingScraper implements trendwatch.Scraper.
var _ trendwatch.Scraper = (*LoggingScraper)(nil)

// LoggingScraper wraps a Scraper with debug logging.
type LoggingScraper struct {
	next   trendwatch.Scraper
	logger *slog.Logger
}

// NewLoggingScraper creates a new LoggingScraper.
func NewLoggingScraper(next trendwatch.Scraper, logger *slog.Logger) *LoggingScraper {
	return &LoggingScraper{next: next, logger: logger}
}

// Scrape delegates to the wrapped scraper and logs the operation.
func (s *LoggingScraper) Scrape(ctx context.Context) (articles []*trendwatch.Article, err error) {
	defer func(begin time.Time) {
		s.logger.Info("scrape",
			"count", len(articles),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Scrape(ctx)
}
