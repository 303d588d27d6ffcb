package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/trendwatch"
)

// Ensure LoggingLeaderboardService implements trendwatch.LeaderboardService.
var _ trendwatch.LeaderboardService = (*LoggingLeaderboardService)(nil)

// LoggingLeaderboardService wraps a LeaderboardService with debug logging.
type LoggingLeaderboardService struct {
	next   trendwatch.LeaderboardService
	logger *slog.Logger
}

// NewLoggingLeaderboardService creates a new LoggingLeaderboardService.
func NewLoggingLeaderboardService(next trendwatch.LeaderboardService, logger *slog.Logger) *LoggingLeaderboardService {
	return &LoggingLeaderboardService{next: next, logger: logger}
}

// GenerateLeaderboard delegates to the wrapped service and logs the operation.
func (s *LoggingLeaderboardService) GenerateLeaderboard(ctx context.Context) (board *trendwatch.Leaderboard, err error) {
	defer func(begin time.Time) {
		models, rows := 0, 0
		if board != nil {
			models = len(board.Models)
			rows = board.Rows
		}
		s.logger.Info("leaderboard generation",
			"models", models,
			"rows", rows,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.GenerateLeaderboard(ctx)
}

// LatestLeaderboard delegates to the wrapped service.
func (s *LoggingLeaderboardService) LatestLeaderboard(ctx context.Context) (string, error) {
	return s.next.LatestLeaderboard(ctx)
}
