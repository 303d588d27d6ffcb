package mock

import (
	"context"

	"github.com/fwojciec/trendwatch"
)

var _ trendwatch.LeaderboardService = (*LeaderboardService)(nil)

// LeaderboardService is a mock implementation of trendwatch.LeaderboardService.
type LeaderboardService struct {
	GenerateLeaderboardFn func(ctx context.Context) (*trendwatch.Leaderboard, error)
	LatestLeaderboardFn   func(ctx context.Context) (string, error)
}

func (s *LeaderboardService) GenerateLeaderboard(ctx context.Context) (*trendwatch.Leaderboard, error) {
	return s.GenerateLeaderboardFn(ctx)
}

func (s *LeaderboardService) LatestLeaderboard(ctx context.Context) (string, error) {
	return s.LatestLeaderboardFn(ctx)
}
