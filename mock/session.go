package mock

import (
	"context"
	"time"

	"github.com/fwojciec/trendwatch"
)

var _ trendwatch.SessionService = (*SessionService)(nil)

// SessionService is a mock implementation of trendwatch.SessionService.
type SessionService struct {
	CreateSessionFn         func(ctx context.Context, username string, ttl time.Duration) (*trendwatch.Session, error)
	FindSessionFn           func(ctx context.Context, token string) (*trendwatch.Session, error)
	DeleteSessionFn         func(ctx context.Context, token string) error
	DeleteExpiredSessionsFn func(ctx context.Context) (int, error)
}

func (s *SessionService) CreateSession(ctx context.Context, username string, ttl time.Duration) (*trendwatch.Session, error) {
	return s.CreateSessionFn(ctx, username, ttl)
}

func (s *SessionService) FindSession(ctx context.Context, token string) (*trendwatch.Session, error) {
	return s.FindSessionFn(ctx, token)
}

func (s *SessionService) DeleteSession(ctx context.Context, token string) error {
	return s.DeleteSessionFn(ctx, token)
}

func (s *SessionService) DeleteExpiredSessions(ctx context.Context) (int, error) {
	return s.DeleteExpiredSessionsFn(ctx)
}
