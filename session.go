package trendwatch

import (
	"context"
	"time"
)

// DefaultSessionTTL is how long a login session stays valid.
const DefaultSessionTTL = 24 * time.Hour

// Session is one server-side login session. The token is an opaque random
// value stored in the browser cookie; everything else lives in the database.
type Session struct {
	Token     string
	Username  string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session is past its expiry at the given time.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// SessionService manages server-side login sessions.
type SessionService interface {
	// CreateSession issues a new session for the user with the given TTL.
	CreateSession(ctx context.Context, username string, ttl time.Duration) (*Session, error)

	// FindSession looks up a session by token. Expired or unknown tokens
	// return ENOTFOUND; expired rows are removed on sight.
	FindSession(ctx context.Context, token string) (*Session, error)

	// DeleteSession removes a session. Unknown tokens are not an error.
	DeleteSession(ctx context.Context, token string) error

	// DeleteExpiredSessions purges expired rows and returns how many were
	// removed.
	DeleteExpiredSessions(ctx context.Context) (int, error)
}
