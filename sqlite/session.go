package sqlite

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/fwojciec/trendwatch"
)

// Compile-time interface verification.
var _ trendwatch.SessionService = (*SessionService)(nil)

// SessionService implements trendwatch.SessionService using SQLite, so
// logins survive server restarts.
type SessionService struct {
	db *DB

	// Now returns the current time. Overridable for tests.
	Now func() time.Time
}

// NewSessionService creates a new SessionService.
func NewSessionService(db *DB) *SessionService {
	return &SessionService{db: db, Now: time.Now}
}

// CreateSession issues a new session for the user with the given TTL.
func (s *SessionService) CreateSession(ctx context.Context, username string, ttl time.Duration) (*trendwatch.Session, error) {
	if username == "" {
		return nil, trendwatch.Errorf(trendwatch.EINVALID, "session requires a username")
	}
	if ttl <= 0 {
		ttl = trendwatch.DefaultSessionTTL
	}

	token, err := generateToken()
	if err != nil {
		return nil, err
	}

	now := s.Now().UTC()
	session := &trendwatch.Session{
		Token:     token,
		Username:  username,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO sessions (token, username, created_at, expires_at)
		VALUES (?, ?, ?, ?)
	`, session.Token, session.Username,
		session.CreatedAt.Format(time.RFC3339), session.ExpiresAt.Format(time.RFC3339))
	if err != nil {
		return nil, err
	}

	return session, nil
}

// FindSession looks up a session by token. Expired rows are deleted on
// sight and reported as ENOTFOUND, same as unknown tokens.
func (s *SessionService) FindSession(ctx context.Context, token string) (*trendwatch.Session, error) {
	var session trendwatch.Session
	var createdAt, expiresAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT token, username, created_at, expires_at
		FROM sessions
		WHERE token = ?
	`, token).Scan(&session.Token, &session.Username, &createdAt, &expiresAt)

	if err == sql.ErrNoRows {
		return nil, trendwatch.Errorf(trendwatch.ENOTFOUND, "session not found")
	}
	if err != nil {
		return nil, err
	}

	var parseErr error
	session.CreatedAt, parseErr = parseRFC3339(createdAt, "created_at")
	if parseErr != nil {
		return nil, parseErr
	}
	session.ExpiresAt, parseErr = parseRFC3339(expiresAt, "expires_at")
	if parseErr != nil {
		return nil, parseErr
	}

	if session.Expired(s.Now().UTC()) {
		if err := s.DeleteSession(ctx, token); err != nil {
			return nil, err
		}
		return nil, trendwatch.Errorf(trendwatch.ENOTFOUND, "session not found")
	}

	return &session, nil
}

// DeleteSession removes a session. Unknown tokens are not an error, so
// logout is idempotent.
func (s *SessionService) DeleteSession(ctx context.Context, token string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM sessions WHERE token = ?", token)
	return err
}

// DeleteExpiredSessions purges expired rows and returns how many were
// removed. RFC 3339 timestamps in UTC sort lexicographically, so a plain
// string comparison finds them.
func (s *SessionService) DeleteExpiredSessions(ctx context.Context) (int, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM sessions WHERE expires_at <= ?",
		s.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return 0, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	return int(rows), nil
}

// generateToken returns a 64-character hex string from 32 bytes of
// cryptographic randomness.
func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
