package trendwatch

import (
	"context"
	"time"
)

// DefaultRetryDelays returns the delay schedule for transient upstream
// failures: a single 1s pause, giving two attempts in total.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second}
}

// Retry runs fn up to len(delays)+1 times, sleeping delays[i] after the
// i-th failure. It returns nil on the first success, the last error once
// all attempts are spent, or the context error if ctx is cancelled while
// waiting.
func Retry(ctx context.Context, delays []time.Duration, fn func(ctx context.Context) error) error {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		err := fn(ctx)
		if err == nil {
			return nil
		}
		lastErr = err

		// Don't sleep after the last attempt
		if attempt >= maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return lastErr
}
