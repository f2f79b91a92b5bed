package llm

import (
	"context"
	"errors"
	"time"

	"google.golang.org/api/googleapi"
)

// retryable reports whether an oracle call error is worth retrying.
// Transport failures and server-side (5xx) errors are retryable; client
// errors (4xx) are not.
func retryable(err error) bool {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code >= 500
	}
	// No HTTP status available: treat as a transport failure.
	return true
}

// WithRetry runs fn up to maxAttempts times, sleeping baseDelay, 2*baseDelay,
// 4*baseDelay... between attempts. A nil error or a non-retryable error
// returns immediately. Context cancellation aborts the wait and surfaces
// ctx.Err().
func WithRetry(ctx context.Context, maxAttempts int, baseDelay time.Duration, fn func() error) error {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var lastErr error
	delay := baseDelay
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = fn()
		if lastErr == nil || !retryable(lastErr) {
			return lastErr
		}
		if attempt == maxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
	return lastErr
}
