package catalog

import (
	"context"
	"fmt"
	"time"
)

const maxRetryDelay = 30 * time.Second

// withRetry runs fn until it succeeds or maxRetries extra attempts are spent,
// doubling the delay between attempts up to maxRetryDelay. A cancelled
// context aborts the wait.
func withRetry(ctx context.Context, maxRetries int, baseDelay time.Duration, fn func(context.Context) error) error {
	if maxRetries < 0 {
		maxRetries = 0
	}
	if baseDelay <= 0 {
		baseDelay = 100 * time.Millisecond
	}

	var lastErr error
	delay := baseDelay
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if lastErr = fn(ctx); lastErr == nil {
			return nil
		}

		if attempt == maxRetries {
			break
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		if delay *= 2; delay > maxRetryDelay {
			delay = maxRetryDelay
		}
	}

	return fmt.Errorf("after %d attempts: %w", maxRetries+1, lastErr)
}
