package utils

import (
	"context"
	"log"
	"time"
)

// Retry calls fn up to attempts times, doubling delay after each failure.
// Errors for which permanent returns true stop the loop at once.
// Only use it for reads: a write that failed halfway must not be replayed.
func Retry(ctx context.Context, attempts int, delay time.Duration, permanent func(error) bool, fn func() error) error {
	if attempts < 1 {
		attempts = 1
	}
	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		if permanent != nil && permanent(err) {
			return err
		}
		if attempt == attempts {
			break
		}
		log.Printf("⚠️ read failed (attempt %d/%d), retrying in %s: %v", attempt, attempts, delay, err)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
	return err
}
