package util

import (
	"context"
	"fmt"
	"time"
)

// Retrier runs an operation up to Attempts times, sleeping
// Delay * attempt-number between failures. Every failure consumes an
// attempt, whatever its cause; callers that want validation errors to
// fail fast must not use a Retrier.
type Retrier struct {
	Attempts int
	Delay    time.Duration

	// Sleep is swappable so tests can record backoff instead of waiting.
	Sleep func(ctx context.Context, d time.Duration) error
}

func NewRetrier(attempts int, delay time.Duration) *Retrier {
	return &Retrier{Attempts: attempts, Delay: delay, Sleep: sleepCtx}
}

func (r *Retrier) Do(ctx context.Context, label string, op func() error) error {
	sleep := r.Sleep
	if sleep == nil {
		sleep = sleepCtx
	}

	var lastErr error
	for i := 1; i <= r.Attempts; i++ {
		lastErr = op()
		if lastErr == nil {
			return nil
		}
		if i < r.Attempts {
			if err := sleep(ctx, r.Delay*time.Duration(i)); err != nil {
				return err
			}
		}
	}
	return fmt.Errorf("%s failed after %d attempts: %w", label, r.Attempts, lastErr)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
