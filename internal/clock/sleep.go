// Package clock provides time helpers shared by pollers and trackers.
package clock

import (
	"context"
	"time"
)

// Clock reports the current wall-clock time.
type Clock interface {
	Now() time.Time
}

// System is the Clock backed by time.Now.
type System struct{}

// Now returns the current local time.
func (System) Now() time.Time {
	return time.Now()
}

// SleepWithContext waits for the duration or returns early if the context is canceled.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// SleepUntil waits until t or returns early if the context is canceled.
// It returns immediately when t is not in the future.
func SleepUntil(ctx context.Context, c Clock, t time.Time) error {
	d := t.Sub(c.Now())
	if d <= 0 {
		return ctx.Err()
	}
	return SleepWithContext(ctx, d)
}
