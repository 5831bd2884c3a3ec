// Package clock holds the context-aware waiting used by polling loops.
package clock

import (
	"context"
	"time"
)

// SleepFunc pauses a loop between iterations. Pollers take one so tests can drive them without
// real timers.
type SleepFunc func(ctx context.Context, d time.Duration) error

// SleepWithContext waits for d or until ctx is done, whichever comes first. An already canceled
// context wins over a zero duration.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

var _ SleepFunc = SleepWithContext
