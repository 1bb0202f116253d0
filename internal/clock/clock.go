// Package clock provides context-aware waiting used by polling loops.
package clock

import (
	"context"
	"time"
)

// SleepWithContext waits for d or until ctx is done, whichever comes first.
// A non-positive d only reports the context state.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
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

// Tick runs fn once right away and then every interval until ctx is done.
// A run that outlasts the interval delays the next one instead of
// overlapping it.
func Tick(ctx context.Context, interval time.Duration, fn func(context.Context)) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fn(ctx)
		if err := SleepWithContext(ctx, interval); err != nil {
			return err
		}
	}
}
