package simulate

import (
	"context" // Cancellation
	"time"    // Delays
)

// Delays is the simulated processing latency per feature
type Delays struct {
	Health time.Duration // Health recommendation
	Pose   time.Duration // Pose analysis
	Diet   time.Duration // Diet plan
}

// DefaultDelays matches the latency the platform has always shown
var DefaultDelays = Delays{Health: 2 * time.Second, Pose: 3 * time.Second, Diet: 3 * time.Second}

// Run waits for delay and then calls fn. If ctx ends first, fn never runs
// and ctx.Err() is returned.
func Run[T any](ctx context.Context, delay time.Duration, fn func() (T, error)) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	if delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-timer.C:
		}
	}
	return fn()
}
