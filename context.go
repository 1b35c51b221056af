// SPDX-License-Identifier: Apache-2.0

package flow

import (
	"context"
	"time"
)

// WithTimeout wraps a step with a timeout.
//
// The step runs with a derived context that is cancelled after the given
// duration. Steps that honor their context return
// [context.DeadlineExceeded] when the timeout fires.
//
// Example:
//
//	flow.WithTimeout(5*time.Second, FetchRemote)
func WithTimeout[In, Out any](timeout time.Duration, step Step[In, Out]) Step[In, Out] {
	return func(ctx context.Context, in In) (Out, error) {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		return step(ctx, in)
	}
}

// WithDeadline wraps a step with an absolute deadline.
//
// The step runs with a derived context that is cancelled at the given
// time.
func WithDeadline[In, Out any](deadline time.Time, step Step[In, Out]) Step[In, Out] {
	return func(ctx context.Context, in In) (Out, error) {
		ctx, cancel := context.WithDeadline(ctx, deadline)
		defer cancel()
		return step(ctx, in)
	}
}

// Sleep returns a step that waits for the duration and then passes its
// input through unchanged.
//
// The wait respects context cancellation. Combined with [Race] it builds
// timeouts from ordinary steps, and inside a [Cycle] body it paces
// polling loops.
func Sleep[T any](duration time.Duration) Step[T, T] {
	return func(ctx context.Context, v T) (T, error) {
		timer := time.NewTimer(duration)
		defer timer.Stop()

		select {
		case <-timer.C:
			return v, nil
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		}
	}
}
