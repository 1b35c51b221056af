// SPDX-License-Identifier: Apache-2.0

package flow

import (
	"context"
	"fmt"
)

// DefaultMaxIterations is the iteration bound used by [Cycle] and by
// [CycleWith] when its options leave MaxIterations unset.
const DefaultMaxIterations = 100

// A LimitError reports that a [Cycle] reached its iteration bound.
type LimitError struct {
	// Limit is the configured maximum number of body invocations.
	Limit int
}

// Error implements the error interface.
func (e *LimitError) Error() string {
	return fmt.Sprintf("cycle: iteration limit of %d reached", e.Limit)
}

// CycleOptions configures a [CycleWith] loop.
type CycleOptions struct {
	// MaxIterations bounds how many times the body may run before the
	// loop fails. Values less than or equal to zero select
	// [DefaultMaxIterations].
	MaxIterations int
}

// Cycle repeatedly applies body while condition holds, up to
// [DefaultMaxIterations] body invocations.
//
// Cycle is the same as [CycleWith] with empty [CycleOptions].
func Cycle[T any](body Step[T, T], condition Predicate[T]) Step[T, T] {
	return CycleWith(CycleOptions{}, body, condition)
}

// CycleWith builds a bounded refinement loop.
//
// The composed step keeps a single current value, seeded with the input.
// Before each iteration the condition is evaluated on the current value;
// a false result terminates the loop successfully with the current value,
// so zero iterations is a legal outcome that returns the input unchanged.
// While the condition holds, the body replaces the current value.
//
// The bound caps completed body invocations: the iteration that reaches
// it fails with a [*LimitError] — reaching the bound exactly is a
// failure, not a tolerated edge. Errors from the body or the condition
// propagate unchanged, with no context annotation.
//
// All loop state is local to one invocation, so a composed cycle may be
// invoked concurrently.
//
// CycleWith panics if the body or condition is nil.
func CycleWith[T any](opts CycleOptions, body Step[T, T], condition Predicate[T]) Step[T, T] {
	if body == nil {
		panic("flow: Cycle requires a body step")
	}
	if condition == nil {
		panic("flow: Cycle requires a condition")
	}
	limit := opts.MaxIterations
	if limit <= 0 {
		limit = DefaultMaxIterations
	}
	return func(ctx context.Context, in T) (T, error) {
		current := in
		for iterations := 0; ; {
			if err := ctx.Err(); err != nil {
				var zero T
				return zero, err
			}
			ok, err := condition(ctx, current)
			if err != nil {
				var zero T
				return zero, err
			}
			if !ok {
				return current, nil
			}
			current, err = body(ctx, current)
			if err != nil {
				var zero T
				return zero, err
			}
			iterations++
			if iterations >= limit {
				var zero T
				return zero, &LimitError{Limit: limit}
			}
		}
	}
}
