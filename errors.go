// SPDX-License-Identifier: Apache-2.0

package flow

import (
	"context"
	"fmt"
)

// RecoveredPanic is an error type that wraps a panic value.
type RecoveredPanic struct {
	Value any
}

func (p *RecoveredPanic) Error() string {
	return fmt.Sprintf("panic recovered: %v", p.Value)
}

// RecoverPanics wraps a step to recover from panics and convert them to
// errors.
//
// If the step panics, the panic value is returned as a [*RecoveredPanic]
// error. This is useful at the boundary of a composition that calls code
// which may panic.
func RecoverPanics[In, Out any](step Step[In, Out]) Step[In, Out] {
	return func(ctx context.Context, in In) (out Out, err error) {
		defer func() {
			if r := recover(); r != nil {
				err = &RecoveredPanic{Value: r}
			}
		}()
		return step(ctx, in)
	}
}

// An ErrorHandler decides how a failed step should recover.
//
// It receives the original input and the failure, and returns a fallback
// step to run in the primary step's place. Returning a nil step and a nil
// error propagates the original failure unchanged; returning an error
// propagates that error instead.
type ErrorHandler[In, Out any] = func(context.Context, In, error) (Step[In, Out], error)

// OnError provides dynamic error handling with fallback steps.
//
// If the primary step fails, the handler picks a fallback to run with the
// same input. This allows routing different failures to different
// recoveries:
//
//	flow.OnError(
//	    CallPrimaryAPI,
//	    func(ctx context.Context, q Query, err error) (flow.Step[Query, Result], error) {
//	        if errors.Is(err, ErrTimeout) {
//	            return CallBackupAPI, nil
//	        }
//	        return nil, nil // anything else propagates as-is
//	    },
//	)
func OnError[In, Out any](step Step[In, Out], handler ErrorHandler[In, Out]) Step[In, Out] {
	return func(ctx context.Context, in In) (Out, error) {
		out, stepErr := step(ctx, in)
		if stepErr == nil {
			return out, nil
		}
		fallback, err := handler(ctx, in, stepErr)
		if err != nil {
			var zero Out
			return zero, err
		}
		if fallback == nil {
			var zero Out
			return zero, stepErr
		}
		return fallback(ctx, in)
	}
}

// FallbackTo returns an [ErrorHandler] that always runs the given
// fallback step, regardless of the error.
func FallbackTo[In, Out any](fallback Step[In, Out]) ErrorHandler[In, Out] {
	return func(_ context.Context, _ In, _ error) (Step[In, Out], error) {
		return fallback, nil
	}
}
