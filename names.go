// SPDX-License-Identifier: Apache-2.0

package flow

import (
	"context"
	"fmt"
)

// NamedError is the error returned by steps wrapped with [Named].
// It carries the step's name alongside the underlying error.
// Detect it with [errors.As].
type NamedError struct {
	// Name is the name of the step that failed.
	Name string
	// Err is the underlying error from the step.
	Err error
}

// Error returns the formatted error message.
func (e NamedError) Error() string {
	return fmt.Sprintf("%s: %v", e.Name, e.Err)
}

// Unwrap returns the underlying error.
func (e NamedError) Unwrap() error {
	return e.Err
}

type stepNameKey struct{}

// StepNames returns a copy of the step name stack from the context, or
// nil if no [Named] wrapper is active.
//
// Logging decorators use this to build the dotted step path; custom
// decorators can do the same.
func StepNames(ctx context.Context) []string {
	names, ok := ctx.Value(stepNameKey{}).([]string)
	if !ok || len(names) == 0 {
		return nil
	}
	return append([]string{}, names...)
}

// Named wraps a step with a name.
//
// The name is pushed onto a stack in the context for the duration of the
// step, so nested Named wrappers form a hierarchical path retrievable via
// [StepNames]. If the step fails, its error is wrapped in a [NamedError].
//
// Note that Named wraps every failure, including validation errors; apply
// it outside a composition when the FlowContext breadcrumbs alone are the
// desired trail.
func Named[In, Out any](name string, step Step[In, Out]) Step[In, Out] {
	return func(ctx context.Context, in In) (Out, error) {
		names, _ := ctx.Value(stepNameKey{}).([]string)
		stack := append(append([]string{}, names...), name)
		ctx = context.WithValue(ctx, stepNameKey{}, stack)

		out, err := step(ctx, in)
		if err != nil {
			var zero Out
			return zero, NamedError{Name: name, Err: err}
		}
		return out, nil
	}
}
