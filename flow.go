// SPDX-License-Identifier: Apache-2.0

package flow

import (
	"context"
)

// A Step is a failable, cancelable unary transform.
//
// It receives an input value and produces an output value, possibly
// suspending on the context before doing so. Steps are the unit of work
// that every primitive in this package composes; each primitive returns
// a plain Step, so compositions nest freely.
//
// A Step must be safe for concurrent invocation if the composition it
// belongs to is invoked concurrently.
type Step[In any, Out any] = func(context.Context, In) (Out, error)

// A Predicate is a failable boolean condition check over a value.
//
// It is used by [Branch] to pick a branch and by [Cycle] to decide
// whether another iteration should run.
type Predicate[T any] = func(context.Context, T) (bool, error)

// Then composes two Steps sequentially, feeding the first step's output
// to the second.
//
// This is the typed, fixed-arity counterpart of [Pipe] for pipelines
// whose value type changes between steps.
//
// Example:
//
//	fetchAndParse := flow.Then(
//	    FetchRaw,   // Step[string, []byte]
//	    ParseOrder, // Step[[]byte, Order]
//	)               // Step[string, Order]
func Then[A, B, C any](first Step[A, B], second Step[B, C]) Step[A, C] {
	return func(ctx context.Context, a A) (C, error) {
		b, err := first(ctx, a)
		if err != nil {
			var zero C
			return zero, err
		}
		return second(ctx, b)
	}
}

// Then3 composes three Steps sequentially.
//
// For longer typed pipelines, nest [Then]:
//
//	Then(Then3(s1, s2, s3), Then(s4, s5))
func Then3[A, B, C, D any](
	first Step[A, B],
	second Step[B, C],
	third Step[C, D],
) Step[A, D] {
	return Then(Then(first, second), third)
}

// Value lifts a constant into a Step that ignores its input.
//
// This is useful for closing over values in compositions, for example as
// one arm of a [Branch].
func Value[In, Out any](out Out) Step[In, Out] {
	return func(_ context.Context, _ In) (Out, error) {
		return out, nil
	}
}

// Identity returns its input unchanged.
//
// It is occasionally useful as a no-op arm of a [Branch] or as a seed
// step in a [Pipe].
func Identity[T any](_ context.Context, v T) (T, error) {
	return v, nil
}

// Pure lifts an infallible function into a Step.
//
// Synchronous transforms that cannot fail are common at the edges of a
// pipeline; Pure saves writing the context and error plumbing by hand.
//
// Example:
//
//	double := flow.Pure(func(n int) int { return n * 2 })
func Pure[In, Out any](f func(In) Out) Step[In, Out] {
	return func(_ context.Context, in In) (Out, error) {
		return f(in), nil
	}
}
