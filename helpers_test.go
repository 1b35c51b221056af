// SPDX-License-Identifier: Apache-2.0

package flow

import (
	"context"
	"errors"
	"time"
)

// ==== Test Helpers: Errors ====

var errBoom = errors.New("boom")
var errCondition = errors.New("condition failed")

// ==== Test Helpers: Steps ====

// add returns a step that adds n to its input.
func add(n int) Step[int, int] {
	return func(_ context.Context, v int) (int, error) {
		return v + n, nil
	}
}

// mul returns a step that multiplies its input by n.
func mul(n int) Step[int, int] {
	return func(_ context.Context, v int) (int, error) {
		return v * n, nil
	}
}

// failWith returns a step that always fails with err.
func failWith(err error) Step[int, int] {
	return func(_ context.Context, _ int) (int, error) {
		return 0, err
	}
}

// after delays a step by d, respecting context cancellation.
func after(d time.Duration, step Step[int, int]) Step[int, int] {
	return Then(Sleep[int](d), step)
}

// ==== Test Helpers: Schemas ====

// positive accepts integers greater than zero.
var positive = SchemaFunc[int](func(n int) (int, error) {
	if n <= 0 {
		return 0, NewValidationError("number must be positive", nil,
			Issue{Message: "must be greater than zero"})
	}
	return n, nil
})

// atMost rejects integers above limit.
func atMost(limit int) SchemaFunc[int] {
	return func(n int) (int, error) {
		if n > limit {
			return 0, NewValidationError("number too large", nil,
				Issue{Message: "exceeds limit"})
		}
		return n, nil
	}
}
