// SPDX-License-Identifier: Apache-2.0

package flow

import (
	"context"
	"fmt"
)

// parseStep builds a pass-through step that parses its input against a
// schema, stamping failures with the given origin label.
func parseStep[T any](schema Schema[T], label string) Step[T, T] {
	return func(_ context.Context, value T) (T, error) {
		parsed, err := schema.Parse(value)
		if err != nil {
			var zero T
			return zero, asValidation(err, label, value)
		}
		return parsed, nil
	}
}

// ValidateInput returns a step that checks a pipeline's incoming value.
//
// It is an ordinary [Step] and is typically placed first in a [Pipe] when
// only the entry value needs checking; for whole-composition validation
// use [Options].Input instead.
func ValidateInput[T any](schema Schema[T]) Step[T, T] {
	return parseStep(schema, "input")
}

// ValidateOutput returns a step that checks a pipeline's final value.
//
// Place it last in a [Pipe], or use [Options].Output for the composed
// equivalent.
func ValidateOutput[T any](schema Schema[T]) Step[T, T] {
	return parseStep(schema, "output")
}

// ValidateBetween returns a step that checks the value flowing between
// two named steps. The names appear in the failure's NodeContext so a
// mid-pipeline mismatch identifies its neighbors.
//
// Example:
//
//	flow.Pipe(
//	    Parse,
//	    flow.ValidateBetween(orderSchema, "parse", "enrich"),
//	    Enrich,
//	)
func ValidateBetween[T any](schema Schema[T], before, after string) Step[T, T] {
	return parseStep(schema, fmt.Sprintf("between %s and %s", before, after))
}

// ValidateCustom returns a step that applies an arbitrary check under the
// given label. The check's error is reported as a validation failure with
// the offending value as Received.
//
// Example:
//
//	nonEmpty := flow.ValidateCustom("order-lines", func(o Order) error {
//	    if len(o.Lines) == 0 {
//	        return errors.New("order has no lines")
//	    }
//	    return nil
//	})
func ValidateCustom[T any](label string, check func(T) error) Step[T, T] {
	return parseStep(SchemaFunc[T](func(value T) (T, error) {
		if err := check(value); err != nil {
			var zero T
			return zero, err
		}
		return value, nil
	}), label)
}
