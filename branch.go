// SPDX-License-Identifier: Apache-2.0

package flow

import (
	"context"
)

// Branch dispatches to one of two steps based on a condition.
//
// Branch is the same as [BranchWith] with empty [Options].
//
// Example:
//
//	route := flow.Branch(
//	    IsPremium,      // Predicate[Order]
//	    ExpressProcess, // Step[Order, Receipt]
//	    BatchProcess,   // Step[Order, Receipt]
//	)
func Branch[In, Out any](
	condition Predicate[In],
	ifTrue Step[In, Out],
	ifFalse Step[In, Out],
) Step[In, Out] {
	return BranchWith(Options[In, Out]{}, condition, ifTrue, ifFalse)
}

// BranchWith dispatches to one of two steps with validation options.
//
// The condition is evaluated first, with the input; if it reports true
// the ifTrue step runs, otherwise ifFalse. Only the chosen step is ever
// invoked. A validation error raised by the condition or the chosen step
// gets the label (default "branch") prepended to its FlowContext.
//
// BranchWith panics if the condition or either step is nil.
func BranchWith[In, Out any](
	opts Options[In, Out],
	condition Predicate[In],
	ifTrue Step[In, Out],
	ifFalse Step[In, Out],
) Step[In, Out] {
	if condition == nil {
		panic("flow: Branch requires a condition")
	}
	if ifTrue == nil || ifFalse == nil {
		panic("flow: Branch requires both steps")
	}
	label := opts.Label
	if label == "" {
		label = "branch"
	}
	run := func(ctx context.Context, in In) (Out, error) {
		ok, err := condition(ctx, in)
		if err != nil {
			var zero Out
			return zero, annotate(err, label)
		}
		step := ifFalse
		if ok {
			step = ifTrue
		}
		out, err := step(ctx, in)
		if err != nil {
			var zero Out
			return zero, annotate(err, label)
		}
		return out, nil
	}
	return maybeSchema(run, opts, label)
}
