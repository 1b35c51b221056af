// SPDX-License-Identifier: Apache-2.0

package flow

import (
	"context"
	"fmt"
)

// Pipe composes steps sequentially, each receiving the previous step's
// output. The first step receives the pipeline input.
//
// Pipe is the same as [PipeWith] with empty [Options].
//
// Example:
//
//	normalize := flow.Pipe(
//	    TrimWhitespace,
//	    Lowercase,
//	    CollapseSpaces,
//	)
func Pipe[T any](steps ...Step[T, T]) Step[T, T] {
	return PipeWith(Options[T, T]{}, steps...)
}

// PipeWith composes steps sequentially with validation options.
//
// A step never starts before the previous step's result is available.
// When a step fails with a [*ValidationError], the pipe prepends
// "<label>[<index>]" to its FlowContext before returning, so nested
// failures read outside-in as a breadcrumb trail; any other error is
// returned verbatim. If the options carry schemas, the whole sequential
// composition — not each individual step — is wrapped per [WithSchema]
// under the pipe's label.
//
// PipeWith panics if called with no steps; a nil step is reported as an
// error, with its index, when the composed step is invoked.
func PipeWith[T any](opts Options[T, T], steps ...Step[T, T]) Step[T, T] {
	if len(steps) == 0 {
		panic("flow: Pipe requires at least one step")
	}
	label := opts.Label
	if label == "" {
		label = "pipe"
	}
	run := func(ctx context.Context, in T) (T, error) {
		current := in
		for i, step := range steps {
			if step == nil {
				var zero T
				return zero, fmt.Errorf("%s: step at index %d is nil", label, i)
			}
			out, err := step(ctx, current)
			if err != nil {
				var zero T
				return zero, annotate(err, fmt.Sprintf("%s[%d]", label, i))
			}
			current = out
		}
		return current, nil
	}
	return maybeSchema(run, opts, label)
}
