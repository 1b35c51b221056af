// SPDX-License-Identifier: Apache-2.0

package flow

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Parallel runs every step concurrently with the same input and collects
// their outputs in step order, not completion order.
//
// Parallel is the same as [ParallelWith] with empty [Options].
func Parallel[In, Out any](steps ...Step[In, Out]) Step[In, []Out] {
	return ParallelWith(Options[In, []Out]{}, steps...)
}

// ParallelWith runs every step concurrently with validation options.
//
// The composed step fails as soon as the earliest failure is known; it
// does not wait for the remaining steps to settle. In-flight steps are
// not cancelled — they run to completion in the background and their
// outcomes are discarded. Callers who need cancellation can have their
// steps derive a cancellable context.
//
// A failing step's validation error gets "<label>[<index>]" prepended to
// its FlowContext, label default "parallel". A nil step is reported as an
// error, with its index, before any step is started.
func ParallelWith[In, Out any](opts Options[In, []Out], steps ...Step[In, Out]) Step[In, []Out] {
	label := opts.Label
	if label == "" {
		label = "parallel"
	}
	run := func(ctx context.Context, in In) ([]Out, error) {
		for i, step := range steps {
			if step == nil {
				return nil, fmt.Errorf("%s: step at index %d is nil", label, i)
			}
		}
		type settled struct {
			index int
			out   Out
			err   error
		}
		// Buffered so stragglers can settle after an early return.
		settle := make(chan settled, len(steps))
		for i, step := range steps {
			go func() {
				out, err := step(ctx, in)
				settle <- settled{index: i, out: out, err: err}
			}()
		}
		outs := make([]Out, len(steps))
		for range steps {
			s := <-settle
			if s.err != nil {
				return nil, annotate(s.err, fmt.Sprintf("%s[%d]", label, s.index))
			}
			outs[s.index] = s.out
		}
		return outs, nil
	}
	return maybeSchema(run, opts, label)
}

// ParallelJoin runs every step concurrently with the same input, waits
// for all of them to settle, and joins every failure with [errors.Join].
//
// Unlike [Parallel], no outcome is discarded: slow steps are always
// waited for, and a caller inspecting the joined error sees each failing
// index. On success the outputs are in step order.
func ParallelJoin[In, Out any](steps ...Step[In, Out]) Step[In, []Out] {
	return func(ctx context.Context, in In) ([]Out, error) {
		for i, step := range steps {
			if step == nil {
				return nil, fmt.Errorf("parallel: step at index %d is nil", i)
			}
		}
		var group errgroup.Group
		outs := make([]Out, len(steps))
		errs := make([]error, len(steps))
		for i, step := range steps {
			group.Go(func() error {
				out, err := step(ctx, in)
				if err != nil {
					errs[i] = annotate(err, fmt.Sprintf("parallel[%d]", i))
					return nil
				}
				outs[i] = out
				return nil
			})
		}
		_ = group.Wait()
		if err := errors.Join(errs...); err != nil {
			return nil, err
		}
		return outs, nil
	}
}
