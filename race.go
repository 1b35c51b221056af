// SPDX-License-Identifier: Apache-2.0

package flow

import (
	"context"
	"errors"
)

// Race runs every step concurrently with the same input and settles with
// whichever step settles first — success or failure alike.
//
// The slower steps' outcomes are discarded, not cancelled: they run to
// completion in the background. To impose a timeout, race the real work
// against a timer step:
//
//	result, err := flow.Race(
//	    FetchFromUpstream,
//	    flow.Then(flow.Sleep[Query](2*time.Second), Timeout),
//	)(ctx, query)
//
// Race takes no options and adds no error context; whatever the winning
// step returns is what the caller sees. Invoking a race with no steps, or
// one containing a nil step, fails with an error.
func Race[In, Out any](steps ...Step[In, Out]) Step[In, Out] {
	return func(ctx context.Context, in In) (Out, error) {
		var zero Out
		if len(steps) == 0 {
			return zero, errors.New("race: no steps to run")
		}
		for _, step := range steps {
			if step == nil {
				return zero, errors.New("race: steps contain a nil step")
			}
		}
		type settled struct {
			out Out
			err error
		}
		// Buffered so losers can settle after the winner is taken.
		settle := make(chan settled, len(steps))
		for _, step := range steps {
			go func() {
				out, err := step(ctx, in)
				settle <- settled{out: out, err: err}
			}()
		}
		first := <-settle
		return first.out, first.err
	}
}
