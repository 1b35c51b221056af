// SPDX-License-Identifier: Apache-2.0

// Package flow provides composable control-flow primitives for building
// pipelines from independent asynchronous steps: sequential composition,
// fan-out parallelism, conditional branching, first-settled racing, and
// bounded iterative looping — plus an optional schema-validation layer
// that attaches to any composition.
//
// # The Problem
//
// Pipelines assembled by hand accumulate the same scaffolding over and
// over: goroutines and channels for fan-out, loops with iteration guards,
// conditionals interleaved with business logic, and ad-hoc error wrapping
// that makes a failure three compositions deep impossible to attribute.
// Flow keeps each unit of work a plain function and moves the control
// flow, the concurrency, and the error attribution into a handful of
// combinators.
//
// # Core Concepts
//
// [Step] is the fundamental building block — a failable, cancelable unary
// transform:
//
//	type Step[In, Out any] = func(context.Context, In) (Out, error)
//
// Every primitive accepts steps and returns a Step, so compositions nest
// arbitrarily and the result is always callable the same way:
//
//	process := flow.Pipe(
//	    Normalize,
//	    Enrich,
//	    Persist,
//	)
//	out, err := process(ctx, order)
//
// The five primitives:
//
//   - [Pipe] runs steps in order, each receiving the previous output.
//   - [Parallel] runs steps concurrently on one shared input and returns
//     their outputs in step order, failing fast on the earliest failure.
//   - [Branch] evaluates a [Predicate] and runs exactly one of two steps.
//   - [Race] settles with whichever step settles first, success or
//     failure.
//   - [Cycle] repeatedly applies a body while a condition holds, failing
//     once a configurable iteration bound is reached.
//
// [Then] covers typed pipelines whose value type changes mid-stream, and
// none of the primitives cancel losing or discarded steps — those run to
// completion in the background with their results dropped.
//
// # Validation
//
// Any composition can be built with [Options] carrying input and output
// schemas, or wrapped directly with [WithSchema]. A [Schema] is a minimal
// capability — parse a value or report structured issues — so any
// validation library can be adapted to it; [SchemaFunc] adapts a plain
// function.
//
// Failures surface as [*ValidationError] values that record what was
// received, the schema's issues, the label of the originating step, and
// an outside-in breadcrumb trail of enclosing composition labels:
//
//	var verr *flow.ValidationError
//	if errors.As(err, &verr) {
//	    // verr.FlowContext e.g. ["outer[1]", "inner[0]"]
//	}
//
// [ValidateInput], [ValidateOutput], [ValidateBetween], and
// [ValidateCustom] produce single-purpose checking steps usable anywhere
// an ordinary step is.
//
// # Error Handling
//
// Non-validation errors propagate verbatim through the primitives.
// [OnError] routes failures to fallback steps, [RecoverPanics] converts
// panics into errors, and [Named] plus [WithLogging] add opt-in
// identification and structured logging; the package itself never logs.
//
// Flow performs no retry, backoff, caching, or scheduling of its own —
// wrap the primitives with your own steps for those concerns.
package flow
