// SPDX-License-Identifier: Apache-2.0

package flow

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// A Schema validates a value, returning the validated (possibly coerced)
// value on success.
//
// Schema is the only contract this package has with validation: any
// library able to parse a value and report structured issues can be
// adapted to it. On failure, implementations should return a
// [*ValidationError] carrying the issues; any other error is converted
// into a ValidationError with a single issue holding its message.
type Schema[T any] interface {
	Parse(value T) (T, error)
}

// SchemaFunc adapts a plain function to the [Schema] interface.
type SchemaFunc[T any] func(T) (T, error)

// Parse implements [Schema].
func (f SchemaFunc[T]) Parse(value T) (T, error) {
	return f(value)
}

// An Issue is a single structured finding from a schema check.
type Issue struct {
	// Path locates the offending value as a trail of property keys.
	// Empty for issues about the value as a whole.
	Path []string `json:"path,omitempty"`

	// Message describes what was wrong.
	Message string `json:"message"`
}

// A ValidationError reports that a value failed a schema check.
//
// It records the raw value that was received, the ordered issues from the
// schema, the label of the step at which the failure originated
// (NodeContext), and the outside-in trail of enclosing composition labels
// (FlowContext) accumulated as the error crosses [Pipe], [Parallel], and
// [Branch] boundaries.
//
// Detect it with [errors.As]:
//
//	var verr *flow.ValidationError
//	if errors.As(err, &verr) {
//	    log.Printf("failed at %s via %v", verr.NodeContext, verr.FlowContext)
//	}
//
// A ValidationError is never mutated once returned to a caller. Enclosing
// primitives annotate by cloning, so two branches of a [Parallel] can
// never race on the same error value.
type ValidationError struct {
	// Message is the human-readable summary.
	Message string

	// Issues is the ordered issue list from the schema check.
	Issues []Issue

	// Received is the raw value that failed the check.
	Received any

	// NodeContext is the label of the step where the failure originated.
	NodeContext string

	// FlowContext is the outside-in trail of composition labels, e.g.
	// ["outer[1]", "inner[0]"].
	FlowContext []string
}

// NewValidationError constructs a ValidationError from a message, the
// value that failed, and the issues found.
//
// Schema implementations built on [SchemaFunc] typically use this to
// report failures.
func NewValidationError(message string, received any, issues ...Issue) *ValidationError {
	return &ValidationError{
		Message:  message,
		Issues:   issues,
		Received: received,
	}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if e.NodeContext != "" {
		fmt.Fprintf(&b, " (at %s)", e.NodeContext)
	}
	if len(e.FlowContext) > 0 {
		fmt.Fprintf(&b, " [flow: %s]", strings.Join(e.FlowContext, " -> "))
	}
	for _, issue := range e.Issues {
		b.WriteString("\n  - ")
		if len(issue.Path) > 0 {
			fmt.Fprintf(&b, "%s: ", strings.Join(issue.Path, "."))
		}
		b.WriteString(issue.Message)
	}
	return b.String()
}

// clone returns a copy with its own context slices, so annotations on the
// copy cannot alias the original.
func (e *ValidationError) clone() *ValidationError {
	clone := *e
	clone.Issues = append([]Issue(nil), e.Issues...)
	clone.FlowContext = append([]string(nil), e.FlowContext...)
	return &clone
}

// annotate prepends one flow-context entry to a validation error,
// returning a new error value. Non-validation errors pass through
// untouched; they deliberately do not participate in the breadcrumb
// scheme.
func annotate(err error, entry string) error {
	var verr *ValidationError
	if !errors.As(err, &verr) {
		return err
	}
	clone := verr.clone()
	clone.FlowContext = append([]string{entry}, clone.FlowContext...)
	return clone
}

// asValidation coerces a schema failure into a *ValidationError with the
// given origin label and received value. Errors that already are
// validation errors are cloned and given the label; anything else becomes
// a fresh ValidationError with a single issue.
func asValidation(err error, label string, received any) *ValidationError {
	var verr *ValidationError
	if errors.As(err, &verr) {
		clone := verr.clone()
		clone.NodeContext = label
		if clone.Received == nil {
			clone.Received = received
		}
		return clone
	}
	return &ValidationError{
		Message:     err.Error(),
		Issues:      []Issue{{Message: err.Error()}},
		Received:    received,
		NodeContext: label,
	}
}

// Options configures optional schema validation for a composed step.
//
// All fields are optional. A nil Input or Output schema disables that
// check; an empty Label falls back to the owning primitive's default
// ("pipe", "parallel", "branch", or "anonymous" for a bare [WithSchema]).
//
// An Options value is read at composition time only and holds no
// invocation state, so a composed step built from it remains safe for
// concurrent invocation.
type Options[In any, Out any] struct {
	// Input validates the input before the step runs.
	Input Schema[In]

	// Output validates the step's result.
	Output Schema[Out]

	// Label identifies this composition in error context.
	Label string
}

// WithSchema wraps a step with optional input and output validation.
//
// If an input schema is configured and the input fails it, the step is
// never invoked and the returned error is a [*ValidationError] whose
// NodeContext is the label and whose Received is the raw input. The step
// otherwise runs with the validated (possibly coerced) input.
//
// If the step itself fails with a validation error, its NodeContext is
// filled in with the label only when a deeper step has not already set
// one; the error is otherwise passed through unchanged. Any other step
// failure is replaced by a generic error that embeds the label and the
// original message as text — the original error value is not preserved.
//
// If an output schema is configured and the result fails it, the returned
// validation error carries the actual output as Received.
//
// With no schemas configured, WithSchema returns a step that behaves
// exactly like the original apart from the error labeling above.
func WithSchema[In, Out any](step Step[In, Out], opts Options[In, Out]) Step[In, Out] {
	label := opts.Label
	if label == "" {
		label = "anonymous"
	}
	return func(ctx context.Context, in In) (Out, error) {
		var zero Out
		if opts.Input != nil {
			parsed, err := opts.Input.Parse(in)
			if err != nil {
				return zero, asValidation(err, label, in)
			}
			in = parsed
		}
		out, err := step(ctx, in)
		if err != nil {
			var verr *ValidationError
			if errors.As(err, &verr) {
				if verr.NodeContext != "" {
					return zero, err
				}
				clone := verr.clone()
				clone.NodeContext = label
				return zero, clone
			}
			return zero, fmt.Errorf("step %q failed: %v", label, err)
		}
		if opts.Output != nil {
			parsed, err := opts.Output.Parse(out)
			if err != nil {
				return zero, asValidation(err, label, out)
			}
			out = parsed
		}
		return out, nil
	}
}

// maybeSchema wraps run per the options, using the primitive's resolved
// label, and skips the wrapper entirely when no schemas are configured.
func maybeSchema[In, Out any](run Step[In, Out], opts Options[In, Out], label string) Step[In, Out] {
	if opts.Input == nil && opts.Output == nil {
		return run
	}
	opts.Label = label
	return WithSchema(run, opts)
}
