// SPDX-License-Identifier: Apache-2.0

package flow

import (
	"context"
	"log/slog"
	"strings"
	"time"
)

type loggerKey struct{}

// Logger returns the [slog.Logger] from the context, or [slog.Default]
// if none was set with [WithLogger].
//
// Custom logging decorators can use it together with [StepNames]:
//
//	func Timed[In, Out any](step flow.Step[In, Out]) flow.Step[In, Out] {
//	    return func(ctx context.Context, in In) (Out, error) {
//	        flow.Logger(ctx).Info("step", "path", flow.StepNames(ctx))
//	        return step(ctx, in)
//	    }
//	}
func Logger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerKey{}).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return logger
}

// WithLogger configures a step and everything nested under it to use the
// given [slog.Logger].
//
// Apply it once at the root of a composition; [WithLogging] wrappers
// below it pick the logger up from the context.
func WithLogger[In, Out any](logger *slog.Logger, step Step[In, Out]) Step[In, Out] {
	return func(ctx context.Context, in In) (Out, error) {
		ctx = context.WithValue(ctx, loggerKey{}, logger)
		return step(ctx, in)
	}
}

// WithLogging wraps a step with start/finish log records at the given
// level, including the dotted [Named] path and the execution duration.
//
// Nothing in this package logs on its own; WithLogging is the opt-in
// surface for callers who want execution visibility.
//
// Example:
//
//	step := flow.Named("ingest",
//	    flow.WithLogging(slog.LevelInfo, ingest))
func WithLogging[In, Out any](level slog.Level, step Step[In, Out]) Step[In, Out] {
	return func(ctx context.Context, in In) (Out, error) {
		name := "<unnamed>"
		if names := StepNames(ctx); len(names) > 0 {
			name = strings.Join(names, ".")
		}
		logger := Logger(ctx)

		logger.Log(ctx, level, "starting step", "name", name)
		start := time.Now()
		out, err := step(ctx, in)
		logger.Log(ctx, level, "finished step",
			"name", name,
			"duration_ms", time.Since(start).Milliseconds(),
			"failed", err != nil)
		return out, err
	}
}
