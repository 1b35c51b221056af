// SPDX-License-Identifier: Apache-2.0

package flow

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithLogging(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	step := WithLogger(logger,
		Named("process",
			WithLogging(slog.LevelInfo, add(1))))

	out, err := step(t.Context(), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, out)

	logs := buf.String()
	assert.Contains(t, logs, "starting step")
	assert.Contains(t, logs, "finished step")
	assert.Contains(t, logs, "name=process")
	assert.Contains(t, logs, "failed=false")
}

func TestWithLoggingNestedNames(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	step := WithLogger(logger,
		Named("outer",
			Pipe(
				Named("inner",
					WithLogging(slog.LevelInfo, add(1))))))

	_, err := step(t.Context(), 0)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "name=outer.inner")
}

func TestWithLoggingUnnamed(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	step := WithLogger(logger, WithLogging(slog.LevelInfo, add(1)))
	_, err := step(t.Context(), 0)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "name=<unnamed>")
}

func TestWithLoggingRecordsFailure(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	step := WithLogger(logger, WithLogging(slog.LevelInfo, failWith(errBoom)))
	_, err := step(t.Context(), 0)
	require.ErrorIs(t, err, errBoom)
	assert.Contains(t, buf.String(), "failed=true")
}

func TestLoggerDefault(t *testing.T) {
	t.Parallel()
	assert.Equal(t, slog.Default(), Logger(t.Context()))
}

func TestWithLoggingEmitsTwoRecords(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	step := WithLogger(logger, WithLogging(slog.LevelInfo, add(1)))
	_, err := step(t.Context(), 0)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)
}
