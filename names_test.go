// SPDX-License-Identifier: Apache-2.0

package flow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamedWrapsErrors(t *testing.T) {
	t.Parallel()

	step := Named("ingest", failWith(errBoom))
	_, err := step(t.Context(), 0)

	var named NamedError
	require.ErrorAs(t, err, &named)
	assert.Equal(t, "ingest", named.Name)
	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, "ingest: boom", err.Error())
}

func TestNamedSuccessUnwrapped(t *testing.T) {
	t.Parallel()

	out, err := Named("ingest", add(1))(t.Context(), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, out)
}

func TestStepNamesStack(t *testing.T) {
	t.Parallel()

	var seen []string
	capture := func(ctx context.Context, v int) (int, error) {
		seen = StepNames(ctx)
		return v, nil
	}

	step := Named("outer", Pipe(Named("inner", capture)))
	_, err := step(t.Context(), 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"outer", "inner"}, seen)
}

func TestStepNamesEmpty(t *testing.T) {
	t.Parallel()
	assert.Nil(t, StepNames(t.Context()))
}

func TestStepNamesReturnsCopy(t *testing.T) {
	t.Parallel()

	step := Named("a", func(ctx context.Context, v int) (int, error) {
		names := StepNames(ctx)
		names[0] = "mutated"
		assert.Equal(t, []string{"a"}, StepNames(ctx))
		return v, nil
	})
	_, err := step(t.Context(), 0)
	require.NoError(t, err)
}

func TestNestedNamedErrors(t *testing.T) {
	t.Parallel()

	step := Named("outer", Named("inner", failWith(errBoom)))
	_, err := step(t.Context(), 0)
	require.Error(t, err)
	assert.Equal(t, "outer: inner: boom", err.Error())
}
