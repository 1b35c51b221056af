// SPDX-License-Identifier: Apache-2.0

package flow

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecoverPanics(t *testing.T) {
	t.Parallel()

	t.Run("ConvertsPanicToError", func(t *testing.T) {
		t.Parallel()
		step := RecoverPanics(func(_ context.Context, _ int) (int, error) {
			panic("kaboom")
		})

		_, err := step(t.Context(), 0)
		var recovered *RecoveredPanic
		require.ErrorAs(t, err, &recovered)
		assert.Equal(t, "kaboom", recovered.Value)
	})

	t.Run("PassesThroughSuccess", func(t *testing.T) {
		t.Parallel()
		out, err := RecoverPanics(add(1))(t.Context(), 1)
		require.NoError(t, err)
		assert.Equal(t, 2, out)
	})

	t.Run("PassesThroughErrors", func(t *testing.T) {
		t.Parallel()
		_, err := RecoverPanics(failWith(errBoom))(t.Context(), 0)
		require.ErrorIs(t, err, errBoom)
	})
}

func TestOnError(t *testing.T) {
	t.Parallel()

	t.Run("SuccessSkipsHandler", func(t *testing.T) {
		t.Parallel()
		handled := false
		step := OnError(add(1), func(_ context.Context, _ int, _ error) (Step[int, int], error) {
			handled = true
			return nil, nil
		})
		out, err := step(t.Context(), 1)
		require.NoError(t, err)
		assert.Equal(t, 2, out)
		assert.False(t, handled)
	})

	t.Run("FallbackRunsWithOriginalInput", func(t *testing.T) {
		t.Parallel()
		step := OnError(failWith(errBoom), FallbackTo(mul(10)))
		out, err := step(t.Context(), 7)
		require.NoError(t, err)
		assert.Equal(t, 70, out)
	})

	t.Run("NilFallbackPropagatesOriginalError", func(t *testing.T) {
		t.Parallel()
		step := OnError(failWith(errBoom), func(_ context.Context, _ int, _ error) (Step[int, int], error) {
			return nil, nil
		})
		_, err := step(t.Context(), 0)
		require.ErrorIs(t, err, errBoom)
	})

	t.Run("HandlerErrorReplacesOriginal", func(t *testing.T) {
		t.Parallel()
		step := OnError(failWith(errBoom), func(_ context.Context, _ int, _ error) (Step[int, int], error) {
			return nil, errCondition
		})
		_, err := step(t.Context(), 0)
		require.ErrorIs(t, err, errCondition)
		assert.False(t, errors.Is(err, errBoom))
	})

	t.Run("RoutesByErrorKind", func(t *testing.T) {
		t.Parallel()
		step := OnError(
			Pipe(ValidateInput[int](positive)),
			func(_ context.Context, _ int, err error) (Step[int, int], error) {
				var verr *ValidationError
				if errors.As(err, &verr) {
					return Value[int](0), nil
				}
				return nil, nil
			},
		)
		out, err := step(t.Context(), -9)
		require.NoError(t, err)
		assert.Equal(t, 0, out)
	})
}
