package ers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrors(t *testing.T) {
	t.Parallel()
	t.Run("Constant", func(t *testing.T) {
		const expected Error = "hello"
		err := fmt.Errorf("wrapped: %w", expected)
		assert.Equal(t, "wrapped: hello", err.Error())
		assert.ErrorIs(t, err, expected)
		assert.NotErrorIs(t, err, Error("goodbye"))
		assert.True(t, Error("").Is(nil))
		assert.False(t, Error("x").Is(nil))
		assert.False(t, Error("x").Is(io.EOF))
	})
	t.Run("Predicates", func(t *testing.T) {
		assert.True(t, IsExhausted(io.EOF))
		assert.True(t, IsExhausted(fmt.Errorf("end: %w", io.EOF)))
		assert.True(t, IsExhausted(ErrCurrentOpAbort))
		assert.False(t, IsExhausted(context.Canceled))
		assert.False(t, IsExhausted(nil))

		assert.True(t, IsExpiredContext(context.Canceled))
		assert.True(t, IsExpiredContext(errors.Join(Error("beep"), context.DeadlineExceeded)))
		assert.False(t, IsExpiredContext(io.EOF))

		assert.True(t, IsTerminating(io.EOF))
		assert.True(t, IsTerminating(context.Canceled))
		assert.False(t, IsTerminating(Error("boom")))
		assert.False(t, IsTerminating(nil))
	})
	t.Run("Is", func(t *testing.T) {
		assert.True(t, Is(ErrAlreadyStarted, io.EOF, ErrAlreadyStarted))
		assert.False(t, Is(nil, io.EOF))
		assert.False(t, Is(ErrPoolClosed))
	})
}

func TestPanics(t *testing.T) {
	t.Parallel()
	t.Run("ParseNil", func(t *testing.T) {
		assert.NoError(t, ParsePanic(nil))
	})
	t.Run("ParseString", func(t *testing.T) {
		err := ParsePanic("kaboom")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrRecoveredPanic)
		assert.Contains(t, err.Error(), "kaboom")
		assert.NotEmpty(t, Stack(err))
	})
	t.Run("ParseError", func(t *testing.T) {
		const root Error = "root cause"
		err := ParsePanic(root)
		assert.ErrorIs(t, err, ErrRecoveredPanic)
		assert.ErrorIs(t, err, root)
	})
	t.Run("StackOfPlainError", func(t *testing.T) {
		assert.Empty(t, Stack(io.EOF))
	})
	t.Run("WithRecoverCall", func(t *testing.T) {
		err := WithRecoverCall(func() error { panic("oops") })
		assert.ErrorIs(t, err, ErrRecoveredPanic)

		err = WithRecoverCall(func() error { return io.EOF })
		assert.Equal(t, io.EOF, err)

		assert.NoError(t, WithRecoverCall(func() error { return nil }))
	})
	t.Run("Recover", func(t *testing.T) {
		var seen error
		func() {
			defer Recover(func(err error) { seen = err })
			panic("recovered")
		}()
		assert.ErrorIs(t, seen, ErrRecoveredPanic)
	})
	t.Run("Invariant", func(t *testing.T) {
		assert.NotPanics(t, func() { Invariant(true, "fine") })

		defer func() {
			r := recover()
			require.True(t, IsInvariantViolation(r))
			assert.Contains(t, r.(error).Error(), "step must be positive, got 0")
		}()
		Invariant(false, "step must be positive, got %d", 0)
	})
	t.Run("IsInvariantViolation", func(t *testing.T) {
		assert.False(t, IsInvariantViolation(nil))
		assert.False(t, IsInvariantViolation("string"))
		assert.False(t, IsInvariantViolation(io.EOF))
		assert.True(t, IsInvariantViolation(ErrInvariantViolation))
	})
}
