// SPDX-License-Identifier: MIT
package safearray_test

import (
	"testing"

	"github.com/katalvlaran/boundmem/safearray"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// TestOptionPanics guards the programmer-error paths of the With* constructors.
func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { safearray.WithMinLength(0) })
	require.Panics(t, func() { safearray.WithMaxLength(-3) })
	require.Panics(t, func() { safearray.WithLogger(nil) })
}

// TestCustomBounds checks that overridden bounds replace 1..300.
func TestCustomBounds(t *testing.T) {
	opts := []safearray.Option{safearray.WithMinLength(4), safearray.WithMaxLength(1000)}

	_, err := safearray.New[int](3, opts...)
	require.ErrorIs(t, err, safearray.ErrOutOfRange)

	a, err := safearray.New[int](1000, opts...)
	require.NoError(t, err)
	require.Equal(t, 1000, a.Len())

	_, err = safearray.New[int](1001, opts...)
	require.ErrorIs(t, err, safearray.ErrOutOfRange)

	// Clone keeps the bounds: assigning a 2-element array is rejected.
	small, err := safearray.New[int](2)
	require.NoError(t, err)
	require.ErrorIs(t, a.Clone().Assign(small), safearray.ErrOutOfRange)
}

// TestLastOptionWins checks ordering semantics of repeated options.
func TestLastOptionWins(t *testing.T) {
	_, err := safearray.New[int](50, safearray.WithMaxLength(10), safearray.WithMaxLength(60))
	require.NoError(t, err)
}

// TestMinAboveMaxRejectsEverything documents the degenerate configuration.
func TestMinAboveMaxRejectsEverything(t *testing.T) {
	for _, n := range []int{1, 5, 10} {
		_, err := safearray.New[int](n, safearray.WithMinLength(8), safearray.WithMaxLength(4))
		require.ErrorIs(t, err, safearray.ErrOutOfRange)
	}
}

// TestLoggerReceivesViolations ensures bounds violations are logged at Debug
// on the configured logger and inherited by cursors.
func TestLoggerReceivesViolations(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := zap.New(core)

	_, err := safearray.New[int](0, safearray.WithLogger(log))
	require.Error(t, err)
	require.Equal(t, 1, logs.FilterMessage("rejected array length").Len())

	a, err := safearray.New[int](3, safearray.WithLogger(log))
	require.NoError(t, err)
	_, err = a.At(3)
	require.Error(t, err)

	entries := logs.FilterMessage("index out of range").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	require.Equal(t, "At", fields["op"])
	require.EqualValues(t, 3, fields["index"])
	require.EqualValues(t, 3, fields["length"])

	c := a.Begin()
	_, err = c.Dec()
	require.Error(t, err)
	require.Equal(t, 1, logs.FilterMessage("cursor move rejected").Len())

	// Clone shares the logger.
	_, err = a.Clone().At(-1)
	require.Error(t, err)
	require.Equal(t, 2, logs.FilterMessage("index out of range").Len())
}
