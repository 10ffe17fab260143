package cstr_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/katalvlaran/boundmem/cstr"
	"github.com/katalvlaran/boundmem/safearray"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustString(t *testing.T, s string, length int) *safearray.Array[byte] {
	t.Helper()
	a, err := cstr.FromString(s, length)
	require.NoError(t, err)

	return a
}

// TestFromString checks layout and terminator padding.
func TestFromString(t *testing.T) {
	a := mustString(t, "hello", 8)
	require.Equal(t, 8, a.Len())
	require.Equal(t, []byte{'h', 'e', 'l', 'l', 'o', 0, 0, 0}, a.Values())

	_, err := cstr.FromString("toolong", 3)
	require.ErrorIs(t, err, safearray.ErrOutOfRange)

	_, err = cstr.FromString("x", 0)
	require.ErrorIs(t, err, safearray.ErrOutOfRange)
}

// TestWriteToStopsAtTerminator reproduces the print loop of the demo program.
func TestWriteToStopsAtTerminator(t *testing.T) {
	var buf bytes.Buffer
	n, err := cstr.WriteTo(&buf, mustString(t, "hello", 8))
	require.NoError(t, err)
	require.EqualValues(t, 5, n)
	require.Equal(t, "hello", buf.String())

	// A full array without terminator prints every element.
	require.Equal(t, "abc", cstr.String(mustString(t, "abc", 3)))
	require.Equal(t, "", cstr.String(mustString(t, "", 4)))
}

// failWriter fails every write.
type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("boom") }

// TestWriteToPropagatesWriterError ensures writer failures surface.
func TestWriteToPropagatesWriterError(t *testing.T) {
	_, err := cstr.WriteTo(failWriter{}, mustString(t, "hi", 4))
	require.EqualError(t, err, "boom")
}

// TestCopy checks prefix copying in both size directions.
func TestCopy(t *testing.T) {
	src := mustString(t, "abcdef", 6)
	short := mustString(t, "", 3)
	n, err := cstr.Copy(short, src)
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, "abc", cstr.String(short))

	long := mustString(t, "zzzzzzzzz", 9)
	n, err = cstr.Copy(long, src)
	require.NoError(t, err)
	require.Equal(t, 6, n)
	require.Equal(t, "abcdefzzz", cstr.String(long))
}

// TestNilArrays ensures nil arrays are reported or treated as empty, never
// dereferenced.
func TestNilArrays(t *testing.T) {
	a := mustString(t, "hi", 4)

	n, err := cstr.Copy(nil, a)
	require.ErrorIs(t, err, safearray.ErrNilArray)
	require.Zero(t, n)
	n, err = cstr.Copy(a, nil)
	require.ErrorIs(t, err, safearray.ErrNilArray)
	require.Zero(t, n)
	require.Equal(t, "hi", cstr.String(a))

	var buf bytes.Buffer
	_, err = cstr.WriteTo(&buf, nil)
	require.ErrorIs(t, err, safearray.ErrNilArray)
	require.Empty(t, buf.String())
	require.Equal(t, "", cstr.String(nil))

	assert.False(t, cstr.Equal(nil, a))
	assert.False(t, cstr.Equal(a, nil))
	assert.False(t, cstr.Equal(nil, nil))
	assert.False(t, cstr.EqualIndexed(nil, a))
	assert.False(t, cstr.EqualIndexed(nil, nil))
}

// TestStructuralEquality compares copies, different content and different lengths.
func TestStructuralEquality(t *testing.T) {
	a := mustString(t, "hello", 8)
	cases := []struct {
		name string
		b    *safearray.Array[byte]
		want bool
	}{
		{"Clone", a.Clone(), true},
		{"Self", a, true},
		{"DifferentContent", mustString(t, "hellp", 8), false},
		{"DifferentLength", mustString(t, "hello", 9), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, cstr.Equal(a, tc.b))
			assert.Equal(t, tc.want, cstr.EqualIndexed(a, tc.b))
		})
	}
}

// TestEqualFrom covers lock-step walking, mismatches and missing terminators.
func TestEqualFrom(t *testing.T) {
	a := mustString(t, "hello", 8)
	b := mustString(t, "hello", 6)

	ok, err := cstr.EqualFrom(a.Begin(), b.Begin())
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = cstr.EqualFrom(a.Begin(), mustString(t, "help", 8).Begin())
	require.NoError(t, err)
	require.False(t, ok)

	// Equal suffixes starting at different offsets.
	s, err := a.Advance(3)
	require.NoError(t, err)
	u := mustString(t, "xlo", 4)
	tu, err := u.Advance(1)
	require.NoError(t, err)
	ok, err = cstr.EqualFrom(s, tu)
	require.NoError(t, err)
	require.True(t, ok)

	// No terminator in either array: the walk hits the window edge.
	full := mustString(t, "abc", 3)
	_, err = cstr.EqualFrom(full.Begin(), full.Clone().Begin())
	require.ErrorIs(t, err, safearray.ErrOutOfRange)
	assert.Contains(t, err.Error(), "out of bounds ahead")

	var detached safearray.Cursor[byte]
	_, err = cstr.EqualFrom(detached, a.Begin())
	require.ErrorIs(t, err, safearray.ErrDetached)
}
