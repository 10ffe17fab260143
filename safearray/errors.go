// SPDX-License-Identifier: MIT
// Package safearray: sentinel error set.
// Every public operation returns one of these sentinels, wrapped with the
// failing operation and its arguments. Callers match with errors.Is.
// Nothing in this package panics on user-triggered conditions; panics are
// reserved for nonsensical Option values (programmer error).

package safearray

import "github.com/pkg/errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "safearray: ..." so failures are easy to grep
// in logs. Call sites wrap with errors.Wrapf(ErrX, "Op(args): detail") and
// never return a bare fmt string.

var (
	// ErrOutOfRange is the range error: an index, step, length or position
	// would leave the legal window of a single array or cursor.
	ErrOutOfRange = errors.New("safearray: index out of range")

	// ErrRangeMismatch is returned when a binary cursor operation (Distance,
	// Greater, Less and the non-equal paths of GreaterEqual/LessEqual) is
	// attempted between cursors that do not share an origin.
	ErrRangeMismatch = errors.New("safearray: pointers provided are not within a correct range")

	// ErrNilArray indicates a nil *Array receiver or argument, or a zero-value
	// Array that was not built by New. Methods without an error result treat
	// such an array as empty instead.
	ErrNilArray = errors.New("safearray: nil array")

	// ErrDetached indicates an operation on the zero Cursor, which is not
	// bound to any array.
	ErrDetached = errors.New("safearray: cursor is not attached to an array")
)

// Diagnostic details attached to ErrOutOfRange.
const (
	msgLength  = "length provided is out of range of acceptable values"
	msgIndex   = "index is out of range"
	msgAhead   = "out of bounds ahead"
	msgBehind  = "out of bounds behind"
	msgWindow  = "window exceeds array storage"
	msgReverse = "position precedes origin"
)
