// SPDX-License-Identifier: MIT

package safearray

import "github.com/pkg/errors"

// Distance returns lhs.Pos()-rhs.Pos(), the signed number of elements from
// rhs to lhs. Returns ErrRangeMismatch unless both share an origin.
func Distance[T any](lhs, rhs Cursor[T]) (int, error) {
	if err := sameOrigin("Distance", lhs, rhs); err != nil {
		return 0, err
	}

	return lhs.pos - rhs.pos, nil
}

// Equal reports whether lhs and rhs address the same element. Unlike the
// ordering functions it never fails: cursors of different arrays are simply
// unequal.
func Equal[T any](lhs, rhs Cursor[T]) bool {
	return lhs.buf == rhs.buf && lhs.pos == rhs.pos
}

// Greater reports lhs > rhs. Returns ErrRangeMismatch unless both share an
// origin.
func Greater[T any](lhs, rhs Cursor[T]) (bool, error) {
	if err := sameOrigin("Greater", lhs, rhs); err != nil {
		return false, err
	}

	return lhs.pos > rhs.pos, nil
}

// Less reports lhs < rhs, defined as Greater(rhs, lhs).
func Less[T any](lhs, rhs Cursor[T]) (bool, error) {
	return Greater(rhs, lhs)
}

// GreaterEqual reports lhs >= rhs. Equal cursors yield true without an
// origin check; otherwise it is Greater(lhs, rhs).
func GreaterEqual[T any](lhs, rhs Cursor[T]) (bool, error) {
	if Equal(lhs, rhs) {
		return true, nil
	}

	return Greater(lhs, rhs)
}

// LessEqual reports lhs <= rhs. Equal cursors yield true without an origin
// check; otherwise it is Less(lhs, rhs).
func LessEqual[T any](lhs, rhs Cursor[T]) (bool, error) {
	if Equal(lhs, rhs) {
		return true, nil
	}

	return Less(lhs, rhs)
}

// Compare returns -1, 0 or +1 as lhs is before, at or after rhs.
// Returns ErrRangeMismatch unless both share an origin.
func Compare[T any](lhs, rhs Cursor[T]) (int, error) {
	d, err := Distance(lhs, rhs)
	if err != nil {
		return 0, err
	}
	switch {
	case d < 0:
		return -1, nil
	case d > 0:
		return 1, nil
	}

	return 0, nil
}

func sameOrigin[T any](op string, lhs, rhs Cursor[T]) error {
	if lhs.buf == nil || rhs.buf == nil {
		return errors.Wrap(ErrDetached, op)
	}
	if !lhs.SameOrigin(rhs) {
		lhs.log.Debug("cursor origin mismatch")
		return errors.Wrapf(ErrRangeMismatch, "%s(%v, %v)", op, lhs, rhs)
	}

	return nil
}
