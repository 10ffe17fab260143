// SPDX-License-Identifier: MIT

package safearray

import (
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// NewCursor builds a cursor over a from an explicit triple: the addressed
// index pos, the number of legal forward steps ahead, and the window start
// origin. Behind() is derived as pos-origin.
//
// Errors (all ErrOutOfRange):
//   - pos < origin;
//   - origin < 0 or ahead < 0;
//   - pos+ahead >= a.Len(), i.e. the window would reach past the storage.
//
// ErrNilArray is returned for a nil or zero-value array.
func NewCursor[T any](a *Array[T], pos, ahead, origin int) (Cursor[T], error) {
	if a.isNil() {
		return Cursor[T]{}, errors.Wrap(ErrNilArray, "NewCursor")
	}
	if pos < origin {
		a.opts.logger.Debug("cursor position precedes origin",
			zap.Int("pos", pos), zap.Int("origin", origin))
		return Cursor[T]{}, errors.Wrapf(ErrOutOfRange, "NewCursor(pos=%d, ahead=%d, origin=%d): %s",
			pos, ahead, origin, msgReverse)
	}
	// pos >= origin >= 0 here, so pos+ahead cannot underflow.
	if origin < 0 || ahead < 0 || pos > a.Len()-1-ahead {
		a.opts.logger.Debug("cursor window exceeds storage",
			zap.Int("pos", pos), zap.Int("ahead", ahead),
			zap.Int("origin", origin), zap.Int("length", a.Len()))
		return Cursor[T]{}, errors.Wrapf(ErrOutOfRange, "NewCursor(pos=%d, ahead=%d, origin=%d): %s [0,%d)",
			pos, ahead, origin, msgWindow, a.Len())
	}

	return Cursor[T]{buf: a.buf, log: a.opts.logger, pos: pos, origin: origin, ahead: ahead}, nil
}

// Attached reports whether c was derived from an array.
func (c Cursor[T]) Attached() bool {
	return c.buf != nil
}

// Pos returns the absolute index c addresses in its array's storage.
func (c Cursor[T]) Pos() int {
	return c.pos
}

// Ahead returns how many steps c may still advance.
func (c Cursor[T]) Ahead() int {
	return c.ahead
}

// Behind returns how many steps c may still retreat; always Pos()-origin.
func (c Cursor[T]) Behind() int {
	return c.pos - c.origin
}

// SameOrigin reports whether c and other were derived from the same window
// of the same storage, the precondition for Distance and ordering.
func (c Cursor[T]) SameOrigin(other Cursor[T]) bool {
	return c.buf != nil && c.buf == other.buf && c.origin == other.origin
}

// Deref returns a pointer to the addressed element. Attached cursors always
// address a valid element.
func (c Cursor[T]) Deref() (*T, error) {
	if c.buf == nil {
		return nil, errors.Wrap(ErrDetached, "Cursor.Deref")
	}

	return &c.buf.data[c.pos], nil
}

// Load returns the addressed element.
func (c Cursor[T]) Load() (T, error) {
	p, err := c.Deref()
	if err != nil {
		var zero T
		return zero, err
	}

	return *p, nil
}

// Store writes v to the addressed element.
func (c Cursor[T]) Store(v T) error {
	p, err := c.Deref()
	if err != nil {
		return err
	}
	*p = v

	return nil
}

// Inc moves c one element forward and returns the moved cursor (++c).
// Fails with ErrOutOfRange "out of bounds ahead" when Ahead()==0.
func (c *Cursor[T]) Inc() (Cursor[T], error) {
	if err := c.Advance(1); err != nil {
		return *c, err
	}

	return *c, nil
}

// PostInc moves c one element forward and returns the cursor as it was
// before the move (c++).
func (c *Cursor[T]) PostInc() (Cursor[T], error) {
	prev := *c
	if err := c.Advance(1); err != nil {
		return prev, err
	}

	return prev, nil
}

// Dec moves c one element backward and returns the moved cursor (--c).
// Fails with ErrOutOfRange "out of bounds behind" when c is at its origin.
func (c *Cursor[T]) Dec() (Cursor[T], error) {
	if err := c.Retreat(1); err != nil {
		return *c, err
	}

	return *c, nil
}

// PostDec moves c one element backward and returns the cursor as it was
// before the move (c--).
func (c *Cursor[T]) PostDec() (Cursor[T], error) {
	prev := *c
	if err := c.Retreat(1); err != nil {
		return prev, err
	}

	return prev, nil
}

// Advance moves c forward by step elements (c += step).
// A negative step moves backward and is checked against Behind().
// On error c is unchanged.
func (c *Cursor[T]) Advance(step int) error {
	if c.buf == nil {
		return errors.Wrapf(ErrDetached, "Cursor.Advance(%d)", step)
	}
	switch {
	case step > c.ahead:
		return c.fail("Advance", step, msgAhead)
	case step < -c.Behind():
		return c.fail("Advance", step, msgBehind)
	}
	c.shift(step)

	return nil
}

// Retreat moves c backward by step elements (c -= step).
// A negative step moves forward and is checked against Ahead().
// On error c is unchanged.
func (c *Cursor[T]) Retreat(step int) error {
	if c.buf == nil {
		return errors.Wrapf(ErrDetached, "Cursor.Retreat(%d)", step)
	}
	switch {
	case step > c.Behind():
		return c.fail("Retreat", step, msgBehind)
	case step < -c.ahead:
		return c.fail("Retreat", step, msgAhead)
	}
	c.shift(-step)

	return nil
}

// Add returns a copy of c moved forward by step (c + step); c is untouched.
func (c Cursor[T]) Add(step int) (Cursor[T], error) {
	if err := c.Advance(step); err != nil {
		return Cursor[T]{}, err
	}

	return c, nil
}

// Sub returns a copy of c moved backward by step (c - step); c is untouched.
func (c Cursor[T]) Sub(step int) (Cursor[T], error) {
	if err := c.Retreat(step); err != nil {
		return Cursor[T]{}, err
	}

	return c, nil
}

// Offset is step + c, the commuted form of c.Add(step).
func Offset[T any](step int, c Cursor[T]) (Cursor[T], error) {
	return c.Add(step)
}

// String renders the cursor state, e.g. "Cursor(pos=2 ahead=5 behind=2)".
func (c Cursor[T]) String() string {
	if c.buf == nil {
		return "Cursor(detached)"
	}

	return fmt.Sprintf("Cursor(pos=%d ahead=%d behind=%d)", c.pos, c.ahead, c.Behind())
}

// shift applies an already validated move.
func (c *Cursor[T]) shift(delta int) {
	c.pos += delta
	c.ahead -= delta
}

func (c *Cursor[T]) fail(op string, step int, detail string) error {
	c.log.Debug("cursor move rejected",
		zap.String("op", op),
		zap.Int("step", step),
		zap.Int("ahead", c.ahead),
		zap.Int("behind", c.Behind()))

	return errors.Wrapf(ErrOutOfRange, "Cursor.%s(%d): %s", op, step, detail)
}
