// SPDX-License-Identifier: MIT

package safearray

import (
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// New creates an Array of length zero-valued elements.
// Returns ErrOutOfRange if length is outside [minLength, maxLength]
// (1..300 by default, see WithMinLength / WithMaxLength).
// Complexity: O(length) time and memory.
func New[T any](length int, opts ...Option) (*Array[T], error) {
	o := gatherOptions(opts...)
	if !o.inBounds(length) {
		o.logger.Debug("rejected array length",
			zap.Int("length", length),
			zap.Int("min", o.minLength),
			zap.Int("max", o.maxLength))
		return nil, errors.Wrapf(ErrOutOfRange, "New(%d): %s [%d,%d]",
			length, msgLength, o.minLength, o.maxLength)
	}

	return &Array[T]{buf: &region[T]{data: make([]T, length)}, opts: o}, nil
}

// FromSlice creates an Array holding a copy of vals.
// The length len(vals) is validated exactly like New.
func FromSlice[T any](vals []T, opts ...Option) (*Array[T], error) {
	a, err := New[T](len(vals), opts...)
	if err != nil {
		return nil, err
	}
	copy(a.buf.data, vals)

	return a, nil
}

// Len returns the fixed length of the array, or 0 for a nil or zero-value
// Array.
// Complexity: O(1).
func (a *Array[T]) Len() int {
	if a.isNil() {
		return 0
	}

	return len(a.buf.data)
}

// At returns the element at index i.
// Returns ErrOutOfRange if i < 0 or i >= Len().
func (a *Array[T]) At(i int) (T, error) {
	if err := a.check("At", i); err != nil {
		var zero T
		return zero, err
	}

	return a.buf.data[i], nil
}

// Set writes v at index i.
// Returns ErrOutOfRange if i < 0 or i >= Len(); the array is untouched then.
func (a *Array[T]) Set(i int, v T) error {
	if err := a.check("Set", i); err != nil {
		return err
	}
	a.buf.data[i] = v

	return nil
}

// Ref returns a pointer to the element at index i, the array analogue of
// a[i] used as an lvalue. The pointer stays valid as long as the array's
// current storage; Assign installs new storage.
func (a *Array[T]) Ref(i int) (*T, error) {
	if err := a.check("Ref", i); err != nil {
		return nil, err
	}

	return &a.buf.data[i], nil
}

// First returns a pointer to element 0. Every Array built by New has at
// least one element; a nil or zero-value Array yields nil.
func (a *Array[T]) First() *T {
	if a.isNil() {
		return nil
	}

	return &a.buf.data[0]
}

// Advance returns a cursor positioned step elements past the first element,
// able to travel over the whole array in both directions.
// Returns ErrOutOfRange if step is outside [0, Len()); in particular there is
// no past-the-end cursor.
func (a *Array[T]) Advance(step int) (Cursor[T], error) {
	if err := a.check("Advance", step); err != nil {
		return Cursor[T]{}, err
	}

	return Cursor[T]{
		buf:    a.buf,
		log:    a.opts.logger,
		pos:    step,
		origin: 0,
		ahead:  a.Len() - 1 - step,
	}, nil
}

// Begin returns a cursor at the first element: Behind()==0,
// Ahead()==Len()-1. A nil or zero-value Array yields the detached Cursor.
func (a *Array[T]) Begin() Cursor[T] {
	c, _ := a.Advance(0) // fails only for a nil array, leaving c detached

	return c
}

// CursorAtStart is the free-function spelling of a.Begin().
// Returns ErrNilArray for a nil array.
func CursorAtStart[T any](a *Array[T]) (Cursor[T], error) {
	if a.isNil() {
		return Cursor[T]{}, errors.Wrap(ErrNilArray, "CursorAtStart")
	}

	return a.Begin(), nil
}

// Clone returns a deep copy with the same length, elements and options.
// The copy shares no storage with a; cursors of a never share an origin
// with cursors of the clone.
// Cloning a nil or zero-value Array returns nil.
// Complexity: O(Len()).
func (a *Array[T]) Clone() *Array[T] {
	if a.isNil() {
		return nil
	}
	data := make([]T, a.Len())
	copy(data, a.buf.data)

	return &Array[T]{buf: &region[T]{data: data}, opts: a.opts}
}

// Assign replaces a's contents with a deep copy of src (copy assignment).
// The length follows src and must satisfy a's own bounds, otherwise
// ErrOutOfRange is returned and a is unchanged. Self-assignment is a no-op.
// ErrNilArray is returned when either side is nil or a zero-value Array.
//
// a gets fresh storage: cursors derived from a before Assign keep addressing
// the previous storage and no longer share an origin with new cursors of a.
func (a *Array[T]) Assign(src *Array[T]) error {
	if a.isNil() || src.isNil() {
		return errors.Wrap(ErrNilArray, "Assign")
	}
	if a == src || a.buf == src.buf {
		return nil
	}
	if !a.opts.inBounds(src.Len()) {
		a.opts.logger.Debug("rejected assign",
			zap.Int("length", src.Len()),
			zap.Int("min", a.opts.minLength),
			zap.Int("max", a.opts.maxLength))
		return errors.Wrapf(ErrOutOfRange, "Assign(len=%d): %s [%d,%d]",
			src.Len(), msgLength, a.opts.minLength, a.opts.maxLength)
	}
	data := make([]T, src.Len())
	copy(data, src.buf.data)
	a.buf = &region[T]{data: data}

	return nil
}

// Values returns a copy of the elements in index order (nil for a nil
// Array).
func (a *Array[T]) Values() []T {
	if a.isNil() {
		return nil
	}
	out := make([]T, a.Len())
	copy(out, a.buf.data)

	return out
}

// Fill writes v into every element. It does nothing on a nil Array.
func (a *Array[T]) Fill(v T) {
	if a.isNil() {
		return
	}
	for i := range a.buf.data {
		a.buf.data[i] = v
	}
}

// Owns reports whether c addresses a's current storage.
func (a *Array[T]) Owns(c Cursor[T]) bool {
	return !a.isNil() && c.buf == a.buf
}

// String renders the elements as fmt does for a slice, e.g. "[1 2 3]".
func (a *Array[T]) String() string {
	if a.isNil() {
		return "<nil>"
	}

	return fmt.Sprint(a.buf.data)
}

// isNil reports a nil pointer or a zero-value Array not built by New.
func (a *Array[T]) isNil() bool {
	return a == nil || a.buf == nil
}

// check validates index i for operation op.
func (a *Array[T]) check(op string, i int) error {
	if a.isNil() {
		return errors.Wrapf(ErrNilArray, "Array.%s(%d)", op, i)
	}
	if i >= 0 && i < a.Len() {
		return nil
	}
	a.opts.logger.Debug("index out of range",
		zap.String("op", op),
		zap.Int("index", i),
		zap.Int("length", a.Len()))

	return errors.Wrapf(ErrOutOfRange, "Array.%s(%d): %s [0,%d)", op, i, msgIndex, a.Len())
}
