// SPDX-License-Identifier: MIT

package safearray

import "go.uber.org/zap"

// region is the heap buffer owned by exactly one Array. Its address is the
// identity token cursors compare when checking for a shared origin.
// Cursors hold a *region but nothing ever releases it through them.
type region[T any] struct {
	data []T
}

// Array is a fixed-length, bounds-checked container of T.
// The length is chosen at construction and never changes. Storage is owned
// exclusively: Clone and Assign deep-copy, they never alias.
//
// An Array is not safe for concurrent use.
type Array[T any] struct {
	buf  *region[T] // owned storage, len(buf.data) == length
	opts options    // bounds and logger captured at construction
}

// Cursor is a copyable, non-owning position inside an Array's storage.
//
// A cursor addresses the window [origin, origin+Behind()+Ahead()] of its
// region. Every position inside the window is a valid element, so Deref never
// needs a bounds check. Moves only redistribute Ahead and Behind; their sum is
// fixed at construction.
//
// The zero Cursor is detached: every operation on it reports ErrDetached.
type Cursor[T any] struct {
	buf    *region[T]
	log    *zap.Logger
	pos    int // absolute index of the addressed element
	origin int // absolute index of the first element of the window
	ahead  int // legal forward steps left
}
