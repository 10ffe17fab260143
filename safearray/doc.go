// Package safearray provides a fixed-length, bounds-checked array and a safe
// cursor that emulates pointer arithmetic over the array's storage without
// ever reaching outside it.
//
// What:
//
//   - Array[T]: owns a contiguous buffer of 1..300 elements (configurable);
//     At/Set/Ref check every index; Clone and Assign deep-copy.
//   - Cursor[T]: a copyable view into an Array that tracks how many steps
//     remain ahead and behind. Inc/Dec/Advance/Retreat/Add/Sub move it,
//     Deref/Load/Store access the addressed element.
//   - Distance, Greater, Less, GreaterEqual, LessEqual, Compare: relational
//     operations, legal only between cursors sharing an origin.
//   - Equal: address identity, defined for any pair of cursors.
//
// Why:
//
//   - Pointer-style traversal (walk until a terminator, compare positions,
//     measure distances) where each mistake is an error value instead of a
//     silent out-of-bounds access or a panic.
//
// Invariants:
//
//   - 0 < Len() <= max length; every index i with 0 <= i < Len() is valid.
//   - Ahead() >= 0, Behind() >= 0, Behind() == Pos()-origin.
//   - Ahead()+Behind() never changes after a cursor is built.
//   - There is no past-the-end cursor: a.Advance(a.Len()) fails.
//   - A failed operation leaves its receiver unchanged.
//
// Errors:
//
//   - ErrOutOfRange: bad length, index, step or cursor triple.
//   - ErrRangeMismatch: binary cursor operation across different origins.
//   - ErrNilArray, ErrDetached: nil array, zero-value cursor.
//
// Lifetime: cursors never free anything; they keep their storage reachable.
// After Assign, an array owns new storage and older cursors keep addressing
// the previous one.
//
// Concurrency: none of the types are safe for concurrent use.
//
// Complexity: every operation is O(1) except New, FromSlice, Clone, Assign,
// Values and Fill, which are O(Len()).
package safearray
