// Package boundmem is a small toolkit for array and pointer style code that
// must never touch memory outside the region it was given.
//
// What is in the box?
//
//	A pure-Go library built on generics:
//		• safearray — fixed-length Array[T] with checked At/Set/Ref, deep
//		  Clone/Assign, and Cursor[T], a copyable position that tracks how
//		  far it may still travel ahead and behind
//		• cstr      — NUL-terminated character strings stored in
//		  safearray.Array[byte]: build, print, copy, compare
//		• cli/cmd   — the boundmem demo command (cobra + zap)
//
// Every failure is an error value: safearray.ErrOutOfRange when an index,
// step or length leaves its window, safearray.ErrRangeMismatch when two
// cursors from different origins are compared or subtracted.
//
// Quick ASCII example:
//
//	blocks:  h e l l o \0 \0 \0
//	         ^     ^
//	      origin  cursor      behind=3, ahead=4
//
//	go get github.com/katalvlaran/boundmem
package boundmem
