// Package cstr treats a safearray.Array[byte] as a NUL-terminated character
// string: build from a Go string, print up to the terminator, copy, and
// compare either structurally (element by element) or by walking two cursors
// in lock-step.
//
// Every traversal goes through safearray cursors, so a missing terminator
// surfaces as safearray.ErrOutOfRange rather than a read past the buffer.
package cstr
