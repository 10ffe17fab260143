// SPDX-License-Identifier: MIT

// Package safearray: functional configuration for Array construction.
// This file defines:
//   - Option (functional option over an unexported options struct),
//   - documented defaults (constants),
//   - WithX constructors that panic on nonsensical values,
//   - gatherOptions, the single place defaults are resolved.
//
// Options are captured at construction time. Clone copies them; Assign keeps
// the receiver's own options.
package safearray

import "go.uber.org/zap"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMinLength is the smallest length New accepts.
	DefaultMinLength = 1

	// DefaultMaxLength is the largest length New accepts.
	DefaultMaxLength = 300
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicMinLengthInvalid = "safearray: WithMinLength: min must be >= 1"
	panicMaxLengthInvalid = "safearray: WithMaxLength: max must be >= 1"
	panicLoggerNil        = "safearray: WithLogger: logger must not be nil"
)

// Option mutates internal options. Applying the same Option twice is harmless.
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	minLength int         // DefaultMinLength
	maxLength int         // DefaultMaxLength
	logger    *zap.Logger // zap.NewNop() unless WithLogger
}

// WithMinLength overrides the lower length bound.
// Panics when n < 1: a zero-length array has no first element, so a
// cursor could never be derived from it.
func WithMinLength(n int) Option {
	if n < 1 {
		panic(panicMinLengthInvalid)
	}

	return func(o *options) { o.minLength = n }
}

// WithMaxLength overrides the upper length bound.
// Panics when n < 1. A max below the effective min makes every New call
// fail with ErrOutOfRange.
func WithMaxLength(n int) Option {
	if n < 1 {
		panic(panicMaxLengthInvalid)
	}

	return func(o *options) { o.maxLength = n }
}

// WithLogger routes bounds violations to l at Debug level.
// Cursors derived from the array share the same logger.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *options) { o.logger = l }
}

// gatherOptions resolves defaults and applies user setters in order
// (last writer wins).
func gatherOptions(user ...Option) options {
	o := options{
		minLength: DefaultMinLength,
		maxLength: DefaultMaxLength,
		logger:    zap.NewNop(),
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// inBounds reports whether length satisfies the configured bounds.
func (o options) inBounds(length int) bool {
	return length >= o.minLength && length <= o.maxLength
}
