package cstr

import (
	"bytes"
	"io"

	"github.com/katalvlaran/boundmem/safearray"
	"github.com/pkg/errors"
)

// NUL terminates a string stored in an array.
const NUL byte = 0

// FromString stores s in a new array of the given length. Slots after s stay
// NUL. Fails with safearray.ErrOutOfRange when length is not a legal array
// length or s does not fit.
func FromString(s string, length int, opts ...safearray.Option) (*safearray.Array[byte], error) {
	a, err := safearray.New[byte](length, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "cstr.FromString(%q)", s)
	}
	for i := 0; i < len(s); i++ {
		if err = a.Set(i, s[i]); err != nil {
			return nil, errors.Wrapf(err, "cstr.FromString(%q)", s)
		}
	}

	return a, nil
}

// String returns the characters of a up to the first NUL or the end of the
// array. A nil array yields "".
func String(a *safearray.Array[byte]) string {
	var buf bytes.Buffer
	_, _ = WriteTo(&buf, a) // only a nil array fails, leaving buf empty

	return buf.String()
}

// WriteTo writes the characters of a up to the first NUL or the end of the
// array to w. A nil array fails with safearray.ErrNilArray.
func WriteTo(w io.Writer, a *safearray.Array[byte]) (int64, error) {
	if _, err := safearray.CursorAtStart(a); err != nil {
		return 0, errors.Wrap(err, "cstr.WriteTo")
	}
	var (
		out []byte
		ch  byte
		err error
	)
	for i := 0; i < a.Len(); i++ {
		if ch, err = a.At(i); err != nil || ch == NUL {
			break
		}
		out = append(out, ch)
	}
	n, err := w.Write(out)

	return int64(n), err
}

// Copy copies min(dst.Len(), src.Len()) elements from src into dst and
// returns how many were copied. Fails with safearray.ErrNilArray when either
// array is nil, leaving dst untouched.
func Copy(dst, src *safearray.Array[byte]) (int, error) {
	if dst.Len() == 0 || src.Len() == 0 {
		return 0, errors.Wrap(safearray.ErrNilArray, "cstr.Copy")
	}
	n := min(dst.Len(), src.Len())
	for i := 0; i < n; i++ {
		ch, err := src.At(i)
		if err != nil {
			return i, errors.Wrap(err, "cstr.Copy")
		}
		if err = dst.Set(i, ch); err != nil {
			return i, errors.Wrap(err, "cstr.Copy")
		}
	}

	return n, nil
}

// Equal reports whether a and b have the same length and the same elements,
// comparing through cursors derived from each array's start. A nil array is
// equal to nothing.
func Equal(a, b *safearray.Array[byte]) bool {
	if a.Len() == 0 || a.Len() != b.Len() {
		return false
	}
	pa, pb := a.Begin(), b.Begin()
	for i := 0; i < a.Len(); i++ {
		ca, err := pa.Add(i)
		if err != nil {
			return false
		}
		cb, err := pb.Add(i)
		if err != nil {
			return false
		}
		va, _ := ca.Load()
		vb, _ := cb.Load()
		if va != vb {
			return false
		}
	}

	return true
}

// EqualIndexed is Equal computed with a fresh a.Advance(i) per element.
func EqualIndexed(a, b *safearray.Array[byte]) bool {
	if a.Len() == 0 || a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		ca, err := a.Advance(i)
		if err != nil {
			return false
		}
		cb, err := b.Advance(i)
		if err != nil {
			return false
		}
		va, _ := ca.Load()
		vb, _ := cb.Load()
		if va != vb {
			return false
		}
	}

	return true
}

// EqualFrom walks s and t in lock-step and reports whether they hold the same
// characters up to and including a NUL. It returns false at the first
// mismatch. If either cursor reaches the end of its window before a NUL, the
// ErrOutOfRange from the failed step is returned.
func EqualFrom(s, t safearray.Cursor[byte]) (bool, error) {
	for {
		vs, err := s.Load()
		if err != nil {
			return false, errors.Wrap(err, "cstr.EqualFrom")
		}
		vt, err := t.Load()
		if err != nil {
			return false, errors.Wrap(err, "cstr.EqualFrom")
		}
		switch {
		case vs != vt:
			return false, nil
		case vs == NUL:
			return true, nil
		}
		if _, err = s.Inc(); err != nil {
			return false, errors.Wrap(err, "cstr.EqualFrom")
		}
		if _, err = t.Inc(); err != nil {
			return false, errors.Wrap(err, "cstr.EqualFrom")
		}
	}
}
