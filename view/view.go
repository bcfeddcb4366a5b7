// Package view provides a bounds-checked, cheaply sub-sliceable view
// over the bytes of a QIC archive, whether those bytes come from the
// memory-mapped input file or from a decompression output buffer.
package view

import "errors"

// ErrOutOfBounds is returned whenever a read would run past the end of
// the underlying byte range. Callers treat it as a TruncatedInput.
var ErrOutOfBounds = errors.New("view: read out of bounds")

// View is an immutable, random-access window over a byte slice. base
// records the absolute offset of data[0] in the original archive, so
// diagnostics stay meaningful after Slice.
type View struct {
	data []byte
	base int64
}

// New wraps data as a root view starting at absolute offset 0.
func New(data []byte) View {
	return View{data: data}
}

// Len returns the number of bytes in the view.
func (v View) Len() int { return len(v.data) }

// Base returns the absolute file offset that v.Bytes(0, ...) refers to.
func (v View) Base() int64 { return v.base }

// Bytes returns the length bytes starting at offset, or ErrOutOfBounds
// if offset+length exceeds the view.
func (v View) Bytes(offset, length int) ([]byte, error) {
	if offset < 0 || length < 0 || offset+length > len(v.data) {
		return nil, ErrOutOfBounds
	}
	return v.data[offset : offset+length], nil
}

// Slice returns a sub-view covering [offset, offset+length), sharing
// the backing array (no copy).
func (v View) Slice(offset, length int) (View, error) {
	b, err := v.Bytes(offset, length)
	if err != nil {
		return View{}, err
	}
	return View{data: b, base: v.base + int64(offset)}, nil
}
