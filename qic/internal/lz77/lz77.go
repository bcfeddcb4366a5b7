// Package lz77 implements the bespoke bit-level LZ77 variant used by
// QIC compressed segments: a 2048-byte circular history window and
// variable-length offset/length codes, decoded MSB-first.
package lz77

import (
	"bytes"
	"errors"

	"qicrestore/qic/internal/bitio"
)

// ErrMalformed reports a self-inconsistent token: an offset out of
// range, or the bit stream running out mid-token.
var ErrMalformed = errors.New("lz77: malformed compressed stream")

const windowSize = 2048

// history is the 2048-byte ring buffer a single Decompress call reads
// back-references from. Literals and copied bytes are both written
// through put, so a back-reference of offset 1 naturally repeats the
// most recently emitted byte, including bytes emitted earlier within
// the same copy.
type history struct {
	buf []byte
	w   int
	out *bytes.Buffer
}

func newHistory(out *bytes.Buffer) *history {
	return &history{buf: make([]byte, windowSize), out: out}
}

// flush appends the ring contents from index 0 up to the current write
// position, in order, then resets the write cursor to 0.
func (h *history) flush() {
	h.out.Write(h.buf[:h.w])
	h.w = 0
}

func (h *history) put(b byte) {
	if h.w == windowSize {
		h.flush()
	}
	h.buf[h.w] = b
	h.w++
}

func (h *history) copyBack(offset int, length int) {
	for length > 0 {
		if h.w == windowSize {
			h.flush()
		}

		var index int
		if h.w >= offset {
			index = h.w - offset
		} else {
			index = h.w + windowSize - offset
		}

		h.buf[h.w] = h.buf[index%windowSize]
		h.w++
		length--
	}
}

// Decompress reads one compressed segment's payload from src and
// appends the decoded bytes to dst. Identical src bytes always produce
// identical output.
func Decompress(src []byte, dst *bytes.Buffer) error {
	r := bitio.NewReader(src)
	h := newHistory(dst)

	for {
		isBackref, err := r.NextBit()
		if err != nil {
			return ErrMalformed
		}

		if isBackref == 0 {
			b, err := r.NextBits(8)
			if err != nil {
				return ErrMalformed
			}
			h.put(byte(b))
			continue
		}

		offset, err := readOffset(r)
		if err != nil {
			return ErrMalformed
		}

		if offset == 0 {
			h.flush()
			return nil
		}

		length, err := readLength(r)
		if err != nil {
			return ErrMalformed
		}

		h.copyBack(offset, length)
	}
}

// readOffset decodes the offset code: a 1-bit "is_short" flag, then 7
// bits (short form, 0..127) or 11 bits (long form, 0..2047). A value
// of 0 from either form is returned as-is and ends the stream in
// Decompress.
func readOffset(r *bitio.Reader) (int, error) {
	isShort, err := r.NextBit()
	if err != nil {
		return 0, err
	}

	if isShort != 0 {
		v, err := r.NextBits(7)
		if err != nil {
			return 0, err
		}
		return int(v), nil
	}

	v, err := r.NextBits(11)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

// readLength decodes the variable-length unary-ish length code: two
// 2-bit groups escalating by 3 each time they saturate, then 4-bit
// groups escalating by 15. Minimum decodable length is 2.
func readLength(r *bitio.Reader) (int, error) {
	length := 0

	for i := 0; i < 2; i++ {
		v, err := r.NextBits(2)
		if err != nil {
			return 0, err
		}
		if v < 3 {
			return length + int(v) + 2, nil
		}
		length += 3
	}

	for {
		v, err := r.NextBits(4)
		if err != nil {
			return 0, err
		}
		if v < 15 {
			return length + int(v) + 2, nil
		}
		length += 15
	}
}
