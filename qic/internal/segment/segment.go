// Package segment reassembles the catalog and data regions of a QIC
// archive from their length-prefixed, mixed raw/compressed segments.
package segment

import (
	"bytes"
	"encoding/binary"
	"errors"

	"qicrestore/qic/internal/lz77"
	"qicrestore/view"
)

// ErrTruncatedHeader means a cseg_head/cframe_head pair could not be
// read in full. Callers treat it as TruncatedInput.
var ErrTruncatedHeader = errors.New("segment: truncated frame header")

// ErrCompressedCatalog means a catalog segment's header cleared the
// RAW_SEG bit. Compressed catalogs are out of scope (spec.md §3).
var ErrCompressedCatalog = errors.New("segment: compressed catalog segment unsupported")

const (
	csegHeadSize   = 8 // cumulative_size, advisory, unused here
	cframeHeadSize = 2 // segment_size_raw

	rawSeg   uint16 = 0x8000
	sizeMask uint16 = 0x7FFF
)

func frameHeaderSize() int64 { return csegHeadSize + cframeHeadSize }

type frameHead struct {
	size int
	raw  bool
}

// readFrameHead reads the 10-byte cseg_head+cframe_head pair at
// offset and decodes the masked size and RAW_SEG flag.
func readFrameHead(v view.View, offset int64) (frameHead, error) {
	if _, err := v.Bytes(int(offset), csegHeadSize); err != nil {
		return frameHead{}, ErrTruncatedHeader
	}

	raw, err := v.Bytes(int(offset)+csegHeadSize, cframeHeadSize)
	if err != nil {
		return frameHead{}, ErrTruncatedHeader
	}

	sizeRaw := binary.LittleEndian.Uint16(raw)
	return frameHead{
		size: int(sizeRaw & sizeMask),
		raw:  sizeRaw&rawSeg != 0,
	}, nil
}

// ReadCatalog reads raw catalog segments starting at offset until
// dirSize uncompressed bytes have been collected, or a zero-length
// frame terminates the region early. Catalog segments in the archives
// this reads are always raw; a compressed one is unsupported.
func ReadCatalog(v view.View, offset int64, dirSize int64) ([]byte, error) {
	var out bytes.Buffer
	pos := offset

	for int64(out.Len()) < dirSize {
		f, err := readFrameHead(v, pos)
		if err != nil {
			return nil, err
		}
		pos += frameHeaderSize()

		if f.size == 0 {
			break
		}

		payload, err := v.Bytes(int(pos), f.size)
		if err != nil {
			return nil, err
		}
		if !f.raw {
			return nil, ErrCompressedCatalog
		}

		out.Write(payload)
		pos += int64(f.size)
	}

	return out.Bytes(), nil
}

// ReadData iterates segments starting at offset, decompressing
// compressed ones through lz77.Decompress and appending raw ones
// directly into the same growing buffer, until a frame whose masked
// size is zero.
func ReadData(v view.View, offset int64) ([]byte, error) {
	var out bytes.Buffer
	pos := offset

	for {
		f, err := readFrameHead(v, pos)
		if err != nil {
			return nil, err
		}
		pos += frameHeaderSize()

		if f.size == 0 {
			break
		}

		payload, err := v.Bytes(int(pos), f.size)
		if err != nil {
			return nil, err
		}

		if f.raw {
			out.Write(payload)
		} else if err := lz77.Decompress(payload, &out); err != nil {
			return nil, err
		}

		pos += int64(f.size)
	}

	return out.Bytes(), nil
}
