// Package qic orchestrates the four core subsystems described in
// spec.md — the LZ77 decompressor, the segmented framing reader, the
// catalog parser/tree reconstructor, and the data-region recoverer —
// into a single archive recovery pass, analogous to the teacher's own
// top-level arc package.
package qic

import (
	"encoding/binary"
	"errors"

	"qicrestore/view"
)

// ErrBadTag means the volume header's tag field is not "VTBL".
var ErrBadTag = errors.New("qic: not a QIC archive (bad VTBL tag)")

const (
	// VTBLSize is the fixed byte length of VolumeHeader.
	VTBLSize = 128
	// DataRegionOffset is the fixed start of the data region.
	DataRegionOffset = 0x100
	// SegSize is the segment-alignment granularity used to place the
	// catalog region at the end of the archive.
	SegSize = 29696
)

// VolumeHeader is the 128-byte VTBL record at archive offset 0,
// matching qic_vtbl_t's packed field widths exactly.
type VolumeHeader struct {
	Tag               [4]byte
	SegmentCount      uint32
	Description       [44]byte
	CreatedDate       uint32 // seconds since 1970-01-01
	Flag              byte
	Sequence          byte
	RevisionMajor     uint16
	RevisionMinor     uint16
	VendorReserved    [14]byte
	StartBlock        uint32
	EndBlock          uint32
	Password          [8]byte
	DirSize           uint32 // catalog byte length, uncompressed
	DataSize          uint64 // data-region byte length
	OSVersion         [2]byte
	SourceDriveLabel  [16]byte
	LogicalDevice     byte
	Reserved          byte
	CompressionBitmap byte
	OSType            byte
	Reserved2         [2]byte
}

// readVolumeHeader decodes the 128-byte VTBL record field by field,
// little-endian, rather than reinterpreting the bytes as a packed C
// struct (see spec.md §9 and DESIGN.md: Go struct layout is not
// guaranteed to match an on-disk packed layout). Offsets follow
// qic_vtbl_t's packed layout exactly.
func readVolumeHeader(b []byte) VolumeHeader {
	_ = b[VTBLSize-1]

	var h VolumeHeader
	copy(h.Tag[:], b[0:4])
	h.SegmentCount = binary.LittleEndian.Uint32(b[4:8])
	copy(h.Description[:], b[8:52])
	h.CreatedDate = binary.LittleEndian.Uint32(b[52:56])
	h.Flag = b[56]
	h.Sequence = b[57]
	h.RevisionMajor = binary.LittleEndian.Uint16(b[58:60])
	h.RevisionMinor = binary.LittleEndian.Uint16(b[60:62])
	copy(h.VendorReserved[:], b[62:76])
	h.StartBlock = binary.LittleEndian.Uint32(b[76:80])
	h.EndBlock = binary.LittleEndian.Uint32(b[80:84])
	copy(h.Password[:], b[84:92])
	h.DirSize = binary.LittleEndian.Uint32(b[92:96])
	h.DataSize = binary.LittleEndian.Uint64(b[96:104])
	copy(h.OSVersion[:], b[104:106])
	copy(h.SourceDriveLabel[:], b[106:122])
	h.LogicalDevice = b[122]
	h.Reserved = b[123]
	h.CompressionBitmap = b[124]
	h.OSType = b[125]
	copy(h.Reserved2[:], b[126:128])

	return h
}

// ReadVolumeHeader reads and validates the VTBL header at the start of
// v.
func ReadVolumeHeader(v view.View) (VolumeHeader, error) {
	b, err := v.Bytes(0, VTBLSize)
	if err != nil {
		return VolumeHeader{}, err
	}

	h := readVolumeHeader(b)
	if string(h.Tag[:]) != "VTBL" {
		return VolumeHeader{}, ErrBadTag
	}
	return h, nil
}

// CatalogOffset computes the archive offset of the catalog region:
// the archive runs to fileSize bytes, and the catalog occupies the
// last ceil(dirSize/SegSize) segments of that span.
func CatalogOffset(fileSize int64, dirSize uint32) int64 {
	segs := (int64(dirSize) + SegSize - 1) / SegSize
	return fileSize - segs*SegSize
}
