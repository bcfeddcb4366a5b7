// Package charset converts the UTF-16LE strings embedded in QIC
// catalog and data records to UTF-8.
//
// unicode/utf16 is stdlib rather than a pulled-in dependency: it is a
// two-function conversion with no wire framing or container format
// around it, and none of the retrieval pack's example repos reach for
// a third-party codec for plain UTF-16 (golang.org/x/text/encoding is
// used elsewhere in the pack only for single-byte code pages like
// Windows-1252, which this format does not use).
package charset

import (
	"unicode/utf16"
	"unicode/utf8"
)

// UTF16LEToUTF8 decodes b as little-endian UTF-16 and re-encodes it as
// UTF-8. An odd-length input yields the empty string.
func UTF16LEToUTF8(b []byte) string {
	if len(b)%2 != 0 {
		return ""
	}

	units := make([]uint16, len(b)/2)
	for i := range units {
		units[i] = uint16(b[2*i]) | uint16(b[2*i+1])<<8
	}

	runes := utf16.Decode(units)

	buf := make([]byte, 0, len(runes)*utf8.UTFMax)
	for _, r := range runes {
		var tmp [utf8.UTFMax]byte
		n := utf8.EncodeRune(tmp[:], r)
		buf = append(buf, tmp[:n]...)
	}

	return string(buf)
}
