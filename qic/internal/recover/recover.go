// Package recover salvages file records directly out of the
// decompressed data region by scanning for DAT_SIG occurrences,
// independent of (and cross-checked against) the catalog.
package recover

import (
	"bytes"
	"encoding/binary"
	"strings"
	"unicode/utf16"

	"qicrestore/qic/internal/catalog"
)

const (
	datSig  uint32 = 0x33CC33CC
	edatSig uint32 = 0x66996699

	sigSize         = 4
	edatDiscardSize = 2
)

// RecoveredFile is one file record salvaged from the data region.
// GuessedSize is the distance to the next DAT_SIG occurrence, whether
// or not that occurrence is itself accepted as a file record; it is
// absent (HasGuessedSize false) when no occurrence follows, since there
// is no following signature to measure against.
type RecoveredFile struct {
	NativePath     string
	Offset         int
	GuessedSize    int
	HasGuessedSize bool
}

// FindOccurrences returns every byte offset of the little-endian
// DAT_SIG needle in buf, left to right. The search resumes one byte
// past the start of each match, so overlapping occurrences are all
// reported.
func FindOccurrences(buf []byte) []int {
	needle := make([]byte, sigSize)
	binary.LittleEndian.PutUint32(needle, datSig)

	var out []int
	searched := 0
	for {
		idx := bytes.Index(buf[searched:], needle)
		if idx < 0 {
			break
		}
		out = append(out, searched+idx)
		searched += idx + 1
	}
	return out
}

// Recover walks every DAT_SIG occurrence in buf, keeping the ones that
// decode to a valid file record (a catalog entry that is not a
// directory, followed at the expected position by EDAT_SIG), and
// infers each file's size from the distance to the next occurrence,
// accepted or not.
func Recover(buf []byte) []RecoveredFile {
	occurrences := FindOccurrences(buf)

	var files []RecoveredFile
	for i, off := range occurrences {
		rf, ok := recoverOne(buf, off)
		if !ok {
			continue
		}

		if i+1 < len(occurrences) {
			rf.GuessedSize = occurrences[i+1] - rf.Offset
			rf.HasGuessedSize = true
		}

		files = append(files, rf)
	}

	return files
}

func recoverOne(buf []byte, sigOffset int) (RecoveredFile, bool) {
	entryStart := sigOffset + sigSize
	entry, pathStart, err := catalog.ParseEntry(buf, entryStart)
	if err != nil {
		return RecoveredFile{}, false
	}
	if entry.IsDir {
		return RecoveredFile{}, false
	}

	pathEnd := pathStart + int(entry.PathLen)
	if pathEnd < pathStart || pathEnd+sigSize > len(buf) {
		return RecoveredFile{}, false
	}

	if binary.LittleEndian.Uint32(buf[pathEnd:pathEnd+sigSize]) != edatSig {
		return RecoveredFile{}, false
	}

	payloadStart := pathEnd + sigSize + edatDiscardSize
	if payloadStart > len(buf) {
		return RecoveredFile{}, false
	}

	entry.QICPath = decodePath(buf[pathStart:pathEnd])

	return RecoveredFile{
		NativePath: nativePath(entry.QICPath, entry.LongName),
		Offset:     payloadStart,
	}, true
}

// decodePath decodes an embedded UTF-16LE path field, mapping control
// characters (< 0x20) — the format's encoding of directory separators
// — to '/'.
func decodePath(b []byte) string {
	if len(b)%2 != 0 {
		return ""
	}

	units := make([]uint16, len(b)/2)
	for i := range units {
		u := uint16(b[2*i]) | uint16(b[2*i+1])<<8
		if u < 0x20 {
			u = '/'
		}
		units[i] = u
	}

	return string(utf16.Decode(units))
}

// nativePath joins the embedded directory path with the catalog
// entry's long name, which carries the file's own name.
func nativePath(qicPath, longName string) string {
	qicPath = strings.Trim(qicPath, "/")
	if qicPath == "" {
		return longName
	}
	return qicPath + "/" + longName
}
