// Package reconcile matches signature-recovered file records against
// the catalog's authoritative sizes and decides what, if anything, is
// handed to the extraction driver for each one.
package reconcile

import (
	"fmt"

	"qicrestore/filesystem"
	"qicrestore/qic/internal/catalog"
	"qicrestore/qic/internal/recover"
	"qicrestore/qic/internal/timeutil"
)

// ExtractRequest is one reconciled record ready for the writer
// collaborator: a byte range into the decompressed data buffer plus
// the timestamps the catalog recorded for it.
type ExtractRequest struct {
	Path           string
	Offset         int
	Length         int
	MTime          timeutil.Time
	ATime          timeutil.Time
	MayBeCorrupted bool
}

// Warning is a non-fatal reconciliation finding (spec.md §7's
// ReconciliationWarning): the run continues, the finding is reported
// and counted.
type Warning struct {
	Path    string
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Path, w.Message)
}

// Match reconciles recovered files against the catalog's path ->
// entry index (built by catalog.RecursivePath over the tree), per the
// table in spec.md §4.8.
func Match(recovered []recover.RecoveredFile, byPath map[string]*catalog.ParsedEntry) ([]ExtractRequest, []Warning) {
	var (
		requests []ExtractRequest
		warnings []Warning
	)

	for _, rf := range recovered {
		// rf.NativePath is reconstructed from bytes in the data region,
		// which — like the rest of the archive — may be corrupted or
		// adversarially crafted; reject anything that would climb out
		// of the output directory rather than resolving it against some
		// unintended ancestor.
		cleanPath, escapeOK := filesystem.Clean(rf.NativePath)
		if !escapeOK {
			warnings = append(warnings, Warning{
				Path:    rf.NativePath,
				Message: "recovered path escapes output directory, skipped",
			})
			continue
		}

		entry, ok := byPath[cleanPath]
		if !ok {
			warnings = append(warnings, Warning{
				Path:    cleanPath,
				Message: "no matching catalog entry",
			})
			continue
		}

		req := ExtractRequest{
			Path:  cleanPath,
			MTime: entry.MTime,
			ATime: entry.ATime,
		}

		catalogSize := int(entry.FileSize)
		recoveredSize := rf.GuessedSize
		haveRecoveredSize := rf.HasGuessedSize

		switch {
		case haveRecoveredSize && recoveredSize == catalogSize:
			req.Offset, req.Length = rf.Offset, recoveredSize

		case !haveRecoveredSize || recoveredSize == 0:
			req.Offset, req.Length = rf.Offset, catalogSize

		case recoveredSize != catalogSize:
			req.Offset, req.Length = rf.Offset, recoveredSize
			req.MayBeCorrupted = true
			warnings = append(warnings, Warning{
				Path: cleanPath,
				Message: fmt.Sprintf(
					"size mismatch: catalog=%d recovered=%d", catalogSize, recoveredSize,
				),
			})
		}

		requests = append(requests, req)
	}

	return requests, warnings
}

// PathIndex builds the path -> entry lookup table Match consumes by
// walking every entry in the catalog tree.
func PathIndex(entries []*catalog.ParsedEntry) map[string]*catalog.ParsedEntry {
	byPath := make(map[string]*catalog.ParsedEntry, len(entries))
	for _, e := range entries {
		if e.IsDir {
			continue
		}
		byPath[catalog.RecursivePath(e)[1:]] = e // drop leading '/'
	}
	return byPath
}
