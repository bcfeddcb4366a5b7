// Package filesystem is the "writer collaborator" spec.md §1 and §4.9
// call out as external to the core: it creates directories, writes
// recovered payloads, applies timestamps, and (via OpenView) memory-maps
// the archive file into the random-access byte view the core consumes.
package filesystem

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// SplitPath breaks path into its path components.
func SplitPath(path string) []string {
	if path == "/" {
		return []string{path}
	}

	dir, last := filepath.Split(path)
	if dir == "" {
		return []string{last}
	}
	return append(SplitPath(filepath.Clean(dir)), last)
}

// CreatePath creates every directory along path that does not already
// exist.
func CreatePath(path string) error {
	var fullPath string
	for _, part := range SplitPath(path) {
		fullPath = filepath.Join(fullPath, part)

		if DirExists(fullPath) {
			continue
		}

		if err := os.Mkdir(fullPath, 0755); err != nil {
			if !errors.Is(err, os.ErrExist) {
				return err
			}
		}
	}

	return nil
}

// DirExists reports whether dirPath exists and is a directory.
func DirExists(dirPath string) bool {
	info, err := os.Stat(dirPath)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// Clean normalizes a forward-slash archive path, dropping "." segments
// and resolving "..", and reports ok=false if doing so would climb
// above the path's own root. The paths this recovery tool replays
// (both signature-recovered names and catalog names) come from a
// possibly corrupted or adversarially crafted archive, so a ".." that
// cannot be resolved within the path is an escape attempt, not
// something to clamp and continue: the caller must be able to refuse
// to write outside outputDir rather than silently reinterpreting the
// path as relative to some ancestor of it.
func Clean(path string) (cleaned string, ok bool) {
	path = strings.TrimPrefix(path, "/")
	parts := strings.Split(path, "/")
	stack := []string{}

	for _, part := range parts {
		switch part {
		case ".", "":
			continue
		case "..":
			if len(stack) == 0 {
				return "", false
			}
			stack = stack[:len(stack)-1]
		default:
			stack = append(stack, part)
		}
	}

	return strings.Join(stack, "/"), true
}

// WriteFile creates path's parent directories, writes data, and
// applies atime/mtime — the recovered-payload half of spec.md §4.9's
// writer collaborator.
func WriteFile(path string, data []byte, atime, mtime time.Time) error {
	if err := CreatePath(filepath.Dir(path)); err != nil {
		return fmt.Errorf("create parent directories: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return SetTimes(path, atime, mtime)
}

// SetTimes applies atime/mtime to an existing file or directory.
func SetTimes(path string, atime, mtime time.Time) error {
	return os.Chtimes(path, atime, mtime)
}
