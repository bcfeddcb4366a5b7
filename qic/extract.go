package qic

import (
	"path/filepath"
	"sort"
	"strings"

	"qicrestore/filesystem"
	"qicrestore/qic/internal/catalog"
	"qicrestore/qic/internal/reconcile"
	"qicrestore/view"
)

// corruptedSuffix is appended to the on-disk path of any file whose
// recovered size disagreed with the catalog (spec.md §4.9/§6).
const corruptedSuffix = " [CORRUPTED]"

// Extract asks the filesystem writer collaborator to create every
// accepted file under outputDir, then re-applies directory timestamps
// deepest-first so that writing a directory's files does not clobber
// the directory's own mtime (spec.md §4.9).
func Extract(dataView view.View, tree []*catalog.ParsedEntry, requests []reconcile.ExtractRequest, outputDir string) error {
	for _, req := range requests {
		payload, err := dataView.Bytes(req.Offset, req.Length)
		if err != nil {
			return err
		}

		// reconcile.Match already rejects paths that escape outputDir;
		// this is a second, cheap check against a caller handing Extract
		// requests built some other way.
		cleanPath, ok := filesystem.Clean(req.Path)
		if !ok {
			continue
		}
		if req.MayBeCorrupted {
			cleanPath += corruptedSuffix
		}

		full := filepath.Join(outputDir, filepath.FromSlash(cleanPath))
		if err := filesystem.WriteFile(full, payload, req.ATime.Std(), req.MTime.Std()); err != nil {
			return err
		}
	}

	return retimeDirectories(tree, outputDir)
}

// retimeDirectories re-applies mtime/atime to every directory entry,
// ordered by path-segment count descending (ties broken by path
// string descending), matching the original's std::sort comparator.
// Directory paths are also walked back from parsed catalog names, so
// the same escape check applies before any name reaches the
// filesystem: an entry whose reconstructed path escapes outputDir is
// dropped rather than retimed.
func retimeDirectories(tree []*catalog.ParsedEntry, outputDir string) error {
	var dirs []*catalog.ParsedEntry
	paths := make(map[*catalog.ParsedEntry]string)
	for _, e := range tree {
		if !e.IsDir {
			continue
		}
		cleanPath, ok := filesystem.Clean(strings.TrimPrefix(catalog.RecursivePath(e), "/"))
		if !ok {
			continue
		}
		dirs = append(dirs, e)
		paths[e] = cleanPath
	}

	sort.Slice(dirs, func(i, j int) bool {
		pi, pj := paths[dirs[i]], paths[dirs[j]]
		si, sj := segmentCount(pi), segmentCount(pj)
		if si != sj {
			return si > sj
		}
		return pi > pj
	})

	for _, d := range dirs {
		full := filepath.Join(outputDir, filepath.FromSlash(paths[d]))
		if err := filesystem.SetTimes(full, d.ATime.Std(), d.MTime.Std()); err != nil {
			return err
		}
	}

	return nil
}

func segmentCount(path string) int {
	if path == "" {
		return 0
	}
	return strings.Count(path, "/") + 1
}
