package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// flags is (is_dir, is_empty_dir, is_last_entry) for one synthetic
// catalog entry, used to exercise BuildTree without a real binary
// catalog buffer.
type flags struct {
	dir, empty, last bool
}

func buildEntries(fs []flags) []*ParsedEntry {
	entries := make([]*ParsedEntry, len(fs))
	for i, f := range fs {
		entries[i] = &ParsedEntry{IsDir: f.dir, IsEmptyDir: f.empty, IsLastEntry: f.last}
	}
	return entries
}

func TestBuildTreeStackOfDeques(t *testing.T) {
	fs := []flags{
		{true, false, true},   // 0
		{true, false, false},  // 1
		{false, false, false}, // 2
		{true, false, true},   // 3
		{true, false, false},  // 4
		{true, false, true},   // 5
		{false, false, true},  // 6
		{true, true, false},   // 7
		{true, false, false},  // 8
		{true, false, true},   // 9
		{false, false, true},  // 10
		{false, false, true},  // 11
		{false, false, true},  // 12
	}
	entries := buildEntries(fs)
	BuildTree(entries)

	wantParent := []int{-1, 0, 0, 0, 1, 1, 4, 5, 5, 5, 8, 9, 3}
	for i, e := range entries {
		if wantParent[i] == -1 {
			require.Nilf(t, e.Parent, "entry %d", i)
			continue
		}
		require.Samef(t, entries[wantParent[i]], e.Parent, "entry %d", i)
	}
}

func TestBuildTreeEveryParentAppearsEarlier(t *testing.T) {
	fs := []flags{
		{true, false, true},
		{true, false, false},
		{false, false, false},
		{true, false, true},
		{true, false, false},
		{true, false, true},
		{false, false, true},
		{true, true, false},
		{true, false, false},
		{true, false, true},
		{false, false, true},
		{false, false, true},
		{false, false, true},
	}
	entries := buildEntries(fs)
	BuildTree(entries)

	index := make(map[*ParsedEntry]int, len(entries))
	for i, e := range entries {
		index[e] = i
	}

	for i, e := range entries {
		if e.Parent == nil {
			continue
		}
		pi, ok := index[e.Parent]
		require.True(t, ok)
		require.Lessf(t, pi, i, "entry %d parent must appear earlier", i)
	}
}

func TestRecursivePath(t *testing.T) {
	root := &ParsedEntry{LongName: "root"}
	child := &ParsedEntry{LongName: "child", Parent: root}
	grandchild := &ParsedEntry{LongName: "leaf.txt", Parent: child}

	require.Equal(t, "/root", RecursivePath(root))
	require.Equal(t, "/root/child", RecursivePath(child))
	require.Equal(t, "/root/child/leaf.txt", RecursivePath(grandchild))
}
