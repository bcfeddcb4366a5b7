package filesystem

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCleanResolvesDotDot(t *testing.T) {
	got, ok := Clean("a/b/../c")
	require.True(t, ok)
	require.Equal(t, "a/c", got)

	got, ok = Clean("/a/./")
	require.True(t, ok)
	require.Equal(t, "a", got)
}

func TestCleanRejectsEscapeAboveRoot(t *testing.T) {
	_, ok := Clean("..")
	require.False(t, ok)

	_, ok = Clean("a/../../etc/passwd")
	require.False(t, ok)
}

func TestCreatePathAndDirExists(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b", "c")

	require.False(t, DirExists(nested))
	require.NoError(t, CreatePath(nested))
	require.True(t, DirExists(nested))

	// Creating an already-existing path is not an error.
	require.NoError(t, CreatePath(nested))
}

func TestWriteFileCreatesParentsAndSetsTimes(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "sub", "dir", "file.txt")

	mtime := time.Date(1998, time.March, 2, 10, 0, 0, 0, time.UTC)
	atime := time.Date(1998, time.March, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, WriteFile(target, []byte("hello"), atime, mtime))

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	require.Equal(t, "hello", string(data))

	info, err := os.Stat(target)
	require.NoError(t, err)
	require.WithinDuration(t, mtime, info.ModTime(), time.Second)
}
