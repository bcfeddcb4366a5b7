package qic

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"qicrestore/qic/internal/catalog"
	"qicrestore/qic/internal/reconcile"
	"qicrestore/qic/internal/timeutil"
	"qicrestore/view"
)

func mkTime(t time.Time) timeutil.Time {
	return timeutil.Time{
		Year: t.Year(), Month: int(t.Month()), Day: t.Day(),
		Hour: t.Hour(), Minute: t.Minute(), Second: t.Second(),
	}
}

func TestExtractWritesFilesAndAppliesCorruptionSuffix(t *testing.T) {
	outDir := t.TempDir()
	data := []byte("hello-world-payload")

	mtime := mkTime(time.Date(1998, time.May, 1, 0, 0, 0, 0, time.UTC))
	requests := []reconcile.ExtractRequest{
		{Path: "dir/clean.txt", Offset: 0, Length: 5, MTime: mtime, ATime: mtime},
		{Path: "dir/bad.txt", Offset: 5, Length: 5, MTime: mtime, ATime: mtime, MayBeCorrupted: true},
	}

	err := Extract(view.New(data), nil, requests, outDir)
	require.NoError(t, err)

	clean, err := os.ReadFile(filepath.Join(outDir, "dir", "clean.txt"))
	require.NoError(t, err)
	require.Equal(t, "hello", string(clean))

	bad, err := os.ReadFile(filepath.Join(outDir, "dir", "bad.txt [CORRUPTED]"))
	require.NoError(t, err)
	require.Equal(t, "-worl", string(bad))
}

func TestExtractRejectsOutOfBoundsRequest(t *testing.T) {
	outDir := t.TempDir()
	requests := []reconcile.ExtractRequest{{Path: "f.bin", Offset: 0, Length: 100}}

	err := Extract(view.New([]byte("short")), nil, requests, outDir)
	require.Error(t, err)
}

func TestExtractSkipsPathEscapingOutputDirectory(t *testing.T) {
	outDir := t.TempDir()
	mtime := mkTime(time.Date(1998, time.May, 1, 0, 0, 0, 0, time.UTC))
	requests := []reconcile.ExtractRequest{
		{Path: "../escaped.txt", Offset: 0, Length: 5, MTime: mtime, ATime: mtime},
	}

	err := Extract(view.New([]byte("hello")), nil, requests, outDir)
	require.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(filepath.Dir(outDir), "escaped.txt"))
	require.True(t, os.IsNotExist(statErr))
}

func TestExtractRetimesDirectoriesDeepestFirst(t *testing.T) {
	outDir := t.TempDir()

	root := &catalog.ParsedEntry{LongName: "root", IsDir: true}
	child := &catalog.ParsedEntry{LongName: "child", IsDir: true, Parent: root}

	rootMTime := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	childMTime := time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC)
	root.MTime, root.ATime = mkTime(rootMTime), mkTime(rootMTime)
	child.MTime, child.ATime = mkTime(childMTime), mkTime(childMTime)

	require.NoError(t, os.MkdirAll(filepath.Join(outDir, "root", "child"), 0755))

	err := Extract(view.New(nil), []*catalog.ParsedEntry{root, child}, nil, outDir)
	require.NoError(t, err)

	rootInfo, err := os.Stat(filepath.Join(outDir, "root"))
	require.NoError(t, err)
	childInfo, err := os.Stat(filepath.Join(outDir, "root", "child"))
	require.NoError(t, err)

	require.WithinDuration(t, rootMTime, rootInfo.ModTime(), time.Second)
	require.WithinDuration(t, childMTime, childInfo.ModTime(), time.Second)
}
