package qic

import (
	"fmt"
	"io"

	"qicrestore/errtype"
	"qicrestore/filesystem"
	"qicrestore/mdid"
	"qicrestore/qic/internal/catalog"
	"qicrestore/qic/internal/reconcile"
	"qicrestore/qic/internal/recover"
	"qicrestore/qic/internal/segment"
	"qicrestore/view"
)

// vendorBlockSize is the span between the end of the VTBL header and
// the start of the data region (spec.md §6's "vendor metadata at
// offset 128", "data region at offset 0x100").
const vendorBlockSize = DataRegionOffset - VTBLSize

// Summary is the run's final tally, printed the way the original
// main.cpp reports error_count/file_count/recovered_file_count/total_size.
type Summary struct {
	ErrorCount         int
	FileCount          int
	RecoveredFileCount int
	TotalSize          int64
}

// Run performs one complete recovery pass: open and mmap the archive,
// read its header and vendor block, reassemble and parse the catalog,
// reassemble and decompress the data region, recover file records by
// signature scan, reconcile against the catalog, and extract every
// accepted file under outputDir. diag receives per-step progress and
// per-file corruption notices (spec.md §6's stderr diagnostics).
func Run(archivePath, outputDir string, diag io.Writer) (Summary, error) {
	mf, v, err := filesystem.OpenView(archivePath)
	if err != nil {
		return Summary{}, errtype.ErrOpen(err)
	}
	defer mf.Close()

	fmt.Fprintf(diag, "чтение заголовка %s\n", archivePath)
	header, err := ReadVolumeHeader(v)
	if err != nil {
		return Summary{}, errtype.ErrHeader(err)
	}

	vendorBytes, err := v.Bytes(VTBLSize, vendorBlockSize)
	if err != nil {
		return Summary{}, errtype.ErrVendor(err)
	}
	if _, err := mdid.Parse(vendorBytes); err != nil {
		return Summary{}, errtype.ErrVendor(err)
	}

	catalogOffset := CatalogOffset(mf.Size(), header.DirSize)
	fmt.Fprintf(diag, "чтение каталога со смещения %d\n", catalogOffset)
	catalogBytes, err := segment.ReadCatalog(v, catalogOffset, int64(header.DirSize))
	if err != nil {
		return Summary{}, errtype.ErrCatalog(err)
	}

	entries, err := catalog.ParseAll(catalogBytes)
	if err != nil {
		return Summary{}, errtype.ErrCatalogParse(err)
	}
	catalog.BuildTree(entries)

	fmt.Fprintln(diag, "чтение области данных")
	dataBytes, err := segment.ReadData(v, DataRegionOffset)
	if err != nil {
		return Summary{}, errtype.ErrData(err)
	}

	recovered := recover.Recover(dataBytes)
	byPath := reconcile.PathIndex(entries)
	requests, warnings := reconcile.Match(recovered, byPath)

	summary := Summary{
		RecoveredFileCount: len(recovered),
	}
	for _, e := range entries {
		if !e.IsDir {
			summary.FileCount++
		}
	}
	for _, w := range warnings {
		fmt.Fprintln(diag, w.String())
		summary.ErrorCount++
	}
	for _, req := range requests {
		summary.TotalSize += int64(req.Length)
	}

	if err := Extract(view.New(dataBytes), entries, requests, outputDir); err != nil {
		return summary, err
	}

	fmt.Fprintf(diag, "error_count=%d file_count=%d recovered_file_count=%d total_size=%d\n",
		summary.ErrorCount, summary.FileCount, summary.RecoveredFileCount, summary.TotalSize)

	return summary, nil
}
