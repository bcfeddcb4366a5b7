package filesystem

import (
	"fmt"
	"os"

	"qicrestore/view"
)

// MappedFile owns a read-only memory mapping of a QIC archive file
// and the view.View that borrows from it. Its lifetime must exceed
// every view derived from it (spec.md §5); Close unmaps and closes
// the descriptor.
type MappedFile struct {
	file *os.File
	data []byte
}

// OpenView opens path and memory-maps it read-only, returning the
// MappedFile and a root view.View over its bytes. The actual mmap
// syscall is platform-specific (see mmap_unix.go / mmap_windows.go).
func OpenView(path string) (*MappedFile, view.View, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, view.View{}, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, view.View{}, err
	}
	if info.Size() == 0 {
		f.Close()
		return nil, view.View{}, fmt.Errorf("%s: empty file", path)
	}

	data, err := mmapReadOnly(f, int(info.Size()))
	if err != nil {
		f.Close()
		return nil, view.View{}, err
	}

	mf := &MappedFile{file: f, data: data}
	return mf, view.New(data), nil
}

// Size returns the mapped file's byte length.
func (m *MappedFile) Size() int64 { return int64(len(m.data)) }

// Close unmaps the file and closes its descriptor.
func (m *MappedFile) Close() error {
	err := munmap(m.data)
	if cerr := m.file.Close(); err == nil {
		err = cerr
	}
	return err
}
