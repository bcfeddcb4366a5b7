//go:build windows

package filesystem

import (
	"os"
	"unsafe"

	"golang.org/x/sys/windows"
)

// mmapReadOnly maps size bytes of file read-only via
// CreateFileMapping/MapViewOfFile, the Windows arm of the teacher's
// per-platform split (arc/read_windows.go next to read_linux.go /
// read_darwin.go).
func mmapReadOnly(file *os.File, size int) ([]byte, error) {
	h, err := windows.CreateFileMapping(windows.Handle(file.Fd()), nil, windows.PAGE_READONLY, 0, 0, nil)
	if err != nil {
		return nil, err
	}
	defer windows.CloseHandle(h)

	addr, err := windows.MapViewOfFile(h, windows.FILE_MAP_READ, 0, 0, uintptr(size))
	if err != nil {
		return nil, err
	}

	data := unsafe.Slice((*byte)(unsafe.Pointer(addr)), size)
	return data, nil
}

func munmap(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	return windows.UnmapViewOfFile(uintptr(unsafe.Pointer(&data[0])))
}
