//go:build unix

package filesystem

import (
	"os"

	"golang.org/x/sys/unix"
)

// mmapReadOnly maps size bytes of file read-only and MAP_PRIVATE,
// grounded on the retrieval pack's own mmap loader
// (mattkeenan-dircachefilehash's unix.Mmap(int(file.Fd()), 0, size,
// unix.PROT_READ, unix.MAP_PRIVATE) pattern).
func mmapReadOnly(file *os.File, size int) ([]byte, error) {
	return unix.Mmap(int(file.Fd()), 0, size, unix.PROT_READ, unix.MAP_PRIVATE)
}

func munmap(data []byte) error {
	return unix.Munmap(data)
}
