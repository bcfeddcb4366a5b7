// Package errtype is this repository's error taxonomy, in the manner
// of the teacher archiver's own errtype package: a message/err/code
// triple whose Error() special-cases well-known wrapped causes, plus
// one exit code per spec.md §6 failure category.
package errtype

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Error composes a stable, user-facing message with an underlying
// cause and the process exit code spec.md §6 assigns to that failure.
type Error struct {
	message string
	err     error
	code    int
}

func (e *Error) Error() string {
	var eMessage string
	switch {
	case e.err == nil:
	case errors.Is(e.err, os.ErrPermission):
		eMessage = fmt.Sprint("permission denied: ", e.err)
	case errors.Is(e.err, os.ErrExist):
		eMessage = "already exists"
	case errors.Is(e.err, os.ErrNotExist):
		eMessage = "does not exist"
	case errors.Is(e.err, io.EOF):
		eMessage = "unexpected end of archive"
	case errors.Is(e.err, io.ErrUnexpectedEOF):
		eMessage = "truncated archive"
	default:
		eMessage = e.err.Error()
	}

	if e.err != nil {
		return fmt.Sprintf("%s: %s", e.message, eMessage)
	}
	return e.message
}

func (e *Error) Unwrap() error { return e.err }

// Join composes a stable message, an exit code, and the underlying
// cause into one Error — the same message+cause composition the
// teacher's errtype.Join calls perform throughout arc/write.go and
// arc/read.go, with the exit code made explicit at the call site.
func Join(message string, code int, err error) error {
	return &Error{message: message, err: err, code: code}
}

// Code returns the process exit code carried by err, or 1 if err was
// not produced by this package (the teacher's own ErrRuntime default).
func Code(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.code
	}
	return 1
}

// Exit codes per spec.md §6/§7: IoFailure (open/mmap), and the
// TruncatedInput/MalformedStream failures of each fatal pass. ErrData
// (code 7) extends spec.md's five named categories to cover the data
// region's own framing/decompression failures, which spec.md §6 does
// not otherwise assign a distinct code.
var (
	ErrOpen         = func(err error) error { return Join("не удалось открыть архив", 2, err) }
	ErrHeader       = func(err error) error { return Join("не удалось прочитать заголовок VTBL", 3, err) }
	ErrVendor       = func(err error) error { return Join("не удалось разобрать блок MDID", 4, err) }
	ErrCatalog      = func(err error) error { return Join("не удалось прочитать каталог", 5, err) }
	ErrCatalogParse = func(err error) error { return Join("не удалось разобрать каталог", 6, err) }
	ErrData         = func(err error) error { return Join("не удалось прочитать область данных", 7, err) }
)

// HandleError prints err to stderr and exits with its associated code.
func HandleError(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(Code(err))
}
