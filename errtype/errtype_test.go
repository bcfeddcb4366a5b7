package errtype

import (
	"errors"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodeMatchesConstructor(t *testing.T) {
	require.Equal(t, 2, Code(ErrOpen(nil)))
	require.Equal(t, 5, Code(ErrCatalog(io.ErrUnexpectedEOF)))
}

func TestCodeDefaultsToOneForForeignErrors(t *testing.T) {
	require.Equal(t, 1, Code(errors.New("boom")))
}

func TestErrorMessageWrapsKnownCause(t *testing.T) {
	err := ErrHeader(os.ErrNotExist)
	require.Contains(t, err.Error(), "не удалось прочитать заголовок VTBL")
}

func TestUnwrapExposesCause(t *testing.T) {
	cause := errors.New("disk on fire")
	err := ErrOpen(cause)
	require.ErrorIs(t, err, cause)
}
