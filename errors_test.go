package latin

import (
	"errors"
	"io/fs"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpError_PreservesCause(t *testing.T) {
	native := &os.PathError{Op: "open", Path: "/no/such", Err: syscall.ENOENT}
	err := E("file", "open", "/no/such", native)

	// The native error round-trips untouched.
	require.Same(t, error(native), errors.Unwrap(err))
	require.ErrorIs(t, err, fs.ErrNotExist)

	var pe *os.PathError
	require.ErrorAs(t, err, &pe)
	require.Same(t, native, pe)
}

func TestOpError_Errno(t *testing.T) {
	err := E("file", "open", "/no/such", &os.PathError{Op: "open", Path: "/no/such", Err: syscall.ENOENT})
	code, ok := err.Errno()
	require.True(t, ok)
	require.Equal(t, int(syscall.ENOENT), code)

	plain := E("net", "do", "http://x", errors.New("no errno here"))
	_, ok = plain.Errno()
	require.False(t, ok)
}

func TestOpError_Error(t *testing.T) {
	err := E("file", "write", "./foo.txt", errors.New("disk full"))
	require.Equal(t, "file: write ./foo.txt: disk full", err.Error())

	bare := E("net", "do", "", errors.New("refused"))
	require.Equal(t, "net: do: refused", bare.Error())
}

func TestStepIs(t *testing.T) {
	err := E("file", "flush", "./x", errors.New("boom"))

	require.True(t, StepIs(err, "file", "flush"))
	require.False(t, StepIs(err, "file", "write"))
	require.False(t, StepIs(err, "net", "flush"))
	require.True(t, DomainIs(err, "file"))
	require.False(t, DomainIs(err, "net"))

	// Works through further wrapping too.
	wrapped := errors.Join(errors.New("context"), err)
	require.True(t, StepIs(wrapped, "file", "flush"))

	require.False(t, StepIs(errors.New("plain"), "file", "flush"))
	require.False(t, StepIs(nil, "file", "flush"))
}

func TestIsNotFoundIsExist(t *testing.T) {
	require.True(t, IsNotFound(E("file", "open", "/x", fs.ErrNotExist)))
	require.False(t, IsNotFound(E("file", "open", "/x", errors.New("other"))))
	require.True(t, IsExist(E("dir", "mkdir", "/x", fs.ErrExist)))
	require.False(t, IsExist(E("dir", "mkdir", "/x", errors.New("other"))))
}
