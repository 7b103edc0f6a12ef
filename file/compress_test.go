package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/TyOverby/latin"
)

func TestWriteGzip_ReadGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.gz")
	payload := []byte("some payload worth compressing, repeated: some payload worth compressing")

	require.True(t, WriteGzip(path, payload).OK())

	// On-disk bytes are compressed, not the plain payload.
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotEqual(t, payload, raw)

	got, err := ReadGzip(path).Get()
	require.NoError(t, err)
	require.Equal(t, payload, got)
}

func TestReadGzip_JunkInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.gz")
	require.True(t, Write(path, []byte("this is not a gzip stream")).OK())

	err := ReadGzip(path).Err()
	require.NotNil(t, err)
	require.Equal(t, Domain, err.Domain)
	require.Equal(t, StepDecompress, err.Step)
}

func TestReadGzip_NotFound(t *testing.T) {
	err := ReadGzip(filepath.Join(t.TempDir(), "missing.gz")).Err()
	require.NotNil(t, err)
	require.Equal(t, StepOpen, err.Step)
	require.True(t, latin.IsNotFound(err))
}

func TestWriteLZ4_ReadLZ4(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.lz4")
	payload := []byte("lz4 payload, lz4 payload, lz4 payload, lz4 payload")

	require.True(t, WriteLZ4(path, payload).OK())

	got, err := ReadLZ4(path).Get()
	require.NoError(t, err)
	require.Equal(t, payload, got)
}

func TestReadLZ4_JunkInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.lz4")
	require.True(t, Write(path, []byte("this is not an lz4 frame")).OK())

	err := ReadLZ4(path).Err()
	require.NotNil(t, err)
	require.Equal(t, StepDecompress, err.Step)
}

func TestWriteGzip_EmptyContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.gz")

	require.True(t, WriteGzip(path, nil).OK())

	got, err := ReadGzip(path).Get()
	require.NoError(t, err)
	require.Len(t, got, 0)
}
