package dir

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/TyOverby/latin"
	"github.com/TyOverby/latin/fs"
)

// seed creates two files and one subdirectory under a fresh temp dir.
func seed(t *testing.T) (root string, files, dirs []string) {
	t.Helper()
	root = t.TempDir()
	files = []string{
		filepath.Join(root, "a.txt"),
		filepath.Join(root, "b.txt"),
	}
	for _, f := range files {
		require.NoError(t, os.WriteFile(f, []byte("x"), 0o644))
	}
	dirs = []string{filepath.Join(root, "sub")}
	require.NoError(t, os.Mkdir(dirs[0], 0o755))
	return root, files, dirs
}

func TestExists(t *testing.T) {
	root, files, _ := seed(t)

	require.True(t, Exists(root))
	require.False(t, Exists(filepath.Join(root, "missing")))
	// Files are not directories.
	require.False(t, Exists(files[0]))
}

func TestChildren(t *testing.T) {
	root, files, dirs := seed(t)

	got, err := Children(root).Get()
	require.NoError(t, err)

	want := append(append([]string{}, files...), dirs...)
	sort.Strings(want)
	sort.Strings(got)
	require.Equal(t, want, got)
}

func TestFiles(t *testing.T) {
	root, files, _ := seed(t)

	got, err := Files(root).Get()
	require.NoError(t, err)
	sort.Strings(got)
	require.Equal(t, files, got)
}

func TestSubDirectories(t *testing.T) {
	root, _, dirs := seed(t)

	got, err := SubDirectories(root).Get()
	require.NoError(t, err)
	require.Equal(t, dirs, got)
}

func TestChildren_NotFound(t *testing.T) {
	err := Children(filepath.Join(t.TempDir(), "missing")).Err()
	require.NotNil(t, err)
	require.Equal(t, Domain, err.Domain)
	require.Equal(t, StepReadDir, err.Step)
	require.True(t, latin.IsNotFound(err))
}

func TestCreate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "leaf")

	require.True(t, Create(path).OK())
	require.True(t, Exists(path))
}

func TestCreate_Existing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leaf")
	require.True(t, Create(path).OK())

	// By default an existing directory is a failure with the native cause.
	err := Create(path).Err()
	require.NotNil(t, err)
	require.Equal(t, StepMkdir, err.Step)
	require.True(t, latin.IsExist(err))

	// Treating it as idempotent success is an explicit opt-in.
	require.True(t, Create(path, WithIgnoreExisting()).OK())
}

func TestCreate_IgnoreExisting_RegularFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leaf")
	require.NoError(t, os.WriteFile(path, []byte("not a directory"), 0o644))

	// A regular file at path is never an existing directory, so the opt-in
	// must not absorb the failure.
	err := Create(path, WithIgnoreExisting()).Err()
	require.NotNil(t, err)
	require.Equal(t, StepMkdir, err.Step)
	require.True(t, latin.IsExist(err))
}

func TestRemove(t *testing.T) {
	root, _, _ := seed(t)

	require.True(t, Remove(root).OK())
	require.False(t, Exists(root))
}

func TestRemove_FaultInjection(t *testing.T) {
	boom := errors.New("injected")
	ffs := fs.NewFaulty(nil)
	ffs.FailOn("remove", boom)

	err := Remove(t.TempDir(), WithFileSystem(ffs)).Err()
	require.NotNil(t, err)
	require.Equal(t, StepRemove, err.Step)
	require.ErrorIs(t, err, boom)
}
