package fs

import (
	"io"
	"os"
)

// File represents an open file.
type File interface {
	io.ReadWriteCloser
	io.ReaderAt
	io.WriterAt
	io.Seeker
	Sync() error
	Stat() (os.FileInfo, error)
}

// FileSystem abstracts file system operations for testability.
type FileSystem interface {
	OpenFile(name string, flag int, perm os.FileMode) (File, error)
	Remove(name string) error
	RemoveAll(path string) error
	Rename(oldpath, newpath string) error
	Stat(name string) (os.FileInfo, error)
	Mkdir(name string, perm os.FileMode) error
	MkdirAll(path string, perm os.FileMode) error
	ReadDir(name string) ([]os.DirEntry, error)
}

// Local implements FileSystem using the local os package.
type Local struct{}

func (Local) OpenFile(name string, flag int, perm os.FileMode) (File, error) {
	return os.OpenFile(name, flag, perm)
}

func (Local) Remove(name string) error               { return os.Remove(name) }
func (Local) RemoveAll(path string) error            { return os.RemoveAll(path) }
func (Local) Rename(oldpath, newpath string) error   { return os.Rename(oldpath, newpath) }
func (Local) Stat(name string) (os.FileInfo, error)  { return os.Stat(name) }
func (Local) Mkdir(name string, perm os.FileMode) error {
	return os.Mkdir(name, perm)
}
func (Local) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}
func (Local) ReadDir(name string) ([]os.DirEntry, error) { return os.ReadDir(name) }

// Default is the default local file system.
var Default FileSystem = Local{}
