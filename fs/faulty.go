package fs

import (
	"os"
	"sync"
)

// Faulty is a FileSystem wrapper that injects one failure at a chosen step
// and records every primitive call it sees.
//
// Tests use it to verify three properties of composed operations: the
// reported step matches the injected one, no further primitive runs after
// the first failure, and every opened handle is closed exactly once.
type Faulty struct {
	FS FileSystem

	mu     sync.Mutex
	faults map[string]error
	calls  []string
	opens  int
	closes int
}

// NewFaulty creates a Faulty wrapping the provided FileSystem (or Default if
// nil). With no faults configured it is a transparent recorder.
func NewFaulty(fsys FileSystem) *Faulty {
	if fsys == nil {
		fsys = Default
	}
	return &Faulty{
		FS:     fsys,
		faults: make(map[string]error),
	}
}

// FailOn makes the named step ("open", "read", "write", "sync", "close",
// "stat", "mkdir", "remove", "readdir", "rename") return err.
func (f *Faulty) FailOn(step string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.faults[step] = err
}

// Calls returns the primitive calls observed so far, in order.
func (f *Faulty) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.calls))
	copy(out, f.calls)
	return out
}

// Opens returns the number of successfully opened handles.
func (f *Faulty) Opens() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.opens
}

// Closes returns the number of Close calls on handles opened through this
// filesystem, whether or not Close itself was made to fail.
func (f *Faulty) Closes() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closes
}

// record logs the step and returns the injected fault for it, if any.
func (f *Faulty) record(step string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, step)
	return f.faults[step]
}

func (f *Faulty) OpenFile(name string, flag int, perm os.FileMode) (File, error) {
	if err := f.record("open"); err != nil {
		return nil, err
	}
	file, err := f.FS.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	f.opens++
	f.mu.Unlock()
	return &faultyFile{File: file, fs: f}, nil
}

func (f *Faulty) Remove(name string) error {
	if err := f.record("remove"); err != nil {
		return err
	}
	return f.FS.Remove(name)
}

func (f *Faulty) RemoveAll(path string) error {
	if err := f.record("remove"); err != nil {
		return err
	}
	return f.FS.RemoveAll(path)
}

func (f *Faulty) Rename(oldpath, newpath string) error {
	if err := f.record("rename"); err != nil {
		return err
	}
	return f.FS.Rename(oldpath, newpath)
}

func (f *Faulty) Stat(name string) (os.FileInfo, error) {
	if err := f.record("stat"); err != nil {
		return nil, err
	}
	return f.FS.Stat(name)
}

func (f *Faulty) Mkdir(name string, perm os.FileMode) error {
	if err := f.record("mkdir"); err != nil {
		return err
	}
	return f.FS.Mkdir(name, perm)
}

func (f *Faulty) MkdirAll(path string, perm os.FileMode) error {
	if err := f.record("mkdir"); err != nil {
		return err
	}
	return f.FS.MkdirAll(path, perm)
}

func (f *Faulty) ReadDir(name string) ([]os.DirEntry, error) {
	if err := f.record("readdir"); err != nil {
		return nil, err
	}
	return f.FS.ReadDir(name)
}

type faultyFile struct {
	File
	fs *Faulty
}

func (ff *faultyFile) Read(p []byte) (int, error) {
	if err := ff.fs.record("read"); err != nil {
		return 0, err
	}
	return ff.File.Read(p)
}

func (ff *faultyFile) Write(p []byte) (int, error) {
	if err := ff.fs.record("write"); err != nil {
		return 0, err
	}
	return ff.File.Write(p)
}

func (ff *faultyFile) Sync() error {
	if err := ff.fs.record("sync"); err != nil {
		return err
	}
	return ff.File.Sync()
}

func (ff *faultyFile) Close() error {
	injected := ff.fs.record("close")
	ff.fs.mu.Lock()
	ff.fs.closes++
	ff.fs.mu.Unlock()
	// The underlying handle is released even when the step is made to fail,
	// so tests never leak descriptors.
	err := ff.File.Close()
	if injected != nil {
		return injected
	}
	return err
}
