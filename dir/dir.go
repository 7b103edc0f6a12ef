package dir

import (
	"context"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"github.com/TyOverby/latin"
	"github.com/TyOverby/latin/fs"
)

// Domain tags every failure raised by this package.
const Domain = "dir"

// Step names reported in failures.
const (
	StepStat    = "stat"
	StepReadDir = "readdir"
	StepMkdir   = "mkdir"
	StepRemove  = "remove"
)

const defaultPerm os.FileMode = 0o755

var noopLogger = latin.NoopLogger()

type options struct {
	fsys           fs.FileSystem
	perm           os.FileMode
	ignoreExisting bool
	logger         *latin.Logger
}

// Option configures a single directory operation.
type Option func(*options)

// WithFileSystem injects the filesystem collaborator. Defaults to fs.Default.
func WithFileSystem(fsys fs.FileSystem) Option {
	return func(o *options) {
		if fsys == nil {
			fsys = fs.Default
		}
		o.fsys = fsys
	}
}

// WithPerm sets the permission bits used when directories are created.
// Defaults to 0755.
func WithPerm(perm os.FileMode) Option {
	return func(o *options) {
		o.perm = perm
	}
}

// WithIgnoreExisting makes Create treat an already existing directory as
// success. This is an explicit opt-in; by default an existing directory is a
// failure like any other.
func WithIgnoreExisting() Option {
	return func(o *options) {
		o.ignoreExisting = true
	}
}

// WithLogger injects a logger for operation outcomes, tagged with this
// package's domain. Without it the package logs nothing.
func WithLogger(l *latin.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = noopLogger
		}
		o.logger = l.WithDomain(Domain)
	}
}

func applyOptions(opts []Option) *options {
	o := &options{
		fsys:   fs.Default,
		perm:   defaultPerm,
		logger: noopLogger,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Exists reports whether a directory exists at path. It is best effort: any
// stat failure reads as false.
func Exists(path string, opts ...Option) bool {
	o := applyOptions(opts)
	info, err := o.fsys.Stat(path)
	return err == nil && info.IsDir()
}

// Children returns the full paths of all entries in the directory at path.
func Children(path string, opts ...Option) latin.Result[[]string] {
	return list(path, "children", applyOptions(opts), func(iofs.DirEntry) bool { return true })
}

// Files returns the full paths of the regular files in the directory at
// path.
func Files(path string, opts ...Option) latin.Result[[]string] {
	return list(path, "files", applyOptions(opts), func(e iofs.DirEntry) bool {
		return e.Type().IsRegular()
	})
}

// SubDirectories returns the full paths of the directories in the directory
// at path.
func SubDirectories(path string, opts ...Option) latin.Result[[]string] {
	return list(path, "sub_directories", applyOptions(opts), func(e iofs.DirEntry) bool {
		return e.IsDir()
	})
}

// Create creates the directory at path, along with any missing parents.
// With WithIgnoreExisting, an already existing directory is treated as
// success.
func Create(path string, opts ...Option) latin.Result[latin.Unit] {
	o := applyOptions(opts)
	var failure *latin.OpError
	if err := mkdir(o, path); err != nil {
		if !(o.ignoreExisting && errors.Is(err, iofs.ErrExist) && isDir(o, path)) {
			failure = latin.E(Domain, StepMkdir, path, err)
		}
	}
	return done(o, "create", path, failure)
}

// Remove removes the directory at path and everything it contains.
func Remove(path string, opts ...Option) latin.Result[latin.Unit] {
	o := applyOptions(opts)
	var failure *latin.OpError
	if err := o.fsys.RemoveAll(path); err != nil {
		failure = latin.E(Domain, StepRemove, path, err)
	}
	return done(o, "remove", path, failure)
}

func list(path, op string, o *options, keep func(iofs.DirEntry) bool) latin.Result[[]string] {
	entries, err := o.fsys.ReadDir(path)
	if err != nil {
		failure := latin.E(Domain, StepReadDir, path, err)
		o.logger.LogOp(context.Background(), op, path, failure)
		return latin.Fail[[]string](failure)
	}
	var out []string
	for _, e := range entries {
		if keep(e) {
			out = append(out, filepath.Join(path, e.Name()))
		}
	}
	o.logger.LogOp(context.Background(), op, path, nil)
	return latin.Ok(out)
}

// isDir reports whether path names an existing directory. fs.ErrExist from
// Mkdir may also mean a regular file sits at path, which must stay a failure
// even under WithIgnoreExisting.
func isDir(o *options, path string) bool {
	info, err := o.fsys.Stat(path)
	return err == nil && info.IsDir()
}

// mkdir creates parents with MkdirAll first, then creates the leaf with
// Mkdir so that an existing leaf still surfaces as fs.ErrExist.
func mkdir(o *options, path string) error {
	if parent := filepath.Dir(path); parent != path {
		if err := o.fsys.MkdirAll(parent, o.perm); err != nil {
			return err
		}
	}
	return o.fsys.Mkdir(path, o.perm)
}

func done(o *options, op, subject string, failure *latin.OpError) latin.Result[latin.Unit] {
	o.logger.LogOp(context.Background(), op, subject, failure)
	if failure != nil {
		return latin.Fail[latin.Unit](failure)
	}
	return latin.OkUnit()
}
