package file

import (
	"os"

	"github.com/TyOverby/latin"
	"github.com/TyOverby/latin/fs"
)

const defaultPerm os.FileMode = 0o644

var noopLogger = latin.NoopLogger()

type options struct {
	fsys          fs.FileSystem
	perm          os.FileMode
	ignoreMissing bool
	logger        *latin.Logger
}

// Option configures a single file operation.
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

// WithPerm sets the permission bits used when a file is created.
// Defaults to 0644.
func WithPerm(perm os.FileMode) Option {
	return func(o *options) {
		o.perm = perm
	}
}

// WithIgnoreMissing makes Remove treat a missing file as success. This is an
// explicit opt-in; by default a missing file is a failure like any other.
func WithIgnoreMissing() Option {
	return func(o *options) {
		o.ignoreMissing = true
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
