package minio

import (
	"context"
	"io"
	"os"

	"github.com/minio/minio-go/v7"

	"github.com/TyOverby/latin"
	"github.com/TyOverby/latin/fs"
)

// Domain tags every failure raised by this package.
const Domain = "minio"

// Step names reported in failures, in the order a download runs them.
const (
	StepStat   = "stat"
	StepGet    = "get"
	StepCreate = "create"
	StepCopy   = "copy"
	StepFlush  = "flush"
	StepClose  = "close"
)

const defaultPerm os.FileMode = 0o644

var noopLogger = latin.NoopLogger()

type options struct {
	fsys   fs.FileSystem
	perm   os.FileMode
	logger *latin.Logger
}

// Option configures a single download.
type Option func(*options)

// WithFileSystem injects the filesystem collaborator used for the local
// target file. Defaults to fs.Default.
func WithFileSystem(fsys fs.FileSystem) Option {
	return func(o *options) {
		if fsys == nil {
			fsys = fs.Default
		}
		o.fsys = fsys
	}
}

// WithPerm sets the permission bits of created target files. Defaults to
// 0644.
func WithPerm(perm os.FileMode) Option {
	return func(o *options) {
		o.perm = perm
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

// Download fetches bucket/key through client and writes the object to the
// file at to, creating or truncating it.
//
// The sequence is stat, get, create, copy, flush, close. StatObject runs
// first so that a missing object fails at step "stat" with minio's native
// ErrorResponse, before anything is created locally.
func Download(ctx context.Context, client *minio.Client, bucket, key, to string, opts ...Option) latin.Result[latin.Unit] {
	o := applyOptions(opts)
	failure := download(ctx, o, client, bucket, key, to)
	o.logger.LogOp(ctx, "download", bucket+"/"+key, failure)
	if failure != nil {
		return latin.Fail[latin.Unit](failure)
	}
	return latin.OkUnit()
}

func download(ctx context.Context, o *options, client *minio.Client, bucket, key, to string) *latin.OpError {
	subject := bucket + "/" + key
	if _, err := client.StatObject(ctx, bucket, key, minio.StatObjectOptions{}); err != nil {
		return latin.E(Domain, StepStat, subject, err)
	}
	obj, err := client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return latin.E(Domain, StepGet, subject, err)
	}
	var failure *latin.OpError
	f, err := o.fsys.OpenFile(to, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, o.perm)
	if err != nil {
		failure = latin.E(Domain, StepCreate, to, err)
	} else {
		if _, err := io.Copy(f, obj); err != nil {
			failure = latin.E(Domain, StepCopy, subject, err)
		}
		if failure == nil {
			if err := f.Sync(); err != nil {
				failure = latin.E(Domain, StepFlush, to, err)
			}
		}
		if err := f.Close(); err != nil && failure == nil {
			failure = latin.E(Domain, StepClose, to, err)
		}
	}
	if err := obj.Close(); err != nil && failure == nil {
		failure = latin.E(Domain, StepClose, subject, err)
	}
	return failure
}
