package s3

import (
	"context"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/TyOverby/latin"
	"github.com/TyOverby/latin/fs"
)

// Domain tags every failure raised by this package.
const Domain = "s3"

// Step names reported in failures, in the order a download runs them.
const (
	StepCreate   = "create"
	StepDownload = "download"
	StepFlush    = "flush"
	StepClose    = "close"
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

// NewClient creates an S3 client from the default AWS configuration chain
// (environment, shared config, instance role).
func NewClient(ctx context.Context, optFns ...func(*config.LoadOptions) error) (*awss3.Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx, optFns...)
	if err != nil {
		return nil, err
	}
	return awss3.NewFromConfig(cfg), nil
}

// Download fetches bucket/key through client and writes the object to the
// file at to, creating or truncating it.
//
// The sequence is create, download, flush, close. The transfer manager
// writes ranged parts directly into the file, so the local file is created
// before the object is requested; on failure the partial file is left
// behind, like any interrupted write.
func Download(ctx context.Context, client *awss3.Client, bucket, key, to string, opts ...Option) latin.Result[latin.Unit] {
	o := applyOptions(opts)
	failure := download(ctx, o, client, bucket, key, to)
	o.logger.LogOp(ctx, "download", bucket+"/"+key, failure)
	if failure != nil {
		return latin.Fail[latin.Unit](failure)
	}
	return latin.OkUnit()
}

func download(ctx context.Context, o *options, client *awss3.Client, bucket, key, to string) *latin.OpError {
	f, err := o.fsys.OpenFile(to, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, o.perm)
	if err != nil {
		return latin.E(Domain, StepCreate, to, err)
	}
	var failure *latin.OpError
	downloader := manager.NewDownloader(client)
	if _, err := downloader.Download(ctx, f, &awss3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}); err != nil {
		failure = latin.E(Domain, StepDownload, bucket+"/"+key, err)
	}
	if failure == nil {
		if err := f.Sync(); err != nil {
			failure = latin.E(Domain, StepFlush, to, err)
		}
	}
	if err := f.Close(); err != nil && failure == nil {
		failure = latin.E(Domain, StepClose, to, err)
	}
	return failure
}
