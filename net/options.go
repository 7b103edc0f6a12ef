package net

import (
	"net/http"
	"os"

	"golang.org/x/time/rate"

	"github.com/TyOverby/latin"
	"github.com/TyOverby/latin/fs"
)

const (
	defaultPerm        os.FileMode = 0o644
	defaultConcurrency             = 4
)

var noopLogger = latin.NoopLogger()

type options struct {
	client      *http.Client
	header      http.Header
	limiter     *rate.Limiter
	concurrency int
	fsys        fs.FileSystem
	perm        os.FileMode
	logger      *latin.Logger
}

// Option configures a single download or fetch.
type Option func(*options)

// WithClient injects the HTTP client. Defaults to http.DefaultClient.
func WithClient(client *http.Client) Option {
	return func(o *options) {
		if client == nil {
			client = http.DefaultClient
		}
		o.client = client
	}
}

// WithHeader adds a request header.
func WithHeader(key, value string) Option {
	return func(o *options) {
		if o.header == nil {
			o.header = make(http.Header)
		}
		o.header.Add(key, value)
	}
}

// WithRateLimit throttles body reads to bytesPerSecond. Zero or negative
// disables throttling (the default).
func WithRateLimit(bytesPerSecond int) Option {
	return func(o *options) {
		if bytesPerSecond <= 0 {
			o.limiter = nil
			return
		}
		o.limiter = rate.NewLimiter(rate.Limit(bytesPerSecond), bytesPerSecond)
	}
}

// WithConcurrency bounds the number of parallel downloads in DownloadAll.
// Defaults to 4.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.concurrency = n
	}
}

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
		client:      http.DefaultClient,
		concurrency: defaultConcurrency,
		fsys:        fs.Default,
		perm:        defaultPerm,
		logger:      noopLogger,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
