package image

import (
	"context"
	"errors"
	"fmt"
	stdimage "image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/TyOverby/latin"
	"github.com/TyOverby/latin/fs"
)

// Domain tags every failure raised by this package.
const Domain = "image"

// Step names reported in failures.
const (
	StepOpen   = "open"
	StepDecode = "decode"
	StepCreate = "create"
	StepEncode = "encode"
	StepFlush  = "flush"
	StepClose  = "close"
)

// ErrUnknownFormat is the cause of an "encode" failure when the target
// extension maps to no registered codec.
var ErrUnknownFormat = errors.New("unknown image format")

const (
	defaultPerm        os.FileMode = 0o644
	defaultJPEGQuality             = jpeg.DefaultQuality
)

var noopLogger = latin.NoopLogger()

type options struct {
	fsys        fs.FileSystem
	perm        os.FileMode
	jpegQuality int
	logger      *latin.Logger
}

// Option configures a single image operation.
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

// WithPerm sets the permission bits used when a file is created. Defaults to
// 0644.
func WithPerm(perm os.FileMode) Option {
	return func(o *options) {
		o.perm = perm
	}
}

// WithJPEGQuality sets the quality (1-100) used when saving JPEG files.
func WithJPEGQuality(q int) Option {
	return func(o *options) {
		o.jpegQuality = q
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
		fsys:        fs.Default,
		perm:        defaultPerm,
		jpegQuality: defaultJPEGQuality,
		logger:      noopLogger,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Load decodes the image file at path. The sequence is open, decode, close;
// the format is detected from the stream by the registered codecs.
func Load(path string, opts ...Option) latin.Result[stdimage.Image] {
	o := applyOptions(opts)
	var img stdimage.Image
	failure := func() *latin.OpError {
		f, err := o.fsys.OpenFile(path, os.O_RDONLY, 0)
		if err != nil {
			return latin.E(Domain, StepOpen, path, err)
		}
		var failure *latin.OpError
		decoded, _, err := stdimage.Decode(f)
		if err != nil {
			failure = latin.E(Domain, StepDecode, path, err)
		} else {
			img = decoded
		}
		if err := f.Close(); err != nil && failure == nil {
			failure = latin.E(Domain, StepClose, path, err)
		}
		return failure
	}()
	o.logger.LogOp(context.Background(), "load", path, failure)
	if failure != nil {
		return latin.Fail[stdimage.Image](failure)
	}
	return latin.Ok(img)
}

// Save encodes img into the file at path, creating or truncating it. The
// codec is chosen by extension: .png, .jpg/.jpeg or .gif. The sequence is
// create, encode, flush, close; an unknown extension fails at step "encode"
// with ErrUnknownFormat before the file is created.
func Save(path string, img stdimage.Image, opts ...Option) latin.Result[latin.Unit] {
	o := applyOptions(opts)
	failure := save(o, path, img)
	o.logger.LogOp(context.Background(), "save", path, failure)
	if failure != nil {
		return latin.Fail[latin.Unit](failure)
	}
	return latin.OkUnit()
}

func save(o *options, path string, img stdimage.Image) *latin.OpError {
	encode, err := encoderFor(o, path)
	if err != nil {
		return latin.E(Domain, StepEncode, path, err)
	}
	f, err := o.fsys.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, o.perm)
	if err != nil {
		return latin.E(Domain, StepCreate, path, err)
	}
	var failure *latin.OpError
	if err := encode(f, img); err != nil {
		failure = latin.E(Domain, StepEncode, path, err)
	}
	if failure == nil {
		if err := f.Sync(); err != nil {
			failure = latin.E(Domain, StepFlush, path, err)
		}
	}
	if err := f.Close(); err != nil && failure == nil {
		failure = latin.E(Domain, StepClose, path, err)
	}
	return failure
}

func encoderFor(o *options, path string) (func(fs.File, stdimage.Image) error, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return func(f fs.File, img stdimage.Image) error {
			return png.Encode(f, img)
		}, nil
	case ".jpg", ".jpeg":
		return func(f fs.File, img stdimage.Image) error {
			return jpeg.Encode(f, img, &jpeg.Options{Quality: o.jpegQuality})
		}, nil
	case ".gif":
		return func(f fs.File, img stdimage.Image) error {
			return gif.Encode(f, img, nil)
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
}
