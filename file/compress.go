package file

import (
	"context"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/pierrec/lz4/v4"

	"github.com/TyOverby/latin"
	"github.com/TyOverby/latin/fs"
)

// WriteGzip writes contents gzip-compressed into the file at path. The
// sequence is open, compress, flush, close; codec failures are reported at
// step "compress" with the codec's error untouched.
func WriteGzip(path string, contents []byte, opts ...Option) latin.Result[latin.Unit] {
	o := applyOptions(opts)
	failure := writeTo(o, path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, func(f fs.File) *latin.OpError {
		zw := gzip.NewWriter(f)
		if _, err := zw.Write(contents); err != nil {
			return latin.E(Domain, StepCompress, path, err)
		}
		// Close flushes the remaining compressed stream and the footer.
		if err := zw.Close(); err != nil {
			return latin.E(Domain, StepCompress, path, err)
		}
		return nil
	})
	return o.done("write_gzip", path, failure)
}

// ReadGzip returns the decompressed contents of the gzip file at path.
func ReadGzip(path string, opts ...Option) latin.Result[[]byte] {
	o := applyOptions(opts)
	var data []byte
	failure := readFrom(o, path, func(f fs.File) *latin.OpError {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return latin.E(Domain, StepDecompress, path, err)
		}
		b, err := io.ReadAll(zr)
		if err != nil {
			_ = zr.Close()
			return latin.E(Domain, StepDecompress, path, err)
		}
		if err := zr.Close(); err != nil {
			return latin.E(Domain, StepDecompress, path, err)
		}
		data = b
		return nil
	})
	o.logger.LogOp(context.Background(), "read_gzip", path, failure)
	if failure != nil {
		return latin.Fail[[]byte](failure)
	}
	return latin.Ok(data)
}

// WriteLZ4 writes contents LZ4-compressed into the file at path. Same
// sequence and error shape as WriteGzip.
func WriteLZ4(path string, contents []byte, opts ...Option) latin.Result[latin.Unit] {
	o := applyOptions(opts)
	failure := writeTo(o, path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, func(f fs.File) *latin.OpError {
		zw := lz4.NewWriter(f)
		if _, err := zw.Write(contents); err != nil {
			return latin.E(Domain, StepCompress, path, err)
		}
		if err := zw.Close(); err != nil {
			return latin.E(Domain, StepCompress, path, err)
		}
		return nil
	})
	return o.done("write_lz4", path, failure)
}

// ReadLZ4 returns the decompressed contents of the LZ4 file at path.
func ReadLZ4(path string, opts ...Option) latin.Result[[]byte] {
	o := applyOptions(opts)
	var data []byte
	failure := readFrom(o, path, func(f fs.File) *latin.OpError {
		zr := lz4.NewReader(f)
		b, err := io.ReadAll(zr)
		if err != nil {
			return latin.E(Domain, StepDecompress, path, err)
		}
		data = b
		return nil
	})
	o.logger.LogOp(context.Background(), "read_lz4", path, failure)
	if failure != nil {
		return latin.Fail[[]byte](failure)
	}
	return latin.Ok(data)
}
