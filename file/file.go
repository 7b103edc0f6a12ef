package file

import (
	"bufio"
	"context"
	"errors"
	"io"
	iofs "io/fs"
	"os"
	"strings"

	"github.com/TyOverby/latin"
	"github.com/TyOverby/latin/fs"
)

// Domain tags every failure raised by this package.
const Domain = "file"

// Step names reported in failures, in the order the write sequence runs
// them.
const (
	StepOpen       = "open"
	StepWrite      = "write"
	StepFlush      = "flush"
	StepClose      = "close"
	StepRead       = "read"
	StepCopy       = "copy"
	StepRemove     = "remove"
	StepCompress   = "compress"
	StepDecompress = "decompress"
)

// Write writes contents into the file at path.
//
// If the file does not exist it is created, otherwise it is truncated first.
// The sequence is open, write, flush, close; the first failing step is the
// one reported and the handle is closed on every path. Empty contents
// produce a zero-length file.
func Write(path string, contents []byte, opts ...Option) latin.Result[latin.Unit] {
	o := applyOptions(opts)
	failure := writeTo(o, path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, func(f fs.File) *latin.OpError {
		return writeAll(f, path, contents)
	})
	return o.done("write", path, failure)
}

// WriteLines writes lines into the file at path, each followed by the
// platform line separator. The file is created or truncated like Write.
func WriteLines(path string, lines []string, opts ...Option) latin.Result[latin.Unit] {
	o := applyOptions(opts)
	failure := writeTo(o, path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, func(f fs.File) *latin.OpError {
		for _, line := range lines {
			if err := writeAll(f, path, []byte(line)); err != nil {
				return err
			}
			if err := writeAll(f, path, lineSep); err != nil {
				return err
			}
		}
		return nil
	})
	return o.done("write_lines", path, failure)
}

// Append appends contents to the file at path, creating it if needed.
func Append(path string, contents []byte, opts ...Option) latin.Result[latin.Unit] {
	o := applyOptions(opts)
	failure := writeTo(o, path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, func(f fs.File) *latin.OpError {
		return writeAll(f, path, contents)
	})
	return o.done("append", path, failure)
}

// AppendLine appends contents followed by the platform line separator to the
// file at path, creating it if needed.
func AppendLine(path string, contents []byte, opts ...Option) latin.Result[latin.Unit] {
	o := applyOptions(opts)
	failure := writeTo(o, path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, func(f fs.File) *latin.OpError {
		if err := writeAll(f, path, contents); err != nil {
			return err
		}
		return writeAll(f, path, lineSep)
	})
	return o.done("append_line", path, failure)
}

// Read returns the contents of the file at path.
func Read(path string, opts ...Option) latin.Result[[]byte] {
	o := applyOptions(opts)
	var data []byte
	failure := readFrom(o, path, func(f fs.File) *latin.OpError {
		b, err := io.ReadAll(f)
		if err != nil {
			return latin.E(Domain, StepRead, path, err)
		}
		data = b
		return nil
	})
	o.logger.LogOp(context.Background(), "read", path, failure)
	if failure != nil {
		return latin.Fail[[]byte](failure)
	}
	return latin.Ok(data)
}

// ReadLines returns the lines of the file at path, without separators.
// Lines have no length limit.
func ReadLines(path string, opts ...Option) latin.Result[[]string] {
	o := applyOptions(opts)
	var lines []string
	failure := readFrom(o, path, func(f fs.File) *latin.OpError {
		br := bufio.NewReader(f)
		for {
			line, err := br.ReadString('\n')
			if len(line) > 0 {
				line = strings.TrimSuffix(line, "\n")
				line = strings.TrimSuffix(line, "\r")
				lines = append(lines, line)
			}
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return latin.E(Domain, StepRead, path, err)
			}
		}
	})
	o.logger.LogOp(context.Background(), "read_lines", path, failure)
	if failure != nil {
		return latin.Fail[[]string](failure)
	}
	return latin.Ok(lines)
}

// Exists reports whether a regular file exists at path. It is best effort:
// any stat failure reads as false.
func Exists(path string, opts ...Option) bool {
	o := applyOptions(opts)
	info, err := o.fsys.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Copy copies the file at from into to, creating or truncating to.
func Copy(from, to string, opts ...Option) latin.Result[latin.Unit] {
	o := applyOptions(opts)
	failure := copyFile(o, from, to)
	return o.done("copy", to, failure)
}

// Remove removes the file at path. With WithIgnoreMissing, a missing file is
// treated as success.
func Remove(path string, opts ...Option) latin.Result[latin.Unit] {
	o := applyOptions(opts)
	var failure *latin.OpError
	if err := o.fsys.Remove(path); err != nil {
		if !(o.ignoreMissing && errors.Is(err, iofs.ErrNotExist)) {
			failure = latin.E(Domain, StepRemove, path, err)
		}
	}
	return o.done("remove", path, failure)
}

// writeTo opens path with flag, hands the handle to emit, then flushes and
// closes it. The first failure in causal order wins: a failing emit skips
// the flush, and a close failure is reported only when everything before it
// succeeded. The handle is closed on every path.
func writeTo(o *options, path string, flag int, emit func(f fs.File) *latin.OpError) *latin.OpError {
	f, err := o.fsys.OpenFile(path, flag, o.perm)
	if err != nil {
		return latin.E(Domain, StepOpen, path, err)
	}
	failure := emit(f)
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

// readFrom opens path read-only, hands the handle to consume, and closes it
// on every path.
func readFrom(o *options, path string, consume func(f fs.File) *latin.OpError) *latin.OpError {
	f, err := o.fsys.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return latin.E(Domain, StepOpen, path, err)
	}
	failure := consume(f)
	if err := f.Close(); err != nil && failure == nil {
		failure = latin.E(Domain, StepClose, path, err)
	}
	return failure
}

func writeAll(f fs.File, path string, p []byte) *latin.OpError {
	if _, err := f.Write(p); err != nil {
		return latin.E(Domain, StepWrite, path, err)
	}
	return nil
}

func copyFile(o *options, from, to string) *latin.OpError {
	src, err := o.fsys.OpenFile(from, os.O_RDONLY, 0)
	if err != nil {
		return latin.E(Domain, StepOpen, from, err)
	}
	var failure *latin.OpError
	dst, err := o.fsys.OpenFile(to, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, o.perm)
	if err != nil {
		failure = latin.E(Domain, StepOpen, to, err)
	} else {
		if _, err := io.Copy(dst, src); err != nil {
			failure = latin.E(Domain, StepCopy, to, err)
		}
		if failure == nil {
			if err := dst.Sync(); err != nil {
				failure = latin.E(Domain, StepFlush, to, err)
			}
		}
		if err := dst.Close(); err != nil && failure == nil {
			failure = latin.E(Domain, StepClose, to, err)
		}
	}
	if err := src.Close(); err != nil && failure == nil {
		failure = latin.E(Domain, StepClose, from, err)
	}
	return failure
}

func (o *options) done(op, subject string, failure *latin.OpError) latin.Result[latin.Unit] {
	o.logger.LogOp(context.Background(), op, subject, failure)
	if failure != nil {
		return latin.Fail[latin.Unit](failure)
	}
	return latin.OkUnit()
}
