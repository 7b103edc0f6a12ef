// Package file provides single-call file operations with step-level error
// reporting.
//
// Each operation sequences the underlying filesystem primitives (open,
// write, flush, close, ...) with fail-fast semantics: the first failing
// primitive is the one reported, later primitives do not run, and the file
// handle is released on every path before the call returns.
//
//	res := file.Write("./foo.txt", []byte("contents"))
//	res := file.Append("./log.txt", []byte("entry"))
//	data, err := file.Read("./foo.txt").Get()
//
// Failures carry domain "file" and the step name, with the native os error
// untouched underneath:
//
//	err := file.Write("/no/such/dir/f.txt", []byte("hi")).Err()
//	// err.Step == file.StepOpen, errors.Is(err, fs.ErrNotExist) == true
//
// Compressed variants (WriteGzip, ReadGzip, WriteLZ4, ReadLZ4) fold the
// codec into the same sequence, adding the compress/decompress steps.
package file
