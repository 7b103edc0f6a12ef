// Package latin collapses common multi-step OS and library interactions into
// single calls while preserving the full error information of every
// underlying step.
//
// Writing a file through the standard library takes four fallible calls
// (open, write, flush, close). Latin turns that into one:
//
//	res := file.Write("./foo.txt", []byte("contents"))
//	if err := res.Err(); err != nil {
//	    // err.Domain == "file", err.Step names the call that failed,
//	    // errors.Unwrap(err) is the untouched os error.
//	}
//
// # Results
//
// Every composed operation returns a [Result]: either Ok carrying a value, or
// Fail carrying an [*OpError]. Result never converts a failure into a default
// value on its own; collapsing is always an explicit caller choice
// ([Result.OrElse], [Result.MustGet]).
//
//	data, err := file.Read("./foo.txt").Get() // plain Go error handling
//	data = file.Read("./foo.txt").OrElse(nil) // explicit fallback
//
// # Error taxonomy
//
// Failures are classified by (domain, step, cause). The domain is the package
// that raised the failure ("file", "dir", "net", "image"), the step is the
// primitive call that failed ("open", "write", "flush", ...), and the cause
// is the collaborator's native error, verbatim. Nothing is summarized away:
// errors.Is, errors.As and [OpError.Errno] see the original payload.
//
//	if latin.StepIs(err, "file", "open") && latin.IsNotFound(err) {
//	    // the open itself failed because the path does not exist
//	}
//
// # Domains
//
// Each domain is a self-contained package exposing only composed operations:
//
//   - file: write, read, append, copy, remove, compressed variants
//   - dir: listing, creation, recursive removal
//   - net: HTTP downloads, plus S3/MinIO backends in subpackages
//   - image: decode and encode via the registered stdlib codecs
//
// Domains share only this package and the fs collaborator abstraction. New
// domains add their own name and steps without touching existing ones.
//
// # Guarantees
//
// Composed operations are fail-fast: the first failing step is the one
// reported, later steps do not run, and any acquired handle is released on
// every path before the call returns. A cleanup failure is reported only when
// the primary sequence succeeded, so it can never mask the original cause.
package latin
