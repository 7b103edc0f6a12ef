package latin

import "fmt"

// Unit is the value type of operations that produce no payload.
type Unit = struct{}

// Result is the outcome of a composed operation: Ok carrying a value, or
// Fail carrying an *OpError describing the step that failed.
//
// The zero Result is Ok with the zero value; operations always construct
// results through Ok, OkUnit or Fail.
type Result[T any] struct {
	value T
	err   *OpError
}

// Ok returns a successful result carrying v.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// OkUnit returns a successful result with no payload.
func OkUnit() Result[Unit] {
	return Result[Unit]{}
}

// Fail returns a failed result carrying err.
//
// A nil err is treated as success; adapters never produce one.
func Fail[T any](err *OpError) Result[T] {
	return Result[T]{err: err}
}

// OK reports whether the result is a success.
func (r Result[T]) OK() bool { return r.err == nil }

// Get returns the value, or a non-nil error if the operation failed.
//
// This is the bridge to plain Go error handling:
//
//	v, err := file.Read(path).Get()
func (r Result[T]) Get() (T, error) {
	if r.err != nil {
		var zero T
		return zero, r.err
	}
	return r.value, nil
}

// MustGet returns the value and panics on failure. Use only where a failure
// is a programming error.
func (r Result[T]) MustGet() T {
	if r.err != nil {
		panic(fmt.Sprintf("latin: MustGet on failed result: %v", r.err))
	}
	return r.value
}

// OrElse returns the value on success and fallback on failure. The failure is
// discarded; this is the explicit opt-in for defaulting.
func (r Result[T]) OrElse(fallback T) T {
	if r.err != nil {
		return fallback
	}
	return r.value
}

// Err returns the failure, or nil on success. The error can be inspected
// (domain, step, cause) without consuming the result.
func (r Result[T]) Err() *OpError { return r.err }

// Map applies f to a successful value. A failure passes through untouched.
func Map[T, U any](r Result[T], f func(T) U) Result[U] {
	if r.err != nil {
		return Result[U]{err: r.err}
	}
	return Result[U]{value: f(r.value)}
}

// Then chains r into f: f runs only on success, a failure propagates
// unchanged. This is the fail-fast sequencing primitive.
func Then[T, U any](r Result[T], f func(T) Result[U]) Result[U] {
	if r.err != nil {
		return Result[U]{err: r.err}
	}
	return f(r.value)
}
