package latin

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
)

// OpError describes the failing step of a composed operation.
//
// Domain names the package that raised the failure ("file", "net", ...),
// Step names the primitive call within that domain's sequence ("open",
// "write", ...), Subject is the path or URL being operated on, and Cause is
// the collaborator's native error, preserved verbatim.
//
// The original error is reachable via errors.Unwrap, so errors.Is and
// errors.As work against the native payload:
//
//	errors.Is(err, fs.ErrNotExist)
type OpError struct {
	Domain  string
	Step    string
	Subject string
	Cause   error
}

// E constructs an OpError. Adapters call it at the point they observe a
// native failure; the value is never mutated afterwards.
func E(domain, step, subject string, cause error) *OpError {
	return &OpError{Domain: domain, Step: step, Subject: subject, Cause: cause}
}

func (e *OpError) Error() string {
	if e.Subject == "" {
		return fmt.Sprintf("%s: %s: %v", e.Domain, e.Step, e.Cause)
	}
	return fmt.Sprintf("%s: %s %s: %v", e.Domain, e.Step, e.Subject, e.Cause)
}

func (e *OpError) Unwrap() error { return e.Cause }

// Errno returns the platform error code carried by the cause chain, if any.
func (e *OpError) Errno() (int, bool) {
	var errno syscall.Errno
	if errors.As(e.Cause, &errno) {
		return int(errno), true
	}
	return 0, false
}

// StepIs reports whether err is an OpError raised by the given domain and
// step. It follows the wrap chain, so it also works on errors returned by
// Result.Get.
func StepIs(err error, domain, step string) bool {
	var oe *OpError
	if !errors.As(err, &oe) {
		return false
	}
	return oe.Domain == domain && oe.Step == step
}

// DomainIs reports whether err is an OpError raised by the given domain.
func DomainIs(err error, domain string) bool {
	var oe *OpError
	if !errors.As(err, &oe) {
		return false
	}
	return oe.Domain == domain
}

// IsNotFound reports whether err's native cause says the subject does not
// exist.
func IsNotFound(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// IsExist reports whether err's native cause says the subject already
// exists.
func IsExist(err error) bool {
	return errors.Is(err, fs.ErrExist)
}
