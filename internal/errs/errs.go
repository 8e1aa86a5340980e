package errs

import (
	"errors"
	"fmt"
)

// Sentinel values for the four error classes the vault can produce.
// Callers branch with errors.Is against these.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrStorage    = errors.New("storage failure")
)

// Error wraps one of the sentinel values with detail about what went wrong
// and, for storage failures, the underlying cause.
type Error struct {
	kind    error
	Details string
	Cause   error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.kind.Error(), e.Details)
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the sentinel so errors.Is(err, ErrNotFound) works on
// wrapped instances.
func (e *Error) Unwrap() error {
	return e.kind
}

// Validationf reports a caller-supplied value that violates a domain
// constraint. Never corrupts state; always recoverable.
func Validationf(format string, args ...any) *Error {
	return &Error{kind: ErrValidation, Details: fmt.Sprintf(format, args...)}
}

// NotFoundf reports a referenced id missing from its collection.
func NotFoundf(format string, args ...any) *Error {
	return &Error{kind: ErrNotFound, Details: fmt.Sprintf(format, args...)}
}

// Conflictf is reserved for relational invariants that must reject rather
// than cascade. No current operation raises it.
func Conflictf(format string, args ...any) *Error {
	return &Error{kind: ErrConflict, Details: fmt.Sprintf(format, args...)}
}

// Storagef reports a read or write failure in the backing store.
func Storagef(cause error, format string, args ...any) *Error {
	return &Error{kind: ErrStorage, Details: fmt.Sprintf(format, args...), Cause: cause}
}
