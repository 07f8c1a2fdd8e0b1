package types

import (
	"errors"
	"fmt"
)

// Error kinds. Every failure a Registry operation can report belongs to
// exactly one of these three categories. Callers match with errors.Is.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
)

// Registry lifecycle errors. These concern backend attachment, not ledger
// operations, and sit outside the three-kind taxonomy above.
var (
	ErrRegistryDetached = errors.New("registry is detached")
	ErrAlreadyAttached  = errors.New("registry is already attached")
)

// Error is a categorized ledger failure. It pairs one of the three kind
// sentinels with a message naming the operation and the offending id or
// field. errors.Is(err, ErrNotFound) and friends match through Unwrap.
type Error struct {
	kind error
	msg  string
}

func (e *Error) Error() string { return e.msg }

// Unwrap exposes the kind sentinel for errors.Is matching.
func (e *Error) Unwrap() error { return e.kind }

// InvalidInputf builds an InvalidInput error with a formatted message.
func InvalidInputf(format string, args ...any) *Error {
	return &Error{kind: ErrInvalidInput, msg: fmt.Sprintf(format, args...)}
}

// NotFoundf builds a NotFound error with a formatted message.
func NotFoundf(format string, args ...any) *Error {
	return &Error{kind: ErrNotFound, msg: fmt.Sprintf(format, args...)}
}

// Unauthorizedf builds an Unauthorized error with a formatted message.
func Unauthorizedf(format string, args ...any) *Error {
	return &Error{kind: ErrUnauthorized, msg: fmt.Sprintf(format, args...)}
}
