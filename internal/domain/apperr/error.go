package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation error")
	ErrConflict   = errors.New("conflict")
	ErrNotFound   = errors.New("not found")
	ErrKeyParse   = errors.New("key parse error")
	ErrInternal   = errors.New("internal error")
)

// DomainError carries a user facing message on top of one of the sentinel kinds.
type DomainError struct {
	Err     error
	Message string
	Code    string
}

func (e *DomainError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Err.Error()
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

func New(kind error, code, message string) *DomainError {
	return &DomainError{Err: kind, Code: code, Message: message}
}

func Validation(code, message string) *DomainError {
	return New(ErrValidation, code, message)
}

func Conflict(code, message string) *DomainError {
	return New(ErrConflict, code, message)
}

func NotFound(code, message string) *DomainError {
	return New(ErrNotFound, code, message)
}

// Internal wraps an unexpected failure. The cause stays reachable through errors.Is/As
// but never becomes part of the message.
func Internal(op string, cause error) error {
	return fmt.Errorf("%s: %w", op, errors.Join(ErrInternal, cause))
}

// Message returns the user facing message of err, or fallback when err carries none.
func Message(err error, fallback string) string {
	var de *DomainError
	if errors.As(err, &de) && de.Message != "" {
		return de.Message
	}
	return fallback
}
