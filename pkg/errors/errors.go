package errors

import (
	"errors"
	"fmt"
)

// Error represents a typed failure within the data-access layer.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New creates a new Error instance.
func New(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code, message string) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// Predefined errors. Only NoSession, Network and Timeout ever cross the
// client API boundary as thrown errors; application-level failures travel
// as data, never as errors.
var (
	ErrNoSession        = New("NO_SESSION", "no stored session found, please log in again")
	ErrNetwork          = New("NETWORK_ERROR", "could not reach the server")
	ErrTimeout          = New("TIMEOUT", "the request timed out")
	ErrNotFound         = New("NOT_FOUND", "record not found")
	ErrDuplicateAccount = New("DUPLICATE_ACCOUNT", "student account already added")
	ErrValidation       = New("VALIDATION_ERROR", "validation failed")
	ErrStorage          = New("STORAGE_ERROR", "local storage operation failed")
	ErrInternal         = New("INTERNAL_ERROR", "internal error")
)

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.Message)
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}

// HasCode reports whether err carries the given predefined error's code.
// Errors created via Clone or Wrap still match their parent.
func HasCode(err error, target *Error) bool {
	if err == nil || target == nil {
		return false
	}
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Code == target.Code
}
