// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for replaymem.

package api

import "fmt"

// Common errors used across the library.
var (
	ErrInvalidCapacity = fmt.Errorf("capacity must be positive")
	ErrIndexOutOfRange = fmt.Errorf("index is out of range")
	ErrEmpty           = fmt.Errorf("nothing staged")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeInvalidCapacity
	ErrCodeIndexOutOfRange
	ErrCodeEmpty
)

func (c ErrorCode) String() string {
	switch c {
	case ErrCodeOK:
		return "ok"
	case ErrCodeInvalidCapacity:
		return "invalid_capacity"
	case ErrCodeIndexOutOfRange:
		return "index_out_of_range"
	case ErrCodeEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// sentinel maps a code to the package-level error it matches under errors.Is.
func (c ErrorCode) sentinel() error {
	switch c {
	case ErrCodeInvalidCapacity:
		return ErrInvalidCapacity
	case ErrCodeIndexOutOfRange:
		return ErrIndexOutOfRange
	case ErrCodeEmpty:
		return ErrEmpty
	default:
		return nil
	}
}

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// Unwrap exposes the sentinel for the error code, so that
// errors.Is(err, ErrIndexOutOfRange) holds for a structured error.
func (e *Error) Unwrap() error {
	return e.Code.sentinel()
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// InvalidCapacity builds the error returned by constructors for capacity <= 0.
func InvalidCapacity(capacity int) *Error {
	return NewError(ErrCodeInvalidCapacity, ErrInvalidCapacity.Error()).
		WithContext("capacity", capacity)
}

// IndexOutOfRange builds the error returned by positional reads.
func IndexOutOfRange(index, length int) *Error {
	return NewError(ErrCodeIndexOutOfRange, ErrIndexOutOfRange.Error()).
		WithContext("index", index).
		WithContext("len", length)
}
