package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Expansion errors
	ErrSourceNotFound     ErrorCode = "SOURCE_NOT_FOUND"
	ErrCyclicInclusion    ErrorCode = "CYCLIC_INCLUSION"
	ErrMalformedDirective ErrorCode = "MALFORMED_DIRECTIVE"
	ErrUnsupportedShell   ErrorCode = "UNSUPPORTED_SHELL"
	ErrIgnoreMisuse       ErrorCode = "IGNORE_MISUSE"

	// Output errors
	ErrOutputExists ErrorCode = "OUTPUT_EXISTS"
	ErrFileWrite    ErrorCode = "FILE_WRITE"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
)

// ShldError represents a structured error with code and details
type ShldError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ShldError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ShldError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ShldError) Is(target error) bool {
	var targetErr *ShldError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ShldError with the given code and message
func New(code ErrorCode, message string) *ShldError {
	return &ShldError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ShldError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ShldError {
	return &ShldError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ShldError
func Wrap(err error, code ErrorCode, message string) *ShldError {
	if err == nil {
		return nil
	}
	return &ShldError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ShldError {
	if err == nil {
		return nil
	}
	return &ShldError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ShldError) WithDetail(key string, value interface{}) *ShldError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// CodeOf returns the error code carried by err, or ErrUnknown when err is
// not a ShldError.
func CodeOf(err error) ErrorCode {
	var se *ShldError
	if errors.As(err, &se) {
		return se.Code
	}
	return ErrUnknown
}

// IsCode reports whether err carries the given error code.
func IsCode(err error, code ErrorCode) bool {
	var se *ShldError
	if errors.As(err, &se) {
		return se.Code == code
	}
	return false
}
