package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad    ErrorCode = "CONFIG_LOAD"
	ErrConfigParse   ErrorCode = "CONFIG_PARSE"
	ErrConfigInvalid ErrorCode = "CONFIG_INVALID"

	// File system errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"

	// Rendering errors
	ErrImageDecode    ErrorCode = "IMAGE_DECODE"
	ErrRenderFailed   ErrorCode = "RENDER_FAILED"
	ErrBackendUnknown ErrorCode = "BACKEND_UNKNOWN"

	// Output errors
	ErrOutputWrite ErrorCode = "OUTPUT_WRITE"
)

// SymfetchError is a structured error carrying a stable code and optional details
type SymfetchError struct {
	Code    ErrorCode
	Message string
	Details map[string]any
	Wrapped error
}

func (e *SymfetchError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *SymfetchError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a SymfetchError with the same code
func (e *SymfetchError) Is(target error) bool {
	var other *SymfetchError
	if errors.As(target, &other) {
		return e.Code == other.Code
	}
	return false
}

// New creates a new SymfetchError with the given code and message
func New(code ErrorCode, message string) *SymfetchError {
	return &SymfetchError{Code: code, Message: message, Details: map[string]any{}}
}

// Newf creates a new SymfetchError with a formatted message
func Newf(code ErrorCode, format string, args ...any) *SymfetchError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps err with a code and message. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) *SymfetchError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf wraps err with a code and a formatted message. A nil err yields nil.
func Wrapf(err error, code ErrorCode, format string, args ...any) *SymfetchError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *SymfetchError) WithDetail(key string, value any) *SymfetchError {
	if e.Details == nil {
		e.Details = map[string]any{}
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	return GetErrorCode(err) == code
}

// GetErrorCode returns the error code from an error, or ErrUnknown if err is not a SymfetchError
func GetErrorCode(err error) ErrorCode {
	var symErr *SymfetchError
	if errors.As(err, &symErr) {
		return symErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if err is not a SymfetchError
func GetErrorDetails(err error) map[string]any {
	var symErr *SymfetchError
	if errors.As(err, &symErr) {
		return symErr.Details
	}
	return nil
}
