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
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Manifest errors
	ErrAlreadyTracked    ErrorCode = "ALREADY_TRACKED"
	ErrManifestParse     ErrorCode = "MANIFEST_PARSE"
	ErrManifestSerialize ErrorCode = "MANIFEST_SERIALIZE"

	// Path errors
	ErrNoHomeDirectory ErrorCode = "NO_HOME_DIRECTORY"
	ErrProtectedPath   ErrorCode = "PROTECTED_PATH"

	// FileSystem errors
	ErrNotASymlink ErrorCode = "NOT_A_SYMLINK"
	ErrIO          ErrorCode = "IO"

	// Process errors
	ErrLocked     ErrorCode = "LOCKED"
	ErrConfigLoad ErrorCode = "CONFIG_LOAD"
)

// DotError represents a structured error with code and details
type DotError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DotError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DotError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a DotError with the same code
func (e *DotError) Is(target error) bool {
	var targetErr *DotError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DotError with the given code and message
func New(code ErrorCode, message string) *DotError {
	return &DotError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DotError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DotError {
	return &DotError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a DotError
func Wrap(err error, code ErrorCode, message string) *DotError {
	if err == nil {
		return nil
	}
	return &DotError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DotError {
	if err == nil {
		return nil
	}
	return &DotError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *DotError) WithDetail(key string, value interface{}) *DotError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithPath records the filesystem path the error is about
func (e *DotError) WithPath(path string) *DotError {
	return e.WithDetail("path", path)
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var dotErr *DotError
	if errors.As(err, &dotErr) {
		return dotErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a DotError
func GetErrorCode(err error) ErrorCode {
	var dotErr *DotError
	if errors.As(err, &dotErr) {
		return dotErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a DotError
func GetErrorDetails(err error) map[string]interface{} {
	var dotErr *DotError
	if errors.As(err, &dotErr) {
		return dotErr.Details
	}
	return nil
}

// PathOf returns the "path" detail of a DotError, or "" if there is none
func PathOf(err error) string {
	if p, ok := GetErrorDetails(err)["path"].(string); ok {
		return p
	}
	return ""
}

// Message returns the user-facing description of err without the code
// prefix. Non-DotErrors return err.Error().
func Message(err error) string {
	var dotErr *DotError
	if !errors.As(err, &dotErr) {
		return err.Error()
	}
	if dotErr.Wrapped != nil {
		return dotErr.Message + ": " + dotErr.Wrapped.Error()
	}
	return dotErr.Message
}
