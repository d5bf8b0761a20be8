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
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Classpath errors
	ErrMalformedLocator ErrorCode = "MALFORMED_LOCATOR"
	ErrDirAccess        ErrorCode = "DIR_ACCESS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Hand-off errors
	ErrEntryResolve ErrorCode = "ENTRY_RESOLVE"
	ErrEntryStart   ErrorCode = "ENTRY_START"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
)

// StagehandError represents a structured error with code and details
type StagehandError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *StagehandError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *StagehandError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *StagehandError) Is(target error) bool {
	var targetErr *StagehandError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new StagehandError with the given code and message
func New(code ErrorCode, message string) *StagehandError {
	return &StagehandError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new StagehandError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *StagehandError {
	return &StagehandError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a StagehandError
func Wrap(err error, code ErrorCode, message string) *StagehandError {
	if err == nil {
		return nil
	}
	return &StagehandError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *StagehandError {
	if err == nil {
		return nil
	}
	return &StagehandError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *StagehandError) WithDetail(key string, value interface{}) *StagehandError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var shErr *StagehandError
	if errors.As(err, &shErr) {
		return shErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a StagehandError
func GetErrorCode(err error) ErrorCode {
	var shErr *StagehandError
	if errors.As(err, &shErr) {
		return shErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a StagehandError
func GetErrorDetails(err error) map[string]interface{} {
	var shErr *StagehandError
	if errors.As(err, &shErr) {
		return shErr.Details
	}
	return nil
}
