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
	ErrUnknown        ErrorCode = "UNKNOWN"
	ErrInternal       ErrorCode = "INTERNAL"
	ErrInvalidInput   ErrorCode = "INVALID_INPUT"
	ErrNotFound       ErrorCode = "NOT_FOUND"
	ErrAlreadyExists  ErrorCode = "ALREADY_EXISTS"
	ErrNotImplemented ErrorCode = "NOT_IMPLEMENTED"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Action kind and group table errors
	ErrInvalidKind   ErrorCode = "INVALID_KIND"
	ErrKindUncovered ErrorCode = "KIND_UNCOVERED"
	ErrKindOverlap   ErrorCode = "KIND_OVERLAP"

	// Plugin catalog errors
	ErrPluginNotFound     ErrorCode = "PLUGIN_NOT_FOUND"
	ErrPluginInvalid      ErrorCode = "PLUGIN_INVALID"
	ErrPluginKindMismatch ErrorCode = "PLUGIN_KIND_MISMATCH"

	// Naming errors
	ErrNameExhausted ErrorCode = "NAME_EXHAUSTED"

	// Action collection errors
	ErrActionsLoad   ErrorCode = "ACTIONS_LOAD"
	ErrActionsParse  ErrorCode = "ACTIONS_PARSE"
	ErrActionsFormat ErrorCode = "ACTIONS_FORMAT"
	ErrActionInvalid ErrorCode = "ACTION_INVALID"
	ErrImportInvalid ErrorCode = "IMPORT_INVALID"
)

// ActionKitError represents a structured error with code and details
type ActionKitError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ActionKitError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ActionKitError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target carries the same error code
func (e *ActionKitError) Is(target error) bool {
	var targetErr *ActionKitError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ActionKitError with the given code and message
func New(code ErrorCode, message string) *ActionKitError {
	return &ActionKitError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ActionKitError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ActionKitError {
	return &ActionKitError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) error {
	if err == nil {
		return nil
	}
	return &ActionKitError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message. A nil err yields nil.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ActionKitError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ActionKitError) WithDetail(key string, value interface{}) *ActionKitError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *ActionKitError) WithDetails(details map[string]interface{}) *ActionKitError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var akErr *ActionKitError
	if errors.As(err, &akErr) {
		return akErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an ActionKitError
func GetErrorCode(err error) ErrorCode {
	var akErr *ActionKitError
	if errors.As(err, &akErr) {
		return akErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an ActionKitError
func GetErrorDetails(err error) map[string]interface{} {
	var akErr *ActionKitError
	if errors.As(err, &akErr) {
		return akErr.Details
	}
	return nil
}
