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
	ErrUsage         ErrorCode = "USAGE"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"
	ErrCancelled     ErrorCode = "CANCELLED"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Target and profile errors
	ErrTargetNotFound  ErrorCode = "TARGET_NOT_FOUND"
	ErrProfileNotFound ErrorCode = "PROFILE_NOT_FOUND"
	ErrNotRegistered   ErrorCode = "NOT_REGISTERED"
	ErrMetadataParse   ErrorCode = "METADATA_PARSE"

	// FileSystem errors
	ErrFileNotFound     ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess       ErrorCode = "FILE_ACCESS"
	ErrFileCreate       ErrorCode = "FILE_CREATE"
	ErrFileWrite        ErrorCode = "FILE_WRITE"
	ErrDirCreate        ErrorCode = "DIR_CREATE"
	ErrSymlinkRejected  ErrorCode = "SYMLINK_REJECTED"
	ErrEditorExecute    ErrorCode = "EDITOR_EXECUTE"
	ErrComparisonFailed ErrorCode = "COMPARISON_FAILED"
)

// notFoundCodes are the codes that errors.Is treats as ErrNotFound
var notFoundCodes = map[ErrorCode]bool{
	ErrNotFound:        true,
	ErrTargetNotFound:  true,
	ErrProfileNotFound: true,
	ErrFileNotFound:    true,
}

// RobeError represents a structured error with code and details
type RobeError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *RobeError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *RobeError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface. The specific not-found codes also
// match a plain ErrNotFound target.
func (e *RobeError) Is(target error) bool {
	var targetErr *RobeError
	if errors.As(target, &targetErr) {
		if e.Code == targetErr.Code {
			return true
		}
		return targetErr.Code == ErrNotFound && notFoundCodes[e.Code]
	}
	return false
}

// New creates a new RobeError with the given code and message
func New(code ErrorCode, message string) *RobeError {
	return &RobeError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new RobeError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *RobeError {
	return &RobeError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a RobeError
func Wrap(err error, code ErrorCode, message string) *RobeError {
	if err == nil {
		return nil
	}
	return &RobeError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *RobeError {
	if err == nil {
		return nil
	}
	return &RobeError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *RobeError) WithDetail(key string, value interface{}) *RobeError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var robeErr *RobeError
	if errors.As(err, &robeErr) {
		return robeErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a RobeError
func GetErrorCode(err error) ErrorCode {
	var robeErr *RobeError
	if errors.As(err, &robeErr) {
		return robeErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a RobeError
func GetErrorDetails(err error) map[string]interface{} {
	var robeErr *RobeError
	if errors.As(err, &robeErr) {
		return robeErr.Details
	}
	return nil
}

// UserMessage renders an error the way the command line shows it: the
// outermost message without the code prefix, followed by the wrapped cause.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var robeErr *RobeError
	if !errors.As(err, &robeErr) {
		return err.Error()
	}
	msg := robeErr.Message
	if robeErr.Wrapped != nil {
		msg = fmt.Sprintf("%s: %s", msg, UserMessage(robeErr.Wrapped))
	}
	if robeErr.Code == ErrUsage {
		msg = fmt.Sprintf("Wrong usage. %s\nUse `robe -h` for help.", msg)
	}
	return msg
}
