// Package errors provides standardized error handling for catalog validation runs.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeFileLoadFailed   ErrorCode = "FILE_LOAD_FAILED"
	ErrCodeInvalidJSON      ErrorCode = "INVALID_JSON"
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeConfigInvalid    ErrorCode = "CONFIG_INVALID"
	ErrCodePublishFailed    ErrorCode = "PUBLISH_FAILED"
	ErrCodeInternal         ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	cause     error
}

func (e *StandardError) Error() string {
	if e.Details == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Message, e.Details)
}

// Unwrap exposes the underlying cause, if any.
func (e *StandardError) Unwrap() error {
	return e.cause
}

// ==========================
// 2. Error Constructors
// ==========================

// NewFileLoadFailedError reports a file that could not be opened or read.
func NewFileLoadFailedError(path string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeFileLoadFailed,
		Message:   fmt.Sprintf("cannot read %s", path),
		Details:   err.Error(),
		Metadata:  map[string]interface{}{"path": path},
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// NewInvalidJSONError reports a file whose content is not a JSON object.
func NewInvalidJSONError(path string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidJSON,
		Message:   fmt.Sprintf("invalid JSON in %s", path),
		Details:   err.Error(),
		Metadata:  map[string]interface{}{"path": path},
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// NewValidationFailedError summarizes a run that produced validation errors.
func NewValidationFailedError(errorCount int) *StandardError {
	return &StandardError{
		Code:      ErrCodeValidationFailed,
		Message:   "catalog validation failed",
		Details:   fmt.Sprintf("%d error(s)", errorCount),
		Metadata:  map[string]interface{}{"errorCount": errorCount},
		Timestamp: time.Now().UTC(),
	}
}

// NewConfigInvalidError reports a configuration value that cannot be used.
func NewConfigInvalidError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeConfigInvalid,
		Message:   "invalid configuration",
		Details:   details,
		Timestamp: time.Now().UTC(),
	}
}

// NewPublishFailedError reports a failure to export run results.
func NewPublishFailedError(target string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodePublishFailed,
		Message:   fmt.Sprintf("failed to publish to %s", target),
		Details:   err.Error(),
		Metadata:  map[string]interface{}{"target": target},
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// ==========================
// 3. Utility Functions
// ==========================

// AsStandardError normalizes any error into a StandardError.
func AsStandardError(err error) *StandardError {
	if err == nil {
		return nil
	}
	var stdErr *StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr
	}
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "unexpected error",
		Details:   err.Error(),
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// HasCode reports whether err carries the given error code.
func HasCode(err error, code ErrorCode) bool {
	var stdErr *StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr.Code == code
	}
	return false
}

// ExitCode maps a run outcome to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "FILE") || strings.Contains(codeStr, "JSON"):
		return "LOAD"
	case strings.Contains(codeStr, "VALIDATION"):
		return "VALIDATION"
	case strings.Contains(codeStr, "CONFIG"):
		return "CONFIG"
	case strings.Contains(codeStr, "PUBLISH"):
		return "PUBLISH"
	default:
		return "OTHER"
	}
}
