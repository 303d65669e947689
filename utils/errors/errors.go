// Package errors provides structured error handling for the extension stats
// backend. It defines error types with codes, messages, causes, and contextual
// information to facilitate debugging and error tracking across the
// application layers.
package errors

import (
	"fmt"
	"log/slog"
)

// ErrorCode represents a categorized error type for structured error handling.
type ErrorCode string

// Error code constants for categorizing application errors.
const (
	ErrCodeDatabase       ErrorCode = "DATABASE_ERROR"
	ErrCodeValidation     ErrorCode = "VALIDATION_ERROR"
	ErrCodeNotFound       ErrorCode = "NOT_FOUND_ERROR"
	ErrCodeTooManyTargets ErrorCode = "TOO_MANY_TARGETS_ERROR"
	ErrCodeUnauthorized   ErrorCode = "UNAUTHORIZED_ERROR"
	ErrCodeUnknown        ErrorCode = "UNKNOWN_ERROR"
)

// Machine-readable reason codes surfaced to callers in validation failures.
const (
	ReasonInvalidWindow      = "invalid_window"
	ReasonInvalidLimit       = "invalid_limit"
	ReasonEmptyTargetSet     = "empty_target_set"
	ReasonTooManyTargets     = "too_many_targets"
	ReasonInvalidExtensionID = "invalid_extension_id"
	ReasonInvalidQuery       = "invalid_query"
	ReasonUnknownExtension   = "unknown_extension"
)

// AppError represents a structured application error with code, message,
// cause, and context. It implements the error interface and supports error
// unwrapping.
type AppError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error returns a string representation of the AppError.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error for use with errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Reason returns the machine-readable reason code attached to the error,
// or the empty string if none was set.
func (e *AppError) Reason() string {
	if e.Context == nil {
		return ""
	}
	reason, _ := e.Context["reason"].(string)
	return reason
}

// DatabaseError creates an AppError for repository-level failures.
func DatabaseError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeDatabase,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// ValidationError creates an AppError for input validation failures.
// The reason is a machine-readable code surfaced to HTTP clients.
func ValidationError(message, reason string, context map[string]interface{}) *AppError {
	if context == nil {
		context = make(map[string]interface{})
	}
	context["reason"] = reason
	return &AppError{
		Code:    ErrCodeValidation,
		Message: message,
		Context: context,
	}
}

// NotFoundError creates an AppError for missing extensions or snapshots.
func NotFoundError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeNotFound,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// TooManyTargetsError creates an AppError for comparison requests exceeding
// the target cap.
func TooManyTargetsError(message string, context map[string]interface{}) *AppError {
	if context == nil {
		context = make(map[string]interface{})
	}
	context["reason"] = ReasonTooManyTargets
	return &AppError{
		Code:    ErrCodeTooManyTargets,
		Message: message,
		Context: context,
	}
}

// UnauthorizedError creates an AppError for ingest key validation failures.
func UnauthorizedError(message string, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeUnauthorized,
		Message: message,
		Context: context,
	}
}

// UnknownError creates an AppError for unclassified failures.
func UnknownError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeUnknown,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// LogError logs an AppError with its full context using structured logging.
func LogError(logger *slog.Logger, err error, operation string) {
	// Handle nil logger gracefully (e.g., during tests)
	if logger == nil {
		return
	}

	if appErr, ok := err.(*AppError); ok {
		args := []interface{}{
			"operation", operation,
			"error_code", string(appErr.Code),
			"error_message", appErr.Message,
		}

		if appErr.Context != nil {
			for key, value := range appErr.Context {
				args = append(args, key, value)
			}
		}

		if appErr.Cause != nil {
			args = append(args, "cause", appErr.Cause.Error())
		}

		logger.Error("application error occurred", args...)
	} else {
		logger.Error("unknown error occurred",
			"operation", operation,
			"error", err.Error(),
		)
	}
}
