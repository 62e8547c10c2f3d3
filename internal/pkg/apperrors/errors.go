package apperrors

import (
	"errors"
	"net/http"
)

// Stable machine-readable error codes. API clients branch on these rather
// than parsing the message text.
const (
	CodeInvalidID        = "INVALID_ID"
	CodeInvalidStatus    = "INVALID_STATUS"
	CodeMissingField     = "MISSING_REQUIRED_FIELD"
	CodeUserIDNotAllowed = "USER_ID_NOT_ALLOWED"
	CodeNoUpdates        = "NO_UPDATES"
	CodeNotFound         = "NOT_FOUND"
	CodeUnauthorized     = "AUTHENTICATION_REQUIRED"
	CodeInternal         = "INTERNAL_ERROR"
)

// AppError is a request failure with an HTTP status and a stable code
type AppError struct {
	Status  int
	Code    string
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

// New creates an AppError with an explicit status
func New(status int, code, message string) *AppError {
	return &AppError{Status: status, Code: code, Message: message}
}

// BadRequest creates a 400 validation failure
func BadRequest(code, message string) *AppError {
	return &AppError{Status: http.StatusBadRequest, Code: code, Message: message}
}

// NotFound creates a 404 failure
func NotFound(code, message string) *AppError {
	return &AppError{Status: http.StatusNotFound, Code: code, Message: message}
}

// Unauthorized creates a 401 failure
func Unauthorized(message string) *AppError {
	if message == "" {
		message = "Authentication required"
	}
	return &AppError{Status: http.StatusUnauthorized, Code: CodeUnauthorized, Message: message}
}

// Internal wraps an unexpected failure into a 500 envelope. The underlying
// message is surfaced for diagnostics rather than silently swallowed.
func Internal(err error) *AppError {
	return &AppError{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternal,
		Message: "Internal server error: " + err.Error(),
	}
}

// From extracts an AppError, converting unknown errors to Internal
func From(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}
