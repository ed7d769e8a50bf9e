package apperror

import (
	"errors"
	"net/http"
)

// AppError represents an application error with an HTTP status and a
// machine-readable domain code. The code is part of the client contract and
// never exposes raw store internals.
type AppError struct {
	Status  int          `json:"-"`
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Details []FieldError `json:"details,omitempty"`
}

// FieldError represents a validation error for a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Common errors
var (
	ErrInvalidCredentials = &AppError{Status: http.StatusUnauthorized, Code: "AUTH_INVALID_CREDENTIALS", Message: "Invalid credentials"}
	ErrUnauthorized       = &AppError{Status: http.StatusUnauthorized, Code: "AUTH_REQUIRED", Message: "Authentication required"}
	ErrForbidden          = &AppError{Status: http.StatusForbidden, Code: "AUTH_FORBIDDEN", Message: "Forbidden"}
	ErrInternalServer     = &AppError{Status: http.StatusInternalServerError, Code: "INTERNAL_ERROR", Message: "Internal server error"}
)

// New creates an application error with the given status, code and message.
func New(status int, code, message string) *AppError {
	return &AppError{
		Status:  status,
		Code:    code,
		Message: message,
	}
}

// NewNotFound creates a 404 error for a named resource, e.g.
// NewNotFound("Sale", "SALE_NOT_FOUND").
func NewNotFound(resource, code string) *AppError {
	return &AppError{
		Status:  http.StatusNotFound,
		Code:    code,
		Message: resource + " not found",
	}
}

// NewValidation creates a 400 validation error with field-level details.
func NewValidation(details []FieldError) *AppError {
	return &AppError{
		Status:  http.StatusBadRequest,
		Code:    "VALIDATION_ERROR",
		Message: "Validation failed",
		Details: details,
	}
}

// NewBadRequest creates a 400 error with a custom code and message.
func NewBadRequest(code, message string) *AppError {
	return &AppError{
		Status:  http.StatusBadRequest,
		Code:    code,
		Message: message,
	}
}

// NewDatabase wraps a store failure behind a coarse code. The underlying
// error is kept out of the client-facing message.
func NewDatabase() *AppError {
	return &AppError{
		Status:  http.StatusBadRequest,
		Code:    "DATABASE_ERROR",
		Message: "Database operation failed",
	}
}

// Is reports whether err is an AppError
func Is(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// From converts an error to an AppError, mapping unclassified errors to a
// generic internal error so raw messages never reach the client.
func From(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Status:  http.StatusInternalServerError,
		Code:    "INTERNAL_ERROR",
		Message: "Internal server error",
	}
}
