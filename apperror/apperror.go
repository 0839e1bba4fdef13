// Package apperror defines the application error taxonomy and its mapping
// to HTTP status codes. Services return *AppError values; handlers turn
// them into JSON error responses without leaking internal detail.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType classifies an application error.
type ErrorType int

const (
	// UnknownError is for unspecified errors.
	UnknownError ErrorType = iota
	// DatabaseError represents a failure of the backing store.
	DatabaseError
	// ConfigError represents an error in application configuration.
	ConfigError
	// AuthError represents an authentication failure (missing or invalid token,
	// bad credentials).
	AuthError
	// ForbiddenError represents an ownership failure: the caller is
	// authenticated but does not own the target record. The API this
	// service replaces answered these with 401 rather than 403 and clients
	// depend on that, so the distinct type exists for response shaping only.
	ForbiddenError
	// NotFoundError represents a well-formed id with no matching record.
	NotFoundError
	// ValidationError represents a rejected input (missing field, weak
	// password, username conflict).
	ValidationError
	// BadRequestError represents a structurally broken request, such as a
	// malformed record id.
	BadRequestError
	// InternalError represents an unexpected server-side failure.
	InternalError
)

// AppError is the error type carried across service boundaries. It wraps an
// optional underlying error which is never serialized to clients.
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the underlying error to errors.Is / errors.As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status code for the error type.
func (e *AppError) StatusCode() int {
	switch e.Type {
	case AuthError, ForbiddenError:
		return http.StatusUnauthorized
	case NotFoundError:
		return http.StatusNotFound
	case ValidationError, BadRequestError:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// NewAppError creates an AppError with an explicit type.
func NewAppError(errType ErrorType, message string, underlying error) *AppError {
	return &AppError{Type: errType, Message: message, Err: underlying}
}

// NewDatabaseError creates a DatabaseError.
func NewDatabaseError(message string, underlying error) *AppError {
	return NewAppError(DatabaseError, message, underlying)
}

// NewConfigError creates a ConfigError.
func NewConfigError(message string, underlying error) *AppError {
	return NewAppError(ConfigError, message, underlying)
}

// NewAuthError creates an AuthError.
func NewAuthError(message string, underlying error) *AppError {
	return NewAppError(AuthError, message, underlying)
}

// NewForbiddenError creates a ForbiddenError.
func NewForbiddenError(message string, underlying error) *AppError {
	return NewAppError(ForbiddenError, message, underlying)
}

// NewNotFoundError creates a NotFoundError.
func NewNotFoundError(message string, underlying error) *AppError {
	return NewAppError(NotFoundError, message, underlying)
}

// NewValidationError creates a ValidationError.
func NewValidationError(message string, underlying error) *AppError {
	return NewAppError(ValidationError, message, underlying)
}

// NewBadRequestError creates a BadRequestError.
func NewBadRequestError(message string, underlying error) *AppError {
	return NewAppError(BadRequestError, message, underlying)
}

// NewInternalError creates an InternalError.
func NewInternalError(message string, underlying error) *AppError {
	return NewAppError(InternalError, message, underlying)
}

// ErrorResponse is the JSON error body returned to clients.
type ErrorResponse struct {
	Error string `json:"error" example:"a description of the error"`
}

// ToResponse converts an AppError into its client-facing representation.
// Only the message crosses the wire; the wrapped error stays internal.
func (e *AppError) ToResponse() ErrorResponse {
	return ErrorResponse{Error: e.Message}
}

// FromError converts a generic error to an *AppError if it is one.
func FromError(err error) (*AppError, bool) {
	if err == nil {
		return nil, false
	}
	var ae *AppError
	ok := errors.As(err, &ae)
	return ae, ok
}

func isType(err error, t ErrorType) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == t
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool { return isType(err, NotFoundError) }

// IsAuthError reports whether err is an AuthError.
func IsAuthError(err error) bool { return isType(err, AuthError) }

// IsForbidden reports whether err is a ForbiddenError.
func IsForbidden(err error) bool { return isType(err, ForbiddenError) }

// IsValidationError reports whether err is a ValidationError.
func IsValidationError(err error) bool { return isType(err, ValidationError) }

// IsBadRequest reports whether err is a BadRequestError.
func IsBadRequest(err error) bool { return isType(err, BadRequestError) }
