// Package errors defines the application error type shared by every layer of
// the service and its mapping onto the numeric codes returned to game clients.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrTypeValidation ErrorType = "validation"
	ErrTypeConfig     ErrorType = "config"
	ErrTypeAuth       ErrorType = "authentication"
	ErrTypeForbidden  ErrorType = "forbidden"
	ErrTypeNotFound   ErrorType = "not_found"
	ErrTypeConflict   ErrorType = "conflict"
	ErrTypeRateLimit  ErrorType = "rate_limit"
	ErrTypeConnection ErrorType = "connection"
	ErrTypeInternal   ErrorType = "internal"
)

// API codes returned in the response envelope. 4001 is the parameter error
// class used by the request authenticator.
const (
	CodeOK           = 0
	CodeParamError   = 4001
	CodeForbidden    = 4003
	CodeNotFound     = 4004
	CodeConflict     = 4009
	CodeUnauthorized = 4010
	CodeRateLimited  = 4029
	CodeInternal     = 5000
)

// AppError represents a structured application error
type AppError struct {
	Type    ErrorType              `json:"type"`
	Message string                 `json:"message"`
	Reason  string                 `json:"reason,omitempty"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	parts := []string{string(e.Type), e.Message}

	if e.Reason != "" {
		parts = append(parts, fmt.Sprintf("reason=%s", e.Reason))
	}

	if e.Cause != nil {
		parts = append(parts, fmt.Sprintf("cause=%v", e.Cause))
	}

	return strings.Join(parts, ": ")
}

// Unwrap returns the underlying cause
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// WithReason sets the machine readable sub-reason reported to clients
func (e *AppError) WithReason(reason string) *AppError {
	e.Reason = reason
	return e
}

// ValidationError creates a new validation error
func ValidationError(msg string) *AppError {
	return &AppError{Type: ErrTypeValidation, Message: msg}
}

// ParamError creates a validation error carrying a client facing reason
func ParamError(reason string) *AppError {
	return &AppError{Type: ErrTypeValidation, Message: "param error", Reason: reason}
}

// ConfigError creates a new configuration error
func ConfigError(msg string) *AppError {
	return &AppError{Type: ErrTypeConfig, Message: msg}
}

// AuthError creates a new authentication error
func AuthError(msg string) *AppError {
	return &AppError{Type: ErrTypeAuth, Message: msg}
}

// ForbiddenError creates a permission denied error
func ForbiddenError(msg string) *AppError {
	return &AppError{Type: ErrTypeForbidden, Message: msg, Reason: "permission_denied"}
}

// NotFoundError creates a new not found error
func NotFoundError(resource string) *AppError {
	return &AppError{Type: ErrTypeNotFound, Message: fmt.Sprintf("%s not found", resource)}
}

// ConflictError creates an error for duplicate resources
func ConflictError(resource string) *AppError {
	return &AppError{Type: ErrTypeConflict, Message: fmt.Sprintf("%s already exists", resource)}
}

// RateLimitError creates a new rate limit error
func RateLimitError(resource string) *AppError {
	return &AppError{Type: ErrTypeRateLimit, Message: fmt.Sprintf("rate limit exceeded for %s", resource)}
}

// ConnectionError creates a new connection error
func ConnectionError(msg string, cause error) *AppError {
	return &AppError{Type: ErrTypeConnection, Message: msg, Cause: cause}
}

// InternalError creates a new internal error
func InternalError(msg string, cause error) *AppError {
	return &AppError{Type: ErrTypeInternal, Message: msg, Cause: cause}
}

// IsType checks if an error is of a specific type
func IsType(err error, errType ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == errType
	}
	return false
}

// GetType returns the error type, or internal for foreign errors
func GetType(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrTypeInternal
}

// APICode maps an error onto the numeric code of the response envelope
func APICode(err error) int {
	if err == nil {
		return CodeOK
	}

	switch GetType(err) {
	case ErrTypeValidation:
		return CodeParamError
	case ErrTypeAuth:
		return CodeUnauthorized
	case ErrTypeForbidden:
		return CodeForbidden
	case ErrTypeNotFound:
		return CodeNotFound
	case ErrTypeConflict:
		return CodeConflict
	case ErrTypeRateLimit:
		return CodeRateLimited
	default:
		return CodeInternal
	}
}

// HTTPStatus maps an error onto the HTTP status sent alongside the envelope
func HTTPStatus(err error) int {
	switch APICode(err) {
	case CodeOK:
		return http.StatusOK
	case CodeParamError:
		return http.StatusBadRequest
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	case CodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// Reason returns the sub-reason of an AppError, if any
func Reason(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Reason
	}
	return ""
}
