package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode represents a structured error code
type ErrorCode string

const (
	// Catalog fetch errors
	ErrCodeTransport ErrorCode = "TRANSPORT"
	ErrCodeResponse  ErrorCode = "RESPONSE"
	ErrCodeParse     ErrorCode = "PARSE"

	// Navigation errors
	ErrCodeDecode     ErrorCode = "DECODE"
	ErrCodeTransition ErrorCode = "TRANSITION"

	// Configuration errors
	ErrCodeConfigInvalid ErrorCode = "CONFIG_INVALID"

	// Request errors
	ErrCodeValidation ErrorCode = "VALIDATION"
	ErrCodeNotFound   ErrorCode = "NOT_FOUND"
	ErrCodeConflict   ErrorCode = "CONFLICT"
	ErrCodeRateLimit  ErrorCode = "RATE_LIMIT"

	// Internal errors
	ErrCodeInternal ErrorCode = "INTERNAL"
)

// AppError represents a structured application error. It is the ErrorInfo
// carried by a failed result.
type AppError struct {
	Code     ErrorCode              `json:"code"`
	Message  string                 `json:"message"`
	Details  map[string]interface{} `json:"details,omitempty"`
	Cause    error                  `json:"-"`
	HTTPCode int                    `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an AppError with the same code. This lets
// callers match on the sentinels below with errors.Is.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// WithDetail adds a detail to the error
func (e *AppError) WithDetail(key string, value interface{}) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// GetHTTPCode returns the appropriate HTTP status code
func (e *AppError) GetHTTPCode() int {
	if e.HTTPCode != 0 {
		return e.HTTPCode
	}
	return getDefaultHTTPCode(e.Code)
}

// Sentinels for errors.Is matching by code.
var (
	ErrTransport  = &AppError{Code: ErrCodeTransport}
	ErrResponse   = &AppError{Code: ErrCodeResponse}
	ErrParse      = &AppError{Code: ErrCodeParse}
	ErrDecode     = &AppError{Code: ErrCodeDecode}
	ErrTransition = &AppError{Code: ErrCodeTransition}
)

// New creates a new AppError
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: getDefaultHTTPCode(code),
	}
}

// Newf creates a new AppError with formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		HTTPCode: getDefaultHTTPCode(code),
	}
}

// Wrap wraps an existing error with an AppError
func Wrap(cause error, code ErrorCode, message string) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Cause:    cause,
		HTTPCode: getDefaultHTTPCode(code),
	}
}

// From returns err as an AppError, wrapping unknown errors as INTERNAL.
func From(err error) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, ErrCodeInternal, "unexpected error")
}

// getDefaultHTTPCode returns the default HTTP status code for an error code
func getDefaultHTTPCode(code ErrorCode) int {
	switch code {
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeConflict, ErrCodeTransition:
		return http.StatusConflict
	case ErrCodeValidation, ErrCodeDecode:
		return http.StatusBadRequest
	case ErrCodeRateLimit:
		return http.StatusTooManyRequests
	case ErrCodeTransport, ErrCodeResponse, ErrCodeParse:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Common error constructors

// TransportError creates an error for a failed round trip
func TransportError(endpoint string, cause error) *AppError {
	return Wrap(cause, ErrCodeTransport, "catalog request failed").
		WithDetail("endpoint", endpoint)
}

// ResponseError creates an error for a non-success HTTP status
func ResponseError(endpoint string, status int) *AppError {
	return Newf(ErrCodeResponse, "catalog returned status %d", status).
		WithDetail("endpoint", endpoint).
		WithDetail("status", status)
}

// ParseError creates an error for a payload that does not match the schema
func ParseError(reason string, cause error) *AppError {
	return Wrap(cause, ErrCodeParse, fmt.Sprintf("malformed catalog response: %s", reason)).
		WithDetail("reason", reason)
}

// DecodeError creates an error for a malformed route token
func DecodeError(reason string, cause error) *AppError {
	return Wrap(cause, ErrCodeDecode, fmt.Sprintf("invalid route token: %s", reason)).
		WithDetail("reason", reason)
}

// ValidationError creates a validation error
func ValidationError(field string, reason string) *AppError {
	return New(ErrCodeValidation, fmt.Sprintf("validation failed for field '%s': %s", field, reason)).
		WithDetail("field", field).
		WithDetail("reason", reason)
}

// ConfigError creates a configuration error
func ConfigError(key string, reason string) *AppError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("configuration error for '%s': %s", key, reason)).
		WithDetail("key", key).
		WithDetail("reason", reason)
}

// Is checks if an error is of a specific type
func Is(err error, code ErrorCode) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// GetHTTPCode extracts the HTTP status code from an error
func GetHTTPCode(err error) int {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.GetHTTPCode()
	}
	return http.StatusInternalServerError
}
