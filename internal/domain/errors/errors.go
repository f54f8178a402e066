package errors

import (
	"net/http"

	"doorman/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Predefined error types
var (
	// ErrMissingSecret is surfaced before any lookup when the request
	// carries no secret.
	ErrMissingSecret = NewBaseError(
		http.StatusBadRequest,
		"MISSING_SECRET",
		"缺少通行密鑰",
		"",
	)

	// ErrAccessDenied covers every rejection of a presented secret: unknown,
	// outside window, inactive, or already consumed. The external signal is
	// deliberately uniform; the distinguishing reason only goes to logs.
	ErrAccessDenied = NewBaseError(
		http.StatusNotFound,
		"ACCESS_DENIED",
		"通行密鑰無效或已使用",
		"",
	)

	// ErrStoreUnavailable is surfaced when the record store is unreachable
	// or holds malformed data.
	ErrStoreUnavailable = NewBaseError(
		http.StatusInternalServerError,
		"STORE_UNAVAILABLE",
		"存取紀錄資料庫失敗",
		"",
	)

	// ErrInternalError is the generic fallback.
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"系統內部錯誤",
		"",
	)
)
