package errors

import (
	"net/http"

	"solarad/internal/errors"
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

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Account-related errors
	ErrMissingField = NewBaseError(
		http.StatusBadRequest,
		"MISSING_FIELD",
		"กรุณากรอกข้อมูลให้ครบถ้วน",
		"",
	)

	ErrDuplicateHandle = NewBaseError(
		http.StatusBadRequest,
		"DUPLICATE_HANDLE",
		"ชื่อผู้ใช้นี้มีอยู่แล้ว",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"ชื่อผู้ใช้หรือรหัสผ่านไม่ถูกต้อง",
		"",
	)

	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"กรุณาเข้าสู่ระบบ",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"ไม่มีสิทธิ์เข้าถึง",
		"",
	)

	ErrSelfDeletionForbidden = NewBaseError(
		http.StatusForbidden,
		"SELF_DELETION_FORBIDDEN",
		"ไม่สามารถลบบัญชีตัวเองได้",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"รหัสผ่านผิดพลาด",
		"",
	)

	// Location-related errors
	ErrMissingLocationName = NewBaseError(
		http.StatusBadRequest,
		"MISSING_FIELD",
		"กรุณากรอกชื่อสถานที่",
		"",
	)

	ErrInvalidLocationType = NewBaseError(
		http.StatusBadRequest,
		"INVALID_LOCATION_TYPE",
		"ประเภทสถานที่ไม่ถูกต้อง",
		"",
	)

	ErrSearchFiltersRequired = NewBaseError(
		http.StatusBadRequest,
		"FILTERS_REQUIRED",
		"กรุณาเลือกจังหวัดและประเภทสถานที่",
		"",
	)

	// Interest-related errors
	ErrInvalidStatus = NewBaseError(
		http.StatusBadRequest,
		"INVALID_STATUS",
		"สถานะไม่ถูกต้อง",
		"",
	)

	ErrInvalidUsage = NewBaseError(
		http.StatusBadRequest,
		"INVALID_USAGE",
		"ช่วงเวลาการใช้ไฟฟ้าไม่ถูกต้อง",
		"",
	)

	ErrApproveNotInterested = NewBaseError(
		http.StatusBadRequest,
		"APPROVE_NOT_INTERESTED",
		"ไม่สามารถอนุมัติรายการที่ลูกค้าไม่สนใจได้",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"ข้อมูลไม่ถูกต้อง",
		"",
	)

	// General errors
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"ไม่พบข้อมูล",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"เกิดข้อผิดพลาด",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "เกิดข้อผิดพลาด"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
