// Package response holds the unified API response helpers.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Fields are the top-level keys of a success payload, merged next to the
// success flag (e.g. {"success":true,"user":{...}}).
type Fields map[string]any

// ErrorInfo detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "DUPLICATE_HANDLE"
	Message string `json:"message"`           // User-facing message
	Details string `json:"details,omitempty"` // Detailed error description
}

// Success successful response
func Success(c echo.Context, statusCode int, fields Fields) error {
	body := echo.Map{"success": true}
	for key, value := range fields {
		body[key] = value
	}

	return c.JSON(statusCode, body)
}

// OK 200 success response
func OK(c echo.Context, fields Fields) error {
	return Success(c, http.StatusOK, fields)
}

// Created 201 success response
func Created(c echo.Context, fields Fields) error {
	return Success(c, http.StatusCreated, fields)
}

// Error error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, echo.Map{
		"success": false,
		"error": &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
	})
}

// Unauthorized 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, "")
}

// Forbidden 403 error
func Forbidden(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusForbidden, errorCode, message, "")
}

// InternalServerError 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, "")
}
