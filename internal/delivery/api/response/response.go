// Package response renders API payloads.
//
// Successful responses carry the document itself. Errors share one shape:
// {"msg": ..., "code": ..., "details": ..., "requestId": ...}.
package response

import (
	"net/http"

	deliverycontext "dabeli/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Msg       string `json:"msg"`               // User-friendly error message
	Code      string `json:"code"`              // Machine-readable error code, e.g., "VALIDATION_FAILED"
	Details   any    `json:"details,omitempty"` // Field list for validation failures
	RequestID string `json:"requestId,omitempty"`
}

// MessageResponse is the body of operations that only acknowledge.
type MessageResponse struct {
	Msg string `json:"msg"`
}

// Success returns the document with the given status code
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// OK returns the document with 200
func OK(c echo.Context, data any) error {
	return Success(c, http.StatusOK, data)
}

// Created returns the document with 201
func Created(c echo.Context, data any) error {
	return Success(c, http.StatusCreated, data)
}

// Message returns {"msg": message} with 200
func Message(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, MessageResponse{Msg: message})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	// Details should not be included for 5xx errors or authentication/authorization errors
	if statusCode >= http.StatusInternalServerError || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Msg:       message,
		Code:      errorCode,
		Details:   details,
		RequestID: deliverycontext.GetRequestIDFromContext(c.Request().Context()),
	})
}
