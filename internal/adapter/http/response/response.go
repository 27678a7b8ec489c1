// Package response provides standardized HTTP response builders for the hotel search API.
// It centralizes response formatting to ensure consistency across all endpoints.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorDetail contains structured error information.
type ErrorDetail struct {
	// Code is a machine-readable error code
	Code string `json:"code" example:"validation_error"`

	// Message is a human-readable error message
	Message string `json:"message" example:"Request validation failed"`

	// Details contains field-specific error details (for validation errors)
	Details map[string]string `json:"details,omitempty"`

	// Notification is the user-facing message the front end should show
	Notification *Notification `json:"notification,omitempty"`
}

// Notification is a transient message for the user.
type Notification struct {
	Type    string `json:"type" example:"warning"`
	Message string `json:"message" example:"Veuillez entrer une destination"`
}

// Notification types, shared with the domain notifications.
const (
	NotifySuccess = "success"
	NotifyInfo    = "info"
	NotifyWarning = "warning"
	NotifyError   = "error"
)

// Error codes used in API responses.
const (
	CodeInvalidRequest   = "invalid_request"
	CodeValidationError  = "validation_error"
	CodeEmptyDestination = "empty_destination"
	CodeNotFound         = "not_found"
	CodeStorageError     = "storage_error"
	CodeTimeout          = "timeout"
	CodeInternalError    = "internal_error"
)

// Error messages used in API responses.
const (
	MsgInvalidRequestBody = "Failed to parse request body"
	MsgValidationFailed   = "Request validation failed"
	MsgEmptyDestination   = "Veuillez entrer une destination"
	MsgNotFound           = "Resource not found"
	MsgStorageError       = "Preferences could not be saved"
	MsgTimeout            = "Request timed out"
	MsgRequestCancelled   = "Request was cancelled"
	MsgInternalError      = "An unexpected error occurred"
)

// OK writes a 200 OK response with the given data.
func OK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

