package models

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// FieldError describes a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse is the JSON body returned for every failed request.
// Errors is only present for field-level validation failures.
type ErrorResponse struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// Error codes used across services and mapped to HTTP statuses by handlers.
const (
	CodeNotFound     = "NOT_FOUND"
	CodeValidation   = "VALIDATION_ERROR"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeConflict     = "CONFLICT"
	CodeUpstream     = "UPSTREAM_ERROR"
	CodeInternal     = "INTERNAL_ERROR"
)

// AppError represents a custom application error
type AppError struct {
	Code    string
	Message string
	Fields  []FieldError
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Predefined error constructors
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: resource + " not found",
	}
}

func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: message,
	}
}

// NewFieldValidationError wraps per-field messages under a single
// "Validation failed" envelope.
func NewFieldValidationError(fields []FieldError) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: "Validation failed",
		Fields:  fields,
	}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{
		Code:    CodeUnauthorized,
		Message: message,
	}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{
		Code:    CodeForbidden,
		Message: message,
	}
}

func NewConflictError(message string) *AppError {
	return &AppError{
		Code:    CodeConflict,
		Message: message,
	}
}

func NewUpstreamError(message string, err error) *AppError {
	return &AppError{
		Code:    CodeUpstream,
		Message: message,
		Err:     err,
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: "Internal server error",
		Err:     err,
	}
}

// RespondWithError writes a standardized error response.
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	var response ErrorResponse

	if appErr, ok := err.(*AppError); ok {
		response = ErrorResponse{
			Message: appErr.Message,
			Errors:  appErr.Fields,
		}
	} else {
		response = ErrorResponse{
			Message: err.Error(),
		}
	}

	return c.Status(status).JSON(response)
}
