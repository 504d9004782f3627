// Package dto provides Data Transfer Objects for HTTP request/response handling.
package dto

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quote-reactor/internal/domain"
	"github.com/jsamuelsen/quote-reactor/internal/platform/logging"
)

// ErrorResponse is the standard error envelope for all error responses.
// It provides a consistent structure for API error handling.
type ErrorResponse struct {
	Error   ErrorDetail `json:"error"`
	TraceID string      `json:"traceId,omitempty"`
}

// ErrorDetail contains the error information.
type ErrorDetail struct {
	// Code is a machine-readable error code (e.g., "NOT_FOUND", "VALIDATION_ERROR").
	Code string `json:"code"`

	// Message is a human-readable error message.
	Message string `json:"message"`

	// Details provides additional context about the error.
	// For validation errors, this contains field-level error messages.
	Details map[string]string `json:"details,omitempty"`
}

// Error codes for machine-readable error identification.
const (
	// ErrorCodeNotFound indicates the requested resource was not found.
	ErrorCodeNotFound = "NOT_FOUND"

	// ErrorCodeValidation indicates request validation failed.
	ErrorCodeValidation = "VALIDATION_ERROR"

	// ErrorCodeUpstream indicates the upstream quote service returned a bad response.
	ErrorCodeUpstream = "UPSTREAM_ERROR"

	// ErrorCodeUnavailable indicates a dependency is unavailable.
	ErrorCodeUnavailable = "SERVICE_UNAVAILABLE"

	// ErrorCodeInternal indicates an internal server error.
	ErrorCodeInternal = "INTERNAL_ERROR"

	// ErrorCodeTimeout indicates the request timed out.
	ErrorCodeTimeout = "TIMEOUT"

	// ErrorCodeBadRequest indicates the request was malformed.
	ErrorCodeBadRequest = "BAD_REQUEST"
)

// NewErrorResponse creates a new error response with the given code and message.
func NewErrorResponse(code, message string) *ErrorResponse {
	return &ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	}
}

// NewErrorResponseWithDetails creates an error response with additional details.
func NewErrorResponseWithDetails(code, message string, details map[string]string) *ErrorResponse {
	return &ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
}

// WithTraceID adds a trace ID to the error response.
func (e *ErrorResponse) WithTraceID(traceID string) *ErrorResponse {
	e.TraceID = traceID
	return e
}

// HTTPStatusFromCode maps error codes to HTTP status codes.
func HTTPStatusFromCode(code string) int {
	switch code {
	case ErrorCodeNotFound:
		return http.StatusNotFound
	case ErrorCodeValidation, ErrorCodeBadRequest:
		return http.StatusBadRequest
	case ErrorCodeUpstream:
		return http.StatusBadGateway
	case ErrorCodeUnavailable:
		return http.StatusServiceUnavailable
	case ErrorCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// GetTraceID extracts the trace ID for error responses.
// Prefers the value stored in the gin context by middleware, falling back
// to the X-Request-ID header.
func GetTraceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if id, ok := v.(string); ok {
			return id
		}

		return ""
	}

	return c.Request.Header.Get("X-Request-ID")
}

// HandleError maps a domain error to an HTTP error response and writes it.
// Unknown errors are reported as 500 with a generic message to avoid
// leaking internals.
func HandleError(c *gin.Context, err error) {
	var resp *ErrorResponse
	status := http.StatusInternalServerError

	switch {
	case domain.IsValidation(err):
		resp = NewErrorResponse(ErrorCodeValidation, err.Error())

		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) && validationErr.Field != "" {
			resp.Error.Details = map[string]string{
				validationErr.Field: validationErr.Message,
			}
		}

		status = http.StatusBadRequest

	case domain.IsUnavailable(err):
		resp = NewErrorResponse(ErrorCodeUnavailable, err.Error())
		status = http.StatusServiceUnavailable

	case domain.IsFetch(err):
		resp = NewErrorResponse(ErrorCodeUpstream, err.Error())
		status = http.StatusBadGateway

	default:
		resp = NewErrorResponse(ErrorCodeInternal, "an internal error occurred")

		logger := logging.FromContext(c.Request.Context())
		logger.Error("internal error", "error", err.Error())
	}

	resp.WithTraceID(GetTraceID(c))
	c.JSON(status, resp)
}
