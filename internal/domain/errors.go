// Package domain contains business logic types and errors.
// Domain errors represent business-level failures, NOT HTTP errors.
// They are infrastructure-agnostic and can be mapped to HTTP/gRPC/etc by adapters.
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrFetch indicates a quote fetch attempt failed. It covers both
	// transport failure and payload-decode failure; the two causes are
	// not distinguished at the Output level.
	ErrFetch = errors.New("fetch failed")

	// ErrValidation indicates business rule validation failed.
	ErrValidation = errors.New("validation failed")

	// ErrUnavailable indicates a required dependency is unavailable.
	ErrUnavailable = errors.New("unavailable")
)

// FetchError wraps the cause of a failed fetch attempt.
// It is carried only inside an Output FetchFailed event.
type FetchError struct {
	// Reason is a short human-readable description of what went wrong.
	Reason string

	// Cause is the underlying transport or decode error, if any.
	Cause error
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetching quote: %s: %v", e.Reason, e.Cause)
	}

	return "fetching quote: " + e.Reason
}

// Unwrap returns the sentinel error for errors.Is() support.
// The underlying cause is reachable through the second Unwrap value.
func (e *FetchError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrFetch, e.Cause}
	}

	return []error{ErrFetch}
}

// NewFetchError creates a fetch error with a reason and optional cause.
func NewFetchError(reason string, cause error) error {
	return &FetchError{Reason: reason, Cause: cause}
}

// ValidationError provides context for validation errors.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}

	return "validation failed: " + e.Message
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a validation error with context.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// UnavailableError provides context for unavailable errors.
type UnavailableError struct {
	Service string
	Reason  string
}

// Error implements the error interface.
func (e *UnavailableError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("service %q unavailable: %s", e.Service, e.Reason)
	}

	return fmt.Sprintf("service %q unavailable", e.Service)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *UnavailableError) Unwrap() error {
	return ErrUnavailable
}

// NewUnavailableError creates an unavailable error with context.
func NewUnavailableError(service, reason string) error {
	return &UnavailableError{Service: service, Reason: reason}
}

// IsFetch checks if an error is a fetch error.
func IsFetch(err error) bool {
	return errors.Is(err, ErrFetch)
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsUnavailable checks if an error is an unavailable error.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
