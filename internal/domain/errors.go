package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the hotel search system.
var (
	// ErrInvalidRequest indicates the request parameters are invalid.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrEmptyDestination indicates the user submitted an empty destination.
	ErrEmptyDestination = errors.New("destination is required")

	// ErrInvalidListing indicates a listing violates its invariants.
	ErrInvalidListing = errors.New("invalid listing")

	// ErrDestinationNotFound indicates the location lookup returned no candidates.
	ErrDestinationNotFound = errors.New("destination not found")

	// ErrUpstreamUnavailable indicates the upstream API failed or returned a non-success status.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// ErrUpstreamTimeout indicates an upstream call did not complete in time.
	ErrUpstreamTimeout = errors.New("upstream timeout")

	// ErrListingNotFound indicates a listing id is not part of the current result set.
	ErrListingNotFound = errors.New("listing not found")

	// ErrPersistence indicates a preference could not be written to the store.
	ErrPersistence = errors.New("preferences not persisted")
)

// UpstreamError wraps a failure of one upstream operation.
type UpstreamError struct {
	// Operation is the upstream call that failed (e.g., "searchDestination")
	Operation string

	// StatusCode is the HTTP status, 0 for transport or decoding failures
	StatusCode int

	// Err is the underlying error
	Err error

	// Retryable indicates the call may succeed if attempted again
	Retryable bool
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("upstream %s: HTTP %d: %v", e.Operation, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("upstream %s: %v", e.Operation, e.Err)
}

// Unwrap returns the underlying error.
func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// NewUpstreamError creates a non-retryable upstream error.
func NewUpstreamError(operation string, statusCode int, err error) *UpstreamError {
	return &UpstreamError{
		Operation:  operation,
		StatusCode: statusCode,
		Err:        err,
	}
}

// NewRetryableUpstreamError creates an upstream error that may be retried.
func NewRetryableUpstreamError(operation string, statusCode int, err error) *UpstreamError {
	return &UpstreamError{
		Operation:  operation,
		StatusCode: statusCode,
		Err:        err,
		Retryable:  true,
	}
}

// IsRetryable reports whether err is an UpstreamError marked retryable.
func IsRetryable(err error) bool {
	var upstreamErr *UpstreamError
	if errors.As(err, &upstreamErr) {
		return upstreamErr.Retryable
	}
	return false
}

// FieldError is an invalid value of a single input field. It matches
// ErrInvalidRequest with errors.Is.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%v: %s", ErrInvalidRequest, e.Message)
}

func (e *FieldError) Unwrap() error {
	return ErrInvalidRequest
}

// WrapInvalidRequest wraps a formatted message with ErrInvalidRequest.
func WrapInvalidRequest(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}

// IsInvalidRequest checks if err is or wraps ErrInvalidRequest.
func IsInvalidRequest(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}

// IsEmptyDestination checks if err is or wraps ErrEmptyDestination.
func IsEmptyDestination(err error) bool {
	return errors.Is(err, ErrEmptyDestination)
}
