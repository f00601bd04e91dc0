package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the flight data core.
var (
	// ErrInvalidRequest indicates the caller supplied invalid parameters.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrMissingCredentials indicates upstream credentials are not configured.
	// This is the only structural configuration error the core surfaces.
	ErrMissingCredentials = errors.New("upstream credentials not configured")

	// ErrSourceUnavailable indicates an upstream source returned a non-2xx
	// response or could not be reached.
	ErrSourceUnavailable = errors.New("upstream source unavailable")

	// ErrSourceTimeout indicates an upstream call exceeded its deadline.
	ErrSourceTimeout = errors.New("upstream source timed out")

	// ErrNotFound indicates a lookup (offer id, flight) matched nothing.
	ErrNotFound = errors.New("not found")
)

// SourceError wraps an error from a specific upstream source so callers can
// report which source failed.
type SourceError struct {
	// Source is the upstream source name (e.g., "amadeus", "adsb")
	Source string

	// Err is the underlying error
	Err error

	// Retryable indicates whether the operation may succeed if retried
	Retryable bool
}

// Error implements the error interface.
func (e *SourceError) Error() string {
	return fmt.Sprintf("source %s: %v", e.Source, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *SourceError) Unwrap() error {
	return e.Err
}

// NewSourceError creates a non-retryable SourceError.
func NewSourceError(source string, err error) *SourceError {
	return &SourceError{Source: source, Err: err}
}

// NewRetryableSourceError creates a retryable SourceError.
func NewRetryableSourceError(source string, err error) *SourceError {
	return &SourceError{Source: source, Err: err, Retryable: true}
}

// NewSourceTimeoutError creates a SourceError wrapping ErrSourceTimeout.
func NewSourceTimeoutError(source string) *SourceError {
	return &SourceError{Source: source, Err: ErrSourceTimeout}
}

// ValidationError represents a field-level validation failure.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// WrapInvalidRequest wraps a formatted message with ErrInvalidRequest.
func WrapInvalidRequest(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}

// IsInvalidRequest reports whether err is or wraps ErrInvalidRequest.
func IsInvalidRequest(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}

// IsMissingCredentials reports whether err is or wraps ErrMissingCredentials.
func IsMissingCredentials(err error) bool {
	return errors.Is(err, ErrMissingCredentials)
}

// IsSourceTimeout reports whether err is or wraps ErrSourceTimeout.
func IsSourceTimeout(err error) bool {
	return errors.Is(err, ErrSourceTimeout)
}

// IsNotFound reports whether err is or wraps ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
