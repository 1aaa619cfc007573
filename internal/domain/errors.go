package domain

import "errors"

// Sentinel errors for the domain layer.
var (
	// ErrValidation marks input rejected before any backend call.
	ErrValidation = errors.New("validation failed")
	// ErrSubmissionInFlight is returned when a feature already has a request running for the visitor.
	ErrSubmissionInFlight = errors.New("a request is already in progress")
)

// ValidationError is a user-facing message for input rejected locally.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Unwrap lets callers match any validation error with errors.Is(err, ErrValidation).
func (e *ValidationError) Unwrap() error { return ErrValidation }

// Invalid builds a ValidationError.
func Invalid(message string) error {
	return &ValidationError{Message: message}
}
