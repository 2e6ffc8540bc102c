// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity or request input fails validation.
	// Every more specific validation kind below wraps it.
	ErrValidation = errors.New("validation failed")

	// ErrMissingField is returned when a required field is absent.
	ErrMissingField = fmt.Errorf("%w: missing field", ErrValidation)

	// ErrInvalidValue is returned when a field is present but its value is not acceptable,
	// including violations of cross-field invariants.
	ErrInvalidValue = fmt.Errorf("%w: invalid value", ErrValidation)

	// ErrInvalidDateFormat is returned when a date is not in YYYY-MM-DD form.
	ErrInvalidDateFormat = fmt.Errorf("%w: invalid date format", ErrValidation)

	// ErrInvalidParameter is returned when a query or path parameter is malformed.
	ErrInvalidParameter = fmt.Errorf("%w: invalid parameter", ErrValidation)
)

// ValidationError describes a validation failure on a single field.
// Err is one of the validation sentinels above.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Unwrap returns the validation kind so errors.Is works against the sentinels.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// missing is shorthand for a MissingField error.
func missing(field string) error {
	return NewValidationError(field, "is required", ErrMissingField)
}

// invalid is shorthand for an InvalidValue error.
func invalid(field, message string) error {
	return NewValidationError(field, message, ErrInvalidValue)
}
