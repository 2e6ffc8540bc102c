// Package service provides application-level services for agencies, agents,
// users, itineraries, trips and lodgings.
package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/itinerary-api/internal/domain"
	"github.com/phrazzld/itinerary-api/internal/store"
)

// Error handling principles:
// 1. Validation failures are returned as the *domain.ValidationError they are
// 2. Store failures are wrapped in a ServiceError naming the operation
// 3. Callers use errors.Is/errors.As to check for specific error conditions
// 4. The API layer maps these errors to HTTP status codes

// ServiceError is a custom error type for service errors.
type ServiceError struct {
	Service   string
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s service %s failed: %s: %v", e.Service, e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s service %s failed: %s", e.Service, e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError.
func NewServiceError(service, operation, message string, err error) *ServiceError {
	return &ServiceError{
		Service:   service,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// isExpected reports whether err is a client-caused condition that is logged
// at debug level rather than as a failure.
func isExpected(err error) bool {
	return store.IsNotFoundError(err) ||
		store.IsDuplicateError(err) ||
		errors.Is(err, domain.ErrValidation)
}
