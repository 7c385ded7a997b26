package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/persons-api/internal/domain"
	"github.com/phrazzld/persons-api/internal/store"
)

// Sentinel errors returned by the services. Every one of them wraps
// ErrInvalidArgument, so errors.Is(err, ErrInvalidArgument) holds for any
// rejected request.
var (
	// ErrInvalidArgument indicates a missing or empty required field, an id
	// that does not resolve, or a uniqueness violation.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNullArgument indicates the request object itself was absent.
	ErrNullArgument = fmt.Errorf("%w: request cannot be nil", ErrInvalidArgument)

	// ErrDuplicateCountryName indicates a country with the same name exists.
	ErrDuplicateCountryName = fmt.Errorf("%w: country name already exists", ErrInvalidArgument)

	// ErrPersonNotFound indicates an update targeted a person that does not exist.
	ErrPersonNotFound = fmt.Errorf("%w: person not found", ErrInvalidArgument)
)

// ServiceError wraps unexpected errors from the services with context.
type ServiceError struct {
	// Operation is the operation that failed (e.g., "add_person")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError.
// Store sentinels with a service-level equivalent are translated and
// returned directly without wrapping.
func NewServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, store.ErrCountryNameExists):
		return ErrDuplicateCountryName
	case errors.Is(err, store.ErrPersonNotFound):
		return ErrPersonNotFound
	}

	return &ServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// invalidField reports a rejected field as a ValidationError that wraps
// ErrInvalidArgument.
func invalidField(operation, field, message string) error {
	return &ServiceError{
		Operation: operation,
		Message:   "validation failed",
		Err:       domain.NewValidationError(field, message, ErrInvalidArgument),
	}
}
