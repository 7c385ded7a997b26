package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/persons-api/internal/api/shared"
	"github.com/phrazzld/persons-api/internal/domain"
	"github.com/phrazzld/persons-api/internal/service"
	"github.com/phrazzld/persons-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors. ErrPersonNotFound also wraps ErrInvalidArgument,
	// so it has to be matched first.
	case errors.Is(err, service.ErrPersonNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, service.ErrDuplicateCountryName),
		errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	// Bad request errors
	case isValidationError(err),
		errors.Is(err, service.ErrInvalidArgument),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	// Field level messages are built from struct tags and constants only.
	var valErr *domain.ValidationError
	if errors.As(err, &valErr) {
		return valErr.Field + " " + valErr.Message
	}

	switch {
	case errors.Is(err, service.ErrPersonNotFound):
		return "Person not found"

	case errors.Is(err, store.ErrCountryNotFound):
		return "Country not found"

	case errors.Is(err, service.ErrDuplicateCountryName),
		errors.Is(err, store.ErrCountryNameExists):
		return "Country name already exists"

	case errors.Is(err, service.ErrNullArgument):
		return "Request body is required"

	case errors.Is(err, service.ErrInvalidArgument),
		errors.Is(err, store.ErrInvalidEntity):
		return "Invalid request data"

	default:
		return "An unexpected error occurred"
	}
}

func isValidationError(err error) bool {
	var valErr *domain.ValidationError
	return errors.As(err, &valErr)
}

// errorField returns the request field an error refers to, if any.
func errorField(err error) string {
	var valErr *domain.ValidationError
	if errors.As(err, &valErr) {
		return valErr.Field
	}
	return ""
}

// SanitizeValidationError turns validator errors into a message naming
// the first failing field, without the Go struct path.
func SanitizeValidationError(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Sprintf("Invalid %s: %s", fe.Field(), getValidationTagMessage(fe.Tag()))
	}
	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required", "notblank":
		return "required field"
	case "email":
		return "invalid email format"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	case "datetime":
		return "invalid date, expected YYYY-MM-DD"
	case "uuid":
		return "invalid identifier"
	default:
		return "validation failed"
	}
}

// HandleAPIError writes the error response for err. When fallback is not
// empty it replaces the generic message of internal errors.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if status == http.StatusInternalServerError && fallback != "" {
		message = fallback
	}

	var opts []shared.ResponseOption
	if field := errorField(err); field != "" {
		opts = append(opts, shared.WithField(field))
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err, opts...)
}
