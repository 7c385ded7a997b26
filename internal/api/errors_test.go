package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/phrazzld/persons-api/internal/api/shared"
	"github.com/phrazzld/persons-api/internal/domain"
	"github.com/phrazzld/persons-api/internal/service"
	"github.com/phrazzld/persons-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"person not found", service.ErrPersonNotFound, http.StatusNotFound},
		{"wrapped person not found", fmt.Errorf("update: %w", service.ErrPersonNotFound), http.StatusNotFound},
		{"store not found", store.ErrCountryNotFound, http.StatusNotFound},
		{"duplicate country", service.ErrDuplicateCountryName, http.StatusConflict},
		{"store duplicate", store.ErrCountryNameExists, http.StatusConflict},
		{"null argument", service.ErrNullArgument, http.StatusBadRequest},
		{"invalid argument", service.ErrInvalidArgument, http.StatusBadRequest},
		{"invalid entity", store.ErrInvalidEntity, http.StatusBadRequest},
		{"invalid gender", domain.NewValidationError("gender", "bad", domain.ErrInvalidGender), http.StatusBadRequest},
		{"invalid id", domain.NewValidationError("id", "has invalid format", domain.ErrInvalidID), http.StatusBadRequest},
		{"unknown", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, "An unexpected error occurred"},
		{"field", domain.NewValidationError("name", "is required", service.ErrInvalidArgument), "name is required"},
		{"person not found", service.ErrPersonNotFound, "Person not found"},
		{"country not found", store.ErrCountryNotFound, "Country not found"},
		{"duplicate", service.ErrDuplicateCountryName, "Country name already exists"},
		{"null", service.ErrNullArgument, "Request body is required"},
		{"internal", errors.New("dial tcp 10.0.0.1:5432: refused"), "An unexpected error occurred"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, GetSafeErrorMessage(tc.err))
		})
	}
}

func TestSanitizeValidationError(t *testing.T) {
	err := shared.ValidateRequest(&PersonRequest{Name: "Ann", DateOfBirth: "14/03/1990"})
	assert.Equal(t, "Invalid date_of_birth: invalid date, expected YYYY-MM-DD", SanitizeValidationError(err))

	err = shared.ValidateRequest(&PersonRequest{Name: "Ann", CountryID: "usa"})
	assert.Equal(t, "Invalid country_id: invalid identifier", SanitizeValidationError(err))

	assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("other")))
}
