package service

import (
	"errors"
	"testing"

	"github.com/phrazzld/persons-api/internal/domain"
	"github.com/phrazzld/persons-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelsWrapInvalidArgument(t *testing.T) {
	for _, err := range []error{ErrNullArgument, ErrDuplicateCountryName, ErrPersonNotFound} {
		assert.ErrorIs(t, err, ErrInvalidArgument, err.Error())
	}
	assert.NotErrorIs(t, ErrInvalidArgument, ErrNullArgument)
}

func TestNewServiceError(t *testing.T) {
	assert.NoError(t, NewServiceError("op", "msg", nil))

	assert.Same(t, ErrDuplicateCountryName, NewServiceError("add_country", "save", store.ErrCountryNameExists))
	assert.Same(t, ErrPersonNotFound, NewServiceError("update_person", "save", store.ErrPersonNotFound))

	cause := errors.New("boom")
	err := NewServiceError("get_all_persons", "failed to list persons", cause)
	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "get_all_persons", svcErr.Operation)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "get_all_persons failed: failed to list persons: boom", err.Error())
}

func TestInvalidField(t *testing.T) {
	err := invalidField("add_person", "name", "is required")

	assert.ErrorIs(t, err, ErrInvalidArgument)
	var valErr *domain.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "name", valErr.Field)
	assert.Contains(t, err.Error(), "name is required")
}

func TestValidateRequest(t *testing.T) {
	v := newValidator()

	assert.NoError(t, validateRequest(v, "add_country", &CountryAddRequest{Name: "Peru"}))

	err := validateRequest(v, "add_country", &CountryAddRequest{Name: "\t"})
	var valErr *domain.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "name", valErr.Field, "json tag names are reported")
}
