package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/persons-api/internal/domain"
	"github.com/phrazzld/persons-api/internal/service"
)

// Query parameters of GET /api/persons
const (
	queryParamSearchBy     = "searchBy"
	queryParamSearchString = "searchString"
	queryParamSortBy       = "sortBy"
	queryParamSortOrder    = "sortOrder"
)

// getPathUUID extracts a UUID from the URL path parameters.
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return uuid.Nil, domain.NewValidationError(paramName, "is required", domain.ErrValidation)
	}

	id, err := uuid.Parse(pathParam)
	if err != nil {
		return uuid.Nil, domain.NewValidationError(paramName, "has invalid format", domain.ErrInvalidID)
	}

	return id, nil
}

// personListQuery is the parsed filter and sort request of a person listing.
type personListQuery struct {
	searchBy     service.PersonField
	searchString string
	sortBy       service.PersonField
	sortOrder    service.SortOrder
}

// parsePersonListQuery reads the listing parameters. Without sortBy the
// list is sorted by name ascending. Unknown field names are kept as
// FieldUnknown and handled by the service.
func parsePersonListQuery(r *http.Request) personListQuery {
	q := r.URL.Query()

	sortBy := service.FieldName
	if raw := strings.TrimSpace(q.Get(queryParamSortBy)); raw != "" {
		sortBy = service.ParsePersonField(raw)
	}

	return personListQuery{
		searchBy:     service.ParsePersonField(strings.TrimSpace(q.Get(queryParamSearchBy))),
		searchString: q.Get(queryParamSearchString),
		sortBy:       sortBy,
		sortOrder:    service.ParseSortOrder(q.Get(queryParamSortOrder)),
	}
}
