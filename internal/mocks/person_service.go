package mocks

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/phrazzld/persons-api/internal/service"
)

// MockPersonService implements service.PersonService for testing.
type MockPersonService struct {
	// Custom behavior functions
	AddPersonFn          func(ctx context.Context, req *service.PersonAddRequest) (*service.PersonResponse, error)
	GetPersonByIDFn      func(ctx context.Context, id uuid.UUID) (*service.PersonResponse, error)
	GetAllPersonsFn      func(ctx context.Context) ([]service.PersonResponse, error)
	GetFilteredPersonsFn func(ctx context.Context, searchBy service.PersonField, searchString string) ([]service.PersonResponse, error)
	UpdatePersonFn       func(ctx context.Context, req *service.PersonUpdateRequest) (*service.PersonResponse, error)
	DeletePersonFn       func(ctx context.Context, id uuid.UUID) (bool, error)
	WritePersonsCSVFn    func(ctx context.Context, w io.Writer) error

	// Default return values
	Person       *service.PersonResponse
	Persons      []service.PersonResponse
	DefaultError error
}

var _ service.PersonService = (*MockPersonService)(nil)

// AddPerson implements the PersonService.AddPerson method
func (m *MockPersonService) AddPerson(ctx context.Context, req *service.PersonAddRequest) (*service.PersonResponse, error) {
	if m.AddPersonFn != nil {
		return m.AddPersonFn(ctx, req)
	}
	return m.Person, m.DefaultError
}

// GetPersonByID implements the PersonService.GetPersonByID method
func (m *MockPersonService) GetPersonByID(ctx context.Context, id uuid.UUID) (*service.PersonResponse, error) {
	if m.GetPersonByIDFn != nil {
		return m.GetPersonByIDFn(ctx, id)
	}
	return m.Person, m.DefaultError
}

// GetAllPersons implements the PersonService.GetAllPersons method
func (m *MockPersonService) GetAllPersons(ctx context.Context) ([]service.PersonResponse, error) {
	if m.GetAllPersonsFn != nil {
		return m.GetAllPersonsFn(ctx)
	}
	return m.Persons, m.DefaultError
}

// GetFilteredPersons implements the PersonService.GetFilteredPersons method
func (m *MockPersonService) GetFilteredPersons(
	ctx context.Context,
	searchBy service.PersonField,
	searchString string,
) ([]service.PersonResponse, error) {
	if m.GetFilteredPersonsFn != nil {
		return m.GetFilteredPersonsFn(ctx, searchBy, searchString)
	}
	return m.Persons, m.DefaultError
}

// GetSortedPersons delegates to service.SortPersons.
func (m *MockPersonService) GetSortedPersons(
	persons []service.PersonResponse,
	sortBy service.PersonField,
	order service.SortOrder,
) []service.PersonResponse {
	return service.SortPersons(persons, sortBy, order)
}

// UpdatePerson implements the PersonService.UpdatePerson method
func (m *MockPersonService) UpdatePerson(ctx context.Context, req *service.PersonUpdateRequest) (*service.PersonResponse, error) {
	if m.UpdatePersonFn != nil {
		return m.UpdatePersonFn(ctx, req)
	}
	return m.Person, m.DefaultError
}

// DeletePerson implements the PersonService.DeletePerson method
func (m *MockPersonService) DeletePerson(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.DeletePersonFn != nil {
		return m.DeletePersonFn(ctx, id)
	}
	return m.DefaultError == nil, m.DefaultError
}

// WritePersonsCSV implements the PersonService.WritePersonsCSV method
func (m *MockPersonService) WritePersonsCSV(ctx context.Context, w io.Writer) error {
	if m.WritePersonsCSVFn != nil {
		return m.WritePersonsCSVFn(ctx, w)
	}
	return m.DefaultError
}
