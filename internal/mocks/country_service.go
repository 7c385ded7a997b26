package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/persons-api/internal/service"
	"github.com/stretchr/testify/mock"
)

// MockCountryService is a testify mock of service.CountryService.
type MockCountryService struct {
	mock.Mock
}

var _ service.CountryService = (*MockCountryService)(nil)

// AddCountry is a mock implementation of service.CountryService.AddCountry
func (m *MockCountryService) AddCountry(ctx context.Context, req *service.CountryAddRequest) (*service.CountryResponse, error) {
	args := m.Called(ctx, req)
	if c, ok := args.Get(0).(*service.CountryResponse); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetAllCountries is a mock implementation of service.CountryService.GetAllCountries
func (m *MockCountryService) GetAllCountries(ctx context.Context) ([]service.CountryResponse, error) {
	args := m.Called(ctx)
	if cs, ok := args.Get(0).([]service.CountryResponse); ok {
		return cs, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetCountryByID is a mock implementation of service.CountryService.GetCountryByID
func (m *MockCountryService) GetCountryByID(ctx context.Context, id uuid.UUID) (*service.CountryResponse, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*service.CountryResponse); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}
