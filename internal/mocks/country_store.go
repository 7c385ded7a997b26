package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/persons-api/internal/domain"
	"github.com/phrazzld/persons-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// MockCountryStore is a testify mock of store.CountryStore.
type MockCountryStore struct {
	mock.Mock
}

var _ store.CountryStore = (*MockCountryStore)(nil)

// Add is a mock implementation of store.CountryStore.Add
func (m *MockCountryStore) Add(ctx context.Context, country *domain.Country) (*domain.Country, error) {
	args := m.Called(ctx, country)
	if c, ok := args.Get(0).(*domain.Country); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetAll is a mock implementation of store.CountryStore.GetAll
func (m *MockCountryStore) GetAll(ctx context.Context) ([]*domain.Country, error) {
	args := m.Called(ctx)
	if cs, ok := args.Get(0).([]*domain.Country); ok {
		return cs, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetByID is a mock implementation of store.CountryStore.GetByID
func (m *MockCountryStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Country, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*domain.Country); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetByName is a mock implementation of store.CountryStore.GetByName
func (m *MockCountryStore) GetByName(ctx context.Context, name string) (*domain.Country, error) {
	args := m.Called(ctx, name)
	if c, ok := args.Get(0).(*domain.Country); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

// Update is a mock implementation of store.CountryStore.Update
func (m *MockCountryStore) Update(ctx context.Context, country *domain.Country) (*domain.Country, error) {
	args := m.Called(ctx, country)
	if c, ok := args.Get(0).(*domain.Country); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

// Delete is a mock implementation of store.CountryStore.Delete
func (m *MockCountryStore) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
