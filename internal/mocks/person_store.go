package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/persons-api/internal/domain"
	"github.com/phrazzld/persons-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// MockPersonStore is a testify mock of store.PersonStore.
type MockPersonStore struct {
	mock.Mock
}

var _ store.PersonStore = (*MockPersonStore)(nil)

// Add is a mock implementation of store.PersonStore.Add
func (m *MockPersonStore) Add(ctx context.Context, person *domain.Person) (*domain.Person, error) {
	args := m.Called(ctx, person)
	if p, ok := args.Get(0).(*domain.Person); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetAll is a mock implementation of store.PersonStore.GetAll
func (m *MockPersonStore) GetAll(ctx context.Context) ([]*domain.Person, error) {
	args := m.Called(ctx)
	if ps, ok := args.Get(0).([]*domain.Person); ok {
		return ps, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetByID is a mock implementation of store.PersonStore.GetByID
func (m *MockPersonStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Person, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*domain.Person); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

// Update is a mock implementation of store.PersonStore.Update
func (m *MockPersonStore) Update(ctx context.Context, person *domain.Person) (*domain.Person, error) {
	args := m.Called(ctx, person)
	if p, ok := args.Get(0).(*domain.Person); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

// Delete is a mock implementation of store.PersonStore.Delete
func (m *MockPersonStore) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
