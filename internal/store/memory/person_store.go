package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/persons-api/internal/domain"
	"github.com/phrazzld/persons-api/internal/store"
)

// PersonStore is an in-memory store.PersonStore.
type PersonStore struct {
	mu      sync.RWMutex
	persons []*domain.Person
}

var _ store.PersonStore = (*PersonStore)(nil)

// NewPersonStore returns an empty PersonStore.
func NewPersonStore() *PersonStore {
	return &PersonStore{}
}

// Add implements store.PersonStore.Add.
func (s *PersonStore) Add(_ context.Context, person *domain.Person) (*domain.Person, error) {
	if err := person.Validate(); err != nil {
		return nil, store.NewStoreError("person", "add", "validation failed", errWrap(err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(person.ID) >= 0 {
		return nil, store.NewStoreError("person", "add", "id already exists", store.ErrDuplicate)
	}

	s.persons = append(s.persons, person.Clone())
	return person.Clone(), nil
}

// GetAll implements store.PersonStore.GetAll.
func (s *PersonStore) GetAll(_ context.Context) ([]*domain.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Person, 0, len(s.persons))
	for _, p := range s.persons {
		out = append(out, p.Clone())
	}
	return out, nil
}

// GetByID implements store.PersonStore.GetByID.
func (s *PersonStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.persons[i].Clone(), nil
	}
	return nil, store.ErrPersonNotFound
}

// Update implements store.PersonStore.Update.
func (s *PersonStore) Update(_ context.Context, person *domain.Person) (*domain.Person, error) {
	if err := person.Validate(); err != nil {
		return nil, store.NewStoreError("person", "update", "validation failed", errWrap(err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(person.ID)
	if i < 0 {
		return nil, store.ErrPersonNotFound
	}

	s.persons[i] = person.Clone()
	return person.Clone(), nil
}

// Delete implements store.PersonStore.Delete.
func (s *PersonStore) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false, nil
	}
	s.persons = append(s.persons[:i], s.persons[i+1:]...)
	return true, nil
}

// indexOf must be called with s.mu held.
func (s *PersonStore) indexOf(id uuid.UUID) int {
	for i, p := range s.persons {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func errWrap(err error) error {
	return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
}
