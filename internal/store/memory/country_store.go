package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/persons-api/internal/domain"
	"github.com/phrazzld/persons-api/internal/store"
)

// CountryStore is an in-memory store.CountryStore.
type CountryStore struct {
	mu        sync.RWMutex
	countries []domain.Country
}

var _ store.CountryStore = (*CountryStore)(nil)

// NewCountryStore returns an empty CountryStore.
func NewCountryStore() *CountryStore {
	return &CountryStore{}
}

// Add implements store.CountryStore.Add.
func (s *CountryStore) Add(_ context.Context, country *domain.Country) (*domain.Country, error) {
	if err := country.Validate(); err != nil {
		return nil, store.NewStoreError("country", "add", "validation failed", errWrap(err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.countries {
		if c.ID == country.ID {
			return nil, store.NewStoreError("country", "add", "id already exists", store.ErrDuplicate)
		}
		if c.Name == country.Name {
			return nil, store.ErrCountryNameExists
		}
	}

	s.countries = append(s.countries, *country)
	stored := *country
	return &stored, nil
}

// GetAll implements store.CountryStore.GetAll.
func (s *CountryStore) GetAll(_ context.Context) ([]*domain.Country, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Country, 0, len(s.countries))
	for i := range s.countries {
		c := s.countries[i]
		out = append(out, &c)
	}
	return out, nil
}

// GetByID implements store.CountryStore.GetByID.
func (s *CountryStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Country, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.countries {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, store.ErrCountryNotFound
}

// GetByName implements store.CountryStore.GetByName.
func (s *CountryStore) GetByName(_ context.Context, name string) (*domain.Country, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.countries {
		if c.Name == name {
			return &c, nil
		}
	}
	return nil, store.ErrCountryNotFound
}

// Update implements store.CountryStore.Update.
func (s *CountryStore) Update(_ context.Context, country *domain.Country) (*domain.Country, error) {
	if err := country.Validate(); err != nil {
		return nil, store.NewStoreError("country", "update", "validation failed", errWrap(err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, c := range s.countries {
		if c.ID == country.ID {
			idx = i
			continue
		}
		if c.Name == country.Name {
			return nil, store.ErrCountryNameExists
		}
	}
	if idx < 0 {
		return nil, store.ErrCountryNotFound
	}

	s.countries[idx] = *country
	stored := *country
	return &stored, nil
}

// Delete implements store.CountryStore.Delete.
func (s *CountryStore) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, c := range s.countries {
		if c.ID == id {
			s.countries = append(s.countries[:i], s.countries[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
