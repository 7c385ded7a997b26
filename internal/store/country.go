package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/persons-api/internal/domain"
)

// CountryStore defines the interface for country data persistence.
type CountryStore interface {
	// Add saves a new country and returns the stored record.
	// Returns ErrCountryNameExists if a country with the same name exists.
	Add(ctx context.Context, country *domain.Country) (*domain.Country, error)

	// GetAll returns every country in insertion order.
	// Returns an empty slice when the store is empty.
	GetAll(ctx context.Context) ([]*domain.Country, error)

	// GetByID retrieves a country by its unique ID.
	// Returns ErrCountryNotFound if the country does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Country, error)

	// GetByName retrieves a country by its exact (case-sensitive) name.
	// Returns ErrCountryNotFound if no country has that name.
	GetByName(ctx context.Context, name string) (*domain.Country, error)

	// Update replaces the stored country with the same ID.
	// Returns ErrCountryNotFound if the country does not exist.
	Update(ctx context.Context, country *domain.Country) (*domain.Country, error)

	// Delete removes a country. It reports false when nothing was removed.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// TxCountryStore is a CountryStore that can be bound to a transaction.
type TxCountryStore interface {
	CountryStore

	// WithTx returns a store instance that runs its queries on tx.
	WithTx(tx *sql.Tx) CountryStore
}
