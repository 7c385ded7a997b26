package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/persons-api/internal/domain"
)

// PersonStore defines the interface for person data persistence.
type PersonStore interface {
	// Add saves a new person and returns the stored record.
	Add(ctx context.Context, person *domain.Person) (*domain.Person, error)

	// GetAll returns every person in insertion order.
	// Returns an empty slice when the store is empty.
	GetAll(ctx context.Context) ([]*domain.Person, error)

	// GetByID retrieves a person by its unique ID.
	// Returns ErrPersonNotFound if the person does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Person, error)

	// Update overwrites every mutable field of the person with the same ID.
	// The ID itself never changes.
	// Returns ErrPersonNotFound if the person does not exist.
	Update(ctx context.Context, person *domain.Person) (*domain.Person, error)

	// Delete removes a person. It reports false when nothing was removed.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// TxPersonStore is a PersonStore that can be bound to a transaction.
type TxPersonStore interface {
	PersonStore

	// WithTx returns a store instance that runs its queries on tx.
	WithTx(tx *sql.Tx) PersonStore
}
