package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/phrazzld/persons-api/internal/domain"
	"github.com/phrazzld/persons-api/internal/platform/postgres"
	"github.com/phrazzld/persons-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func TestPostgresCountryStore_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("inserts country", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := postgres.NewPostgresCountryStore(db, nil)
		country := &domain.Country{ID: uuid.New(), Name: "Canada"}

		mock.ExpectExec("INSERT INTO countries").
			WithArgs(country.ID, "Canada").
			WillReturnResult(sqlmock.NewResult(0, 1))

		got, err := s.Add(ctx, country)
		require.NoError(t, err)
		assert.Equal(t, country, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique violation maps to name exists", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := postgres.NewPostgresCountryStore(db, nil)

		mock.ExpectExec("INSERT INTO countries").
			WillReturnError(newPgError("23505"))

		_, err := s.Add(ctx, &domain.Country{ID: uuid.New(), Name: "Canada"})
		assert.ErrorIs(t, err, store.ErrCountryNameExists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("invalid country never reaches the database", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := postgres.NewPostgresCountryStore(db, nil)

		_, err := s.Add(ctx, &domain.Country{ID: uuid.New(), Name: ""})
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
		assert.ErrorIs(t, err, domain.ErrEmptyCountryName)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresCountryStore_GetAll(t *testing.T) {
	db, mock := newMockDB(t)
	s := postgres.NewPostgresCountryStore(db, nil)

	first, second := uuid.New(), uuid.New()
	mock.ExpectQuery("SELECT id, name FROM countries ORDER BY seq").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(first.String(), "Brazil").
			AddRow(second.String(), "Chile"))

	countries, err := s.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, countries, 2)
	assert.Equal(t, first, countries[0].ID)
	assert.Equal(t, "Chile", countries[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCountryStore_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := postgres.NewPostgresCountryStore(db, nil)
		id := uuid.New()

		mock.ExpectQuery("SELECT id, name FROM countries WHERE id").
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(id.String(), "Kenya"))

		got, err := s.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Kenya", got.Name)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := postgres.NewPostgresCountryStore(db, nil)

		mock.ExpectQuery("SELECT id, name FROM countries WHERE name").
			WithArgs("Narnia").
			WillReturnError(sql.ErrNoRows)

		_, err := s.GetByName(ctx, "Narnia")
		assert.ErrorIs(t, err, store.ErrCountryNotFound)
	})

	t.Run("query error", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := postgres.NewPostgresCountryStore(db, nil)
		queryErr := errors.New("connection refused")

		mock.ExpectQuery("SELECT id, name FROM countries WHERE id").WillReturnError(queryErr)

		_, err := s.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, queryErr)
		var storeErr *store.StoreError
		assert.ErrorAs(t, err, &storeErr)
	})
}

func TestPostgresCountryStore_UpdateDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("update missing country", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := postgres.NewPostgresCountryStore(db, nil)

		mock.ExpectExec("UPDATE countries").WillReturnResult(sqlmock.NewResult(0, 0))

		_, err := s.Update(ctx, &domain.Country{ID: uuid.New(), Name: "Peru"})
		assert.ErrorIs(t, err, store.ErrCountryNotFound)
	})

	t.Run("delete reports removal", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := postgres.NewPostgresCountryStore(db, nil)
		id := uuid.New()

		mock.ExpectExec("DELETE FROM countries").WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("DELETE FROM countries").WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 0))

		removed, err := s.Delete(ctx, id)
		require.NoError(t, err)
		assert.True(t, removed)

		removed, err = s.Delete(ctx, id)
		require.NoError(t, err)
		assert.False(t, removed)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresCountryStore_WithTx(t *testing.T) {
	db, mock := newMockDB(t)
	s := postgres.NewPostgresCountryStore(db, nil)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO countries").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := store.RunInTransaction(context.Background(), db, func(ctx context.Context, tx *sql.Tx) error {
		_, err := s.WithTx(tx).Add(ctx, &domain.Country{ID: uuid.New(), Name: "Iceland"})
		return err
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
