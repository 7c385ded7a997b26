//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/persons-api/internal/domain"
	"github.com/phrazzld/persons-api/internal/platform/postgres"
	"github.com/phrazzld/persons-api/internal/store"
	"github.com/phrazzld/persons-api/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountryStore_Integration(t *testing.T) {
	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		s := postgres.NewPostgresCountryStore(tx, nil)

		a := &domain.Country{ID: uuid.New(), Name: "Integration-" + uuid.NewString()}
		b := &domain.Country{ID: uuid.New(), Name: "Integration-" + uuid.NewString()}
		_, err := s.Add(ctx, a)
		require.NoError(t, err)
		_, err = s.Add(ctx, b)
		require.NoError(t, err)

		all, err := s.GetAll(ctx)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(all), 2)
		assert.Equal(t, a.ID, all[len(all)-2].ID, "countries come back in insertion order")
		assert.Equal(t, b.ID, all[len(all)-1].ID)

		byName, err := s.GetByName(ctx, a.Name)
		require.NoError(t, err)
		assert.Equal(t, a.ID, byName.ID)

		removed, err := s.Delete(ctx, b.ID)
		require.NoError(t, err)
		assert.True(t, removed)
	})
}

func TestCountryStore_Integration_DuplicateName(t *testing.T) {
	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		s := postgres.NewPostgresCountryStore(tx, nil)
		name := "Dup-" + uuid.NewString()

		_, err := s.Add(ctx, &domain.Country{ID: uuid.New(), Name: name})
		require.NoError(t, err)

		_, err = s.Add(ctx, &domain.Country{ID: uuid.New(), Name: name})
		assert.ErrorIs(t, err, store.ErrCountryNameExists)
	})
}

func TestPersonStore_Integration(t *testing.T) {
	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		s := postgres.NewPostgresPersonStore(tx, nil)

		dob := time.Date(1992, time.November, 5, 0, 0, 0, 0, time.UTC)
		dangling := uuid.New()
		p := &domain.Person{
			ID:                 uuid.New(),
			Name:               "Integration Person",
			Email:              "integration@example.com",
			DateOfBirth:        &dob,
			Gender:             domain.GenderOther,
			CountryID:          &dangling,
			Address:            "42 Test Lane",
			ReceiveNewsletters: true,
		}

		_, err := s.Add(ctx, p)
		require.NoError(t, err, "country references are not enforced")

		got, err := s.GetByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, p.Name, got.Name)
		assert.True(t, dob.Equal(*got.DateOfBirth))
		assert.Equal(t, dangling, *got.CountryID)

		p.DateOfBirth = nil
		p.CountryID = nil
		p.Name = "Renamed"
		_, err = s.Update(ctx, p)
		require.NoError(t, err)

		got, err = s.GetByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", got.Name)
		assert.Nil(t, got.DateOfBirth)
		assert.Nil(t, got.CountryID)

		removed, err := s.Delete(ctx, p.ID)
		require.NoError(t, err)
		assert.True(t, removed)

		_, err = s.GetByID(ctx, p.ID)
		assert.ErrorIs(t, err, store.ErrPersonNotFound)
	})
}
