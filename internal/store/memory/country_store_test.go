package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/persons-api/internal/domain"
	"github.com/phrazzld/persons-api/internal/store"
	"github.com/phrazzld/persons-api/internal/store/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountryStore_AddAndGet(t *testing.T) {
	ctx := context.Background()
	s := memory.NewCountryStore()

	usa, err := domain.NewCountry("USA")
	require.NoError(t, err)
	india, err := domain.NewCountry("India")
	require.NoError(t, err)

	_, err = s.Add(ctx, usa)
	require.NoError(t, err)
	_, err = s.Add(ctx, india)
	require.NoError(t, err)

	all, err := s.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "USA", all[0].Name, "insertion order is preserved")
	assert.Equal(t, "India", all[1].Name)

	got, err := s.GetByID(ctx, india.ID)
	require.NoError(t, err)
	assert.Equal(t, india, got)

	got, err = s.GetByName(ctx, "USA")
	require.NoError(t, err)
	assert.Equal(t, usa.ID, got.ID)
}

func TestCountryStore_Add_DuplicateName(t *testing.T) {
	ctx := context.Background()
	s := memory.NewCountryStore()

	_, err := s.Add(ctx, &domain.Country{ID: uuid.New(), Name: "Japan"})
	require.NoError(t, err)

	_, err = s.Add(ctx, &domain.Country{ID: uuid.New(), Name: "Japan"})
	assert.ErrorIs(t, err, store.ErrCountryNameExists)
	assert.True(t, store.IsDuplicateError(err))

	// Name comparison is exact.
	_, err = s.Add(ctx, &domain.Country{ID: uuid.New(), Name: "japan"})
	assert.NoError(t, err)
}

func TestCountryStore_Add_Invalid(t *testing.T) {
	s := memory.NewCountryStore()

	_, err := s.Add(context.Background(), &domain.Country{ID: uuid.New(), Name: "  "})
	assert.ErrorIs(t, err, store.ErrInvalidEntity)
	assert.ErrorIs(t, err, domain.ErrEmptyCountryName)
}

func TestCountryStore_NotFound(t *testing.T) {
	ctx := context.Background()
	s := memory.NewCountryStore()

	_, err := s.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, store.ErrCountryNotFound)

	_, err = s.GetByName(ctx, "Atlantis")
	assert.True(t, store.IsNotFoundError(err))

	_, err = s.Update(ctx, &domain.Country{ID: uuid.New(), Name: "Atlantis"})
	assert.ErrorIs(t, err, store.ErrCountryNotFound)

	removed, err := s.Delete(ctx, uuid.New())
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestCountryStore_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	s := memory.NewCountryStore()

	a := &domain.Country{ID: uuid.New(), Name: "Germany"}
	b := &domain.Country{ID: uuid.New(), Name: "France"}
	_, _ = s.Add(ctx, a)
	_, _ = s.Add(ctx, b)

	_, err := s.Update(ctx, &domain.Country{ID: a.ID, Name: "France"})
	assert.ErrorIs(t, err, store.ErrCountryNameExists)

	updated, err := s.Update(ctx, &domain.Country{ID: a.ID, Name: "Deutschland"})
	require.NoError(t, err)
	assert.Equal(t, "Deutschland", updated.Name)

	removed, err := s.Delete(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	all, err := s.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, b.ID, all[0].ID)
}

func TestCountryStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := memory.NewCountryStore()

	c := &domain.Country{ID: uuid.New(), Name: "Peru"}
	_, err := s.Add(ctx, c)
	require.NoError(t, err)

	c.Name = "changed by caller"
	all, _ := s.GetAll(ctx)
	all[0].Name = "changed again"

	got, err := s.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Peru", got.Name)
}

func TestCountryStore_ConcurrentAdd(t *testing.T) {
	ctx := context.Background()
	s := memory.NewCountryStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.Add(ctx, &domain.Country{ID: uuid.New(), Name: uuid.NewString()})
		}()
	}
	wg.Wait()

	all, err := s.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 50)
}
