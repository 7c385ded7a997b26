package service_test

import (
	"context"
	"testing"

	"github.com/phrazzld/persons-api/internal/service"
	"github.com/phrazzld/persons-api/internal/store/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSeedData(t *testing.T) {
	data, err := service.LoadSeedData()
	require.NoError(t, err)
	require.NotEmpty(t, data.Countries)
	require.NotEmpty(t, data.Persons)

	ids := make(map[string]bool)
	for _, c := range data.Countries {
		require.NoError(t, c.Validate())
		ids[c.ID.String()] = true
	}
	for _, p := range data.Persons {
		require.NoError(t, p.Validate())
		require.NotNil(t, p.CountryID)
		assert.True(t, ids[p.CountryID.String()], "seed person %s references a seeded country", p.Name)
		assert.True(t, p.Gender.IsValid())
	}
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	countries := memory.NewCountryStore()
	persons := memory.NewPersonStore()
	data, err := service.LoadSeedData()
	require.NoError(t, err)

	inserted, err := service.Seed(ctx, countries, persons, data, nil)
	require.NoError(t, err)
	assert.True(t, inserted)

	allCountries, _ := countries.GetAll(ctx)
	allPersons, _ := persons.GetAll(ctx)
	assert.Len(t, allCountries, len(data.Countries))
	assert.Len(t, allPersons, len(data.Persons))

	inserted, err = service.Seed(ctx, countries, persons, data, nil)
	require.NoError(t, err)
	assert.False(t, inserted, "populated stores are left alone")

	allPersons, _ = persons.GetAll(ctx)
	assert.Len(t, allPersons, len(data.Persons))
}

func TestSeed_ThroughServices(t *testing.T) {
	ctx := context.Background()
	countryStore := memory.NewCountryStore()
	personStore := memory.NewPersonStore()
	data, err := service.LoadSeedData()
	require.NoError(t, err)
	_, err = service.Seed(ctx, countryStore, personStore, data, nil)
	require.NoError(t, err)

	countries, err := service.NewCountryService(countryStore, nil, nil)
	require.NoError(t, err)
	persons, err := service.NewPersonService(personStore, countries, nil)
	require.NoError(t, err)

	all, err := persons.GetAllPersons(ctx)
	require.NoError(t, err)
	for _, p := range all {
		assert.NotEmpty(t, p.Country, "seeded person %s resolves its country", p.Name)
	}
}
