package service_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"testing"
	"time"

	"github.com/phrazzld/persons-api/internal/mocks"
	"github.com/phrazzld/persons-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestWritePersonsCSV(t *testing.T) {
	ctx := context.Background()
	f := newPersonFixture(t)
	peru := f.addCountry(t, "Peru")

	dob := time.Date(1980, time.January, 15, 0, 0, 0, 0, time.UTC)
	_, err := f.persons.AddPerson(ctx, &service.PersonAddRequest{
		Name:               "Quoted, Name",
		Email:              "q@example.com",
		DateOfBirth:        &dob,
		Gender:             "Female",
		CountryID:          &peru.ID,
		Address:            "1 \"Main\" St",
		ReceiveNewsletters: true,
	})
	require.NoError(t, err)
	_, err = f.persons.AddPerson(ctx, &service.PersonAddRequest{Name: "Bare"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, f.persons.WritePersonsCSV(ctx, &buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{
		"ID", "Name", "Email", "DateOfBirth", "Age", "Gender", "Country", "Address", "ReceiveNewsletters",
	}, records[0])

	full := records[1]
	assert.Equal(t, "Quoted, Name", full[1])
	assert.Equal(t, "1980-01-15", full[3])
	assert.Equal(t, "44", full[4])
	assert.Equal(t, "Peru", full[6])
	assert.Equal(t, "1 \"Main\" St", full[7])
	assert.Equal(t, "true", full[8])

	bare := records[2]
	assert.Equal(t, "Bare", bare[1])
	assert.Empty(t, bare[3])
	assert.Empty(t, bare[4])
	assert.Equal(t, "false", bare[8])
}

func TestWritePersonsCSV_ListError(t *testing.T) {
	personStore := &mocks.MockPersonStore{}
	countries := &mocks.MockCountryService{}
	listErr := errors.New("timeout")
	personStore.On("GetAll", mock.Anything).Return(nil, listErr)
	countries.On("GetAllCountries", mock.Anything).Return([]service.CountryResponse{}, nil)

	svc, err := service.NewPersonService(personStore, countries, nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	err = svc.WritePersonsCSV(context.Background(), &buf)
	assert.ErrorIs(t, err, listErr)
	assert.Zero(t, buf.Len(), "nothing is written when listing fails")
}
