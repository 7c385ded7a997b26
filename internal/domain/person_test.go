package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersonValidate(t *testing.T) {
	tests := []struct {
		name    string
		person  Person
		wantErr error
	}{
		{
			name:   "valid minimal person",
			person: Person{ID: uuid.New(), Name: "Mary"},
		},
		{
			name:    "nil id",
			person:  Person{Name: "Mary"},
			wantErr: ErrEmptyPersonID,
		},
		{
			name:    "empty name",
			person:  Person{ID: uuid.New()},
			wantErr: ErrEmptyPersonName,
		},
		{
			name:    "blank name",
			person:  Person{ID: uuid.New(), Name: "\t "},
			wantErr: ErrEmptyPersonName,
		},
		{
			name: "free-form fields are not checked",
			person: Person{
				ID:      uuid.New(),
				Name:    "Smith",
				Email:   "not-an-email",
				Address: "",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.person.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseGender(t *testing.T) {
	tests := []struct {
		in      string
		want    Gender
		wantErr bool
	}{
		{in: "", want: ""},
		{in: "Male", want: GenderMale},
		{in: "female", want: GenderFemale},
		{in: "OTHER", want: GenderOther},
		{in: "unknown", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseGender(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidGender)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPersonClone(t *testing.T) {
	dob := time.Date(1990, time.May, 3, 0, 0, 0, 0, time.UTC)
	countryID := uuid.New()
	original := &Person{
		ID:          uuid.New(),
		Name:        "Mary",
		DateOfBirth: &dob,
		CountryID:   &countryID,
	}

	clone := original.Clone()
	require.Equal(t, original, clone)

	*clone.DateOfBirth = dob.AddDate(1, 0, 0)
	*clone.CountryID = uuid.New()
	clone.Name = "Changed"

	assert.Equal(t, dob, *original.DateOfBirth)
	assert.Equal(t, countryID, *original.CountryID)
	assert.Equal(t, "Mary", original.Name)

	var nilPerson *Person
	assert.Nil(t, nilPerson.Clone())
}
