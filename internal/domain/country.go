package domain

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// Country validation errors
var (
	// ErrEmptyCountryID is returned when a country ID is nil.
	ErrEmptyCountryID = errors.New("country ID cannot be empty")

	// ErrEmptyCountryName is returned when a country name is empty or blank.
	ErrEmptyCountryName = errors.New("country name cannot be empty")
)

// Country is a named country that persons may reference.
// Names are unique across all countries.
type Country struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// NewCountry creates a new Country with a freshly generated ID.
// Returns an error if validation fails.
func NewCountry(name string) (*Country, error) {
	country := &Country{
		ID:   uuid.New(),
		Name: name,
	}

	if err := country.Validate(); err != nil {
		return nil, err
	}

	return country, nil
}

// Validate checks if the Country has valid data.
func (c *Country) Validate() error {
	if c.ID == uuid.Nil {
		return ErrEmptyCountryID
	}

	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyCountryName
	}

	return nil
}
