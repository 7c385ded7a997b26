package testutils

import (
	"context"
	"testing"
	"time"

	"github.com/Pallinder/go-randomdata"
	"github.com/google/uuid"
	"github.com/phrazzld/persons-api/internal/domain"
	"github.com/phrazzld/persons-api/internal/service"
	"github.com/phrazzld/persons-api/internal/store"
	"github.com/stretchr/testify/require"
)

// PersonOption customizes a fixture person.
type PersonOption func(*domain.Person)

// WithName sets the person's name.
func WithName(name string) PersonOption {
	return func(p *domain.Person) { p.Name = name }
}

// WithCountry sets the person's country reference.
func WithCountry(id uuid.UUID) PersonOption {
	return func(p *domain.Person) { p.CountryID = &id }
}

// WithDateOfBirth sets the person's date of birth. A nil dob clears it.
func WithDateOfBirth(dob *time.Time) PersonOption {
	return func(p *domain.Person) { p.DateOfBirth = dob }
}

// RandomDateOfBirth returns a UTC date between 1950 and 2005.
func RandomDateOfBirth() time.Time {
	return time.Date(
		randomdata.Number(1950, 2006),
		time.Month(randomdata.Number(1, 13)),
		randomdata.Number(1, 29),
		0, 0, 0, 0, time.UTC,
	)
}

// RandomGender returns one of the known genders.
func RandomGender() domain.Gender {
	genders := []domain.Gender{domain.GenderMale, domain.GenderFemale, domain.GenderOther}
	return genders[randomdata.Number(len(genders))]
}

// NewCountry returns a valid country with a unique random name.
func NewCountry() *domain.Country {
	return &domain.Country{
		ID:   uuid.New(),
		Name: randomdata.Country(randomdata.FullCountry) + " " + randomdata.SillyName(),
	}
}

// NewPerson returns a valid person with every field populated.
func NewPerson(opts ...PersonOption) *domain.Person {
	dob := RandomDateOfBirth()
	countryID := uuid.New()
	p := &domain.Person{
		ID:                 uuid.New(),
		Name:               randomdata.FullName(randomdata.RandomGender),
		Email:              randomdata.Email(),
		DateOfBirth:        &dob,
		Gender:             RandomGender(),
		CountryID:          &countryID,
		Address:            randomdata.Address(),
		ReceiveNewsletters: randomdata.Boolean(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewCountryAddRequest returns a valid request with a unique random name.
func NewCountryAddRequest() *service.CountryAddRequest {
	return &service.CountryAddRequest{Name: NewCountry().Name}
}

// NewPersonAddRequest returns a valid request referencing countryID.
func NewPersonAddRequest(countryID *uuid.UUID) *service.PersonAddRequest {
	p := NewPerson()
	return &service.PersonAddRequest{
		Name:               p.Name,
		Email:              p.Email,
		DateOfBirth:        p.DateOfBirth,
		Gender:             p.Gender,
		CountryID:          countryID,
		Address:            p.Address,
		ReceiveNewsletters: p.ReceiveNewsletters,
	}
}

// MustAddCountry stores a random country and returns it.
func MustAddCountry(ctx context.Context, t *testing.T, s store.CountryStore) *domain.Country {
	t.Helper()

	c, err := s.Add(ctx, NewCountry())
	require.NoError(t, err, "Failed to insert test country")
	return c
}

// MustAddPerson stores a random person and returns it.
func MustAddPerson(ctx context.Context, t *testing.T, s store.PersonStore, opts ...PersonOption) *domain.Person {
	t.Helper()

	p, err := s.Add(ctx, NewPerson(opts...))
	require.NoError(t, err, "Failed to insert test person")
	return p
}
