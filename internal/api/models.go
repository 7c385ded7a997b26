package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/persons-api/internal/domain"
	"github.com/phrazzld/persons-api/internal/service"
)

// DateLayout is the wire format of dates of birth.
const DateLayout = time.DateOnly

// CreateCountryRequest defines the payload for POST /api/countries.
type CreateCountryRequest struct {
	Name string `json:"name"`
}

// CountryResponse defines the country representation returned by the API.
type CountryResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// PersonRequest defines the payload for creating or replacing a person.
// Name is checked by the service so its message matches every other
// caller; the remaining tags only guard the wire formats.
type PersonRequest struct {
	Name               string `json:"name"`
	Email              string `json:"email"               validate:"omitempty,max=254"`
	DateOfBirth        string `json:"date_of_birth"       validate:"omitempty,datetime=2006-01-02"`
	Gender             string `json:"gender"              validate:"omitempty,max=16"`
	CountryID          string `json:"country_id"          validate:"omitempty,uuid"`
	Address            string `json:"address"             validate:"omitempty,max=1024"`
	ReceiveNewsletters bool   `json:"receive_newsletters"`
}

// PersonResponse defines the person representation returned by the API.
type PersonResponse struct {
	ID                 uuid.UUID  `json:"id"`
	Name               string     `json:"name"`
	Email              string     `json:"email"`
	DateOfBirth        string     `json:"date_of_birth,omitempty"`
	Age                *int       `json:"age,omitempty"`
	Gender             string     `json:"gender,omitempty"`
	CountryID          *uuid.UUID `json:"country_id,omitempty"`
	Country            string     `json:"country,omitempty"`
	Address            string     `json:"address"`
	ReceiveNewsletters bool       `json:"receive_newsletters"`
}

// personFields holds the converted wire values shared by add and update.
type personFields struct {
	dob       *time.Time
	gender    domain.Gender
	countryID *uuid.UUID
}

// parse converts the string-typed wire fields. It expects a request that
// already passed struct validation.
func (r *PersonRequest) parse() (personFields, error) {
	var f personFields

	if r.DateOfBirth != "" {
		dob, err := time.Parse(DateLayout, r.DateOfBirth)
		if err != nil {
			return f, domain.NewValidationError("date_of_birth", "must be a date in YYYY-MM-DD format", domain.ErrValidation)
		}
		f.dob = &dob
	}

	gender, err := domain.ParseGender(r.Gender)
	if err != nil {
		return f, err
	}
	f.gender = gender

	if r.CountryID != "" {
		id, err := uuid.Parse(r.CountryID)
		if err != nil {
			return f, domain.NewValidationError("country_id", "has invalid format", domain.ErrInvalidID)
		}
		f.countryID = &id
	}

	return f, nil
}

func (r *PersonRequest) toAddRequest() (*service.PersonAddRequest, error) {
	f, err := r.parse()
	if err != nil {
		return nil, err
	}
	return &service.PersonAddRequest{
		Name:               r.Name,
		Email:              r.Email,
		DateOfBirth:        f.dob,
		Gender:             f.gender,
		CountryID:          f.countryID,
		Address:            r.Address,
		ReceiveNewsletters: r.ReceiveNewsletters,
	}, nil
}

func (r *PersonRequest) toUpdateRequest(id uuid.UUID) (*service.PersonUpdateRequest, error) {
	f, err := r.parse()
	if err != nil {
		return nil, err
	}
	return &service.PersonUpdateRequest{
		PersonID:           id,
		Name:               r.Name,
		Email:              r.Email,
		DateOfBirth:        f.dob,
		Gender:             f.gender,
		CountryID:          f.countryID,
		Address:            r.Address,
		ReceiveNewsletters: r.ReceiveNewsletters,
	}, nil
}

func countryToResponse(c *service.CountryResponse) CountryResponse {
	return CountryResponse{ID: c.ID, Name: c.Name}
}

func personToResponse(p *service.PersonResponse) PersonResponse {
	resp := PersonResponse{
		ID:                 p.ID,
		Name:               p.Name,
		Email:              p.Email,
		Age:                p.Age,
		Gender:             string(p.Gender),
		CountryID:          p.CountryID,
		Country:            p.Country,
		Address:            p.Address,
		ReceiveNewsletters: p.ReceiveNewsletters,
	}
	if p.DateOfBirth != nil {
		resp.DateOfBirth = p.DateOfBirth.Format(DateLayout)
	}
	return resp
}

func personsToResponse(persons []service.PersonResponse) []PersonResponse {
	out := make([]PersonResponse, 0, len(persons))
	for i := range persons {
		out = append(out, personToResponse(&persons[i]))
	}
	return out
}
