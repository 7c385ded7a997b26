package service

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/phrazzld/persons-api/internal/domain"
)

// CountryAddRequest carries the data for a new country.
type CountryAddRequest struct {
	Name string `json:"name" validate:"notblank"`
}

// ToCountry maps the request to a Country with a freshly generated ID.
func (r *CountryAddRequest) ToCountry() *domain.Country {
	return &domain.Country{ID: uuid.New(), Name: r.Name}
}

// CountryResponse is the outward view of a country.
type CountryResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// NewCountryResponse maps a stored country to its response.
func NewCountryResponse(c *domain.Country) *CountryResponse {
	return &CountryResponse{ID: c.ID, Name: c.Name}
}

// PersonAddRequest carries the data for a new person.
type PersonAddRequest struct {
	Name               string        `json:"name" validate:"notblank"`
	Email              string        `json:"email"`
	DateOfBirth        *time.Time    `json:"date_of_birth,omitempty"`
	Gender             domain.Gender `json:"gender"`
	CountryID          *uuid.UUID    `json:"country_id,omitempty"`
	Address            string        `json:"address"`
	ReceiveNewsletters bool          `json:"receive_newsletters"`
}

// ToPerson maps the request to a Person with a freshly generated ID.
func (r *PersonAddRequest) ToPerson() *domain.Person {
	return (&domain.Person{
		ID:                 uuid.New(),
		Name:               r.Name,
		Email:              r.Email,
		DateOfBirth:        r.DateOfBirth,
		Gender:             r.Gender,
		CountryID:          r.CountryID,
		Address:            r.Address,
		ReceiveNewsletters: r.ReceiveNewsletters,
	}).Clone()
}

// PersonUpdateRequest replaces every mutable field of the person PersonID.
type PersonUpdateRequest struct {
	PersonID           uuid.UUID     `json:"id"`
	Name               string        `json:"name" validate:"notblank"`
	Email              string        `json:"email"`
	DateOfBirth        *time.Time    `json:"date_of_birth,omitempty"`
	Gender             domain.Gender `json:"gender"`
	CountryID          *uuid.UUID    `json:"country_id,omitempty"`
	Address            string        `json:"address"`
	ReceiveNewsletters bool          `json:"receive_newsletters"`
}

// ToPerson maps the request to a Person keeping PersonID.
func (r *PersonUpdateRequest) ToPerson() *domain.Person {
	return (&domain.Person{
		ID:                 r.PersonID,
		Name:               r.Name,
		Email:              r.Email,
		DateOfBirth:        r.DateOfBirth,
		Gender:             r.Gender,
		CountryID:          r.CountryID,
		Address:            r.Address,
		ReceiveNewsletters: r.ReceiveNewsletters,
	}).Clone()
}

// PersonResponse is the outward view of a person, enriched with the name of
// the referenced country and the age derived from the date of birth.
// Country is empty when the person has no country or it does not resolve.
type PersonResponse struct {
	ID                 uuid.UUID     `json:"id"`
	Name               string        `json:"name"`
	Email              string        `json:"email"`
	DateOfBirth        *time.Time    `json:"date_of_birth,omitempty"`
	Age                *int          `json:"age,omitempty"`
	Gender             domain.Gender `json:"gender"`
	CountryID          *uuid.UUID    `json:"country_id,omitempty"`
	Country            string        `json:"country,omitempty"`
	Address            string        `json:"address"`
	ReceiveNewsletters bool          `json:"receive_newsletters"`
}

// NewPersonResponse maps a stored person to its response. now is used to
// compute the age.
func NewPersonResponse(p *domain.Person, countryName string, now time.Time) *PersonResponse {
	c := p.Clone()
	return &PersonResponse{
		ID:                 c.ID,
		Name:               c.Name,
		Email:              c.Email,
		DateOfBirth:        c.DateOfBirth,
		Age:                ageAt(c.DateOfBirth, now),
		Gender:             c.Gender,
		CountryID:          c.CountryID,
		Country:            countryName,
		Address:            c.Address,
		ReceiveNewsletters: c.ReceiveNewsletters,
	}
}

// ToPersonUpdateRequest returns an update request that would leave the
// person unchanged.
func (r *PersonResponse) ToPersonUpdateRequest() *PersonUpdateRequest {
	return &PersonUpdateRequest{
		PersonID:           r.ID,
		Name:               r.Name,
		Email:              r.Email,
		DateOfBirth:        r.DateOfBirth,
		Gender:             r.Gender,
		CountryID:          r.CountryID,
		Address:            r.Address,
		ReceiveNewsletters: r.ReceiveNewsletters,
	}
}

// ageAt returns whole years between dob and now, counting 365.25 days per year.
func ageAt(dob *time.Time, now time.Time) *int {
	if dob == nil {
		return nil
	}
	days := now.Sub(*dob).Hours() / 24
	age := int(math.Floor(days / 365.25))
	return &age
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	// notblank rejects empty and whitespace-only strings.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// validateRequest runs the struct tags of req and converts the first
// failure into an invalid-argument error.
func validateRequest(v *validator.Validate, operation string, req any) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return invalidField(operation, fe.Field(), "is required")
	}
	return &ServiceError{Operation: operation, Message: "validation failed", Err: errors.Join(ErrInvalidArgument, err)}
}
