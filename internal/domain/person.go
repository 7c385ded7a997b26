package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Gender is the enumerated gender of a person.
type Gender string

// Known gender values
const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// Person validation errors
var (
	ErrEmptyPersonID   = errors.New("person ID cannot be empty")
	ErrEmptyPersonName = errors.New("person name cannot be empty")
)

// Person is a contact record. CountryID is a weak reference: the country is
// looked up for display only and is never enforced to exist.
type Person struct {
	ID                 uuid.UUID  `json:"id"`
	Name               string     `json:"name"`
	Email              string     `json:"email"`
	DateOfBirth        *time.Time `json:"date_of_birth,omitempty"`
	Gender             Gender     `json:"gender"`
	CountryID          *uuid.UUID `json:"country_id,omitempty"`
	Address            string     `json:"address"`
	ReceiveNewsletters bool       `json:"receive_newsletters"`
}

// Validate checks if the Person has valid data.
// Only the ID and the name are checked; every other field is free-form.
func (p *Person) Validate() error {
	if p.ID == uuid.Nil {
		return ErrEmptyPersonID
	}

	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyPersonName
	}

	return nil
}

// IsValid reports whether g is one of the known gender values.
func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	default:
		return false
	}
}

// ParseGender matches s case-insensitively against the known values.
// An empty string yields an empty Gender without error.
func ParseGender(s string) (Gender, error) {
	if s == "" {
		return "", nil
	}
	for _, g := range []Gender{GenderMale, GenderFemale, GenderOther} {
		if strings.EqualFold(string(g), s) {
			return g, nil
		}
	}
	return "", NewValidationError("gender", "must be Male, Female or Other", ErrInvalidGender)
}

// Clone returns a deep copy of the person, so stored records cannot be
// mutated through pointers handed out to callers.
func (p *Person) Clone() *Person {
	if p == nil {
		return nil
	}
	c := *p
	if p.DateOfBirth != nil {
		dob := *p.DateOfBirth
		c.DateOfBirth = &dob
	}
	if p.CountryID != nil {
		id := *p.CountryID
		c.CountryID = &id
	}
	return &c
}
