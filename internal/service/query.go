package service

import (
	"cmp"
	"slices"
	"strings"
	"time"
)

// PersonField selects the person attribute used to filter or sort.
type PersonField int

// Selectable person fields. FieldUnknown is the result of parsing an
// unrecognized name.
const (
	FieldUnknown PersonField = iota
	FieldName
	FieldEmail
	FieldDateOfBirth
	FieldAge
	FieldGender
	FieldCountry
	FieldAddress
	FieldReceiveNewsletters
)

// DateOfBirthSearchLayout is the rendering of a date of birth that search
// strings are matched against.
const DateOfBirthSearchLayout = "02 January 2006"

var personFieldNames = map[PersonField]string{
	FieldName:               "PersonName",
	FieldEmail:              "Email",
	FieldDateOfBirth:        "DateOfBirth",
	FieldAge:                "Age",
	FieldGender:             "Gender",
	FieldCountry:            "Country",
	FieldAddress:            "Address",
	FieldReceiveNewsletters: "ReceiveNewsletters",
}

// String returns the external name of the field.
func (f PersonField) String() string {
	if name, ok := personFieldNames[f]; ok {
		return name
	}
	return "Unknown"
}

// ParsePersonField maps an external field name, case-insensitively, to its
// PersonField. Unrecognized names yield FieldUnknown.
func ParsePersonField(name string) PersonField {
	for f, n := range personFieldNames {
		if strings.EqualFold(n, name) {
			return f
		}
	}
	return FieldUnknown
}

// SortOrder is the direction of a sort. The zero value is ascending.
type SortOrder int

// Sort directions
const (
	SortAsc SortOrder = iota
	SortDesc
)

// String returns "ASC" or "DESC".
func (o SortOrder) String() string {
	if o == SortDesc {
		return "DESC"
	}
	return "ASC"
}

// ParseSortOrder returns SortDesc for "DESC" in any case and SortAsc for
// anything else, including the empty string.
func ParseSortOrder(s string) SortOrder {
	if strings.EqualFold(s, "DESC") {
		return SortDesc
	}
	return SortAsc
}

// searchText returns the text of field that a search string is matched
// against. ok is false when the field is not searchable or the person has
// no value for it.
func searchText(p *PersonResponse, field PersonField) (string, bool) {
	var text string
	switch field {
	case FieldName:
		text = p.Name
	case FieldEmail:
		text = p.Email
	case FieldDateOfBirth:
		if p.DateOfBirth == nil {
			return "", false
		}
		text = p.DateOfBirth.Format(DateOfBirthSearchLayout)
	case FieldGender:
		text = string(p.Gender)
	case FieldCountry:
		text = p.Country
	case FieldAddress:
		text = p.Address
	default:
		return "", false
	}
	return text, text != ""
}

// FilterPersons returns the persons whose field contains search,
// case-insensitively. An empty search returns persons unchanged. A field
// that is not searchable matches nobody.
func FilterPersons(persons []PersonResponse, field PersonField, search string) []PersonResponse {
	if search == "" {
		return persons
	}

	needle := strings.ToLower(search)
	out := make([]PersonResponse, 0, len(persons))
	for i := range persons {
		text, ok := searchText(&persons[i], field)
		if ok && strings.Contains(strings.ToLower(text), needle) {
			out = append(out, persons[i])
		}
	}
	return out
}

type personCompare func(a, b *PersonResponse) int

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// compareOptional orders absent values before present ones.
func compareOptional[T any](a, b *T, compare func(x, y T) int) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return compare(*a, *b)
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	}
	return 1
}

var personComparators = map[PersonField]personCompare{
	FieldName:    func(a, b *PersonResponse) int { return compareFold(a.Name, b.Name) },
	FieldEmail:   func(a, b *PersonResponse) int { return compareFold(a.Email, b.Email) },
	FieldGender:  func(a, b *PersonResponse) int { return compareFold(string(a.Gender), string(b.Gender)) },
	FieldCountry: func(a, b *PersonResponse) int { return compareFold(a.Country, b.Country) },
	FieldAddress: func(a, b *PersonResponse) int { return compareFold(a.Address, b.Address) },
	FieldDateOfBirth: func(a, b *PersonResponse) int {
		return compareOptional(a.DateOfBirth, b.DateOfBirth, time.Time.Compare)
	},
	FieldAge: func(a, b *PersonResponse) int {
		return compareOptional(a.Age, b.Age, cmp.Compare[int])
	},
	FieldReceiveNewsletters: func(a, b *PersonResponse) int {
		return compareBool(a.ReceiveNewsletters, b.ReceiveNewsletters)
	},
}

// SortPersons returns a stably sorted copy of persons ordered by field.
// FieldUnknown returns persons unchanged. The input slice is not modified.
func SortPersons(persons []PersonResponse, field PersonField, order SortOrder) []PersonResponse {
	compare, ok := personComparators[field]
	if !ok {
		return persons
	}

	sorted := slices.Clone(persons)
	slices.SortStableFunc(sorted, func(a, b PersonResponse) int {
		if order == SortDesc {
			return compare(&b, &a)
		}
		return compare(&a, &b)
	})
	return sorted
}
