// Package service contains the validation-and-query layer of the
// application: CountryService and PersonService.
//
// Services validate every request before anything reaches a store, so a
// rejected request never leaves partial state behind. Invalid input is
// reported with errors wrapping ErrInvalidArgument (ErrNullArgument for an
// absent request), which callers detect with errors.Is.
//
// Person responses are enriched with the name of the referenced country.
// The person service resolves names through CountryService and never talks
// to the country store directly.
package service
