package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/phrazzld/persons-api/internal/domain"
	"github.com/phrazzld/persons-api/internal/platform/metrics"
	"github.com/phrazzld/persons-api/internal/redact"
	"github.com/phrazzld/persons-api/internal/store"
	"golang.org/x/sync/errgroup"
)

// PersonService provides person-related operations.
type PersonService interface {
	// AddPerson validates req and stores a new person.
	// Returns ErrNullArgument when req is nil and an ErrInvalidArgument
	// error when the name is blank.
	AddPerson(ctx context.Context, req *PersonAddRequest) (*PersonResponse, error)

	// GetPersonByID returns the person with the given id, or nil when id
	// is uuid.Nil or unknown.
	GetPersonByID(ctx context.Context, id uuid.UUID) (*PersonResponse, error)

	// GetAllPersons returns every person in insertion order.
	GetAllPersons(ctx context.Context) ([]PersonResponse, error)

	// GetFilteredPersons returns the persons whose searchBy field contains
	// searchString case-insensitively. An empty searchString returns every
	// person; a field that is not searchable matches nobody.
	GetFilteredPersons(ctx context.Context, searchBy PersonField, searchString string) ([]PersonResponse, error)

	// GetSortedPersons stably reorders persons by sortBy. FieldUnknown
	// returns persons unchanged.
	GetSortedPersons(persons []PersonResponse, sortBy PersonField, order SortOrder) []PersonResponse

	// UpdatePerson replaces the mutable fields of req.PersonID.
	// Returns ErrNullArgument when req is nil, ErrPersonNotFound when the
	// person does not exist and an ErrInvalidArgument error when the name
	// is blank.
	UpdatePerson(ctx context.Context, req *PersonUpdateRequest) (*PersonResponse, error)

	// DeletePerson removes the person and reports whether it existed.
	DeletePerson(ctx context.Context, id uuid.UUID) (bool, error)

	// WritePersonsCSV writes every person as CSV to w.
	WritePersonsCSV(ctx context.Context, w io.Writer) error
}

// PersonServiceOption configures optional PersonService dependencies.
type PersonServiceOption func(*PersonServiceImpl)

// WithClock overrides the time source used to compute ages.
func WithClock(now func() time.Time) PersonServiceOption {
	return func(s *PersonServiceImpl) {
		s.now = now
	}
}

// WithMetrics records service counters on m.
func WithMetrics(m *metrics.Metrics) PersonServiceOption {
	return func(s *PersonServiceImpl) {
		s.metrics = m
	}
}

// PersonServiceImpl implements PersonService.
type PersonServiceImpl struct {
	personStore    store.PersonStore
	countryService CountryService
	metrics        *metrics.Metrics
	validate       *validator.Validate
	now            func() time.Time
	logger         *slog.Logger
}

var _ PersonService = (*PersonServiceImpl)(nil)

// NewPersonService creates a PersonService. Country names are resolved
// through countryService.
func NewPersonService(
	personStore store.PersonStore,
	countryService CountryService,
	logger *slog.Logger,
	opts ...PersonServiceOption,
) (PersonService, error) {
	if personStore == nil {
		return nil, &ServiceError{
			Operation: "create_service",
			Message:   "personStore cannot be nil",
		}
	}
	if countryService == nil {
		return nil, &ServiceError{
			Operation: "create_service",
			Message:   "countryService cannot be nil",
		}
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &PersonServiceImpl{
		personStore:    personStore,
		countryService: countryService,
		validate:       newValidator(),
		now:            time.Now,
		logger:         logger.With("component", "person_service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// AddPerson implements PersonService.
func (s *PersonServiceImpl) AddPerson(ctx context.Context, req *PersonAddRequest) (*PersonResponse, error) {
	const op = "add_person"

	if req == nil {
		s.metrics.IncrementValidationFailure(op)
		s.logger.Debug("person add request is nil")
		return nil, ErrNullArgument
	}
	if err := validateRequest(s.validate, op, req); err != nil {
		s.metrics.IncrementValidationFailure(op)
		s.logger.Debug("person add request rejected", "error", err)
		return nil, err
	}

	stored, err := s.personStore.Add(ctx, req.ToPerson())
	if err != nil {
		s.logger.Error("failed to add person",
			"error", redact.Error(err),
			"email", redact.String(req.Email))
		return nil, NewServiceError(op, "failed to save person", err)
	}

	s.metrics.IncrementPersonsCreated()
	s.logger.Info("person added", "person_id", stored.ID)
	return s.enrich(ctx, stored)
}

// GetPersonByID implements PersonService.
func (s *PersonServiceImpl) GetPersonByID(ctx context.Context, id uuid.UUID) (*PersonResponse, error) {
	if id == uuid.Nil {
		return nil, nil
	}

	p, err := s.personStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.logger.Debug("person not found", "person_id", id)
			return nil, nil
		}
		s.logger.Error("failed to get person", "error", err, "person_id", id)
		return nil, NewServiceError("get_person", "failed to get person", err)
	}

	return s.enrich(ctx, p)
}

// GetAllPersons implements PersonService.
// Persons and countries are loaded concurrently and joined in memory.
func (s *PersonServiceImpl) GetAllPersons(ctx context.Context) ([]PersonResponse, error) {
	var (
		persons   []*domain.Person
		countries []CountryResponse
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		persons, err = s.personStore.GetAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		countries, err = s.countryService.GetAllCountries(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("failed to list persons", "error", err)
		return nil, NewServiceError("get_all_persons", "failed to list persons", err)
	}

	names := make(map[uuid.UUID]string, len(countries))
	for _, c := range countries {
		names[c.ID] = c.Name
	}

	now := s.now()
	out := make([]PersonResponse, 0, len(persons))
	for _, p := range persons {
		var countryName string
		if p.CountryID != nil {
			countryName = names[*p.CountryID]
		}
		out = append(out, *NewPersonResponse(p, countryName, now))
	}
	return out, nil
}

// GetFilteredPersons implements PersonService.
func (s *PersonServiceImpl) GetFilteredPersons(
	ctx context.Context,
	searchBy PersonField,
	searchString string,
) ([]PersonResponse, error) {
	defer s.metrics.ObserveQuery("filter", time.Now())

	all, err := s.GetAllPersons(ctx)
	if err != nil {
		return nil, err
	}

	filtered := FilterPersons(all, searchBy, searchString)
	s.logger.Debug("persons filtered",
		"search_by", searchBy.String(),
		"total", len(all),
		"matched", len(filtered))
	return filtered, nil
}

// GetSortedPersons implements PersonService.
func (s *PersonServiceImpl) GetSortedPersons(persons []PersonResponse, sortBy PersonField, order SortOrder) []PersonResponse {
	defer s.metrics.ObserveQuery("sort", time.Now())
	return SortPersons(persons, sortBy, order)
}

// UpdatePerson implements PersonService.
func (s *PersonServiceImpl) UpdatePerson(ctx context.Context, req *PersonUpdateRequest) (*PersonResponse, error) {
	const op = "update_person"

	if req == nil {
		s.metrics.IncrementValidationFailure(op)
		s.logger.Debug("person update request is nil")
		return nil, ErrNullArgument
	}
	if req.PersonID == uuid.Nil {
		s.metrics.IncrementValidationFailure(op)
		return nil, ErrPersonNotFound
	}
	if err := validateRequest(s.validate, op, req); err != nil {
		s.metrics.IncrementValidationFailure(op)
		s.logger.Debug("person update request rejected", "error", err, "person_id", req.PersonID)
		return nil, err
	}

	if _, err := s.personStore.GetByID(ctx, req.PersonID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.metrics.IncrementValidationFailure(op)
			s.logger.Debug("person to update not found", "person_id", req.PersonID)
			return nil, ErrPersonNotFound
		}
		s.logger.Error("failed to load person for update", "error", err, "person_id", req.PersonID)
		return nil, NewServiceError(op, "failed to load person", err)
	}

	updated, err := s.personStore.Update(ctx, req.ToPerson())
	if err != nil {
		if !errors.Is(err, store.ErrPersonNotFound) {
			s.logger.Error("failed to update person",
				"error", redact.Error(err),
				"person_id", req.PersonID)
		}
		return nil, NewServiceError(op, "failed to save person", err)
	}

	s.metrics.IncrementPersonsUpdated()
	s.logger.Info("person updated", "person_id", updated.ID)
	return s.enrich(ctx, updated)
}

// DeletePerson implements PersonService.
func (s *PersonServiceImpl) DeletePerson(ctx context.Context, id uuid.UUID) (bool, error) {
	if id == uuid.Nil {
		return false, nil
	}

	removed, err := s.personStore.Delete(ctx, id)
	if err != nil {
		s.logger.Error("failed to delete person", "error", err, "person_id", id)
		return false, NewServiceError("delete_person", "failed to delete person", err)
	}

	if removed {
		s.metrics.IncrementPersonsDeleted()
		s.logger.Info("person deleted", "person_id", id)
	}
	return removed, nil
}

// enrich maps p to a response carrying the name of its country.
// An unresolved country leaves the name empty.
func (s *PersonServiceImpl) enrich(ctx context.Context, p *domain.Person) (*PersonResponse, error) {
	var countryName string
	if p.CountryID != nil {
		c, err := s.countryService.GetCountryByID(ctx, *p.CountryID)
		if err != nil {
			return nil, NewServiceError("enrich_person", "failed to resolve country", err)
		}
		if c != nil {
			countryName = c.Name
		}
	}
	return NewPersonResponse(p, countryName, s.now()), nil
}
