package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/phrazzld/persons-api/internal/platform/metrics"
	"github.com/phrazzld/persons-api/internal/store"
)

// CountryService provides country-related operations.
type CountryService interface {
	// AddCountry validates req and stores a new country.
	// Returns ErrNullArgument when req is nil, and an ErrInvalidArgument
	// error when the name is blank or ErrDuplicateCountryName when taken.
	AddCountry(ctx context.Context, req *CountryAddRequest) (*CountryResponse, error)

	// GetAllCountries returns every country in insertion order.
	GetAllCountries(ctx context.Context) ([]CountryResponse, error)

	// GetCountryByID returns the country with the given id, or nil when id
	// is uuid.Nil or unknown.
	GetCountryByID(ctx context.Context, id uuid.UUID) (*CountryResponse, error)
}

type countryServiceImpl struct {
	countryStore store.CountryStore
	metrics      *metrics.Metrics
	validate     *validator.Validate
	logger       *slog.Logger
}

var _ CountryService = (*countryServiceImpl)(nil)

// NewCountryService creates a CountryService backed by countryStore.
// m may be nil to disable metrics.
func NewCountryService(countryStore store.CountryStore, m *metrics.Metrics, logger *slog.Logger) (CountryService, error) {
	if countryStore == nil {
		return nil, &ServiceError{
			Operation: "create_service",
			Message:   "countryStore cannot be nil",
		}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &countryServiceImpl{
		countryStore: countryStore,
		metrics:      m,
		validate:     newValidator(),
		logger:       logger.With("component", "country_service"),
	}, nil
}

// AddCountry implements CountryService.
func (s *countryServiceImpl) AddCountry(ctx context.Context, req *CountryAddRequest) (*CountryResponse, error) {
	const op = "add_country"

	if req == nil {
		s.metrics.IncrementValidationFailure(op)
		s.logger.Debug("country add request is nil")
		return nil, ErrNullArgument
	}
	if err := validateRequest(s.validate, op, req); err != nil {
		s.metrics.IncrementValidationFailure(op)
		s.logger.Debug("country add request rejected", "error", err)
		return nil, err
	}

	existing, err := s.countryStore.GetByName(ctx, req.Name)
	switch {
	case err == nil && existing != nil:
		s.metrics.IncrementValidationFailure(op)
		s.logger.Debug("country name already exists", "country_id", existing.ID)
		return nil, ErrDuplicateCountryName
	case err != nil && !errors.Is(err, store.ErrNotFound):
		s.logger.Error("failed to check country name", "error", err)
		return nil, NewServiceError(op, "failed to check country name", err)
	}

	stored, err := s.countryStore.Add(ctx, req.ToCountry())
	if err != nil {
		if errors.Is(err, store.ErrCountryNameExists) {
			s.metrics.IncrementValidationFailure(op)
		} else {
			s.logger.Error("failed to add country", "error", err)
		}
		return nil, NewServiceError(op, "failed to save country", err)
	}

	s.metrics.IncrementCountriesCreated()
	s.logger.Info("country added", "country_id", stored.ID, "name", stored.Name)
	return NewCountryResponse(stored), nil
}

// GetAllCountries implements CountryService.
func (s *countryServiceImpl) GetAllCountries(ctx context.Context) ([]CountryResponse, error) {
	countries, err := s.countryStore.GetAll(ctx)
	if err != nil {
		s.logger.Error("failed to list countries", "error", err)
		return nil, NewServiceError("get_all_countries", "failed to list countries", err)
	}

	out := make([]CountryResponse, 0, len(countries))
	for _, c := range countries {
		out = append(out, *NewCountryResponse(c))
	}
	return out, nil
}

// GetCountryByID implements CountryService.
func (s *countryServiceImpl) GetCountryByID(ctx context.Context, id uuid.UUID) (*CountryResponse, error) {
	if id == uuid.Nil {
		return nil, nil
	}

	c, err := s.countryStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.logger.Debug("country not found", "country_id", id)
			return nil, nil
		}
		s.logger.Error("failed to get country", "error", err, "country_id", id)
		return nil, NewServiceError("get_country", "failed to get country", err)
	}

	return NewCountryResponse(c), nil
}
