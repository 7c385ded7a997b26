package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/persons-api/internal/api/shared"
	"github.com/phrazzld/persons-api/internal/platform/logger"
	"github.com/phrazzld/persons-api/internal/service"
	"github.com/phrazzld/persons-api/internal/store"
)

// CountryHandler handles country-related HTTP requests
type CountryHandler struct {
	countryService service.CountryService
	logger         *slog.Logger
}

// NewCountryHandler creates a new CountryHandler
func NewCountryHandler(countryService service.CountryService, logger *slog.Logger) *CountryHandler {
	if countryService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("countryService cannot be nil for CountryHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &CountryHandler{
		countryService: countryService,
		logger:         logger.With(slog.String("component", "country_handler")),
	}
}

// CreateCountry handles POST /api/countries requests
func (h *CountryHandler) CreateCountry(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateCountryRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Debug("failed to decode country request", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	country, err := h.countryService.AddCountry(r.Context(), &service.CountryAddRequest{Name: req.Name})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create country")
		return
	}

	log.Debug("country created", slog.String("country_id", country.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, countryToResponse(country))
}

// ListCountries handles GET /api/countries requests
func (h *CountryHandler) ListCountries(w http.ResponseWriter, r *http.Request) {
	countries, err := h.countryService.GetAllCountries(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list countries")
		return
	}

	resp := make([]CountryResponse, 0, len(countries))
	for i := range countries {
		resp = append(resp, countryToResponse(&countries[i]))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// GetCountry handles GET /api/countries/{id} requests
func (h *CountryHandler) GetCountry(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	country, err := h.countryService.GetCountryByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get country")
		return
	}
	if country == nil {
		HandleAPIError(w, r, store.ErrCountryNotFound, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, countryToResponse(country))
}
