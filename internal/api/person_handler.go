package api

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/phrazzld/persons-api/internal/api/shared"
	"github.com/phrazzld/persons-api/internal/platform/logger"
	"github.com/phrazzld/persons-api/internal/service"
)

// PersonHandler handles person-related HTTP requests
type PersonHandler struct {
	personService service.PersonService
	logger        *slog.Logger
}

// NewPersonHandler creates a new PersonHandler
func NewPersonHandler(personService service.PersonService, logger *slog.Logger) *PersonHandler {
	if personService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("personService cannot be nil for PersonHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PersonHandler{
		personService: personService,
		logger:        logger.With(slog.String("component", "person_handler")),
	}
}

// ListPersons handles GET /api/persons requests.
// The list is filtered by searchBy/searchString, then sorted by
// sortBy/sortOrder.
func (h *PersonHandler) ListPersons(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	q := parsePersonListQuery(r)

	persons, err := h.personService.GetFilteredPersons(r.Context(), q.searchBy, q.searchString)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list persons")
		return
	}
	persons = h.personService.GetSortedPersons(persons, q.sortBy, q.sortOrder)

	log.Debug("listed persons",
		slog.String("search_by", q.searchBy.String()),
		slog.String("sort_by", q.sortBy.String()),
		slog.Int("count", len(persons)))
	shared.RespondWithJSON(w, r, http.StatusOK, personsToResponse(persons))
}

// CreatePerson handles POST /api/persons requests
func (h *PersonHandler) CreatePerson(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodePersonRequest(w, r)
	if !ok {
		return
	}

	addReq, err := req.toAddRequest()
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	person, err := h.personService.AddPerson(r.Context(), addReq)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create person")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, personToResponse(person))
}

// GetPerson handles GET /api/persons/{id} requests
func (h *PersonHandler) GetPerson(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	person, err := h.personService.GetPersonByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get person")
		return
	}
	if person == nil {
		HandleAPIError(w, r, service.ErrPersonNotFound, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, personToResponse(person))
}

// UpdatePerson handles PUT /api/persons/{id} requests.
// Every mutable field is replaced by the request body.
func (h *PersonHandler) UpdatePerson(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	req, ok := h.decodePersonRequest(w, r)
	if !ok {
		return
	}

	updateReq, err := req.toUpdateRequest(id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	person, err := h.personService.UpdatePerson(r.Context(), updateReq)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update person")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, personToResponse(person))
}

// DeletePerson handles DELETE /api/persons/{id} requests
func (h *PersonHandler) DeletePerson(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	deleted, err := h.personService.DeletePerson(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to delete person")
		return
	}
	if !deleted {
		HandleAPIError(w, r, service.ErrPersonNotFound, "")
		return
	}

	shared.RespondNoContent(w)
}

// ExportPersonsCSV handles GET /api/persons/export.csv requests
func (h *PersonHandler) ExportPersonsCSV(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.personService.WritePersonsCSV(r.Context(), &buf); err != nil {
		HandleAPIError(w, r, err, "Failed to export persons")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="persons.csv"`)
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		logger.FromContextOrDefault(r.Context(), h.logger).
			Error("failed to write csv response", slog.String("error", err.Error()))
	}
}

// decodePersonRequest decodes and validates the body. It writes the error
// response and returns false on failure.
func (h *PersonHandler) decodePersonRequest(w http.ResponseWriter, r *http.Request) (*PersonRequest, bool) {
	var req PersonRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		logger.FromContextOrDefault(r.Context(), h.logger).
			Debug("failed to decode person request", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return nil, false
	}

	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return nil, false
	}

	return &req, true
}
