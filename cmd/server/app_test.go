package main

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/phrazzld/persons-api/internal/api"
	"github.com/phrazzld/persons-api/internal/api/shared"
	"github.com/phrazzld/persons-api/internal/config"
	"github.com/phrazzld/persons-api/internal/platform/logger"
	"github.com/phrazzld/persons-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(driver string, seed bool) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: 8080, LogLevel: "debug"},
		Store:  config.StoreConfig{Driver: driver},
		Database: config.DatabaseConfig{
			MaxOpenConns:    1,
			ConnMaxLifetime: 1,
		},
		Seed: config.SeedConfig{Enabled: seed},
	}
}

func newTestApp(t *testing.T, seed bool) *application {
	t.Helper()
	_, log := logger.NewTestLogger(t)
	app, err := newApplication(context.Background(), testConfig(config.DriverMemory, seed), log, nil)
	require.NoError(t, err)
	return app
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestNewApplication_MemorySeeded(t *testing.T) {
	app := newTestApp(t, true)
	data, err := service.LoadSeedData()
	require.NoError(t, err)

	countries, err := app.countryService.GetAllCountries(context.Background())
	require.NoError(t, err)
	assert.Len(t, countries, len(data.Countries))

	persons, err := app.personService.GetAllPersons(context.Background())
	require.NoError(t, err)
	assert.Len(t, persons, len(data.Persons))

	require.NoError(t, app.seed(context.Background()))
	persons, err = app.personService.GetAllPersons(context.Background())
	require.NoError(t, err)
	assert.Len(t, persons, len(data.Persons), "seeding twice does not duplicate")
}

func TestNewApplication_SeedDisabled(t *testing.T) {
	app := newTestApp(t, false)

	persons, err := app.personService.GetAllPersons(context.Background())
	require.NoError(t, err)
	assert.Empty(t, persons)
}

func TestNewApplication_PostgresWithoutDatabase(t *testing.T) {
	_, log := logger.NewTestLogger(t)
	_, err := newApplication(context.Background(), testConfig(config.DriverPostgres, false), log, nil)
	assert.Error(t, err)
}

func TestNewApplication_PostgresSeedRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM countries").WillReturnError(assert.AnError)
	mock.ExpectRollback()

	_, log := logger.NewTestLogger(t)
	_, err = newApplication(context.Background(), testConfig(config.DriverPostgres, true), log, db)

	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRouter_Health(t *testing.T) {
	router := newTestApp(t, false).setupRouter()

	w := get(t, router, "/health")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
	assert.NotEmpty(t, w.Header().Get(shared.TraceIDHeader))
}

func TestRouter_SeededListing(t *testing.T) {
	router := newTestApp(t, true).setupRouter()

	w := get(t, router, "/api/persons?sortBy=PersonName&sortOrder=DESC")
	require.Equal(t, http.StatusOK, w.Code)

	var persons []api.PersonResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &persons))
	require.NotEmpty(t, persons)
	for i := 1; i < len(persons); i++ {
		assert.GreaterOrEqual(t,
			strings.ToLower(persons[i-1].Name), strings.ToLower(persons[i].Name))
	}
	for _, p := range persons {
		assert.NotEmpty(t, p.Country, "seeded persons resolve their country")
	}

	w = get(t, router, "/api/countries")
	require.Equal(t, http.StatusOK, w.Code)
	var countries []api.CountryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &countries))
	assert.NotEmpty(t, countries)
}

func TestRouter_CreateAndExport(t *testing.T) {
	router := newTestApp(t, false).setupRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/persons", strings.NewReader(`{"name":"Ann"}`))
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	w = get(t, router, "/api/persons/export.csv")
	require.Equal(t, http.StatusOK, w.Code)
	body, err := io.ReadAll(w.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Ann")
}

func TestRouter_Metrics(t *testing.T) {
	router := newTestApp(t, false).setupRouter()

	get(t, router, "/api/persons/not-a-uuid")
	w := get(t, router, "/metrics")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "persons_api_http_requests_total")
	assert.Contains(t, body, `route="/api/persons/{id}"`)
	assert.Contains(t, body, "go_goroutines")
}
