package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/persons-api/internal/config"
	"github.com/phrazzld/persons-api/internal/platform/metrics"
	"github.com/phrazzld/persons-api/internal/platform/postgres"
	"github.com/phrazzld/persons-api/internal/service"
	"github.com/phrazzld/persons-api/internal/store"
	"github.com/phrazzld/persons-api/internal/store/memory"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// db is nil with the memory driver
	db *sql.DB

	registry *prometheus.Registry
	metrics  *metrics.Metrics

	countryStore store.CountryStore
	personStore  store.PersonStore

	countryService service.CountryService
	personService  service.PersonService
}

// newApplication creates a new application instance with all dependencies initialized.
// db must be non-nil when the postgres driver is configured.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config:   cfg,
		logger:   logger,
		db:       db,
		registry: prometheus.NewRegistry(),
	}

	app.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	app.metrics = metrics.New(app.registry)

	switch cfg.Store.Driver {
	case config.DriverPostgres:
		if db == nil {
			return nil, fmt.Errorf("postgres driver configured without a database connection")
		}
		app.countryStore = postgres.NewPostgresCountryStore(db, logger)
		app.personStore = postgres.NewPostgresPersonStore(db, logger)
	default:
		app.countryStore = memory.NewCountryStore()
		app.personStore = memory.NewPersonStore()
	}
	logger.Info("Stores initialized", "driver", cfg.Store.Driver)

	var err error
	app.countryService, err = service.NewCountryService(app.countryStore, app.metrics, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create country service: %w", err)
	}

	app.personService, err = service.NewPersonService(
		app.personStore,
		app.countryService,
		logger,
		service.WithMetrics(app.metrics),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create person service: %w", err)
	}

	if cfg.Seed.Enabled {
		if err := app.seed(ctx); err != nil {
			return nil, fmt.Errorf("failed to seed data: %w", err)
		}
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// seed loads the bundled countries and persons into empty stores. With a
// database the inserts share one transaction.
func (app *application) seed(ctx context.Context) error {
	data, err := service.LoadSeedData()
	if err != nil {
		return err
	}

	txCountries, countriesOK := app.countryStore.(store.TxCountryStore)
	txPersons, personsOK := app.personStore.(store.TxPersonStore)
	if app.db == nil || !countriesOK || !personsOK {
		_, err := service.Seed(ctx, app.countryStore, app.personStore, data, app.logger)
		return err
	}

	return store.RunInTransaction(ctx, app.db, func(ctx context.Context, tx *sql.Tx) error {
		_, err := service.Seed(ctx, txCountries.WithTx(tx), txPersons.WithTx(tx), data, app.logger)
		return err
	})
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	defer app.cleanup()

	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
