package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/persons-api/internal/domain"
	"github.com/phrazzld/persons-api/internal/platform/logger"
	"github.com/phrazzld/persons-api/internal/store"
)

// PostgresCountryStore implements store.CountryStore using PostgreSQL.
type PostgresCountryStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCountryStore creates a country store running on db, which may be
// a *sql.DB or a *sql.Tx. If logger is nil, slog.Default is used.
func NewPostgresCountryStore(db store.DBTX, logger *slog.Logger) *PostgresCountryStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCountryStore{
		db:     db,
		logger: logger.With(slog.String("component", "country_store")),
	}
}

var (
	_ store.CountryStore   = (*PostgresCountryStore)(nil)
	_ store.TxCountryStore = (*PostgresCountryStore)(nil)
)

// WithTx implements store.TxCountryStore.
func (s *PostgresCountryStore) WithTx(tx *sql.Tx) store.CountryStore {
	return &PostgresCountryStore{
		db:     tx,
		logger: s.logger,
	}
}

// Add implements store.CountryStore.Add.
func (s *PostgresCountryStore) Add(ctx context.Context, country *domain.Country) (*domain.Country, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := country.Validate(); err != nil {
		log.Warn("country validation failed during add",
			slog.String("error", err.Error()),
			slog.String("country_id", country.ID.String()))
		return nil, store.NewStoreError("country", "add", "validation failed", errors.Join(store.ErrInvalidEntity, err))
	}

	query := `
		INSERT INTO countries (id, name)
		VALUES ($1, $2)
	`
	if _, err := s.db.ExecContext(ctx, query, country.ID, country.Name); err != nil {
		if IsUniqueViolation(err) {
			log.Debug("country name already exists",
				slog.String("country_id", country.ID.String()))
			return nil, store.ErrCountryNameExists
		}
		log.Error("failed to add country",
			slog.String("error", err.Error()),
			slog.String("country_id", country.ID.String()))
		return nil, store.NewStoreError("country", "add", "insert failed", MapError(err))
	}

	log.Debug("country added", slog.String("country_id", country.ID.String()))
	stored := *country
	return &stored, nil
}

// GetAll implements store.CountryStore.GetAll.
func (s *PostgresCountryStore) GetAll(ctx context.Context) ([]*domain.Country, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM countries ORDER BY seq`)
	if err != nil {
		log.Error("failed to list countries", slog.String("error", err.Error()))
		return nil, store.NewStoreError("country", "get_all", "query failed", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	countries := make([]*domain.Country, 0)
	for rows.Next() {
		var c domain.Country
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, store.NewStoreError("country", "get_all", "scan failed", err)
		}
		countries = append(countries, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("country", "get_all", "row iteration failed", err)
	}

	return countries, nil
}

// GetByID implements store.CountryStore.GetByID.
func (s *PostgresCountryStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Country, error) {
	return s.getOne(ctx, `SELECT id, name FROM countries WHERE id = $1`, id)
}

// GetByName implements store.CountryStore.GetByName.
func (s *PostgresCountryStore) GetByName(ctx context.Context, name string) (*domain.Country, error) {
	return s.getOne(ctx, `SELECT id, name FROM countries WHERE name = $1`, name)
}

func (s *PostgresCountryStore) getOne(ctx context.Context, query string, arg any) (*domain.Country, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var c domain.Country
	err := s.db.QueryRowContext(ctx, query, arg).Scan(&c.ID, &c.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrCountryNotFound
		}
		log.Error("failed to get country", slog.String("error", err.Error()))
		return nil, store.NewStoreError("country", "get", "query failed", MapError(err))
	}

	return &c, nil
}

// Update implements store.CountryStore.Update.
func (s *PostgresCountryStore) Update(ctx context.Context, country *domain.Country) (*domain.Country, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := country.Validate(); err != nil {
		return nil, store.NewStoreError("country", "update", "validation failed", errors.Join(store.ErrInvalidEntity, err))
	}

	result, err := s.db.ExecContext(ctx,
		`UPDATE countries SET name = $1 WHERE id = $2`,
		country.Name, country.ID)
	if err != nil {
		if IsUniqueViolation(err) {
			return nil, store.ErrCountryNameExists
		}
		log.Error("failed to update country",
			slog.String("error", err.Error()),
			slog.String("country_id", country.ID.String()))
		return nil, store.NewStoreError("country", "update", "update failed", MapError(err))
	}
	if err := CheckRowsAffected(result, store.ErrCountryNotFound); err != nil {
		return nil, err
	}

	stored := *country
	return &stored, nil
}

// Delete implements store.CountryStore.Delete.
func (s *PostgresCountryStore) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM countries WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete country",
			slog.String("error", err.Error()),
			slog.String("country_id", id.String()))
		return false, store.NewStoreError("country", "delete", "delete failed", MapError(err))
	}
	if err := CheckRowsAffected(result, store.ErrCountryNotFound); err != nil {
		if errors.Is(err, store.ErrCountryNotFound) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
