package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/persons-api/internal/domain"
	"github.com/phrazzld/persons-api/internal/platform/logger"
	"github.com/phrazzld/persons-api/internal/store"
)

const personColumns = `id, name, email, date_of_birth, gender, country_id, address, receive_newsletters`

// PostgresPersonStore implements store.PersonStore using PostgreSQL.
type PostgresPersonStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresPersonStore creates a person store running on db, which may be
// a *sql.DB or a *sql.Tx. If logger is nil, slog.Default is used.
func NewPostgresPersonStore(db store.DBTX, logger *slog.Logger) *PostgresPersonStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresPersonStore{
		db:     db,
		logger: logger.With(slog.String("component", "person_store")),
	}
}

var (
	_ store.PersonStore   = (*PostgresPersonStore)(nil)
	_ store.TxPersonStore = (*PostgresPersonStore)(nil)
)

// WithTx implements store.TxPersonStore.
func (s *PostgresPersonStore) WithTx(tx *sql.Tx) store.PersonStore {
	return &PostgresPersonStore{
		db:     tx,
		logger: s.logger,
	}
}

// Add implements store.PersonStore.Add.
func (s *PostgresPersonStore) Add(ctx context.Context, person *domain.Person) (*domain.Person, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := person.Validate(); err != nil {
		log.Warn("person validation failed during add",
			slog.String("error", err.Error()),
			slog.String("person_id", person.ID.String()))
		return nil, store.NewStoreError("person", "add", "validation failed", errors.Join(store.ErrInvalidEntity, err))
	}

	query := `
		INSERT INTO persons (` + personColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := s.db.ExecContext(ctx, query,
		person.ID,
		person.Name,
		person.Email,
		nullTime(person.DateOfBirth),
		string(person.Gender),
		nullUUID(person.CountryID),
		person.Address,
		person.ReceiveNewsletters,
	)
	if err != nil {
		log.Error("failed to add person",
			slog.String("error", err.Error()),
			slog.String("person_id", person.ID.String()))
		return nil, store.NewStoreError("person", "add", "insert failed", MapError(err))
	}

	log.Debug("person added", slog.String("person_id", person.ID.String()))
	return person.Clone(), nil
}

// GetAll implements store.PersonStore.GetAll.
func (s *PostgresPersonStore) GetAll(ctx context.Context) ([]*domain.Person, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `SELECT `+personColumns+` FROM persons ORDER BY seq`)
	if err != nil {
		log.Error("failed to list persons", slog.String("error", err.Error()))
		return nil, store.NewStoreError("person", "get_all", "query failed", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	persons := make([]*domain.Person, 0)
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, store.NewStoreError("person", "get_all", "scan failed", err)
		}
		persons = append(persons, p)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("person", "get_all", "row iteration failed", err)
	}

	return persons, nil
}

// GetByID implements store.PersonStore.GetByID.
func (s *PostgresPersonStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Person, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	row := s.db.QueryRowContext(ctx, `SELECT `+personColumns+` FROM persons WHERE id = $1`, id)
	p, err := scanPerson(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("person not found", slog.String("person_id", id.String()))
			return nil, store.ErrPersonNotFound
		}
		log.Error("failed to get person",
			slog.String("error", err.Error()),
			slog.String("person_id", id.String()))
		return nil, store.NewStoreError("person", "get", "query failed", MapError(err))
	}

	return p, nil
}

// Update implements store.PersonStore.Update.
func (s *PostgresPersonStore) Update(ctx context.Context, person *domain.Person) (*domain.Person, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := person.Validate(); err != nil {
		return nil, store.NewStoreError("person", "update", "validation failed", errors.Join(store.ErrInvalidEntity, err))
	}

	query := `
		UPDATE persons
		SET name = $1, email = $2, date_of_birth = $3, gender = $4,
			country_id = $5, address = $6, receive_newsletters = $7
		WHERE id = $8
	`
	result, err := s.db.ExecContext(ctx, query,
		person.Name,
		person.Email,
		nullTime(person.DateOfBirth),
		string(person.Gender),
		nullUUID(person.CountryID),
		person.Address,
		person.ReceiveNewsletters,
		person.ID,
	)
	if err != nil {
		log.Error("failed to update person",
			slog.String("error", err.Error()),
			slog.String("person_id", person.ID.String()))
		return nil, store.NewStoreError("person", "update", "update failed", MapError(err))
	}
	if err := CheckRowsAffected(result, store.ErrPersonNotFound); err != nil {
		return nil, err
	}

	return person.Clone(), nil
}

// Delete implements store.PersonStore.Delete.
func (s *PostgresPersonStore) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM persons WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete person",
			slog.String("error", err.Error()),
			slog.String("person_id", id.String()))
		return false, store.NewStoreError("person", "delete", "delete failed", MapError(err))
	}
	if err := CheckRowsAffected(result, store.ErrPersonNotFound); err != nil {
		if errors.Is(err, store.ErrPersonNotFound) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPerson(row rowScanner) (*domain.Person, error) {
	var (
		p         domain.Person
		gender    string
		dob       sql.NullTime
		countryID uuid.NullUUID
	)
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Email,
		&dob,
		&gender,
		&countryID,
		&p.Address,
		&p.ReceiveNewsletters,
	)
	if err != nil {
		return nil, err
	}

	p.Gender = domain.Gender(gender)
	if dob.Valid {
		t := dob.Time.UTC()
		p.DateOfBirth = &t
	}
	if countryID.Valid {
		id := countryID.UUID
		p.CountryID = &id
	}
	return &p, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func nullUUID(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *id, Valid: true}
}
