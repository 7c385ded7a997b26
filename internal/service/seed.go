package service

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/phrazzld/persons-api/internal/domain"
	"github.com/phrazzld/persons-api/internal/store"
)

//go:embed seed/*.json
var seedFS embed.FS

// SeedData is the initial set of countries and persons.
type SeedData struct {
	Countries []domain.Country
	Persons   []domain.Person
}

// LoadSeedData decodes the embedded seed files.
func LoadSeedData() (*SeedData, error) {
	var data SeedData
	if err := decodeSeedFile("seed/countries.json", &data.Countries); err != nil {
		return nil, err
	}
	if err := decodeSeedFile("seed/persons.json", &data.Persons); err != nil {
		return nil, err
	}
	return &data, nil
}

func decodeSeedFile(name string, v any) error {
	raw, err := seedFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return nil
}

// Seed inserts data into the stores unless the country store already holds
// records. It reports whether anything was inserted.
func Seed(
	ctx context.Context,
	countries store.CountryStore,
	persons store.PersonStore,
	data *SeedData,
	logger *slog.Logger,
) (bool, error) {
	if logger == nil {
		logger = slog.Default()
	}
	log := logger.With("component", "seed")

	existing, err := countries.GetAll(ctx)
	if err != nil {
		return false, NewServiceError("seed", "failed to inspect country store", err)
	}
	if len(existing) > 0 {
		log.Debug("stores already populated, skipping seed", "countries", len(existing))
		return false, nil
	}

	for i := range data.Countries {
		if _, err := countries.Add(ctx, &data.Countries[i]); err != nil {
			return false, NewServiceError("seed", "failed to seed country "+data.Countries[i].Name, err)
		}
	}
	for i := range data.Persons {
		if _, err := persons.Add(ctx, &data.Persons[i]); err != nil {
			return false, NewServiceError("seed", "failed to seed person "+data.Persons[i].ID.String(), err)
		}
	}

	log.Info("seed data inserted",
		"countries", len(data.Countries),
		"persons", len(data.Persons))
	return true, nil
}
