package ingestion

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"vigiball-lab/internal/storage"
)

// Seeder replaces whole seasons of the players table from CSV files.
// Re-running a seed for a season is idempotent: existing rows for that
// season are deleted before insert.
type Seeder struct {
	store  storage.PlayerStore
	logger zerolog.Logger
}

// NewSeeder creates a seeder over the given store.
func NewSeeder(store storage.PlayerStore, logger zerolog.Logger) *Seeder {
	return &Seeder{store: store, logger: logger}
}

// SeedSeason loads one season CSV into the store and returns the number
// of rows inserted.
func (s *Seeder) SeedSeason(ctx context.Context, season, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open season file %s: %w", path, err)
	}
	defer f.Close()

	records, err := ParseSeasonCSV(f, season)
	if err != nil {
		return 0, fmt.Errorf("parse season %s: %w", season, err)
	}

	removed, err := s.store.DeleteBySeason(ctx, season)
	if err != nil {
		return 0, fmt.Errorf("clear season %s: %w", season, err)
	}
	if removed > 0 {
		s.logger.Info().Str("season", season).Int64("removed", removed).Msg("removed old season rows")
	}

	if err := s.store.InsertBulk(ctx, records); err != nil {
		return 0, fmt.Errorf("insert season %s: %w", season, err)
	}

	s.logger.Info().Str("season", season).Str("file", path).Int("rows", len(records)).Msg("season seeded")
	return len(records), nil
}
