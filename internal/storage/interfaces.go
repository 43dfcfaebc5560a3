package storage

import (
	"context"

	"vigiball-lab/internal/domain"
)

// PlayerStore provides access to the players table. The valuation engine
// only reads; seeding replaces whole seasons at a time.
type PlayerStore interface {
	// InsertBulk adds records. The backing table has no uniqueness
	// constraint on (name, season); seeding deletes the season first.
	InsertBulk(ctx context.Context, records []*domain.PlayerRecord) error

	// DeleteBySeason removes all records for a season and returns the
	// number of rows removed.
	DeleteBySeason(ctx context.Context, season string) (int64, error)

	// GetByName retrieves all records whose name contains the given
	// fragment (case-insensitive) within the allowed season set.
	// No ordering guarantee.
	GetByName(ctx context.Context, name string, seasons []string) ([]*domain.PlayerRecord, error)

	// GetByPosition retrieves all records whose raw position string
	// contains posSubstring, whose season is in the allowed set, and whose
	// n90s is at least minN90s. No ordering guarantee.
	GetByPosition(ctx context.Context, posSubstring string, seasons []string, minN90s float64) ([]*domain.PlayerRecord, error)

	// Count returns the total number of rows in the players table.
	Count(ctx context.Context) (int64, error)
}
