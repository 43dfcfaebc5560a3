package memory

import (
	"context"
	"strings"
	"sync"

	"vigiball-lab/internal/domain"
	"vigiball-lab/internal/storage"
)

// PlayerStore is an in-memory implementation of storage.PlayerStore.
// Used for tests and fixture-backed runs.
type PlayerStore struct {
	mu     sync.RWMutex
	nextID int64
	data   []*domain.PlayerRecord
}

// NewPlayerStore creates a new in-memory player store.
func NewPlayerStore() *PlayerStore {
	return &PlayerStore{nextID: 1}
}

// Compile-time interface check.
var _ storage.PlayerStore = (*PlayerStore)(nil)

// InsertBulk adds records.
func (s *PlayerStore) InsertBulk(_ context.Context, records []*domain.PlayerRecord) error {
	for _, r := range records {
		if r == nil || r.Name == "" || r.Season == "" {
			return storage.ErrInvalidInput
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range records {
		// Store a copy to prevent external mutation
		recordCopy := *r
		recordCopy.ID = s.nextID
		s.nextID++
		s.data = append(s.data, &recordCopy)
	}
	return nil
}

// DeleteBySeason removes all records for a season.
func (s *PlayerStore) DeleteBySeason(_ context.Context, season string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var kept []*domain.PlayerRecord
	var removed int64
	for _, r := range s.data {
		if r.Season == season {
			removed++
			continue
		}
		kept = append(kept, r)
	}
	s.data = kept
	return removed, nil
}

// GetByName retrieves all records whose name contains the fragment
// (case-insensitive) within the allowed season set.
func (s *PlayerStore) GetByName(_ context.Context, name string, seasons []string) ([]*domain.PlayerRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fragment := strings.ToLower(name)
	var result []*domain.PlayerRecord
	for _, r := range s.data {
		if !strings.Contains(strings.ToLower(r.Name), fragment) {
			continue
		}
		if !seasonAllowed(r.Season, seasons) {
			continue
		}
		recordCopy := *r
		result = append(result, &recordCopy)
	}
	return result, nil
}

// GetByPosition retrieves the peer population for a raw-position substring.
func (s *PlayerStore) GetByPosition(_ context.Context, posSubstring string, seasons []string, minN90s float64) ([]*domain.PlayerRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fragment := strings.ToLower(posSubstring)
	var result []*domain.PlayerRecord
	for _, r := range s.data {
		if !strings.Contains(strings.ToLower(r.Pos), fragment) {
			continue
		}
		if !seasonAllowed(r.Season, seasons) {
			continue
		}
		if r.N90s == nil || *r.N90s < minN90s {
			continue
		}
		recordCopy := *r
		result = append(result, &recordCopy)
	}
	return result, nil
}

// Count returns the total number of stored records.
func (s *PlayerStore) Count(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.data)), nil
}

func seasonAllowed(season string, allowed []string) bool {
	for _, s := range allowed {
		if s == season {
			return true
		}
	}
	return false
}
