// Package peers builds the percentile reference populations the valuation
// engine scores against.
package peers

import (
	"context"
	"fmt"

	"vigiball-lab/internal/domain"
	"vigiball-lab/internal/storage"
)

// Aggregator fetches the peer population for a position group: all records
// sharing the group's underlying raw-position substring, restricted to the
// allowed seasons and a minimum playing-time floor.
type Aggregator struct {
	store   storage.PlayerStore
	seasons []string
	minN90s float64
}

// NewAggregator creates a peer aggregator over the given store.
func NewAggregator(store storage.PlayerStore, seasons []string, minN90s float64) *Aggregator {
	return &Aggregator{
		store:   store,
		seasons: seasons,
		minN90s: minN90s,
	}
}

// FetchPeers returns the peer population for a position group. The result
// is an unordered statistical sample; callers must not rely on ordering.
func (a *Aggregator) FetchPeers(ctx context.Context, group domain.PositionGroup) ([]*domain.PlayerRecord, error) {
	if !group.Valid() {
		return nil, fmt.Errorf("fetch peers: %w: position group %q", storage.ErrInvalidInput, group)
	}

	peerSet, err := a.store.GetByPosition(ctx, group.PeerSubstring(), a.seasons, a.minN90s)
	if err != nil {
		return nil, fmt.Errorf("fetch peers for %s: %w", group, err)
	}
	return peerSet, nil
}
