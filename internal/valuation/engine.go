// Package valuation computes a synthetic market value for a football
// player from season statistics: percentile ranks against a positional
// peer group, an unweighted P-Score, and an age-bracketed premium.
package valuation

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"vigiball-lab/internal/domain"
	"vigiball-lab/internal/storage"
)

// PeerFetcher supplies the percentile reference population for a group.
type PeerFetcher interface {
	FetchPeers(ctx context.Context, group domain.PositionGroup) ([]*domain.PlayerRecord, error)
}

// Options configures an Engine. Profiles and Overrides are immutable
// configuration data; the engine never mutates them.
type Options struct {
	// Profiles maps each position group to its ordered metric profile.
	// Nil selects domain.DefaultProfiles.
	Profiles map[domain.PositionGroup]domain.MetricProfile

	// Overrides maps player-name fragments to position groups, applied
	// before the raw position string is parsed.
	Overrides map[string]domain.PositionGroup

	// Seasons is the allowed season set for the target player lookup.
	Seasons []string
}

// override is one resolved override entry.
type override struct {
	fragment string
	group    domain.PositionGroup
}

// Engine resolves a player, blends their seasons, and produces a
// ValuationResult. Stateless across calls and safe for concurrent use.
type Engine struct {
	store     storage.PlayerStore
	peers     PeerFetcher
	profiles  map[domain.PositionGroup]domain.MetricProfile
	overrides []override // key-sorted for deterministic resolution
	seasons   []string
}

// NewEngine creates a valuation engine.
func NewEngine(store storage.PlayerStore, peerFetcher PeerFetcher, opts Options) *Engine {
	profiles := opts.Profiles
	if profiles == nil {
		profiles = domain.DefaultProfiles()
	}

	overrides := make([]override, 0, len(opts.Overrides))
	for fragment, group := range opts.Overrides {
		overrides = append(overrides, override{fragment: fragment, group: group})
	}
	sort.Slice(overrides, func(i, j int) bool {
		return overrides[i].fragment < overrides[j].fragment
	})

	return &Engine{
		store:     store,
		peers:     peerFetcher,
		profiles:  profiles,
		overrides: overrides,
		seasons:   opts.Seasons,
	}
}

// Valuate computes the valuation for a player name. The name matches any
// record containing it, case-insensitively. Returns *NotFoundError when
// no record matches; every other edge case resolves by substitution.
func (e *Engine) Valuate(ctx context.Context, playerName string) (*domain.ValuationResult, error) {
	// Step 1: resolve all season records for the name.
	records, err := e.store.GetByName(ctx, playerName, e.seasons)
	if err != nil {
		return nil, fmt.Errorf("resolve player %q: %w", playerName, err)
	}
	if len(records) == 0 {
		return nil, &NotFoundError{Name: playerName}
	}

	// Step 2: blend multi-season records into one hybrid record.
	player := blendRecords(records)

	// Step 3: resolve the position group, overrides first.
	group := e.resolveGroup(player)
	profile := e.profiles[group]

	// Step 4: fetch the peer population.
	peerSet, err := e.peers.FetchPeers(ctx, group)
	if err != nil {
		return nil, fmt.Errorf("valuate %q: %w", playerName, err)
	}

	// Step 5: per-metric percentiles against the peer distribution.
	percentiles := make(map[string]float64, len(profile))
	sum := 0.0
	for _, m := range profile {
		population := make([]float64, len(peerSet))
		for i, peer := range peerSet {
			population[i] = metricSample(peer, m.Name)
		}

		pct := percentileOfScore(population, metricSample(player, m.Name))
		if !m.HigherIsBetter {
			pct = 1.0 - pct
		}
		percentiles[m.Name] = pct
		sum += pct
	}

	// Step 6: P-Score, the unweighted mean scaled to 0-10.
	pScore := 0.0
	if len(profile) > 0 {
		pScore = sum / float64(len(profile)) * 10.0
	}

	// Steps 7-8: age-gated elite premium on top of the base value.
	age := 25.0
	if player.Age != nil {
		age = *player.Age
	}
	marketValue := (pScore*5.0 + 5.0) + eliteScore(age, pScore)

	// Step 9: assemble the result with contract rounding.
	breakdown := make(map[string]float64, len(percentiles))
	for metric, pct := range percentiles {
		breakdown[metric] = round1(pct * 100.0)
	}

	seasons := make([]string, len(records))
	for i, r := range records {
		seasons[i] = r.Season
	}
	sort.Strings(seasons)

	return &domain.ValuationResult{
		Name:          player.Name,
		PositionGroup: group,
		Age:           round1(age),
		Squad:         player.Squad,
		PScore:        round2(pScore),
		MarketValueM:  round2(marketValue),
		Percentiles:   breakdown,
		Seasons:       seasons,
	}, nil
}

// Profile exposes the ordered metric profile for a group, for report
// rendering.
func (e *Engine) Profile(group domain.PositionGroup) domain.MetricProfile {
	return e.profiles[group]
}

// resolveGroup applies the override table, then parses the raw position
// string. Overrides match on name fragments in sorted-key order so
// repeated calls resolve identically.
func (e *Engine) resolveGroup(player *domain.PlayerRecord) domain.PositionGroup {
	for _, o := range e.overrides {
		if strings.Contains(player.Name, o.fragment) {
			return o.group
		}
	}
	return domain.ParsePositionGroup(player.Pos)
}
