// Package config carries everything the valuation commands need that is
// not hand-curated scoring data: backend selection, DSNs, the allowed
// season set, the peer playing-time floor, and the manual position
// override table.
package config

import "vigiball-lab/internal/domain"

// Config is the application configuration.
type Config struct {
	// Backend selects the players table implementation:
	// postgres | clickhouse | memory.
	Backend string `koanf:"backend"`

	PostgresDSN   string `koanf:"postgres_dsn"`
	ClickhouseDSN string `koanf:"clickhouse_dsn"`

	// Seasons is the allowed season set for lookups and peer populations.
	Seasons []string `koanf:"seasons"`

	// MinPeer90s is the minimum n90s a record needs to count as a peer.
	// Filters out players with negligible playing time whose per-90 rates
	// are unstable.
	MinPeer90s float64 `koanf:"min_peer_90s"`

	// PositionOverrides maps a player-name fragment to a position group,
	// correcting records the raw position tags misclassify. Checked before
	// the raw position string is parsed.
	PositionOverrides map[string]string `koanf:"position_overrides"`
}

// New returns the default configuration.
func New() *Config {
	return &Config{
		Backend:    "postgres",
		Seasons:    []string{"2024-2025", "2025-2026"},
		MinPeer90s: 5.0,
		PositionOverrides: map[string]string{
			"Bruno Fernandes": string(domain.GroupAM),
			"Bukayo Saka":     string(domain.GroupFW),
			"Declan Rice":     string(domain.GroupDM),
			"Rodri":           string(domain.GroupDM),
		},
	}
}

// Overrides converts the configured override table into typed groups.
// Entries with an invalid group are dropped.
func (c *Config) Overrides() map[string]domain.PositionGroup {
	out := make(map[string]domain.PositionGroup, len(c.PositionOverrides))
	for name, group := range c.PositionOverrides {
		g := domain.PositionGroup(group)
		if g.Valid() {
			out[name] = g
		}
	}
	return out
}
