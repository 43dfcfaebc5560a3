package config

import (
	"errors"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) from path, or VIGIBALL_CONFIG if path is empty
//  3. env (prefix VIGIBALL_)
func Load(path string) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path == "" {
		path = os.Getenv("VIGIBALL_CONFIG")
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// Environment variables: VIGIBALL_BACKEND, VIGIBALL_POSTGRES_DSN, ...
	// Underscores are preserved to match the koanf tags on the struct.
	envProvider := env.Provider("VIGIBALL_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "vigiball_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Backend {
	case "postgres", "clickhouse", "memory":
	default:
		return errors.New("backend must be one of postgres, clickhouse, memory")
	}
	if len(c.Seasons) == 0 {
		return errors.New("seasons must not be empty")
	}
	if c.MinPeer90s < 0 {
		return errors.New("min_peer_90s must not be negative")
	}
	return nil
}
