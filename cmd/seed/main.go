// Command seed creates the players schema and loads season CSV files.
//
// Usage:
//
//	seed [flags] season=path [season=path ...]
//
// Example:
//
//	seed --postgres-dsn postgres://... \
//	    2024-2025=players_data-2024_2025.csv \
//	    2025-2026=players_data-2025_2026.csv
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"vigiball-lab/internal/config"
	"vigiball-lab/internal/ingestion"
	"vigiball-lab/internal/observability"
	"vigiball-lab/internal/storage"
	chstore "vigiball-lab/internal/storage/clickhouse"
	"vigiball-lab/internal/storage/migrations"
	pgstore "vigiball-lab/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file")
	postgresDSN := flag.String("postgres-dsn", os.Getenv("VIGIBALL_POSTGRES_DSN"), "PostgreSQL connection string")
	clickhouseDSN := flag.String("clickhouse-dsn", os.Getenv("VIGIBALL_CLICKHOUSE_DSN"), "ClickHouse connection string")
	flag.Parse()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("load config")
	}
	if *postgresDSN != "" {
		cfg.PostgresDSN = *postgresDSN
		cfg.Backend = "postgres"
	}
	if *clickhouseDSN != "" {
		cfg.ClickhouseDSN = *clickhouseDSN
		cfg.Backend = "clickhouse"
	}

	pairs, err := parseSeasonArgs(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Usage: seed [flags] season=path [season=path ...]")
		os.Exit(1)
	}

	ctx := context.Background()

	store, cleanup, err := openStore(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("open player store")
	}
	defer cleanup()

	seeder := ingestion.NewSeeder(store, logger)
	for _, p := range pairs {
		rows, err := seeder.SeedSeason(ctx, p.season, p.path)
		if err != nil {
			logger.Fatal().Err(err).Str("season", p.season).Msg("seed season")
		}
		observability.RecordSeasonSeeded(rows)
	}

	total, err := store.Count(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("count players")
	}
	logger.Info().Int64("players", total).Msg("seeding complete")
}

type seasonFile struct {
	season string
	path   string
}

// parseSeasonArgs parses positional season=path arguments.
func parseSeasonArgs(args []string) ([]seasonFile, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("no season files given")
	}

	pairs := make([]seasonFile, 0, len(args))
	for _, arg := range args {
		season, path, ok := strings.Cut(arg, "=")
		if !ok || season == "" || path == "" {
			return nil, fmt.Errorf("invalid season file %q, want season=path", arg)
		}
		pairs = append(pairs, seasonFile{season: season, path: path})
	}
	return pairs, nil
}

// openStore connects to the configured backend and applies migrations.
func openStore(ctx context.Context, cfg *config.Config) (storage.PlayerStore, func(), error) {
	switch cfg.Backend {
	case "clickhouse":
		conn, err := chstore.NewConn(ctx, cfg.ClickhouseDSN)
		if err != nil {
			return nil, nil, err
		}
		if err := migrations.RunClickhouseMigrations(ctx, conn); err != nil {
			conn.Close()
			return nil, nil, fmt.Errorf("run clickhouse migrations: %w", err)
		}
		return chstore.NewPlayerStore(conn), func() { conn.Close() }, nil

	case "postgres":
		pool, err := pgstore.NewPool(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		if err := migrations.RunPostgresMigrations(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("run postgres migrations: %w", err)
		}
		return pgstore.NewPlayerStore(pool), pool.Close, nil

	default:
		return nil, nil, fmt.Errorf("seeding requires a postgres or clickhouse backend, got %q", cfg.Backend)
	}
}
