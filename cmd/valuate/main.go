// Command valuate computes a market valuation for a single player and
// prints the terminal report. With --output-dir it also writes Markdown
// and CSV artifacts.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"vigiball-lab/internal/config"
	"vigiball-lab/internal/fixtures"
	"vigiball-lab/internal/peers"
	"vigiball-lab/internal/reporting"
	"vigiball-lab/internal/storage"
	chstore "vigiball-lab/internal/storage/clickhouse"
	"vigiball-lab/internal/storage/memory"
	pgstore "vigiball-lab/internal/storage/postgres"
	"vigiball-lab/internal/valuation"
)

func main() {
	player := flag.String("player", "", "Player name (substring, case-insensitive)")
	configPath := flag.String("config", "", "Path to YAML config file")
	postgresDSN := flag.String("postgres-dsn", os.Getenv("VIGIBALL_POSTGRES_DSN"), "PostgreSQL connection string")
	clickhouseDSN := flag.String("clickhouse-dsn", os.Getenv("VIGIBALL_CLICKHOUSE_DSN"), "ClickHouse connection string")
	seasons := flag.String("seasons", "", "Comma-separated season filter override (e.g. 2024-2025,2025-2026)")
	useFixtures := flag.Bool("use-fixtures", false, "Run against the in-memory fixture dataset")
	outputDir := flag.String("output-dir", "", "Write Markdown/CSV reports into this directory")
	flag.Parse()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	if *player == "" {
		fmt.Fprintln(os.Stderr, "Error: --player is required")
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("load config")
	}
	applyFlags(cfg, *postgresDSN, *clickhouseDSN, *seasons, *useFixtures)

	ctx := context.Background()

	store, cleanup, err := openStore(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("open player store")
	}
	defer cleanup()

	total, err := store.Count(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("count players")
	}
	logger.Info().Int64("players", total).Str("backend", cfg.Backend).Msg("player table ready")

	aggregator := peers.NewAggregator(store, cfg.Seasons, cfg.MinPeer90s)
	engine := valuation.NewEngine(store, aggregator, valuation.Options{
		Overrides: cfg.Overrides(),
		Seasons:   cfg.Seasons,
	})

	result, err := engine.Valuate(ctx, *player)
	if err != nil {
		if valuation.IsNotFound(err) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		logger.Fatal().Err(err).Msg("valuation failed")
	}

	report := reporting.NewReport(result, engine.Profile(result.PositionGroup))
	fmt.Println()
	fmt.Print(reporting.RenderText(report))

	if *outputDir != "" {
		paths, err := reporting.NewGenerator(*outputDir).Write(report)
		if err != nil {
			logger.Fatal().Err(err).Msg("write report files")
		}
		for _, p := range paths {
			fmt.Printf("  - %s\n", p)
		}
	}
}

// applyFlags overlays command-line values onto the loaded config.
func applyFlags(cfg *config.Config, postgresDSN, clickhouseDSN, seasons string, useFixtures bool) {
	if postgresDSN != "" {
		cfg.PostgresDSN = postgresDSN
		cfg.Backend = "postgres"
	}
	if clickhouseDSN != "" {
		cfg.ClickhouseDSN = clickhouseDSN
		cfg.Backend = "clickhouse"
	}
	if seasons != "" {
		cfg.Seasons = nil
		for _, s := range strings.Split(seasons, ",") {
			if s = strings.TrimSpace(s); s != "" {
				cfg.Seasons = append(cfg.Seasons, s)
			}
		}
	}
	if useFixtures {
		cfg.Backend = "memory"
	}
}

// openStore creates the configured player store. The memory backend is
// pre-loaded with the fixture dataset.
func openStore(ctx context.Context, cfg *config.Config) (storage.PlayerStore, func(), error) {
	switch cfg.Backend {
	case "memory":
		store := memory.NewPlayerStore()
		if err := fixtures.Load(ctx, store); err != nil {
			return nil, nil, fmt.Errorf("load fixtures: %w", err)
		}
		return store, func() {}, nil

	case "clickhouse":
		conn, err := chstore.NewConn(ctx, cfg.ClickhouseDSN)
		if err != nil {
			return nil, nil, err
		}
		return chstore.NewPlayerStore(conn), func() { conn.Close() }, nil

	default:
		pool, err := pgstore.NewPool(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		return pgstore.NewPlayerStore(pool), pool.Close, nil
	}
}
