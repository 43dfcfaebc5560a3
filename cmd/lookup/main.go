// Command lookup prints the raw season rows for a player name, newest
// season first. Useful for checking how ages and squads pair up across
// seasons before trusting a valuation.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/rs/zerolog"

	"vigiball-lab/internal/config"
	"vigiball-lab/internal/fixtures"
	"vigiball-lab/internal/storage"
	chstore "vigiball-lab/internal/storage/clickhouse"
	"vigiball-lab/internal/storage/memory"
	pgstore "vigiball-lab/internal/storage/postgres"
)

func main() {
	player := flag.String("player", "", "Player name (substring, case-insensitive)")
	configPath := flag.String("config", "", "Path to YAML config file")
	postgresDSN := flag.String("postgres-dsn", os.Getenv("VIGIBALL_POSTGRES_DSN"), "PostgreSQL connection string")
	clickhouseDSN := flag.String("clickhouse-dsn", os.Getenv("VIGIBALL_CLICKHOUSE_DSN"), "ClickHouse connection string")
	useFixtures := flag.Bool("use-fixtures", false, "Run against the in-memory fixture dataset")
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
	if *postgresDSN != "" {
		cfg.PostgresDSN = *postgresDSN
		cfg.Backend = "postgres"
	}
	if *clickhouseDSN != "" {
		cfg.ClickhouseDSN = *clickhouseDSN
		cfg.Backend = "clickhouse"
	}
	if *useFixtures {
		cfg.Backend = "memory"
	}

	ctx := context.Background()

	store, cleanup, err := openStore(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("open player store")
	}
	defer cleanup()

	records, err := store.GetByName(ctx, *player, cfg.Seasons)
	if err != nil {
		logger.Fatal().Err(err).Msg("lookup player")
	}

	fmt.Printf("\n--- Records for: %s ---\n", *player)
	if len(records) == 0 {
		fmt.Println("No records found.")
		return
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Season > records[j].Season
	})

	fmt.Printf("%-28s %-10s %6s  %s\n", "name", "season", "age", "squad")
	for _, r := range records {
		age := "n/a"
		if r.Age != nil {
			age = fmt.Sprintf("%.2f", *r.Age)
		}
		fmt.Printf("%-28s %-10s %6s  %s\n", r.Name, r.Season, age, r.Squad)
	}
}

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
