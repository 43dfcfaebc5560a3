// Command server wraps the valuation engine in a small HTTP surface:
//
//	GET /valuation?player=NAME  — computed valuation as JSON
//	GET /health                 — liveness
//	GET /metrics                — Prometheus metrics
//
// The engine itself stays single-shot and stateless; this is the caller-
// side service boundary, so timeouts and cancellation live here.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"

	"vigiball-lab/internal/config"
	"vigiball-lab/internal/fixtures"
	"vigiball-lab/internal/observability"
	"vigiball-lab/internal/peers"
	"vigiball-lab/internal/storage"
	chstore "vigiball-lab/internal/storage/clickhouse"
	"vigiball-lab/internal/storage/memory"
	pgstore "vigiball-lab/internal/storage/postgres"
	"vigiball-lab/internal/valuation"
)

func main() {
	addr := flag.String("addr", ":8080", "HTTP listen address")
	configPath := flag.String("config", "", "Path to YAML config file")
	postgresDSN := flag.String("postgres-dsn", os.Getenv("VIGIBALL_POSTGRES_DSN"), "PostgreSQL connection string")
	clickhouseDSN := flag.String("clickhouse-dsn", os.Getenv("VIGIBALL_CLICKHOUSE_DSN"), "ClickHouse connection string")
	useFixtures := flag.Bool("use-fixtures", false, "Serve the in-memory fixture dataset")
	requestTimeout := flag.Duration("request-timeout", 10*time.Second, "Per-request timeout")
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
	if *useFixtures {
		cfg.Backend = "memory"
	}

	ctx := context.Background()

	store, cleanup, err := openStore(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("open player store")
	}
	defer cleanup()

	aggregator := peers.NewAggregator(store, cfg.Seasons, cfg.MinPeer90s)
	engine := valuation.NewEngine(store, aggregator, valuation.Options{
		Overrides: cfg.Overrides(),
		Seasons:   cfg.Seasons,
	})

	srv := &server{
		engine:  engine,
		logger:  logger,
		timeout: *requestTimeout,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/valuation", srv.handleValuation)
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	mux.Handle("/metrics", observability.Handler())

	logger.Info().Str("addr", *addr).Str("backend", cfg.Backend).Msg("starting server")
	if err := http.ListenAndServe(*addr, mux); err != nil && err != http.ErrServerClosed {
		logger.Fatal().Err(err).Msg("http server")
	}
}

type server struct {
	engine  *valuation.Engine
	logger  zerolog.Logger
	timeout time.Duration
}

// errorResponse is the JSON error body.
type errorResponse struct {
	Error string `json:"error"`
}

func (s *server) handleValuation(w http.ResponseWriter, r *http.Request) {
	player := r.URL.Query().Get("player")
	if player == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "query parameter 'player' is required"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.timeout)
	defer cancel()

	start := time.Now()
	result, err := s.engine.Valuate(ctx, player)
	if err != nil {
		if valuation.IsNotFound(err) {
			observability.RecordNotFound()
			writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
			return
		}
		s.logger.Error().Err(err).Str("player", player).Msg("valuation failed")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	observability.RecordValuation(string(result.PositionGroup), time.Since(start).Seconds())
	writeJSON(w, http.StatusOK, result)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
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
