package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"vigiball-lab/internal/domain"
	"vigiball-lab/internal/storage"
)

// PlayerStore implements storage.PlayerStore using PostgreSQL.
type PlayerStore struct {
	pool *Pool
}

// NewPlayerStore creates a new PlayerStore.
func NewPlayerStore(pool *Pool) *PlayerStore {
	return &PlayerStore{pool: pool}
}

// Compile-time interface check.
var _ storage.PlayerStore = (*PlayerStore)(nil)

// playerColumns is the full non-id column list, in table order.
const playerColumns = `season, name, nation, pos, squad, comp, age, n90s,
	xg, npg, xag, gca90, prgc, succ_pct, sot_pct, touches_box,
	kp, cmp_pct, prgp, tkl_pct, interceptions, miscontrols, dispossessed,
	aerial_won_pct, def_act_att_3rd, recoveries, prg_pass_dist, blocks, tkl_int, clearances,
	psxg_plus_minus, save_pct, cross_stop_pct, launch_pct, opa_sweeper`

// InsertBulk adds multiple player records in one transaction.
func (s *PlayerStore) InsertBulk(ctx context.Context, records []*domain.PlayerRecord) error {
	if len(records) == 0 {
		return nil
	}
	for _, r := range records {
		if r == nil || r.Name == "" || r.Season == "" {
			return storage.ErrInvalidInput
		}
	}

	query := `
		INSERT INTO players (` + playerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8,
			$9, $10, $11, $12, $13, $14, $15, $16,
			$17, $18, $19, $20, $21, $22, $23,
			$24, $25, $26, $27, $28, $29, $30,
			$31, $32, $33, $34, $35)
	`

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin insert transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, r := range records {
		_, err := tx.Exec(ctx, query,
			r.Season, r.Name, r.Nation, r.Pos, r.Squad, r.Comp, r.Age, r.N90s,
			r.XG, r.NPG, r.XAG, r.GCA90, r.PrgC, r.SuccPct, r.SoTPct, r.TouchesBox,
			r.KP, r.CmpPct, r.PrgP, r.TklPct, r.Interceptions, r.Miscontrols, r.Dispossessed,
			r.AerialWonPct, r.DefActAtt3rd, r.Recoveries, r.PrgPassDist, r.Blocks, r.TklInt, r.Clearances,
			r.PSxGPlusMinus, r.SavePct, r.CrossStopPct, r.LaunchPct, r.OPASweeper,
		)
		if err != nil {
			return fmt.Errorf("insert player %q (%s): %w", r.Name, r.Season, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit insert transaction: %w", err)
	}
	return nil
}

// DeleteBySeason removes all records for a season.
func (s *PlayerStore) DeleteBySeason(ctx context.Context, season string) (int64, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM players WHERE season = $1`, season)
	if err != nil {
		return 0, fmt.Errorf("delete season %s: %w", season, err)
	}
	return tag.RowsAffected(), nil
}

// GetByName retrieves all records whose name contains the fragment
// (case-insensitive) within the allowed season set.
func (s *PlayerStore) GetByName(ctx context.Context, name string, seasons []string) ([]*domain.PlayerRecord, error) {
	query := `
		SELECT id, ` + playerColumns + `
		FROM players
		WHERE name ILIKE '%' || $1 || '%' AND season = ANY($2)
	`

	rows, err := s.pool.Query(ctx, query, name, seasons)
	if err != nil {
		return nil, fmt.Errorf("get players by name: %w", err)
	}
	defer rows.Close()

	return scanPlayers(rows)
}

// GetByPosition retrieves the peer population for a raw-position substring.
func (s *PlayerStore) GetByPosition(ctx context.Context, posSubstring string, seasons []string, minN90s float64) ([]*domain.PlayerRecord, error) {
	query := `
		SELECT id, ` + playerColumns + `
		FROM players
		WHERE pos ILIKE '%' || $1 || '%' AND season = ANY($2) AND n90s >= $3
	`

	rows, err := s.pool.Query(ctx, query, posSubstring, seasons, minN90s)
	if err != nil {
		return nil, fmt.Errorf("get players by position: %w", err)
	}
	defer rows.Close()

	return scanPlayers(rows)
}

// Count returns the total number of rows in the players table.
func (s *PlayerStore) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.pool.QueryRow(ctx, `SELECT count(*) FROM players`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count players: %w", err)
	}
	return n, nil
}

// scanPlayers scans result rows into PlayerRecords.
func scanPlayers(rows pgx.Rows) ([]*domain.PlayerRecord, error) {
	var players []*domain.PlayerRecord

	for rows.Next() {
		var r domain.PlayerRecord
		err := rows.Scan(
			&r.ID, &r.Season, &r.Name, &r.Nation, &r.Pos, &r.Squad, &r.Comp, &r.Age, &r.N90s,
			&r.XG, &r.NPG, &r.XAG, &r.GCA90, &r.PrgC, &r.SuccPct, &r.SoTPct, &r.TouchesBox,
			&r.KP, &r.CmpPct, &r.PrgP, &r.TklPct, &r.Interceptions, &r.Miscontrols, &r.Dispossessed,
			&r.AerialWonPct, &r.DefActAtt3rd, &r.Recoveries, &r.PrgPassDist, &r.Blocks, &r.TklInt, &r.Clearances,
			&r.PSxGPlusMinus, &r.SavePct, &r.CrossStopPct, &r.LaunchPct, &r.OPASweeper,
		)
		if err != nil {
			return nil, fmt.Errorf("scan player row: %w", err)
		}
		players = append(players, &r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate player rows: %w", err)
	}

	return players, nil
}
