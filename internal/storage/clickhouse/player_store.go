package clickhouse

import (
	"context"
	"fmt"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"

	"vigiball-lab/internal/domain"
	"vigiball-lab/internal/storage"
)

// PlayerStore implements storage.PlayerStore using ClickHouse. It serves
// the same players table as the Postgres store for setups that keep the
// season statistics in an analytical warehouse.
type PlayerStore struct {
	conn *Conn
}

// NewPlayerStore creates a new PlayerStore.
func NewPlayerStore(conn *Conn) *PlayerStore {
	return &PlayerStore{conn: conn}
}

// Compile-time interface check.
var _ storage.PlayerStore = (*PlayerStore)(nil)

const playerColumns = `season, name, nation, pos, squad, comp, age, n90s,
	xg, npg, xag, gca90, prgc, succ_pct, sot_pct, touches_box,
	kp, cmp_pct, prgp, tkl_pct, interceptions, miscontrols, dispossessed,
	aerial_won_pct, def_act_att_3rd, recoveries, prg_pass_dist, blocks, tkl_int, clearances,
	psxg_plus_minus, save_pct, cross_stop_pct, launch_pct, opa_sweeper`

// InsertBulk adds multiple player records via a native batch.
func (s *PlayerStore) InsertBulk(ctx context.Context, records []*domain.PlayerRecord) error {
	if len(records) == 0 {
		return nil
	}
	for _, r := range records {
		if r == nil || r.Name == "" || r.Season == "" {
			return storage.ErrInvalidInput
		}
	}

	batch, err := s.conn.PrepareBatch(ctx, `INSERT INTO players (`+playerColumns+`)`)
	if err != nil {
		return fmt.Errorf("prepare batch: %w", err)
	}

	for _, r := range records {
		err = batch.Append(
			r.Season, r.Name, r.Nation, r.Pos, r.Squad, r.Comp, r.Age, r.N90s,
			r.XG, r.NPG, r.XAG, r.GCA90, r.PrgC, r.SuccPct, r.SoTPct, r.TouchesBox,
			r.KP, r.CmpPct, r.PrgP, r.TklPct, r.Interceptions, r.Miscontrols, r.Dispossessed,
			r.AerialWonPct, r.DefActAtt3rd, r.Recoveries, r.PrgPassDist, r.Blocks, r.TklInt, r.Clearances,
			r.PSxGPlusMinus, r.SavePct, r.CrossStopPct, r.LaunchPct, r.OPASweeper,
		)
		if err != nil {
			return fmt.Errorf("append to batch: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("send batch: %w", err)
	}
	return nil
}

// DeleteBySeason removes all records for a season via lightweight DELETE.
func (s *PlayerStore) DeleteBySeason(ctx context.Context, season string) (int64, error) {
	var n uint64
	row := s.conn.QueryRow(ctx, `SELECT count() FROM players WHERE season = ?`, season)
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("count season %s: %w", season, err)
	}

	if err := s.conn.Exec(ctx, `DELETE FROM players WHERE season = ?`, season); err != nil {
		return 0, fmt.Errorf("delete season %s: %w", season, err)
	}
	return int64(n), nil
}

// GetByName retrieves all records whose name contains the fragment
// (case-insensitive) within the allowed season set.
func (s *PlayerStore) GetByName(ctx context.Context, name string, seasons []string) ([]*domain.PlayerRecord, error) {
	query := `
		SELECT ` + playerColumns + `
		FROM players
		WHERE positionCaseInsensitive(name, ?) > 0 AND season IN (?)
	`

	rows, err := s.conn.Query(ctx, query, name, seasons)
	if err != nil {
		return nil, fmt.Errorf("get players by name: %w", err)
	}
	defer rows.Close()

	return scanPlayers(rows)
}

// GetByPosition retrieves the peer population for a raw-position substring.
func (s *PlayerStore) GetByPosition(ctx context.Context, posSubstring string, seasons []string, minN90s float64) ([]*domain.PlayerRecord, error) {
	query := `
		SELECT ` + playerColumns + `
		FROM players
		WHERE positionCaseInsensitive(pos, ?) > 0 AND season IN (?) AND n90s >= ?
	`

	rows, err := s.conn.Query(ctx, query, posSubstring, seasons, minN90s)
	if err != nil {
		return nil, fmt.Errorf("get players by position: %w", err)
	}
	defer rows.Close()

	return scanPlayers(rows)
}

// Count returns the total number of rows in the players table.
func (s *PlayerStore) Count(ctx context.Context) (int64, error) {
	var n uint64
	if err := s.conn.QueryRow(ctx, `SELECT count() FROM players`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count players: %w", err)
	}
	return int64(n), nil
}

// scanPlayers scans result rows into PlayerRecords.
func scanPlayers(rows driver.Rows) ([]*domain.PlayerRecord, error) {
	var players []*domain.PlayerRecord

	for rows.Next() {
		var r domain.PlayerRecord
		err := rows.Scan(
			&r.Season, &r.Name, &r.Nation, &r.Pos, &r.Squad, &r.Comp, &r.Age, &r.N90s,
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
