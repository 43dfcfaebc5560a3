// Package ingestion loads season statistics CSVs into the players table.
package ingestion

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"vigiball-lab/internal/domain"
)

// columnMap maps CSV headers from the data source to players table
// columns. Headers absent from a file are simply skipped.
var columnMap = map[string]string{
	// Identity
	"Player": "name",
	"Nation": "nation",
	"Pos":    "pos",
	"Squad":  "squad",
	"Comp":   "comp",
	"Age":    "age",
	"90s":    "n90s",

	// Attacking
	"xG":      "xg",
	"G-PK":    "npg",
	"xAG":     "xag",
	"GCA90":   "gca90",
	"PrgC":    "prgc",
	"Succ%":   "succ_pct",
	"SoT%":    "sot_pct",
	"Att Pen": "touches_box",

	// Midfield
	"KP":   "kp",
	"Cmp%": "cmp_pct",
	"PrgP": "prgp",
	"Tkl%": "tkl_pct",
	"Int":  "interceptions",
	"Mis":  "miscontrols",
	"Dis":  "dispossessed",

	// Defending
	"Won%":    "aerial_won_pct",
	"Att 3rd": "def_act_att_3rd",
	"Recov":   "recoveries",
	"PrgDist": "prg_pass_dist",
	"Blocks":  "blocks",
	"Tkl+Int": "tkl_int",
	"Clr":     "clearances",

	// Goalkeeping
	"PSxG+/-": "psxg_plus_minus",
	"Save%":   "save_pct",
	"Stp%":    "cross_stop_pct",
	"Launch%": "launch_pct",
	"#OPA":    "opa_sweeper",
}

// ParseSeasonCSV reads a season stats CSV and returns player records
// tagged with the given season. Unparseable or blank numeric cells become
// nil metrics; rows without a player name are skipped.
func ParseSeasonCSV(r io.Reader, season string) ([]*domain.PlayerRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	// Map table column -> field index in the row.
	index := make(map[string]int)
	for i, h := range header {
		if col, ok := columnMap[strings.TrimSpace(h)]; ok {
			index[col] = i
		}
	}
	if _, ok := index["name"]; !ok {
		return nil, fmt.Errorf("csv has no Player column")
	}

	var records []*domain.PlayerRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}

		name := cell(row, index, "name")
		if name == "" {
			continue
		}

		rec := &domain.PlayerRecord{
			Name:   name,
			Nation: cell(row, index, "nation"),
			Pos:    cell(row, index, "pos"),
			Squad:  cell(row, index, "squad"),
			Comp:   cell(row, index, "comp"),
			Season: season,
			Age:    parseAge(cell(row, index, "age")),
			N90s:   parseFloat(cell(row, index, "n90s")),
		}
		for _, metric := range domain.MetricColumns {
			rec.SetMetric(metric, parseFloat(cell(row, index, metric)))
		}
		records = append(records, rec)
	}

	return records, nil
}

// cell returns the trimmed value of a mapped column, or "" if the column
// is absent or the row is short.
func cell(row []string, index map[string]int, col string) string {
	i, ok := index[col]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// parseFloat parses a numeric cell. Percentage signs are stripped so
// "87.5%" reads as 87.5. Blank or unparseable cells return nil.
func parseFloat(s string) *float64 {
	s = strings.TrimSuffix(s, "%")
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// parseAge decodes the data source's "years-days" age form ("25-082")
// into fractional years (25 + 82/365). Plain numbers pass through.
func parseAge(s string) *float64 {
	if s == "" {
		return nil
	}
	if years, days, ok := strings.Cut(s, "-"); ok {
		y, errY := strconv.ParseFloat(years, 64)
		d, errD := strconv.ParseFloat(days, 64)
		if errY != nil || errD != nil {
			return nil
		}
		age := y + d/365.0
		return &age
	}
	return parseFloat(s)
}
