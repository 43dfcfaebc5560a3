package reporting

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"vigiball-lab/internal/domain"
)

func sampleReport() *Report {
	result := &domain.ValuationResult{
		Name:          "Dario Venn",
		PositionGroup: domain.GroupFW,
		Age:           24.3,
		Squad:         "Testona",
		PScore:        8.75,
		MarketValueM:  72.4,
		Percentiles: map[string]float64{
			"xg":       92.5,
			"npg":      88.0,
			"succ_pct": 41.7,
		},
		Seasons: []string{"2024-2025", "2025-2026"},
	}
	profile := domain.MetricProfile{
		{Name: "xg", HigherIsBetter: true},
		{Name: "npg", HigherIsBetter: true},
		{Name: "succ_pct", HigherIsBetter: true},
		{Name: "touches_box", HigherIsBetter: true}, // absent from the result
	}
	return NewReport(result, profile)
}

func TestBreakdown_ProfileOrderSkippingMissing(t *testing.T) {
	rows := sampleReport().Breakdown()

	if len(rows) != 3 {
		t.Fatalf("expected 3 rows (touches_box missing), got %d", len(rows))
	}
	want := []string{"xg", "npg", "succ_pct"}
	for i, metric := range want {
		if rows[i].Metric != metric {
			t.Errorf("row %d: expected %q, got %q", i, metric, rows[i].Metric)
		}
	}
	if rows[0].Percentile != 92.5 {
		t.Errorf("expected 92.5, got %f", rows[0].Percentile)
	}
}

func TestRenderText(t *testing.T) {
	out := RenderText(sampleReport())

	for _, want := range []string{
		"--- Valuation Report: Dario Venn ---",
		"Position: FW | Age: 24.3 | Squad: Testona",
		"Seasons:  2024-2025, 2025-2026",
		"P-Score:  8.75 / 10",
		"Value:    £72.40m",
		"  - xg: 92.5th percentile",
		"  - succ_pct: 41.7th percentile",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("text report missing %q:\n%s", want, out)
		}
	}
}

func TestRenderMarkdown(t *testing.T) {
	out := RenderMarkdown(sampleReport())

	for _, want := range []string{
		"# Valuation Report: Dario Venn",
		"| Position Group | FW |",
		"| P-Score | 8.75 / 10 |",
		"| Market Value | £72.40m |",
		"| xg | 92.5 | higher is better |",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown report missing %q:\n%s", want, out)
		}
	}
}

func TestRenderMarkdown_NegativePolarityLabeled(t *testing.T) {
	result := &domain.ValuationResult{
		Name:          "Tidy Player",
		PositionGroup: domain.GroupCM,
		Percentiles:   map[string]float64{"miscontrols": 83.3},
	}
	profile := domain.MetricProfile{{Name: "miscontrols", HigherIsBetter: false}}

	out := RenderMarkdown(NewReport(result, profile))
	if !strings.Contains(out, "| miscontrols | 83.3 | lower is better |") {
		t.Errorf("expected the inverted polarity label:\n%s", out)
	}
}

func TestRenderCSV(t *testing.T) {
	out := RenderCSV([]*Report{sampleReport()})

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header plus one row, got %d lines", len(lines))
	}
	if lines[0] != "name,position_group,age,squad,p_score,market_value_m,percentiles" {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "Dario Venn,FW,24.3,Testona,8.75,72.40,") {
		t.Errorf("unexpected row: %q", lines[1])
	}
	// Packed breakdown keeps profile order
	if !strings.Contains(lines[1], "xg=92.5;npg=88.0;succ_pct=41.7") {
		t.Errorf("unexpected percentile packing: %q", lines[1])
	}
}

func TestCSVEscape(t *testing.T) {
	if got := csvEscape("Plain Name"); got != "Plain Name" {
		t.Errorf("expected plain name untouched, got %q", got)
	}
	if got := csvEscape(`Club, The`); got != `"Club, The"` {
		t.Errorf("expected comma field quoted, got %q", got)
	}
	if got := csvEscape(`He said "hi"`); got != `"He said ""hi"""` {
		t.Errorf("expected quotes doubled, got %q", got)
	}
}

func TestGenerator_WritesReportFiles(t *testing.T) {
	dir := t.TempDir()
	gen := NewGenerator(dir)

	paths, err := gen.Write(sampleReport())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("expected 2 paths, got %d", len(paths))
	}

	md, err := os.ReadFile(filepath.Join(dir, "VALUATION_DARIO_VENN.md"))
	if err != nil {
		t.Fatalf("markdown report not written: %v", err)
	}
	if !strings.Contains(string(md), "# Valuation Report: Dario Venn") {
		t.Error("markdown report content mismatched")
	}

	if _, err := os.Stat(filepath.Join(dir, "VALUATIONS.csv")); err != nil {
		t.Errorf("csv report not written: %v", err)
	}
}

func TestSlug(t *testing.T) {
	if got := slug("Dario Venn"); got != "DARIO_VENN" {
		t.Errorf("expected DARIO_VENN, got %q", got)
	}
	if got := slug("N'Golo Kanté"); got != "N_GOLO_KANT_" {
		t.Errorf("expected N_GOLO_KANT_, got %q", got)
	}
}
