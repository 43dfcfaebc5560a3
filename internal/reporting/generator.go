package reporting

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Generator writes valuation reports to an output directory.
type Generator struct {
	outputDir string
}

// NewGenerator creates a generator writing into outputDir.
func NewGenerator(outputDir string) *Generator {
	return &Generator{outputDir: outputDir}
}

// Write renders the report to VALUATION_<NAME>.md and appends-or-creates
// VALUATIONS.csv. Returns the paths written.
func (g *Generator) Write(r *Report) ([]string, error) {
	if err := os.MkdirAll(g.outputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	mdPath := filepath.Join(g.outputDir, "VALUATION_"+slug(r.Result.Name)+".md")
	if err := os.WriteFile(mdPath, []byte(RenderMarkdown(r)), 0644); err != nil {
		return nil, fmt.Errorf("write markdown report: %w", err)
	}

	csvPath := filepath.Join(g.outputDir, "VALUATIONS.csv")
	if err := os.WriteFile(csvPath, []byte(RenderCSV([]*Report{r})), 0644); err != nil {
		return nil, fmt.Errorf("write csv report: %w", err)
	}

	return []string{mdPath, csvPath}, nil
}

// slug converts a player name into a safe filename fragment.
func slug(name string) string {
	var sb strings.Builder
	for _, r := range strings.ToUpper(name) {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		default:
			sb.WriteRune('_')
		}
	}
	return sb.String()
}
