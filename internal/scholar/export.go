// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scholar

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/scholar-cli/pkg/types"
)

// ExportFile is the on-disk record of one executed search: the compiled
// query, the parameters in effect, and the results. It is write-only output
// for downstream tooling; the CLI itself never reads one back.
type ExportFile struct {
	Query   ExportQuery         `yaml:"query"`
	Config  ExportConfig        `yaml:"config"`
	Results []types.Publication `yaml:"results"`
	Summary ExportSummary       `yaml:"summary"`
}

// ExportQuery stores the compiled query and the year bounds that were
// applied as a post-filter.
type ExportQuery struct {
	Compiled  string `yaml:"compiled"`
	YearStart int    `yaml:"year_start,omitempty"`
	YearEnd   int    `yaml:"year_end,omitempty"`
}

// ExportConfig stores the execution parameters that produced the results.
type ExportConfig struct {
	Limit   int    `yaml:"limit"`
	Backend string `yaml:"backend"`
}

// ExportSummary stores result statistics and a timestamp.
type ExportSummary struct {
	Total     int       `yaml:"total"`
	Partial   bool      `yaml:"partial,omitempty"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteExport saves an executed search outcome to a YAML file.
func WriteExport(path string, out Outcome, backend string) error {
	ef := ExportFile{
		Query: ExportQuery{
			Compiled:  out.Query,
			YearStart: out.YearStart,
			YearEnd:   out.YearEnd,
		},
		Config: ExportConfig{
			Limit:   out.Limit,
			Backend: backend,
		},
		Results: out.Results,
		Summary: ExportSummary{
			Total:     len(out.Results),
			Partial:   out.Partial,
			Timestamp: time.Now(),
		},
	}

	data, err := yaml.Marshal(&ef)
	if err != nil {
		return fmt.Errorf("marshaling export file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
