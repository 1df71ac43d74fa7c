// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package harvest

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.yaml.in/yaml/v3"
)

// Report is the on-disk YAML summary of one harvest run. It records where
// the data came from, where it went, and which packages failed, so a run
// can be audited without re-reading logs.
type Report struct {
	Catalog    string    `yaml:"catalog"`
	OutputFile string    `yaml:"output_file"`
	Harvested  int       `yaml:"harvested"`
	Failed     int       `yaml:"failed"`
	Failures   []string  `yaml:"failures,omitempty"`
	Timestamp  time.Time `yaml:"timestamp"`
}

// NewReport builds a Report for a finished run.
func NewReport(catalog, outputFile string, result Result) Report {
	return Report{
		Catalog:    catalog,
		OutputFile: outputFile,
		Harvested:  result.Harvested,
		Failed:     result.Failed,
		Failures:   result.Failures,
		Timestamp:  time.Now().UTC(),
	}
}

// WriteReport saves the report as YAML, creating the parent directory if
// needed.
func WriteReport(path string, report Report) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating report directory %s: %w", dir, err)
		}
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
