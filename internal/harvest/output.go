// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package harvest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdiddy/dataset-bridge/pkg/types"
)

// WriteDatasets writes the mapped records to path as a pretty-printed JSON
// array. HTML escaping is off so markup characters and non-ASCII text appear
// literally, and an empty run still produces a valid [] document. The parent
// directory is created if needed.
func WriteDatasets(path string, datasets []types.Dataset) error {
	if datasets == nil {
		datasets = []types.Dataset{}
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(datasets); err != nil {
		f.Close()
		return fmt.Errorf("encoding datasets: %w", err)
	}
	return f.Close()
}
