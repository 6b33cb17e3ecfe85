package manifest

import (
	"encoding/json"
	"fmt"
	"os"
)

// Write serializes the manifest's items and writes them to path in one
// terminal step. The JSON is buffered fully in memory and lands via a
// temporary file and rename, so a failed run never leaves a half-written
// artifact for the renderer to load.
func Write(path string, m *Manifest) error {
	data, err := json.MarshalIndent(m.Items, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write temp manifest: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace manifest: %w", err)
	}

	return nil
}

// Read loads a previously written artifact. The dev server and round-trip
// tests use it; the generator itself never reads its own output.
func Read(path string) (Items, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	var items Items
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	return items, nil
}
