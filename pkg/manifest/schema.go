package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
)

// BuildSchema produces a machine-readable JSON schema for the artifact so
// the renderer can validate a manifest before loading it.
func BuildSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: true,
	}
	schema := reflector.Reflect(new(Items))
	schema.Title = "Candy World Placement Manifest"
	schema.Description = "Ordered placement records consumed by the renderer; array order is draw order"
	return schema
}

// WriteSchema writes the schema to outPath, creating parent directories and
// replacing the file atomically.
func WriteSchema(outPath string) error {
	data, err := json.MarshalIndent(BuildSchema(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create schema directory: %w", err)
	}

	tmpPath := outPath + ".tmp"
	if err := os.WriteFile(tmpPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write temp schema: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("replace schema: %w", err)
	}

	return nil
}
