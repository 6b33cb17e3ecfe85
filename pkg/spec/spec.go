package spec

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads a map spec from a YAML file. Fields absent from the file keep
// their compiled-in defaults.
func Load(path string) (*MapSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading spec file: %w", err)
	}

	s := Default()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parsing spec YAML: %w", err)
	}

	return s, nil
}

// LoadProject loads a map spec from a project directory.
// It looks for map.yaml in the given directory.
func LoadProject(projectDir string) (*MapSpec, error) {
	specPath := filepath.Join(projectDir, "map.yaml")
	return Load(specPath)
}
