package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/ford442/candy-world/pkg/layout"
	"github.com/ford442/candy-world/pkg/manifest"
	"github.com/ford442/candy-world/pkg/spec"
	"github.com/ford442/candy-world/pkg/taxonomy"
	"github.com/ford442/candy-world/pkg/validation"
)

// loadAndValidate resolves the map spec (project file or compiled-in
// defaults) and runs schema validation. The taxonomy table is verified
// first so a misconfigured entry fails the run before any generation.
func loadAndValidate(projectPath string) (*spec.MapSpec, *validation.Report, error) {
	if err := taxonomy.Validate(); err != nil {
		return nil, nil, fmt.Errorf("taxonomy: %w", err)
	}

	var (
		mapSpec *spec.MapSpec
		err     error
	)
	if projectPath == "" {
		mapSpec = spec.Default()
	} else {
		mapSpec, err = spec.LoadProject(projectPath)
		if err != nil {
			return nil, nil, fmt.Errorf("loading spec: %w", err)
		}
	}

	schemaReport := validation.ValidateSchema(mapSpec)
	return mapSpec, schemaReport, nil
}

func runValidate(projectPath string) error {
	_, schemaReport, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}

	printValidationReport(schemaReport)

	if !schemaReport.Valid {
		os.Exit(1)
	}
	return nil
}

func runGenerate(projectPath, out string, seed int64) error {
	mapSpec, schemaReport, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}
	if !schemaReport.Valid {
		printValidationReport(schemaReport)
		return fmt.Errorf("spec has validation errors")
	}

	if seed == 0 {
		seed = mapSpec.Map.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	m, report := layout.Generate(mapSpec, rng)
	schemaReport.Merge(report)
	schemaReport.Merge(manifest.ValidateManifest(m, mapSpec))
	if !schemaReport.Valid {
		printValidationReport(schemaReport)
		return fmt.Errorf("generated manifest failed validation")
	}

	outPath := mapSpec.Output.Path
	if out != "" {
		outPath = out
	}
	if err := manifest.Write(outPath, m); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}

	printValidationReport(schemaReport)
	printStats(m.Stats, seed, outPath)
	return nil
}

func runSchema(out string) error {
	if err := manifest.WriteSchema(out); err != nil {
		return fmt.Errorf("writing schema: %w", err)
	}
	fmt.Printf("Schema written to %s\n", out)
	return nil
}
