package main

import (
	"fmt"

	"github.com/ford442/candy-world/pkg/manifest"
	"github.com/ford442/candy-world/pkg/validation"
)

func printValidationReport(r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Printf("ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Printf("  [%s] %s\n", e.Level, e.Message)
			if e.SpecPath != "" {
				fmt.Printf("    -> %s = %v\n", e.SpecPath, e.ActualValue)
			}
			if e.Expected != "" {
				fmt.Printf("    expected: %s\n", e.Expected)
			}
			for _, s := range e.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Warnings) > 0 {
		fmt.Printf("WARNINGS (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			fmt.Printf("  [%s] %s\n", w.Level, w.Message)
			if w.SpecPath != "" {
				fmt.Printf("    -> %s = %v\n", w.SpecPath, w.ActualValue)
			}
			for _, s := range w.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Info) > 0 {
		fmt.Printf("INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Printf("  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Println()
	}

	if r.Valid {
		fmt.Printf("Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Printf("Result: INVALID (%s)\n", r.Summary)
	}
}

func printStats(st manifest.Stats, seed int64, outPath string) {
	fmt.Println()
	fmt.Println("Placement Summary")
	fmt.Println("-----------------")

	rows := []struct {
		label string
		count int
	}{
		{"Features", st.Features},
		{"Clusters", st.Clusters},
		{"Ambient scatter", st.Ambient},
		{"Filler", st.Filler},
		{"Ground cover", st.GroundCover},
		{"TOTAL", st.Total},
	}
	for _, row := range rows {
		fmt.Printf("  %-16s %7d\n", row.label, row.count)
	}

	fmt.Printf("\nSeed: %d\n", seed)
	fmt.Printf("Manifest written to %s\n", outPath)
}
