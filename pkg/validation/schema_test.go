package validation

import (
	"testing"

	"github.com/ford442/candy-world/pkg/spec"
)

func TestDefaultSpecIsValid(t *testing.T) {
	r := ValidateSchema(spec.Default())
	if !r.Valid {
		t.Fatalf("default spec invalid: %s", r.Summary)
	}
}

func TestUnknownScatterTypeIsFatal(t *testing.T) {
	s := spec.Default()
	s.Scatter.Filler.Weights["chocolate_oak"] = 0.3

	r := ValidateSchema(s)
	if r.Valid {
		t.Fatal("expected taxonomy error for unknown weighted type")
	}

	found := false
	for _, e := range r.Errors {
		if e.Level == LevelTaxonomy {
			found = true
		}
	}
	if !found {
		t.Error("expected a taxonomy-level error")
	}
}

func TestUnknownClusterFamilyIsFatal(t *testing.T) {
	s := spec.Default()
	s.Clusters.FamilyWeights["brass"] = 0.5

	r := ValidateSchema(s)
	if r.Valid {
		t.Fatal("expected error for unknown family")
	}
}

func TestInvalidGeometryRejected(t *testing.T) {
	s := spec.Default()
	s.Map.Radius = 0

	r := ValidateSchema(s)
	if r.Valid {
		t.Fatal("expected error for zero map radius")
	}

	s = spec.Default()
	s.Spawn.SafeRadius = 200
	r = ValidateSchema(s)
	if r.Valid {
		t.Fatal("expected error for spawn radius covering the map")
	}
}

func TestMinRadiusInsideSpawnWarns(t *testing.T) {
	s := spec.Default()
	s.Clusters.MinRadius = 5

	r := ValidateSchema(s)
	if !r.Valid {
		t.Fatalf("tight min_radius should warn, not error: %s", r.Summary)
	}
	if len(r.Warnings) == 0 {
		t.Error("expected a warning for min_radius inside the spawn safe radius")
	}
}

func TestWeightedFamilyNeedsCountRange(t *testing.T) {
	s := spec.Default()
	delete(s.Clusters.CountRanges, "melody")

	r := ValidateSchema(s)
	if r.Valid {
		t.Fatal("expected error for weighted family without a count range")
	}
}

func TestZeroCountsSkipWeightChecks(t *testing.T) {
	s := spec.Default()
	s.Clusters.Count = 0
	s.Clusters.FamilyWeights = nil
	s.Clusters.CountRanges = nil
	s.Scatter.Ambient = spec.PassDef{}
	s.Scatter.Filler = spec.PassDef{}
	s.Scatter.GroundCover = spec.PassDef{}

	r := ValidateSchema(s)
	if !r.Valid {
		t.Fatalf("disabled phases should not require weights: %s", r.Summary)
	}
}

func TestMissingMaxAttemptsRejected(t *testing.T) {
	s := spec.Default()
	s.Scatter.MaxAttempts = 0

	r := ValidateSchema(s)
	if r.Valid {
		t.Fatal("expected error for zero max_attempts")
	}
}
