package validation

import (
	"fmt"

	"github.com/ford442/candy-world/pkg/spec"
	"github.com/ford442/candy-world/pkg/taxonomy"
)

// ValidateSchema checks a parsed MapSpec for structural correctness before
// any generation runs. A weighting table that names an unknown type or
// family is an error here, never a mid-generation surprise.
func ValidateSchema(s *spec.MapSpec) *Report {
	r := NewReport()

	validateMap(s, r)
	validateSpawn(s, r)
	validateClusters(s, r)
	validateScatter(s, r)
	validateOutput(s, r)

	return r
}

func validateMap(s *spec.MapSpec, r *Report) {
	if s.Map.Radius <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "map radius must be greater than 0",
			SpecPath:    "map.radius",
			ActualValue: s.Map.Radius,
			Expected:    "> 0",
		})
	}
}

func validateSpawn(s *spec.MapSpec, r *Report) {
	if s.Spawn.SafeRadius < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "spawn safe_radius must be non-negative",
			SpecPath:    "spawn.safe_radius",
			ActualValue: s.Spawn.SafeRadius,
			Expected:    ">= 0",
		})
	}
	if s.Map.Radius > 0 && s.Spawn.SafeRadius >= s.Map.Radius {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("spawn safe_radius %.0f covers the whole map (radius %.0f)", s.Spawn.SafeRadius, s.Map.Radius),
			SpecPath:    "spawn.safe_radius",
			ActualValue: s.Spawn.SafeRadius,
			Expected:    fmt.Sprintf("< %.0f", s.Map.Radius),
		})
	}
}

func validateClusters(s *spec.MapSpec, r *Report) {
	c := s.Clusters

	if c.Count < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "clusters.count must be non-negative",
			SpecPath:    "clusters.count",
			ActualValue: c.Count,
			Expected:    ">= 0",
		})
	}
	if c.Count == 0 {
		return
	}

	if c.LocalRadius <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "clusters.local_radius must be greater than 0",
			SpecPath:    "clusters.local_radius",
			ActualValue: c.LocalRadius,
			Expected:    "> 0",
		})
	}
	if c.MinRadius < s.Spawn.SafeRadius {
		r.AddWarning(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("clusters.min_radius %.0f is inside the spawn safe radius %.0f; cluster centers will be rejected until they clear it", c.MinRadius, s.Spawn.SafeRadius),
			SpecPath:    "clusters.min_radius",
			ActualValue: c.MinRadius,
			Suggestions: []string{"Raise clusters.min_radius above spawn.safe_radius to avoid wasted sampling attempts"},
		})
	}

	if len(c.FamilyWeights) == 0 {
		r.AddError(Result{
			Level:    LevelSchema,
			Message:  "clusters.family_weights must declare at least one family",
			SpecPath: "clusters.family_weights",
			Expected: "at least 1 family",
		})
	}
	for name, w := range c.FamilyWeights {
		if len(taxonomy.FamilyTypes(taxonomy.Family(name))) == 0 {
			r.AddError(Result{
				Level:       LevelTaxonomy,
				Message:     fmt.Sprintf("clusters.family_weights references unknown family %q", name),
				SpecPath:    fmt.Sprintf("clusters.family_weights.%s", name),
				ActualValue: name,
				Expected:    "a declared taxonomy family",
			})
		}
		if w <= 0 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("clusters.family_weights.%s must be positive", name),
				SpecPath:    fmt.Sprintf("clusters.family_weights.%s", name),
				ActualValue: w,
				Expected:    "> 0",
			})
		}
	}

	for name, cr := range c.CountRanges {
		if len(taxonomy.FamilyTypes(taxonomy.Family(name))) == 0 {
			r.AddError(Result{
				Level:       LevelTaxonomy,
				Message:     fmt.Sprintf("clusters.count_ranges references unknown family %q", name),
				SpecPath:    fmt.Sprintf("clusters.count_ranges.%s", name),
				ActualValue: name,
				Expected:    "a declared taxonomy family",
			})
		}
		if cr.Min < 1 || cr.Max < cr.Min {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("clusters.count_ranges.%s [%d, %d] is not a valid range", name, cr.Min, cr.Max),
				SpecPath:    fmt.Sprintf("clusters.count_ranges.%s", name),
				ActualValue: fmt.Sprintf("%d-%d", cr.Min, cr.Max),
				Expected:    "1 <= min <= max",
			})
		}
	}
	for name := range c.FamilyWeights {
		if _, ok := c.CountRanges[name]; !ok {
			r.AddError(Result{
				Level:    LevelSchema,
				Message:  fmt.Sprintf("family %q has a cluster weight but no count range", name),
				SpecPath: fmt.Sprintf("clusters.count_ranges.%s", name),
				Expected: "a count range for every weighted family",
			})
		}
	}
}

func validateScatter(s *spec.MapSpec, r *Report) {
	if s.Scatter.MaxAttempts <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "scatter.max_attempts must be greater than 0",
			SpecPath:    "scatter.max_attempts",
			ActualValue: s.Scatter.MaxAttempts,
			Expected:    "> 0",
		})
	}

	validatePass(s.Scatter.Ambient, "scatter.ambient", r)
	validatePass(s.Scatter.Filler, "scatter.filler", r)
	validatePass(s.Scatter.GroundCover, "scatter.ground_cover", r)
}

func validatePass(p spec.PassDef, path string, r *Report) {
	if p.Count < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("%s.count must be non-negative", path),
			SpecPath:    path + ".count",
			ActualValue: p.Count,
			Expected:    ">= 0",
		})
	}
	if p.Count == 0 {
		return
	}
	if len(p.Weights) == 0 {
		r.AddError(Result{
			Level:    LevelSchema,
			Message:  fmt.Sprintf("%s.weights must declare at least one type", path),
			SpecPath: path + ".weights",
			Expected: "at least 1 weighted type",
		})
	}
	for name, w := range p.Weights {
		if !taxonomy.Valid(taxonomy.Type(name)) {
			r.AddError(Result{
				Level:       LevelTaxonomy,
				Message:     fmt.Sprintf("%s.weights references type %q with no taxonomy entry", path, name),
				SpecPath:    fmt.Sprintf("%s.weights.%s", path, name),
				ActualValue: name,
				Expected:    "a declared taxonomy type",
			})
		}
		if w <= 0 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("%s.weights.%s must be positive", path, name),
				SpecPath:    fmt.Sprintf("%s.weights.%s", path, name),
				ActualValue: w,
				Expected:    "> 0",
			})
		}
	}
}

func validateOutput(s *spec.MapSpec, r *Report) {
	if s.Output.Path == "" {
		r.AddError(Result{
			Level:    LevelSchema,
			Message:  "output.path must not be empty",
			SpecPath: "output.path",
			Expected: "a writable file path",
		})
	}
}
