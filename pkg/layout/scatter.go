package layout

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/ford442/candy-world/pkg/geo"
	"github.com/ford442/candy-world/pkg/manifest"
	"github.com/ford442/candy-world/pkg/spec"
	"github.com/ford442/candy-world/pkg/taxonomy"
	"github.com/ford442/candy-world/pkg/validation"
)

// ScatterPass parameterizes one global scatter invocation. The ambient,
// filler, and ground-cover phases are the same generator with different
// counts, weights, and exclusion discipline.
type ScatterPass struct {
	Name      string
	Count     int
	Weights   map[string]float64
	MinRadius float64
	MaxRadius float64
	// CheckExclusions is off for ground cover only: grass stays visually
	// continuous under the player's feet and inside feature footprints.
	CheckExclusions bool
}

// AmbientPass builds the ambient scatter parameters from the spec.
func AmbientPass(s *spec.MapSpec) ScatterPass {
	return ScatterPass{
		Name:            "ambient",
		Count:           s.Scatter.Ambient.Count,
		Weights:         s.Scatter.Ambient.Weights,
		MinRadius:       s.Spawn.SafeRadius,
		MaxRadius:       s.Map.Radius,
		CheckExclusions: true,
	}
}

// FillerPass builds the filler scatter parameters from the spec.
func FillerPass(s *spec.MapSpec) ScatterPass {
	return ScatterPass{
		Name:            "filler",
		Count:           s.Scatter.Filler.Count,
		Weights:         s.Scatter.Filler.Weights,
		MinRadius:       s.Spawn.SafeRadius,
		MaxRadius:       s.Map.Radius,
		CheckExclusions: true,
	}
}

// GroundCoverPass builds the ground-cover parameters: full disc, no lower
// bound, exclusions ignored.
func GroundCoverPass(s *spec.MapSpec) ScatterPass {
	return ScatterPass{
		Name:            "ground-cover",
		Count:           s.Scatter.GroundCover.Count,
		Weights:         s.Scatter.GroundCover.Weights,
		MinRadius:       0,
		MaxRadius:       s.Map.Radius,
		CheckExclusions: false,
	}
}

// GenerateScatter places pass.Count weighted-type items over the annulus.
// Each placement gets a bounded retry budget against the exclusion set; on
// exhaustion the item is skipped, so the emitted count may fall short of
// the requested count. The shortfall is counted and reported, never
// silently absorbed.
func GenerateScatter(pass ScatterPass, s *spec.MapSpec, rng *rand.Rand, zones *ExclusionSet) ([]manifest.Item, *validation.Report) {
	report := validation.NewReport()
	sampler := NewSampler(rng)

	items := make([]manifest.Item, 0, pass.Count)
	skipped := 0

	for i := 0; i < pass.Count; i++ {
		var p geo.Point2D
		if pass.CheckExclusions {
			var err error
			p, err = sampler.OutsideExclusions(pass.MinRadius, pass.MaxRadius, zones, s.Scatter.MaxAttempts)
			if errors.Is(err, ErrUnsatisfiable) {
				skipped++
				continue
			}
		} else {
			p = sampler.Annulus(pass.MinRadius, pass.MaxRadius)
		}

		typ := taxonomy.Type(weightedKey(rng, pass.Weights))
		items = append(items, NewItem(rng, typ, p))
	}

	if skipped > 0 {
		report.AddWarning(validation.Result{
			Level:       validation.LevelSpatial,
			Message:     fmt.Sprintf("%s scatter: skipped %d of %d placements after %d attempts each", pass.Name, skipped, pass.Count, s.Scatter.MaxAttempts),
			SpecPath:    "scatter." + pass.Name,
			ActualValue: skipped,
		})
	}
	report.AddInfo(validation.Result{
		Level:   validation.LevelSpatial,
		Message: fmt.Sprintf("%s scatter: placed %d of %d items", pass.Name, len(items), pass.Count),
	})
	return items, report
}
