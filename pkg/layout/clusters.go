package layout

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/ford442/candy-world/pkg/manifest"
	"github.com/ford442/candy-world/pkg/spec"
	"github.com/ford442/candy-world/pkg/taxonomy"
	"github.com/ford442/candy-world/pkg/validation"
)

// GenerateClusters scatters thematic groups of same-family flora. Each
// cluster picks a weighted family and an item count, places its center
// outside all exclusion zones, then sprinkles items within the local
// radius. Items that land inside an exclusion zone are dropped, not
// redrawn, so a cluster hugging a zone boundary simply comes out thinner.
// Clusters register no exclusion zones of their own; later clusters may
// overlap earlier ones.
func GenerateClusters(s *spec.MapSpec, rng *rand.Rand, zones *ExclusionSet) ([]manifest.Item, *validation.Report) {
	report := validation.NewReport()
	sampler := NewSampler(rng)

	var items []manifest.Item
	skippedClusters := 0
	droppedItems := 0
	maxCenterRadius := s.Map.Radius * 0.9

	for i := 0; i < s.Clusters.Count; i++ {
		family := taxonomy.Family(weightedKey(rng, s.Clusters.FamilyWeights))
		countRange := s.Clusters.CountRanges[string(family)]
		count := sampler.intBetween(countRange.Min, countRange.Max)

		center, err := sampler.OutsideExclusions(s.Clusters.MinRadius, maxCenterRadius, zones, s.Scatter.MaxAttempts)
		if err != nil {
			if errors.Is(err, ErrUnsatisfiable) {
				skippedClusters++
				continue
			}
			report.AddError(validation.Result{
				Level:   validation.LevelSpatial,
				Message: fmt.Sprintf("cluster %d center placement: %v", i, err),
			})
			continue
		}

		types := taxonomy.FamilyTypes(family)
		for j := 0; j < count; j++ {
			p := sampler.Offset(center, s.Clusters.LocalRadius)
			if zones.Contains(p) {
				droppedItems++
				continue
			}
			typ := types[rng.Intn(len(types))]
			items = append(items, NewItem(rng, typ, p))
		}
	}

	if skippedClusters > 0 {
		report.AddWarning(validation.Result{
			Level:       validation.LevelSpatial,
			Message:     fmt.Sprintf("skipped %d of %d clusters: no center found outside exclusion zones within %d attempts", skippedClusters, s.Clusters.Count, s.Scatter.MaxAttempts),
			SpecPath:    "clusters",
			ActualValue: skippedClusters,
		})
	}
	if droppedItems > 0 {
		report.AddInfo(validation.Result{
			Level:   validation.LevelSpatial,
			Message: fmt.Sprintf("dropped %d cluster items that fell inside exclusion zones", droppedItems),
		})
	}
	report.AddInfo(validation.Result{
		Level:   validation.LevelSpatial,
		Message: fmt.Sprintf("placed %d items in %d clusters", len(items), s.Clusters.Count-skippedClusters),
	})
	return items, report
}
