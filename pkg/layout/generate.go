package layout

import (
	"math/rand"

	"github.com/ford442/candy-world/pkg/geo"
	"github.com/ford442/candy-world/pkg/manifest"
	"github.com/ford442/candy-world/pkg/spec"
	"github.com/ford442/candy-world/pkg/validation"
)

// Generate runs the full placement pipeline: spawn zone, set-piece
// features, thematic clusters, ambient scatter, filler, ground cover, then
// phase-ordered assembly. The phases are strictly sequential; the only
// state they share is the append-only exclusion set, written by feature
// placement and read by everything after it.
func Generate(s *spec.MapSpec, rng *rand.Rand) (*manifest.Manifest, *validation.Report) {
	report := validation.NewReport()

	zones := NewExclusionSet(geo.Circle{Center: geo.Origin, Radius: s.Spawn.SafeRadius})

	features, featureReport := PlaceFeatures(zones)
	report.Merge(featureReport)

	clusters, clusterReport := GenerateClusters(s, rng, zones)
	report.Merge(clusterReport)

	ambient, ambientReport := GenerateScatter(AmbientPass(s), s, rng, zones)
	report.Merge(ambientReport)

	filler, fillerReport := GenerateScatter(FillerPass(s), s, rng, zones)
	report.Merge(fillerReport)

	groundCover, groundReport := GenerateScatter(GroundCoverPass(s), s, rng, zones)
	report.Merge(groundReport)

	return manifest.Assemble(features, clusters, ambient, filler, groundCover), report
}
