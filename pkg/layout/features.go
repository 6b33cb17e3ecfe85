package layout

import (
	"fmt"
	"math"

	"github.com/ford442/candy-world/pkg/geo"
	"github.com/ford442/candy-world/pkg/manifest"
	"github.com/ford442/candy-world/pkg/taxonomy"
	"github.com/ford442/candy-world/pkg/validation"
)

// Set-piece geometry is hand-authored: fixed centers, fixed counts, explicit
// variant and scale. Nothing here draws from the random source.
const (
	speakerRingCount   = 6
	speakerRingRadius  = 12.0
	speakerRingScale   = 2.0
	speakerRingKeepOut = 16.0

	gladeFlowerCount   = 4
	gladeFlowerRadius  = 5.0
	gladeMushroomScale = 2.5
	gladeKeepOut       = 9.0
)

var (
	speakerRingCenter = geo.Pt(60, 0)
	gladeCenter       = geo.Pt(-45, 70)
)

// PlaceFeatures emits the hand-authored set pieces and registers each
// feature's footprint as an exclusion zone so later phases keep clear.
func PlaceFeatures(zones *ExclusionSet) ([]manifest.Item, *validation.Report) {
	report := validation.NewReport()
	var items []manifest.Item

	items = append(items, speakerRing(zones)...)
	items = append(items, glowingGlade(zones)...)

	report.AddInfo(validation.Result{
		Level:   validation.LevelSpatial,
		Message: fmt.Sprintf("placed %d feature items in 2 set pieces", len(items)),
	})
	return items, report
}

// speakerRing places identical subwoofer lotuses evenly spaced on a circle.
// Angular spacing is exactly 2π/count.
func speakerRing(zones *ExclusionSet) []manifest.Item {
	items := make([]manifest.Item, 0, speakerRingCount)
	for i := 0; i < speakerRingCount; i++ {
		angle := 2 * math.Pi * float64(i) / speakerRingCount
		p := geo.OnCircle(speakerRingCenter, speakerRingRadius, angle)
		items = append(items, manifest.Item{
			Type:     taxonomy.TypeSubwooferLotus,
			Position: [3]float64{p.X, 0, p.Z},
			Scale:    speakerRingScale,
		})
	}

	zones.Add(geo.Circle{Center: speakerRingCenter, Radius: speakerRingKeepOut})
	return items
}

// glowingGlade places a giant mushroom centerpiece ringed by glowing
// flowers.
func glowingGlade(zones *ExclusionSet) []manifest.Item {
	items := []manifest.Item{{
		Type:     taxonomy.TypeMushroom,
		Position: [3]float64{gladeCenter.X, 0, gladeCenter.Z},
		Scale:    gladeMushroomScale,
		Variant:  taxonomy.VariantGiant,
	}}

	for i := 0; i < gladeFlowerCount; i++ {
		angle := 2 * math.Pi * float64(i) / gladeFlowerCount
		p := geo.OnCircle(gladeCenter, gladeFlowerRadius, angle)
		items = append(items, manifest.Item{
			Type:     taxonomy.TypeFlower,
			Position: [3]float64{p.X, 0, p.Z},
			Scale:    1.0,
			Variant:  taxonomy.VariantGlowing,
		})
	}

	zones.Add(geo.Circle{Center: gladeCenter, Radius: gladeKeepOut})
	return items
}
