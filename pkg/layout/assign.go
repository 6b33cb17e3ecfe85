package layout

import (
	"math/rand"
	"sort"

	"github.com/ford442/candy-world/pkg/geo"
	"github.com/ford442/candy-world/pkg/manifest"
	"github.com/ford442/candy-world/pkg/taxonomy"
)

// NewItem constructs a placement record for typ at the given ground
// position, applying the taxonomy's stochastic rules at construction time:
// variant draw, base scale draw (multiplied by the variant's scale factor),
// and for sky-anchored types an altitude draw with a size field in place of
// scale.
func NewItem(rng *rand.Rand, typ taxonomy.Type, pos geo.Point2D) manifest.Item {
	entry, _ := taxonomy.Lookup(typ)

	item := manifest.Item{
		Type:     typ,
		Position: [3]float64{pos.X, 0, pos.Z},
	}

	if entry.Sky {
		item.Position[1] = uniformIn(rng, entry.Altitude)
		item.Size = uniformIn(rng, entry.SizeRange)
		return item
	}

	scale := uniformIn(rng, entry.ScaleRange)
	if len(entry.Variants) > 0 {
		vw := drawVariant(rng, entry.Variants)
		item.Variant = vw.Variant
		scale *= vw.ScaleFactor
	}
	item.Scale = scale
	return item
}

func uniformIn(rng *rand.Rand, r taxonomy.Range) float64 {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// drawVariant picks one outcome of a variant distribution.
func drawVariant(rng *rand.Rand, variants []taxonomy.VariantWeight) taxonomy.VariantWeight {
	total := 0.0
	for _, vw := range variants {
		total += vw.Weight
	}
	roll := rng.Float64() * total
	for _, vw := range variants {
		roll -= vw.Weight
		if roll < 0 {
			return vw
		}
	}
	return variants[len(variants)-1]
}

// weightedKey picks a key from a weight table. Keys are walked in sorted
// order so the draw is reproducible under a fixed seed regardless of map
// iteration order.
func weightedKey(rng *rand.Rand, weights map[string]float64) string {
	keys := make([]string, 0, len(weights))
	for k := range weights {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	total := 0.0
	for _, k := range keys {
		total += weights[k]
	}
	roll := rng.Float64() * total
	for _, k := range keys {
		roll -= weights[k]
		if roll < 0 {
			return k
		}
	}
	return keys[len(keys)-1]
}
