package manifest

import "github.com/ford442/candy-world/pkg/taxonomy"

// Item is one placement record in the output artifact. The field layout is
// the contract with the renderer: ground items carry scale, sky-anchored
// items carry size, and variant appears only for types whose taxonomy entry
// declares one.
type Item struct {
	Type     taxonomy.Type    `json:"type" jsonschema:"title=Object type,description=One of the closed taxonomy type identifiers"`
	Position [3]float64       `json:"position" jsonschema:"title=Position,description=World position [x y z]; y is 0 for ground items"`
	Scale    float64          `json:"scale,omitempty" jsonschema:"title=Scale,description=Multiplicative size factor for ground items"`
	Size     float64          `json:"size,omitempty" jsonschema:"title=Size,description=Billboard size for sky-anchored items; replaces scale"`
	Variant  taxonomy.Variant `json:"variant,omitempty" jsonschema:"title=Variant,description=Visual variant tag when the type declares variants"`
}

// Items is the full artifact: an ordered sequence of placement records.
// Order is the renderer's draw order, so it is part of the contract, not an
// accident of append order.
type Items []Item

// Stats counts what each phase emitted. Stats are operator-facing only and
// never appear in the artifact.
type Stats struct {
	Features    int `json:"features"`
	Clusters    int `json:"clusters"`
	Ambient     int `json:"ambient"`
	Filler      int `json:"filler"`
	GroundCover int `json:"ground_cover"`
	Total       int `json:"total"`
}

// Manifest is the assembled output of one generation run.
type Manifest struct {
	Items Items `json:"items"`
	Stats Stats `json:"stats"`
}

// Assemble concatenates the phase outputs in the fixed declared order:
// features, thematic clusters, ambient scatter, filler, ground cover.
func Assemble(features, clusters, ambient, filler, groundCover []Item) *Manifest {
	total := len(features) + len(clusters) + len(ambient) + len(filler) + len(groundCover)
	items := make(Items, 0, total)
	items = append(items, features...)
	items = append(items, clusters...)
	items = append(items, ambient...)
	items = append(items, filler...)
	items = append(items, groundCover...)

	return &Manifest{
		Items: items,
		Stats: Stats{
			Features:    len(features),
			Clusters:    len(clusters),
			Ambient:     len(ambient),
			Filler:      len(filler),
			GroundCover: len(groundCover),
			Total:       total,
		},
	}
}
