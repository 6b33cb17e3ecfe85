package spec

// MapSpec is the top-level set of generation parameters for a candy-world
// map. Every field has a compiled-in default (see Default), so a project
// file only needs to name what it overrides.
type MapSpec struct {
	SpecVersion string      `yaml:"spec_version" json:"spec_version"`
	Map         MapDef      `yaml:"map" json:"map"`
	Spawn       SpawnDef    `yaml:"spawn" json:"spawn"`
	Clusters    ClustersDef `yaml:"clusters" json:"clusters"`
	Scatter     ScatterDef  `yaml:"scatter" json:"scatter"`
	Output      OutputDef   `yaml:"output" json:"output"`
}

type MapDef struct {
	Radius float64 `yaml:"radius" json:"radius"`
	// Seed drives all random draws. Zero means derive a seed from the
	// clock, so every run produces a different map.
	Seed int64 `yaml:"seed" json:"seed"`
}

// SpawnDef describes the player start area at the origin. Nothing except
// ground cover is placed inside the safe radius.
type SpawnDef struct {
	SafeRadius float64 `yaml:"safe_radius" json:"safe_radius"`
}

type ClustersDef struct {
	Count       int     `yaml:"count" json:"count"`
	MinRadius   float64 `yaml:"min_radius" json:"min_radius"`
	LocalRadius float64 `yaml:"local_radius" json:"local_radius"`
	// FamilyWeights biases which thematic family anchors each cluster.
	FamilyWeights map[string]float64 `yaml:"family_weights" json:"family_weights"`
	// CountRanges sets the per-cluster item count range by family.
	CountRanges map[string]CountRange `yaml:"count_ranges" json:"count_ranges"`
}

type CountRange struct {
	Min int `yaml:"min" json:"min"`
	Max int `yaml:"max" json:"max"`
}

type ScatterDef struct {
	// MaxAttempts bounds rejection sampling per placement. On exhaustion
	// the placement is skipped and counted, never retried forever.
	MaxAttempts int     `yaml:"max_attempts" json:"max_attempts"`
	Ambient     PassDef `yaml:"ambient" json:"ambient"`
	Filler      PassDef `yaml:"filler" json:"filler"`
	GroundCover PassDef `yaml:"ground_cover" json:"ground_cover"`
}

// PassDef parameterizes one global scatter invocation.
type PassDef struct {
	Count   int                `yaml:"count" json:"count"`
	Weights map[string]float64 `yaml:"weights" json:"weights"`
}

type OutputDef struct {
	Path string `yaml:"path" json:"path"`
}

// Default returns the compiled-in generation parameters. They reproduce
// the shipped map: 30 flora clusters, a sky layer, and dense ground cover
// on a 150-unit disc.
func Default() *MapSpec {
	return &MapSpec{
		SpecVersion: "0.1.0",
		Map: MapDef{
			Radius: 150,
		},
		Spawn: SpawnDef{
			SafeRadius: 20,
		},
		Clusters: ClustersDef{
			Count:       30,
			MinRadius:   25,
			LocalRadius: 5,
			FamilyWeights: map[string]float64{
				"rhythm": 0.5,
				"melody": 0.5,
			},
			CountRanges: map[string]CountRange{
				"rhythm": {Min: 4, Max: 12},
				// Melody holds the large tree-stature types, so its
				// clusters stay small.
				"melody": {Min: 2, Max: 6},
			},
		},
		Scatter: ScatterDef{
			MaxAttempts: 100,
			Ambient: PassDef{
				Count: 80,
				Weights: map[string]float64{
					"starflower":      0.2,
					"prism_rose_bush": 0.15,
					"helix_plant":     0.1,
					"balloon_bush":    0.1,
					"swingable_vine":  0.1,
					"floating_orb":    0.1,
					"cloud":           0.25,
				},
			},
			Filler: PassDef{
				Count: 120,
				Weights: map[string]float64{
					"mushroom": 0.6,
					"flower":   0.4,
				},
			},
			GroundCover: PassDef{
				Count: 3000,
				Weights: map[string]float64{
					"grass": 1.0,
				},
			},
		},
		Output: OutputDef{
			Path: "assets/map.json",
		},
	}
}
