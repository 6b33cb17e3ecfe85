package taxonomy

import "fmt"

// Family groups object types that cluster together thematically.
type Family string

const (
	FamilyRhythm      Family = "rhythm"
	FamilyMelody      Family = "melody"
	FamilyAmbient     Family = "ambient"
	FamilyFiller      Family = "filler"
	FamilyGroundCover Family = "ground-cover"
)

// Type identifies one placeable object. The set is closed: the renderer
// treats any string outside this set as a fatal load error.
type Type string

const (
	TypeMushroom         Type = "mushroom"
	TypeFlower           Type = "flower"
	TypeSubwooferLotus   Type = "subwoofer_lotus"
	TypeAccordionPalm    Type = "accordion_palm"
	TypeFiberOpticWillow Type = "fiber_optic_willow"
	TypeFloatingOrb      Type = "floating_orb"
	TypeSwingableVine    Type = "swingable_vine"
	TypePrismRoseBush    Type = "prism_rose_bush"
	TypeStarflower       Type = "starflower"
	TypeVibratoViolet    Type = "vibrato_violet"
	TypeTremoloTulip     Type = "tremolo_tulip"
	TypeKickDrumGeyser   Type = "kick_drum_geyser"
	TypeArpeggioFern     Type = "arpeggio_fern"
	TypePortamentoPine   Type = "portamento_pine"
	TypeCymbalDandelion  Type = "cymbal_dandelion"
	TypeSnareTrap        Type = "snare_trap"
	TypeBubbleWillow     Type = "bubble_willow"
	TypeHelixPlant       Type = "helix_plant"
	TypeBalloonBush      Type = "balloon_bush"
	TypeWisteriaCluster  Type = "wisteria_cluster"
	TypeCloud            Type = "cloud"
	TypeGrass            Type = "grass"
)

// Variant is a visual variation tag within a type.
type Variant string

const (
	VariantRegular Variant = "regular"
	VariantGiant   Variant = "giant"
	VariantGlowing Variant = "glowing"
)

// VariantWeight is one outcome of a type's variant distribution.
// ScaleFactor multiplies the base scale draw when this variant is chosen.
type VariantWeight struct {
	Variant     Variant
	Weight      float64
	ScaleFactor float64
}

// Range is an inclusive numeric interval.
type Range struct {
	Min float64
	Max float64
}

// Entry declares how one object type is placed and decorated.
// Sky-anchored types hover at an altitude and emit a size field; ground
// types sit at y=0 and emit a scale field.
type Entry struct {
	Family     Family
	ScaleRange Range
	Variants   []VariantWeight // nil when the type has no variants

	Sky       bool
	Altitude  Range // sky only
	SizeRange Range // sky only, replaces ScaleRange
}

var entries = map[Type]Entry{
	TypeSubwooferLotus:  {Family: FamilyRhythm, ScaleRange: Range{0.8, 1.2}},
	TypeKickDrumGeyser:  {Family: FamilyRhythm, ScaleRange: Range{0.8, 1.2}},
	TypeSnareTrap:       {Family: FamilyRhythm, ScaleRange: Range{0.8, 1.2}},
	TypeCymbalDandelion: {Family: FamilyRhythm, ScaleRange: Range{0.8, 1.2}},

	TypeAccordionPalm:    {Family: FamilyMelody, ScaleRange: Range{0.8, 1.2}},
	TypeFiberOpticWillow: {Family: FamilyMelody, ScaleRange: Range{0.8, 1.2}},
	TypeArpeggioFern:     {Family: FamilyMelody, ScaleRange: Range{0.8, 1.2}},
	TypePortamentoPine:   {Family: FamilyMelody, ScaleRange: Range{0.8, 1.2}},
	TypeVibratoViolet:    {Family: FamilyMelody, ScaleRange: Range{0.8, 1.2}},
	TypeTremoloTulip:     {Family: FamilyMelody, ScaleRange: Range{0.8, 1.2}},
	TypeBubbleWillow:     {Family: FamilyMelody, ScaleRange: Range{0.8, 1.2}},
	TypeWisteriaCluster:  {Family: FamilyMelody, ScaleRange: Range{0.8, 1.2}},

	TypeStarflower:    {Family: FamilyAmbient, ScaleRange: Range{0.8, 1.2}},
	TypePrismRoseBush: {Family: FamilyAmbient, ScaleRange: Range{0.8, 1.2}},
	TypeHelixPlant:    {Family: FamilyAmbient, ScaleRange: Range{0.8, 1.2}},
	TypeBalloonBush:   {Family: FamilyAmbient, ScaleRange: Range{0.8, 1.2}},
	TypeSwingableVine: {Family: FamilyAmbient, ScaleRange: Range{0.8, 1.2}},
	TypeFloatingOrb: {
		Family:    FamilyAmbient,
		Sky:       true,
		Altitude:  Range{4, 10},
		SizeRange: Range{0.8, 1.2},
	},
	TypeCloud: {
		Family:    FamilyAmbient,
		Sky:       true,
		Altitude:  Range{40, 80},
		SizeRange: Range{1.5, 2.5},
	},

	TypeMushroom: {
		Family:     FamilyFiller,
		ScaleRange: Range{0.8, 1.2},
		Variants: []VariantWeight{
			{Variant: VariantRegular, Weight: 0.8, ScaleFactor: 1.0},
			{Variant: VariantGiant, Weight: 0.2, ScaleFactor: 1.5},
		},
	},
	TypeFlower: {
		Family:     FamilyFiller,
		ScaleRange: Range{0.8, 1.2},
		Variants: []VariantWeight{
			{Variant: VariantRegular, Weight: 0.5, ScaleFactor: 1.0},
			{Variant: VariantGlowing, Weight: 0.5, ScaleFactor: 1.0},
		},
	},

	TypeGrass: {Family: FamilyGroundCover, ScaleRange: Range{0.7, 1.3}},
}

// familyTypes fixes the per-family type order so weighted and uniform
// choices are stable across runs with the same seed.
var familyTypes = map[Family][]Type{
	FamilyRhythm: {
		TypeSubwooferLotus, TypeKickDrumGeyser, TypeSnareTrap, TypeCymbalDandelion,
	},
	FamilyMelody: {
		TypeAccordionPalm, TypeFiberOpticWillow, TypeArpeggioFern,
		TypePortamentoPine, TypeVibratoViolet, TypeTremoloTulip,
		TypeBubbleWillow, TypeWisteriaCluster,
	},
	FamilyAmbient: {
		TypeStarflower, TypePrismRoseBush, TypeHelixPlant, TypeBalloonBush,
		TypeSwingableVine, TypeFloatingOrb, TypeCloud,
	},
	FamilyFiller:      {TypeMushroom, TypeFlower},
	FamilyGroundCover: {TypeGrass},
}

// Lookup returns the taxonomy entry for a type.
func Lookup(t Type) (Entry, bool) {
	e, ok := entries[t]
	return e, ok
}

// Valid reports whether t belongs to the closed type set.
func Valid(t Type) bool {
	_, ok := entries[t]
	return ok
}

// FamilyTypes returns the declared types of a family in stable order.
// The returned slice must not be modified.
func FamilyTypes(f Family) []Type {
	return familyTypes[f]
}

// Families lists the declared families in stable order.
func Families() []Family {
	return []Family{
		FamilyRhythm, FamilyMelody, FamilyAmbient, FamilyFiller, FamilyGroundCover,
	}
}

// Types lists every declared type in stable order (family order, then the
// family's declared order).
func Types() []Type {
	var all []Type
	for _, f := range Families() {
		all = append(all, familyTypes[f]...)
	}
	return all
}

// Validate checks the internal consistency of the compiled-in table.
// It runs once at startup so a misconfigured entry fails the run before
// any generation happens.
func Validate() error {
	for _, f := range Families() {
		if len(familyTypes[f]) == 0 {
			return fmt.Errorf("family %q declares no types", f)
		}
		for _, t := range familyTypes[f] {
			e, ok := entries[t]
			if !ok {
				return fmt.Errorf("family %q lists type %q with no taxonomy entry", f, t)
			}
			if e.Family != f {
				return fmt.Errorf("type %q listed under family %q but declares %q", t, f, e.Family)
			}
		}
	}
	for t, e := range entries {
		if e.Sky {
			if e.Altitude.Min >= e.Altitude.Max {
				return fmt.Errorf("sky type %q has invalid altitude range [%v, %v]", t, e.Altitude.Min, e.Altitude.Max)
			}
			if e.SizeRange.Min >= e.SizeRange.Max {
				return fmt.Errorf("sky type %q has invalid size range [%v, %v]", t, e.SizeRange.Min, e.SizeRange.Max)
			}
		} else if e.ScaleRange.Min >= e.ScaleRange.Max {
			return fmt.Errorf("type %q has invalid scale range [%v, %v]", t, e.ScaleRange.Min, e.ScaleRange.Max)
		}
		if len(e.Variants) > 0 {
			sum := 0.0
			for _, v := range e.Variants {
				if v.Weight <= 0 {
					return fmt.Errorf("type %q variant %q has non-positive weight", t, v.Variant)
				}
				if v.ScaleFactor <= 0 {
					return fmt.Errorf("type %q variant %q has non-positive scale factor", t, v.Variant)
				}
				sum += v.Weight
			}
			if sum < 0.999 || sum > 1.001 {
				return fmt.Errorf("type %q variant weights sum to %.4f, want 1.0", t, sum)
			}
		}
	}
	return nil
}
