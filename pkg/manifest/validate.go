package manifest

import (
	"fmt"
	"math"

	"github.com/ford442/candy-world/pkg/spec"
	"github.com/ford442/candy-world/pkg/taxonomy"
	"github.com/ford442/candy-world/pkg/validation"
)

// ValidateManifest performs structural validation on an assembled manifest:
// every type must belong to the closed set, the scale-versus-size field
// shape must match the type's altitude rule, variants must be legal, sky
// altitudes must fall in their declared range, and nothing except ground
// cover may sit inside the spawn safe radius.
func ValidateManifest(m *Manifest, s *spec.MapSpec) *validation.Report {
	r := validation.NewReport()

	if m == nil {
		r.AddError(validation.Result{
			Level:   validation.LevelSpatial,
			Message: "manifest is nil",
		})
		return r
	}

	for i, item := range m.Items {
		entry, ok := taxonomy.Lookup(item.Type)
		if !ok {
			r.AddError(validation.Result{
				Level:       validation.LevelTaxonomy,
				Message:     fmt.Sprintf("item %d has unknown type %q", i, item.Type),
				SpecPath:    fmt.Sprintf("items[%d].type", i),
				ActualValue: string(item.Type),
				Expected:    "a declared taxonomy type",
			})
			continue
		}

		validateFieldShape(i, item, entry, r)
		validateVariant(i, item, entry, r)
		validateSpawnClearance(i, item, entry, s, r)
	}

	r.AddInfo(validation.Result{
		Level:   validation.LevelSpatial,
		Message: fmt.Sprintf("validated %d items", len(m.Items)),
	})
	return r
}

func validateFieldShape(i int, item Item, entry taxonomy.Entry, r *validation.Report) {
	if entry.Sky {
		if item.Size <= 0 || item.Scale != 0 {
			r.AddError(validation.Result{
				Level:       validation.LevelSpatial,
				Message:     fmt.Sprintf("sky item %d (%s) must carry size, not scale", i, item.Type),
				SpecPath:    fmt.Sprintf("items[%d]", i),
				ActualValue: fmt.Sprintf("scale=%.2f size=%.2f", item.Scale, item.Size),
				Expected:    "size > 0, no scale",
			})
		}
		y := item.Position[1]
		if y < entry.Altitude.Min || y > entry.Altitude.Max {
			r.AddError(validation.Result{
				Level:       validation.LevelSpatial,
				Message:     fmt.Sprintf("sky item %d (%s) altitude %.1f outside range [%.0f, %.0f]", i, item.Type, y, entry.Altitude.Min, entry.Altitude.Max),
				SpecPath:    fmt.Sprintf("items[%d].position", i),
				ActualValue: y,
				Expected:    fmt.Sprintf("%.0f-%.0f", entry.Altitude.Min, entry.Altitude.Max),
			})
		}
		return
	}

	if item.Scale <= 0 || item.Size != 0 {
		r.AddError(validation.Result{
			Level:       validation.LevelSpatial,
			Message:     fmt.Sprintf("ground item %d (%s) must carry scale, not size", i, item.Type),
			SpecPath:    fmt.Sprintf("items[%d]", i),
			ActualValue: fmt.Sprintf("scale=%.2f size=%.2f", item.Scale, item.Size),
			Expected:    "scale > 0, no size",
		})
	}
	if item.Position[1] != 0 {
		r.AddError(validation.Result{
			Level:       validation.LevelSpatial,
			Message:     fmt.Sprintf("ground item %d (%s) has y=%.2f, want 0", i, item.Type, item.Position[1]),
			SpecPath:    fmt.Sprintf("items[%d].position", i),
			ActualValue: item.Position[1],
			Expected:    "0",
		})
	}
}

func validateVariant(i int, item Item, entry taxonomy.Entry, r *validation.Report) {
	if item.Variant == "" {
		return
	}
	for _, vw := range entry.Variants {
		if vw.Variant == item.Variant {
			return
		}
	}
	r.AddError(validation.Result{
		Level:       validation.LevelTaxonomy,
		Message:     fmt.Sprintf("item %d (%s) has variant %q not declared by its taxonomy entry", i, item.Type, item.Variant),
		SpecPath:    fmt.Sprintf("items[%d].variant", i),
		ActualValue: string(item.Variant),
	})
}

func validateSpawnClearance(i int, item Item, entry taxonomy.Entry, s *spec.MapSpec, r *validation.Report) {
	if entry.Family == taxonomy.FamilyGroundCover {
		return
	}
	dist := math.Hypot(item.Position[0], item.Position[2])
	if dist < s.Spawn.SafeRadius {
		r.AddError(validation.Result{
			Level:       validation.LevelSpatial,
			Message:     fmt.Sprintf("item %d (%s) at distance %.1f intrudes on the spawn safe radius %.0f", i, item.Type, dist, s.Spawn.SafeRadius),
			SpecPath:    fmt.Sprintf("items[%d].position", i),
			ActualValue: dist,
			Expected:    fmt.Sprintf(">= %.0f", s.Spawn.SafeRadius),
		})
	}
}
