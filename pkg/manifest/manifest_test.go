package manifest

import (
	"testing"

	"github.com/ford442/candy-world/pkg/taxonomy"
)

func groundItem(typ taxonomy.Type, x, z float64) Item {
	return Item{Type: typ, Position: [3]float64{x, 0, z}, Scale: 1.0}
}

func TestAssembleOrder(t *testing.T) {
	features := []Item{groundItem(taxonomy.TypeSubwooferLotus, 60, 0)}
	clusters := []Item{groundItem(taxonomy.TypeArpeggioFern, 40, 40)}
	ambient := []Item{{Type: taxonomy.TypeCloud, Position: [3]float64{10, 50, 10}, Size: 2.0}}
	filler := []Item{groundItem(taxonomy.TypeMushroom, 30, -30)}
	ground := []Item{groundItem(taxonomy.TypeGrass, 1, 1), groundItem(taxonomy.TypeGrass, 2, 2)}

	m := Assemble(features, clusters, ambient, filler, ground)

	want := []taxonomy.Type{
		taxonomy.TypeSubwooferLotus,
		taxonomy.TypeArpeggioFern,
		taxonomy.TypeCloud,
		taxonomy.TypeMushroom,
		taxonomy.TypeGrass,
		taxonomy.TypeGrass,
	}
	if len(m.Items) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(m.Items))
	}
	for i, typ := range want {
		if m.Items[i].Type != typ {
			t.Errorf("item %d type %q, want %q", i, m.Items[i].Type, typ)
		}
	}
}

func TestAssembleStats(t *testing.T) {
	m := Assemble(
		[]Item{groundItem(taxonomy.TypeSubwooferLotus, 60, 0)},
		nil,
		nil,
		[]Item{groundItem(taxonomy.TypeFlower, 30, 0), groundItem(taxonomy.TypeMushroom, 31, 0)},
		[]Item{groundItem(taxonomy.TypeGrass, 1, 1)},
	)

	if m.Stats.Features != 1 || m.Stats.Clusters != 0 || m.Stats.Filler != 2 || m.Stats.GroundCover != 1 {
		t.Errorf("unexpected stats: %+v", m.Stats)
	}
	if m.Stats.Total != 4 {
		t.Errorf("total = %d, want 4", m.Stats.Total)
	}
}

func TestAssembleEmptyPhases(t *testing.T) {
	m := Assemble(nil, nil, nil, nil, nil)
	if len(m.Items) != 0 {
		t.Errorf("expected empty manifest, got %d items", len(m.Items))
	}
	if m.Stats.Total != 0 {
		t.Errorf("total = %d, want 0", m.Stats.Total)
	}
}
