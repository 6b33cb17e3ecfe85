package layout

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/ford442/candy-world/pkg/geo"
)

func testRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func TestAnnulusBounds(t *testing.T) {
	s := NewSampler(testRNG(1))

	for i := 0; i < 1000; i++ {
		p := s.Annulus(20, 150)
		d := p.Length()
		if d < 20-1e-9 || d > 150+1e-9 {
			t.Fatalf("sample %d at distance %f outside [20, 150]", i, d)
		}
	}
}

func TestAnnulusDegenerateRange(t *testing.T) {
	s := NewSampler(testRNG(1))
	p := s.Annulus(30, 30)
	if d := p.Length(); d < 30-1e-9 || d > 30+1e-9 {
		t.Errorf("expected distance 30 for collapsed annulus, got %f", d)
	}
}

func TestOffsetStaysLocal(t *testing.T) {
	s := NewSampler(testRNG(2))
	center := geo.Pt(40, 0)

	for i := 0; i < 1000; i++ {
		p := s.Offset(center, 8)
		if center.Distance(p) > 8+1e-9 {
			t.Fatalf("offset %d at distance %f from center, want <= 8", i, center.Distance(p))
		}
	}
}

// Fifty draws over [20, 150] against a radius-20 zone at the origin: every
// accepted point clears the zone and stays inside the outer radius.
func TestOutsideExclusionsScenario(t *testing.T) {
	s := NewSampler(testRNG(3))
	zones := NewExclusionSet(geo.Circle{Center: geo.Origin, Radius: 20})

	for i := 0; i < 50; i++ {
		p, err := s.OutsideExclusions(20, 150, zones, 100)
		if err != nil {
			t.Fatalf("draw %d failed: %v", i, err)
		}
		d := p.Length()
		if d < 20 || d > 150+1e-9 {
			t.Fatalf("draw %d at distance %f, want within [20, 150]", i, d)
		}
	}
}

func TestOutsideExclusionsRespectsOffCenterZones(t *testing.T) {
	s := NewSampler(testRNG(4))
	zone := geo.Circle{Center: geo.Pt(60, 0), Radius: 16}
	zones := NewExclusionSet(zone)

	for i := 0; i < 200; i++ {
		p, err := s.OutsideExclusions(10, 150, zones, 100)
		if err != nil {
			t.Fatalf("draw %d failed: %v", i, err)
		}
		if zone.Contains(p) {
			t.Fatalf("draw %d landed inside the zone at %v", i, p)
		}
	}
}

func TestOutsideExclusionsUnsatisfiable(t *testing.T) {
	s := NewSampler(testRNG(5))
	// A zone covering the whole annulus leaves no free area.
	zones := NewExclusionSet(geo.Circle{Center: geo.Origin, Radius: 200})

	_, err := s.OutsideExclusions(20, 150, zones, 100)
	if !errors.Is(err, ErrUnsatisfiable) {
		t.Fatalf("expected ErrUnsatisfiable, got %v", err)
	}
}

func TestSamplerIsDeterministic(t *testing.T) {
	a := NewSampler(testRNG(7))
	b := NewSampler(testRNG(7))

	for i := 0; i < 100; i++ {
		pa := a.Annulus(10, 100)
		pb := b.Annulus(10, 100)
		if pa != pb {
			t.Fatalf("draw %d differs: %v vs %v", i, pa, pb)
		}
	}
}

func TestExclusionSetAppendOnly(t *testing.T) {
	zones := NewExclusionSet(geo.Circle{Center: geo.Origin, Radius: 20})
	if len(zones.Zones()) != 1 {
		t.Fatalf("expected 1 seed zone, got %d", len(zones.Zones()))
	}

	zones.Add(geo.Circle{Center: geo.Pt(60, 0), Radius: 16})
	if len(zones.Zones()) != 2 {
		t.Fatalf("expected 2 zones after Add, got %d", len(zones.Zones()))
	}

	if !zones.Contains(geo.Pt(55, 0)) {
		t.Error("expected point inside the added zone to be contained")
	}
	if zones.Contains(geo.Pt(100, 100)) {
		t.Error("expected far point to be outside all zones")
	}
}
