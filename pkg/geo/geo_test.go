package geo

import (
	"math"
	"testing"
)

const tolerance = 0.01

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

// --- Point2D tests ---

func TestPointDistance(t *testing.T) {
	a := Pt(0, 0)
	b := Pt(3, 4)
	if !approxEqual(a.Distance(b), 5.0, tolerance) {
		t.Errorf("expected distance 5.0, got %f", a.Distance(b))
	}
}

func TestPointAngle(t *testing.T) {
	p := Pt(1, 0)
	if !approxEqual(p.Angle(), 0, tolerance) {
		t.Errorf("expected angle 0, got %f", p.Angle())
	}
	p2 := Pt(0, 1)
	if !approxEqual(p2.Angle(), math.Pi/2, tolerance) {
		t.Errorf("expected angle pi/2, got %f", p2.Angle())
	}
}

func TestPolarRoundTrip(t *testing.T) {
	p := Polar(math.Pi/3, 10)
	if !approxEqual(p.Length(), 10, tolerance) {
		t.Errorf("expected length 10, got %f", p.Length())
	}
	if !approxEqual(p.Angle(), math.Pi/3, tolerance) {
		t.Errorf("expected angle pi/3, got %f", p.Angle())
	}
}

func TestOnCircle(t *testing.T) {
	center := Pt(10, -5)
	p := OnCircle(center, 7, math.Pi/2)
	if !approxEqual(center.Distance(p), 7, tolerance) {
		t.Errorf("expected distance 7 from center, got %f", center.Distance(p))
	}
}

// --- Circle tests ---

func TestCircleContains(t *testing.T) {
	c := Circle{Center: Pt(0, 0), Radius: 5}
	if !c.Contains(Pt(3, 0)) {
		t.Error("expected (3,0) inside circle of radius 5")
	}
	if c.Contains(Pt(6, 0)) {
		t.Error("expected (6,0) outside circle of radius 5")
	}
	// Boundary is outside: Contains is strict.
	if c.Contains(Pt(5, 0)) {
		t.Error("expected boundary point (5,0) not contained")
	}
}

func TestContainsAny(t *testing.T) {
	zones := []Circle{
		{Center: Pt(0, 0), Radius: 5},
		{Center: Pt(20, 0), Radius: 3},
	}
	if !ContainsAny(zones, Pt(19, 0)) {
		t.Error("expected (19,0) inside second circle")
	}
	if ContainsAny(zones, Pt(10, 0)) {
		t.Error("expected (10,0) outside both circles")
	}
	if ContainsAny(nil, Pt(0, 0)) {
		t.Error("expected nothing contained by empty zone list")
	}
}
