package geo

import "math"

// Point2D represents a point in the XZ plane (Y is up in the 3D scene).
type Point2D struct {
	X float64 `json:"x"`
	Z float64 `json:"z"`
}

// Origin is the zero point.
var Origin = Point2D{0, 0}

// Pt is a shorthand constructor for Point2D.
func Pt(x, z float64) Point2D {
	return Point2D{X: x, Z: z}
}

// Add returns p + q.
func (p Point2D) Add(q Point2D) Point2D {
	return Point2D{p.X + q.X, p.Z + q.Z}
}

// Sub returns p - q.
func (p Point2D) Sub(q Point2D) Point2D {
	return Point2D{p.X - q.X, p.Z - q.Z}
}

// Scale returns p * s.
func (p Point2D) Scale(s float64) Point2D {
	return Point2D{p.X * s, p.Z * s}
}

// Length returns the Euclidean length of the vector.
func (p Point2D) Length() float64 {
	return math.Hypot(p.X, p.Z)
}

// Distance returns the Euclidean distance from p to q.
func (p Point2D) Distance(q Point2D) float64 {
	return p.Sub(q).Length()
}

// Angle returns the angle of the vector from the positive X axis in radians.
func (p Point2D) Angle() float64 {
	return math.Atan2(p.Z, p.X)
}

// Polar converts an angle (radians) and radial distance into a point.
func Polar(angle, dist float64) Point2D {
	return Point2D{
		X: math.Cos(angle) * dist,
		Z: math.Sin(angle) * dist,
	}
}

// OnCircle returns the point at the given angle on a circle around center.
func OnCircle(center Point2D, radius, angle float64) Point2D {
	return center.Add(Polar(angle, radius))
}
