package geo

// Circle is a center and radius in the XZ plane. Exclusion zones and feature
// footprints are circles.
type Circle struct {
	Center Point2D `json:"center"`
	Radius float64 `json:"radius"`
}

// Contains reports whether p lies strictly inside the circle.
func (c Circle) Contains(p Point2D) bool {
	return c.Center.Distance(p) < c.Radius
}

// ContainsAny reports whether any of the circles contains p.
func ContainsAny(circles []Circle, p Point2D) bool {
	for _, c := range circles {
		if c.Contains(p) {
			return true
		}
	}
	return false
}
