package layout

import "github.com/ford442/candy-world/pkg/geo"

// ExclusionSet is the set of keep-out circles for one generation run.
// It is append-only: phases consult it, and only feature placement (and the
// initial spawn zone) grow it. Lifetime is a single run.
type ExclusionSet struct {
	zones []geo.Circle
}

// NewExclusionSet creates a set seeded with the given zones.
func NewExclusionSet(zones ...geo.Circle) *ExclusionSet {
	s := &ExclusionSet{}
	s.zones = append(s.zones, zones...)
	return s
}

// Add registers a new keep-out circle.
func (s *ExclusionSet) Add(c geo.Circle) {
	s.zones = append(s.zones, c)
}

// Contains reports whether p lies inside any registered zone.
func (s *ExclusionSet) Contains(p geo.Point2D) bool {
	return geo.ContainsAny(s.zones, p)
}

// Zones returns the registered circles. The returned slice must not be
// modified.
func (s *ExclusionSet) Zones() []geo.Circle {
	return s.zones
}
