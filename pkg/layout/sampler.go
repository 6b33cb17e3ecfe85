package layout

import (
	"errors"
	"math"
	"math/rand"

	"github.com/ford442/candy-world/pkg/geo"
)

// ErrUnsatisfiable is returned when rejection sampling exhausts its attempt
// budget because the exclusion geometry leaves no free area in the sampled
// region.
var ErrUnsatisfiable = errors.New("unsatisfiable placement: retry budget exhausted")

// Sampler draws placement positions from an injected random source. Every
// random decision in the pipeline flows through one seeded *rand.Rand, so a
// fixed seed reproduces the map byte for byte.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler creates a sampler over the given source.
func NewSampler(rng *rand.Rand) *Sampler {
	return &Sampler{rng: rng}
}

// Annulus returns a point with uniform angle in [0, 2π) and uniform radial
// distance in [minRadius, maxRadius] around the origin. It does not check
// exclusions.
func (s *Sampler) Annulus(minRadius, maxRadius float64) geo.Point2D {
	angle := s.rng.Float64() * 2 * math.Pi
	dist := minRadius
	if maxRadius > minRadius {
		dist = minRadius + s.rng.Float64()*(maxRadius-minRadius)
	}
	return geo.Polar(angle, dist)
}

// Offset returns a point within maxRadius of center, uniform in angle and
// radial distance.
func (s *Sampler) Offset(center geo.Point2D, maxRadius float64) geo.Point2D {
	angle := s.rng.Float64() * 2 * math.Pi
	dist := s.rng.Float64() * maxRadius
	return center.Add(geo.Polar(angle, dist))
}

// OutsideExclusions repeatedly samples the annulus and accepts the first
// point outside every zone. Attempts are bounded: when the budget runs out
// it returns ErrUnsatisfiable instead of spinning forever on hostile zone
// geometry.
func (s *Sampler) OutsideExclusions(minRadius, maxRadius float64, zones *ExclusionSet, maxAttempts int) (geo.Point2D, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		p := s.Annulus(minRadius, maxRadius)
		if !zones.Contains(p) {
			return p, nil
		}
	}
	return geo.Point2D{}, ErrUnsatisfiable
}

// intBetween returns a uniform integer in [min, max].
func (s *Sampler) intBetween(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.rng.Intn(max-min+1)
}
