// Package filter provides accept/reject passes over existing point sets:
// greedy minimum-distance rejection (uniform and spatially scaled), density
// thinning, predicate filtering, random subsets, and domain clipping.
package filter

import (
	"math/rand/v2"

	"github.com/pkg/errors"

	"github.com/scatterkit/scatter/point"
	"github.com/scatterkit/scatter/spatial"
)

// MinDistance greedily keeps points at least minDist apart: the first point
// is always kept, and each later point is kept only when no already-kept
// point lies within minDist. The result depends on the input order. The
// spatial index over the accepted subset is rebuilt after every acceptance,
// an O(n log n)-per-candidate cost accepted for a cleanup pass.
func MinDistance(pts []point.Point, minDist float64) ([]point.Point, error) {
	if minDist <= 0 {
		return nil, errors.Errorf("minimum distance must be positive, got %v", minDist)
	}
	return minDistance(pts, minDist, nil)
}

// MinDistanceScaled is MinDistance with a per-candidate threshold of
// baseMinDist*scale(p). The check is one-sided: only the candidate's own
// scaled radius is enforced, so two accepted points can end up closer than
// the earlier point's threshold when the scale field differs between them.
func MinDistanceScaled(pts []point.Point, baseMinDist float64, scale point.ScalarField) ([]point.Point, error) {
	if baseMinDist <= 0 {
		return nil, errors.Errorf("base minimum distance must be positive, got %v", baseMinDist)
	}
	if scale == nil {
		return nil, errors.New("scale function is required")
	}
	return minDistance(pts, baseMinDist, scale)
}

func minDistance(pts []point.Point, baseMinDist float64, scale point.ScalarField) ([]point.Point, error) {
	if _, err := point.Dimension(pts); err != nil {
		return nil, err
	}
	if len(pts) == 0 {
		return []point.Point{}, nil
	}

	accepted := make([]point.Point, 0, len(pts))
	accepted = append(accepted, pts[0])

	for _, p := range pts[1:] {
		minDist := baseMinDist
		if scale != nil {
			minDist = baseMinDist * scale(p)
		}
		ix, err := spatial.NewIndex(accepted)
		if err != nil {
			return nil, err
		}
		near, err := ix.InRadius(p, minDist)
		if err != nil {
			return nil, err
		}
		if len(near) == 0 {
			accepted = append(accepted, p)
		}
	}
	return accepted, nil
}

// ByDensity keeps each point with probability density(p), clamped to [0,1]
// by the acceptance rule itself.
func ByDensity(pts []point.Point, density point.ScalarField, rng *rand.Rand) ([]point.Point, error) {
	if density == nil {
		return nil, errors.New("density function is required")
	}
	out := make([]point.Point, 0, len(pts))
	for _, p := range pts {
		if density(p) >= rng.Float64() {
			out = append(out, p)
		}
	}
	return out, nil
}

// KeepIf keeps the points satisfying the predicate.
func KeepIf(pts []point.Point, pred func(point.Point) bool) []point.Point {
	out := make([]point.Point, 0, len(pts))
	for _, p := range pts {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}

// Random returns a uniform subset of targetCount points without replacement.
// When targetCount is at least the input size, a copy of the input is
// returned unchanged.
func Random(pts []point.Point, targetCount int, rng *rand.Rand) ([]point.Point, error) {
	if targetCount < 0 {
		return nil, errors.Errorf("target count must be non-negative, got %d", targetCount)
	}
	if targetCount >= len(pts) {
		out := make([]point.Point, len(pts))
		copy(out, pts)
		return out, nil
	}
	indices := rng.Perm(len(pts))
	out := make([]point.Point, targetCount)
	for i := 0; i < targetCount; i++ {
		out[i] = pts[indices[i]]
	}
	return out, nil
}

// RandomFraction keeps a uniform fraction of the points, fraction in [0,1].
func RandomFraction(pts []point.Point, fraction float64, rng *rand.Rand) ([]point.Point, error) {
	if fraction < 0 || fraction > 1 {
		return nil, errors.Errorf("fraction must be in [0,1], got %v", fraction)
	}
	return Random(pts, int(fraction*float64(len(pts))), rng)
}

// InDomain keeps the points inside the domain, boundaries included.
func InDomain(pts []point.Point, domain point.Domain) ([]point.Point, error) {
	if err := domain.CheckValid(); err != nil {
		return nil, err
	}
	return KeepIf(pts, domain.Contains), nil
}
