// Package poisson generates Poisson-disk point sets by grid-accelerated dart
// throwing, with uniform, spatially-warped, and per-point radius-distribution
// exclusion. Sampling is best effort: the returned set can hold fewer points
// than requested when the attempt budget runs out, and callers must inspect
// the returned length rather than assume exact cardinality.
package poisson

import (
	"math/rand/v2"

	"github.com/pkg/errors"

	"github.com/scatterkit/scatter/point"
)

// DefaultAttempts is the candidate budget per active point used when a config
// leaves Attempts at zero.
const DefaultAttempts = 30

// Config parameterizes Bridson dart throwing.
type Config struct {
	// Count is the target number of points; the output never exceeds it.
	Count int
	// MinDist is the base minimum distance between any two accepted points,
	// before scaling.
	MinDist float64
	// Attempts is the number of candidates tried around an active point
	// before it is retired. Zero selects DefaultAttempts.
	Attempts int
	// Domain bounds the sample.
	Domain point.Domain
	// Scale optionally warps the metric: the local exclusion radius at p is
	// Scale(p)*MinDist. Nil means uniform spacing.
	Scale point.ScalarField
}

// CheckValid validates the configuration.
func (cfg Config) CheckValid() error {
	if cfg.Count < 0 {
		return errors.Errorf("count must be non-negative, got %d", cfg.Count)
	}
	if cfg.MinDist <= 0 {
		return errors.Errorf("minimum distance must be positive, got %v", cfg.MinDist)
	}
	if cfg.Attempts < 0 {
		return errors.Errorf("attempts must be non-negative, got %d", cfg.Attempts)
	}
	return cfg.Domain.CheckValid()
}

// uniformScale is the scale field of the unwarped sampler.
func uniformScale(point.Point) float64 { return 1 }

// candidateAround returns a point at a uniformly random direction from center
// and a radius uniform in [scaledMinDist, 2*scaledMinDist). The direction
// comes from normal deviates, redrawn until nonzero, then normalized.
func candidateAround(center point.Point, scaledMinDist float64, rng *rand.Rand) point.Point {
	dim := len(center)
	dir := make(point.Point, dim)
	for {
		var norm2 float64
		for d := range dir {
			dir[d] = rng.NormFloat64()
			norm2 += dir[d] * dir[d]
		}
		if norm2 > 0 {
			dir = dir.Normalize()
			break
		}
	}
	r := scaledMinDist * (1 + rng.Float64())
	out := make(point.Point, dim)
	for d := range out {
		out[d] = center[d] + dir[d]*r
	}
	return out
}

// Sample generates up to cfg.Count Poisson-disk points. Every accepted pair
// (p, q) satisfies ||p-q|| >= max(s(p), s(q)) * cfg.MinDist where s is the
// scale field (constant 1 when nil).
func Sample(cfg Config, rng *rand.Rand) ([]point.Point, error) {
	if err := cfg.CheckValid(); err != nil {
		return nil, err
	}
	if cfg.Count == 0 {
		return []point.Point{}, nil
	}
	scale := cfg.Scale
	if scale == nil {
		scale = uniformScale
	}
	attempts := cfg.Attempts
	if attempts == 0 {
		attempts = DefaultAttempts
	}

	grid := newOccupancyGrid(cfg.Domain, cfg.MinDist)

	accepted := make([]point.Point, 0, cfg.Count)
	active := make([]int, 0, cfg.Count)

	seed := cfg.Domain.RandomPoint(rng)
	grid.insert(seed, 0)
	accepted = append(accepted, seed)
	active = append(active, 0)

	for len(active) > 0 && len(accepted) < cfg.Count {
		ai := rng.IntN(len(active))
		center := accepted[active[ai]]
		scaledMinDist := scale(center) * cfg.MinDist

		placed := false
		for try := 0; try < attempts && len(accepted) < cfg.Count; try++ {
			cand := candidateAround(center, scaledMinDist, rng)
			if !cfg.Domain.Contains(cand) {
				continue
			}
			if grid.conflicts(cand, accepted, cfg.MinDist, scale) {
				continue
			}
			grid.insert(cand, len(accepted))
			active = append(active, len(accepted))
			accepted = append(accepted, cand)
			placed = true
		}
		// the active point is retired only after a full failed attempt
		// round; it stays in the accepted output
		if !placed {
			active[ai] = active[len(active)-1]
			active = active[:len(active)-1]
		}
	}
	return accepted, nil
}
