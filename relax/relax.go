// Package relax smooths point sets toward blue-noise spacing by iterative
// k-nearest-neighbor repulsion.
package relax

import (
	"github.com/pkg/errors"

	"github.com/scatterkit/scatter/point"
	"github.com/scatterkit/scatter/spatial"
)

// distEpsilon guards the inverse-squared-distance weight against coincident
// points.
const distEpsilon = 1e-6

// Config parameterizes relaxation.
type Config struct {
	// KNeighbors is the number of neighbors repelling each point.
	KNeighbors int
	// StepSize is the distance each point moves per iteration.
	StepSize float64
	// Iterations is the fixed number of passes; there is no convergence
	// check.
	Iterations int
}

// CheckValid validates the configuration.
func (cfg Config) CheckValid() error {
	if cfg.KNeighbors < 1 {
		return errors.Errorf("neighbor count must be at least 1, got %d", cfg.KNeighbors)
	}
	if cfg.StepSize <= 0 {
		return errors.Errorf("step size must be positive, got %v", cfg.StepSize)
	}
	if cfg.Iterations < 0 {
		return errors.Errorf("iteration count must be non-negative, got %d", cfg.Iterations)
	}
	return nil
}

// Run returns the points after cfg.Iterations passes of k-NN repulsion. Each
// iteration rebuilds the spatial index over the current positions, computes
// every move against that pre-iteration snapshot, and applies all moves at
// once. Each point moves exactly StepSize along the normalized sum of
// inverse-squared-distance-weighted offsets from its neighbors; a point with
// no neighbors does not move. Points may drift outside any domain; callers
// clip afterward if they care. The input is not modified.
func Run(pts []point.Point, cfg Config) ([]point.Point, error) {
	if err := cfg.CheckValid(); err != nil {
		return nil, err
	}
	if _, err := point.Dimension(pts); err != nil {
		return nil, err
	}

	current := make([]point.Point, len(pts))
	for i, p := range pts {
		current[i] = p.Clone()
	}

	for iter := 0; iter < cfg.Iterations; iter++ {
		ix, err := spatial.NewIndex(current)
		if err != nil {
			return nil, err
		}
		next := make([]point.Point, len(current))

		for i, p := range current {
			// k+1 to cover the query point itself appearing in its own
			// neighborhood
			neighbors, err := ix.Nearest(p, cfg.KNeighbors+1)
			if err != nil {
				return nil, err
			}

			offset := point.Zero(len(p))
			used := 0
			for _, n := range neighbors {
				if n.Index == i {
					continue
				}
				if used == cfg.KNeighbors {
					break
				}
				delta := p.Sub(current[n.Index])
				offset = offset.Add(delta.Scale(1 / (delta.Norm2() + distEpsilon)))
				used++
			}
			next[i] = p.Add(offset.Normalize().Scale(cfg.StepSize))
		}
		current = next
	}
	return current, nil
}
