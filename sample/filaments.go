package sample

import (
	"math"
	"math/rand/v2"

	"github.com/pkg/errors"

	"github.com/scatterkit/scatter/point"
)

// FilamentConfig parameterizes random-walk filament generation.
type FilamentConfig struct {
	// Filaments is the number of independent walks.
	Filaments int
	// Steps is the number of core points per walk.
	Steps int
	// StepSize is the distance advanced per step.
	StepSize float64
	// Persistence in [0,1] blends the previous direction with a random
	// perturbation; higher values give straighter filaments.
	Persistence float64
	// Sigma is the standard deviation of the Gaussian thickness scatter.
	Sigma float64
	// ThickSamples is the number of scatter points added around each core
	// point; 0 produces bare filaments.
	ThickSamples int
}

// CheckValid validates the configuration.
func (cfg FilamentConfig) CheckValid() error {
	if cfg.Filaments < 0 {
		return errors.Errorf("filament count must be non-negative, got %d", cfg.Filaments)
	}
	if cfg.Steps < 0 {
		return errors.Errorf("step count must be non-negative, got %d", cfg.Steps)
	}
	if cfg.StepSize <= 0 {
		return errors.Errorf("step size must be positive, got %v", cfg.StepSize)
	}
	if cfg.Persistence < 0 || cfg.Persistence > 1 {
		return errors.Errorf("persistence must be in [0,1], got %v", cfg.Persistence)
	}
	if cfg.Sigma < 0 {
		return errors.Errorf("sigma must be non-negative, got %v", cfg.Sigma)
	}
	if cfg.ThickSamples < 0 {
		return errors.Errorf("thickness sample count must be non-negative, got %d", cfg.ThickSamples)
	}
	return nil
}

// randomDirection returns a unit vector drawn uniformly over directions, by
// redrawing symmetric coordinates until the vector has nonzero length.
func randomDirection(dim int, rng *rand.Rand) point.Point {
	dir := make(point.Point, dim)
	for {
		var norm float64
		for d := range dir {
			dir[d] = rng.Float64()*2 - 1
			norm += dir[d] * dir[d]
		}
		if norm > 0 {
			return dir.Scale(1 / math.Sqrt(norm))
		}
	}
}

// Filaments generates persistence-blended random walks through the domain,
// optionally thickened by Gaussian scatter around each core point. Core walk
// points are kept even when the walk wanders outside the domain; scatter
// points outside the domain are discarded. The second return value is each
// point's scatter distance from its core point, 0 for core points.
func Filaments(cfg FilamentConfig, domain point.Domain, rng *rand.Rand) ([]point.Point, []float64, error) {
	if err := cfg.CheckValid(); err != nil {
		return nil, nil, err
	}
	if err := domain.CheckValid(); err != nil {
		return nil, nil, err
	}
	dim := domain.Dim()

	pts := make([]point.Point, 0, cfg.Filaments*cfg.Steps*(1+cfg.ThickSamples))
	distances := make([]float64, 0, cap(pts))

	for f := 0; f < cfg.Filaments; f++ {
		p := domain.RandomPoint(rng)
		dir := randomDirection(dim, rng)

		for i := 0; i < cfg.Steps; i++ {
			pts = append(pts, p.Clone())
			distances = append(distances, 0)

			for g := 0; g < cfg.ThickSamples; g++ {
				q := p.Clone()
				var dist2 float64
				for d := range q {
					offset := rng.NormFloat64() * cfg.Sigma
					q[d] += offset
					dist2 += offset * offset
				}
				if domain.Contains(q) {
					pts = append(pts, q)
					distances = append(distances, math.Sqrt(dist2))
				}
			}

			perturb := randomDirection(dim, rng)
			for d := range dir {
				dir[d] = cfg.Persistence*dir[d] + (1-cfg.Persistence)*perturb[d]
			}
			dir = dir.Normalize()
			for d := range p {
				p[d] += cfg.StepSize * dir[d]
			}
		}
	}
	return pts, distances, nil
}
