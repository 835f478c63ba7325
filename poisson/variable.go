package poisson

import (
	"math/rand/v2"

	"github.com/pkg/errors"

	"github.com/scatterkit/scatter/point"
)

// VariableConfig parameterizes variable-radius sampling, where every point
// carries its own exclusion radius drawn from a distribution.
type VariableConfig struct {
	// Count is the target number of points.
	Count int
	// MaxAttempts bounds the total candidate budget at Count*MaxAttempts;
	// the budget is global, not per point, so the sampler can stop early
	// with fewer points. Zero selects DefaultAttempts.
	MaxAttempts int
	// Radius draws each candidate's exclusion radius.
	Radius RadiusSampler
	// Domain bounds the sample.
	Domain point.Domain
}

// CheckValid validates the configuration.
func (cfg VariableConfig) CheckValid() error {
	if cfg.Count < 0 {
		return errors.Errorf("count must be non-negative, got %d", cfg.Count)
	}
	if cfg.MaxAttempts < 0 {
		return errors.Errorf("max attempts must be non-negative, got %d", cfg.MaxAttempts)
	}
	if cfg.Radius == nil {
		return errors.New("radius sampler is required")
	}
	return cfg.Domain.CheckValid()
}

// SampleVariableRadius generates up to cfg.Count points where every accepted
// pair satisfies ||p_i - p_j|| > r_i + r_j for the points' own radii. The
// conflict check is pairwise against every accepted point, deliberately
// unaccelerated at O(n^2); it is meant for moderate n. Returns the accepted
// points and their radii.
func SampleVariableRadius(cfg VariableConfig, rng *rand.Rand) ([]point.Point, []float64, error) {
	if err := cfg.CheckValid(); err != nil {
		return nil, nil, err
	}
	maxAttempts := cfg.MaxAttempts
	if maxAttempts == 0 {
		maxAttempts = DefaultAttempts
	}

	accepted := make([]point.Point, 0, cfg.Count)
	radii := make([]float64, 0, cfg.Count)

	budget := cfg.Count * maxAttempts
	for try := 0; try < budget && len(accepted) < cfg.Count; try++ {
		cand := cfg.Domain.RandomPoint(rng)
		r := cfg.Radius.Rand()

		ok := true
		for i, q := range accepted {
			sum := r + radii[i]
			if cand.DistanceSquared(q) <= sum*sum {
				ok = false
				break
			}
		}
		if ok {
			accepted = append(accepted, cand)
			radii = append(radii, r)
		}
	}
	return accepted, radii, nil
}
