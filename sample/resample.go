package sample

import (
	"math/rand/v2"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/scatterkit/scatter/filter"
	"github.com/scatterkit/scatter/point"
)

// Rejection draws 2*count uniform candidates and keeps each with probability
// density(p), so the output size varies and is typically below count. The
// density should return values in [0,1].
func Rejection(count int, domain point.Domain, density point.ScalarField, rng *rand.Rand) ([]point.Point, error) {
	candidates, err := Uniform(2*count, domain, rng)
	if err != nil {
		return nil, err
	}
	return filter.ByDensity(candidates, density, rng)
}

// ImportanceResample draws count points, with replacement, from a Halton
// candidate grid of count*oversample points weighted by the density. A weight
// total that is not positive is a configuration error.
func ImportanceResample(count, oversample int, domain point.Domain, density point.ScalarField, shift int, rng *rand.Rand) ([]point.Point, error) {
	if oversample < 1 {
		return nil, errors.Errorf("oversample ratio must be at least 1, got %d", oversample)
	}
	candidates, err := Halton(count*oversample, domain, shift)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return []point.Point{}, nil
	}

	weights := make([]float64, len(candidates))
	for i, p := range candidates {
		weights[i] = density(p)
		if weights[i] < 0 {
			return nil, errors.Errorf("density returned negative weight %v for candidate %d", weights[i], i)
		}
	}
	if total := floats.Sum(weights); total <= 0 {
		return nil, errors.Errorf("density weights sum to %v, cannot resample", total)
	}

	dist := distuv.NewCategorical(weights, rng)
	out := make([]point.Point, count)
	for i := range out {
		out[i] = candidates[int(dist.Rand())].Clone()
	}
	return out, nil
}
