package poisson

import (
	"math/rand/v2"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/distuv"
)

// RadiusSampler draws per-point exclusion radii for variable-radius sampling.
// The distuv distributions satisfy it directly.
type RadiusSampler interface {
	Rand() float64
}

// NewLogNormalRadius returns a log-normal radius distribution with the given
// location and shape parameters.
func NewLogNormalRadius(mu, sigma float64, src rand.Source) (RadiusSampler, error) {
	if sigma <= 0 {
		return nil, errors.Errorf("sigma must be positive, got %v", sigma)
	}
	return distuv.LogNormal{Mu: mu, Sigma: sigma, Src: src}, nil
}

// NewPowerLawRadius returns a Pareto radius distribution with minimum value
// xmin and tail exponent alpha.
func NewPowerLawRadius(xmin, alpha float64, src rand.Source) (RadiusSampler, error) {
	if xmin <= 0 {
		return nil, errors.Errorf("xmin must be positive, got %v", xmin)
	}
	if alpha <= 0 {
		return nil, errors.Errorf("alpha must be positive, got %v", alpha)
	}
	return distuv.Pareto{Xm: xmin, Alpha: alpha, Src: src}, nil
}

// NewWeibullRadius returns a Weibull radius distribution with the given shape
// and scale.
func NewWeibullRadius(shape, scale float64, src rand.Source) (RadiusSampler, error) {
	if shape <= 0 {
		return nil, errors.Errorf("shape must be positive, got %v", shape)
	}
	if scale <= 0 {
		return nil, errors.Errorf("scale must be positive, got %v", scale)
	}
	return distuv.Weibull{K: shape, Lambda: scale, Src: src}, nil
}

// truncatedWeibull draws from a Weibull restricted to [floor, inf) by
// inverting the CDF over [CDF(floor), 1).
type truncatedWeibull struct {
	dist distuv.Weibull
	low  float64
	rng  *rand.Rand
}

func (t truncatedWeibull) Rand() float64 {
	u := t.low + t.rng.Float64()*(1-t.low)
	return t.dist.Quantile(u)
}

// NewTruncatedWeibullRadius returns a Weibull radius distribution left
// truncated at the floor distance, so no radius falls below it.
func NewTruncatedWeibullRadius(shape, scale, floor float64, src rand.Source) (RadiusSampler, error) {
	if shape <= 0 {
		return nil, errors.Errorf("shape must be positive, got %v", shape)
	}
	if scale <= 0 {
		return nil, errors.Errorf("scale must be positive, got %v", scale)
	}
	if floor < 0 {
		return nil, errors.Errorf("floor must be non-negative, got %v", floor)
	}
	dist := distuv.Weibull{K: shape, Lambda: scale}
	return truncatedWeibull{
		dist: dist,
		low:  dist.CDF(floor),
		rng:  rand.New(src),
	}, nil
}
