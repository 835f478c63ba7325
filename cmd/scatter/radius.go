package main

import (
	"math/rand/v2"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/scatterkit/scatter/poisson"
)

// radiusSamplerFromFlags builds the exclusion-radius distribution for
// variable-radius Poisson sampling.
func radiusSamplerFromFlags(c *cli.Context, rng *rand.Rand) (poisson.RadiusSampler, error) {
	switch dist := c.String(flagRadiusDist); dist {
	case "lognormal":
		return poisson.NewLogNormalRadius(c.Float64(flagRadiusMu), c.Float64(flagRadiusSigma), rng)
	case "powerlaw":
		return poisson.NewPowerLawRadius(c.Float64(flagRadiusXMin), c.Float64(flagRadiusAlpha), rng)
	case "weibull":
		return poisson.NewWeibullRadius(c.Float64(flagRadiusShape), c.Float64(flagRadiusScale), rng)
	case "truncated-weibull":
		return poisson.NewTruncatedWeibullRadius(
			c.Float64(flagRadiusShape), c.Float64(flagRadiusScale), c.Float64(flagRadiusFloor), rng)
	default:
		return nil, errors.Errorf("unknown radius distribution %q", dist)
	}
}
