package poisson

import (
	"math"
	"math/rand/v2"
	"testing"

	"go.viam.com/test"

	"github.com/scatterkit/scatter/point"
)

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed+1))
}

func TestSampleUniformInvariant(t *testing.T) {
	cfg := Config{
		Count:   400,
		MinDist: 0.05,
		Domain:  point.Unit(2),
	}
	pts, err := Sample(cfg, newRand(1))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(pts), test.ShouldBeGreaterThan, 100)
	test.That(t, len(pts), test.ShouldBeLessThanOrEqualTo, cfg.Count)

	for _, p := range pts {
		test.That(t, cfg.Domain.Contains(p), test.ShouldBeTrue)
	}
	for i := 0; i < len(pts); i++ {
		for j := i + 1; j < len(pts); j++ {
			test.That(t, pts[i].Distance(pts[j]), test.ShouldBeGreaterThanOrEqualTo, cfg.MinDist)
		}
	}
}

func TestSampleWarpedInvariant(t *testing.T) {
	// a smooth, slowly-varying scale keeps the cell scan radius covering the
	// larger of any two nearby thresholds, so the max-of-two-radii rule holds
	// for every accepted pair
	scale := func(p point.Point) float64 { return 1 + 0.2*p[0] }
	cfg := Config{
		Count:   300,
		MinDist: 0.05,
		Domain:  point.Unit(2),
		Scale:   scale,
	}
	pts, err := Sample(cfg, newRand(2))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(pts), test.ShouldBeGreaterThan, 50)

	for i := 0; i < len(pts); i++ {
		for j := i + 1; j < len(pts); j++ {
			thresh := math.Max(scale(pts[i]), scale(pts[j])) * cfg.MinDist
			test.That(t, pts[i].Distance(pts[j]), test.ShouldBeGreaterThanOrEqualTo, thresh)
		}
	}
}

func TestSampleReproducible(t *testing.T) {
	cfg := Config{Count: 100, MinDist: 0.06, Domain: point.Unit(3)}

	a, err := Sample(cfg, newRand(99))
	test.That(t, err, test.ShouldBeNil)
	b, err := Sample(cfg, newRand(99))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, a, test.ShouldResemble, b)
}

func TestSampleBestEffort(t *testing.T) {
	// a minimum distance close to the domain size cannot fit 100 points;
	// falling short is not an error
	cfg := Config{Count: 100, MinDist: 0.8, Domain: point.Unit(2)}
	pts, err := Sample(cfg, newRand(5))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(pts), test.ShouldBeGreaterThanOrEqualTo, 1)
	test.That(t, len(pts), test.ShouldBeLessThan, 10)
}

func TestSampleEdgeCases(t *testing.T) {
	cfg := Config{Count: 0, MinDist: 0.1, Domain: point.Unit(2)}
	pts, err := Sample(cfg, newRand(1))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, pts, test.ShouldBeEmpty)

	cfg.Count = 1
	pts, err = Sample(cfg, newRand(1))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, pts, test.ShouldHaveLength, 1)
}

func TestSampleConfigErrors(t *testing.T) {
	base := Config{Count: 10, MinDist: 0.1, Domain: point.Unit(2)}

	bad := base
	bad.Count = -1
	_, err := Sample(bad, newRand(1))
	test.That(t, err, test.ShouldNotBeNil)

	bad = base
	bad.MinDist = 0
	_, err = Sample(bad, newRand(1))
	test.That(t, err, test.ShouldNotBeNil)

	bad = base
	bad.Attempts = -1
	_, err = Sample(bad, newRand(1))
	test.That(t, err, test.ShouldNotBeNil)

	bad = base
	bad.Domain = point.Domain{{Min: 1, Max: 0}}
	_, err = Sample(bad, newRand(1))
	test.That(t, err, test.ShouldNotBeNil)
}

func TestSampleVariableRadius(t *testing.T) {
	radius, err := NewTruncatedWeibullRadius(1.5, 0.03, 0.02, newRand(7))
	test.That(t, err, test.ShouldBeNil)

	cfg := VariableConfig{
		Count:  150,
		Radius: radius,
		Domain: point.Unit(2),
	}
	pts, radii, err := SampleVariableRadius(cfg, newRand(8))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(pts), test.ShouldEqual, len(radii))
	test.That(t, len(pts), test.ShouldBeGreaterThan, 10)
	test.That(t, len(pts), test.ShouldBeLessThanOrEqualTo, cfg.Count)

	for i := range pts {
		// truncation floor holds
		test.That(t, radii[i], test.ShouldBeGreaterThanOrEqualTo, 0.02)
		for j := i + 1; j < len(pts); j++ {
			test.That(t, pts[i].Distance(pts[j]), test.ShouldBeGreaterThan, radii[i]+radii[j])
		}
	}
}

func TestSampleVariableRadiusBudget(t *testing.T) {
	// radii far too large for the domain exhaust the global attempt budget
	radius, err := NewWeibullRadius(5, 0.9, newRand(3))
	test.That(t, err, test.ShouldBeNil)

	cfg := VariableConfig{
		Count:       50,
		MaxAttempts: 10,
		Radius:      radius,
		Domain:      point.Unit(2),
	}
	pts, _, err := SampleVariableRadius(cfg, newRand(4))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(pts), test.ShouldBeLessThan, 50)
}

func TestSampleVariableRadiusConfigErrors(t *testing.T) {
	radius, err := NewLogNormalRadius(-3, 0.5, newRand(1))
	test.That(t, err, test.ShouldBeNil)

	_, _, err = SampleVariableRadius(VariableConfig{Count: 10, Domain: point.Unit(2)}, newRand(1))
	test.That(t, err, test.ShouldNotBeNil)

	_, _, err = SampleVariableRadius(VariableConfig{Count: -1, Radius: radius, Domain: point.Unit(2)}, newRand(1))
	test.That(t, err, test.ShouldNotBeNil)
}

func TestRadiusSamplerValidation(t *testing.T) {
	src := newRand(2)

	_, err := NewLogNormalRadius(0, 0, src)
	test.That(t, err, test.ShouldNotBeNil)
	_, err = NewPowerLawRadius(0, 1, src)
	test.That(t, err, test.ShouldNotBeNil)
	_, err = NewPowerLawRadius(1, 0, src)
	test.That(t, err, test.ShouldNotBeNil)
	_, err = NewWeibullRadius(0, 1, src)
	test.That(t, err, test.ShouldNotBeNil)
	_, err = NewWeibullRadius(1, 0, src)
	test.That(t, err, test.ShouldNotBeNil)
	_, err = NewTruncatedWeibullRadius(1, 1, -0.1, src)
	test.That(t, err, test.ShouldNotBeNil)

	pareto, err := NewPowerLawRadius(0.01, 2.5, src)
	test.That(t, err, test.ShouldBeNil)
	for i := 0; i < 100; i++ {
		test.That(t, pareto.Rand(), test.ShouldBeGreaterThanOrEqualTo, 0.01)
	}
}
