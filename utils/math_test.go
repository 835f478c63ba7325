package utils

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func TestAngleConversions(t *testing.T) {
	test.That(t, DegToRad(180), test.ShouldAlmostEqual, math.Pi, 1e-12)
	test.That(t, DegToRad(0), test.ShouldEqual, 0)
	test.That(t, RadToDeg(math.Pi/2), test.ShouldAlmostEqual, 90, 1e-12)
	test.That(t, RadToDeg(DegToRad(33.25)), test.ShouldAlmostEqual, 33.25, 1e-12)
}

func TestSquare(t *testing.T) {
	test.That(t, Square(3), test.ShouldEqual, 9)
	test.That(t, Square(-0.5), test.ShouldEqual, 0.25)
}

func TestRootN(t *testing.T) {
	test.That(t, RootN(27, 3), test.ShouldAlmostEqual, 3, 1e-12)
	test.That(t, RootN(16, 4), test.ShouldAlmostEqual, 2, 1e-12)
}

func TestSampleRandomIntRange(t *testing.T) {
	r := NewRand(3)
	seen := map[int]bool{}
	for i := 0; i < 200; i++ {
		v := SampleRandomIntRange(-2, 2, r)
		test.That(t, v, test.ShouldBeGreaterThanOrEqualTo, -2)
		test.That(t, v, test.ShouldBeLessThanOrEqualTo, 2)
		seen[v] = true
	}
	test.That(t, len(seen), test.ShouldEqual, 5)
}

func TestNewRandDeterministic(t *testing.T) {
	a := NewRand(99)
	b := NewRand(99)
	for i := 0; i < 10; i++ {
		test.That(t, a.Float64(), test.ShouldEqual, b.Float64())
	}
}
