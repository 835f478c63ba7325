// Package utils holds shared numeric helpers.
package utils

import (
	"math"
	"math/rand/v2"
)

// DegToRad converts degrees to radians.
func DegToRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(radians float64) float64 {
	return radians * 180 / math.Pi
}

// Math.pow( x, 2 ) is slow, this is faster
func Square(n float64) float64 {
	return n * n
}

// RootN returns the n-th root of x.
func RootN(x float64, n int) float64 {
	return math.Pow(x, 1/float64(n))
}

// SampleRandomIntRange samples a random integer within a range given by
// [min, max] using the given rand.Rand.
func SampleRandomIntRange(min, max int, r *rand.Rand) int {
	return r.IntN(max-min+1) + min
}

// NewRand returns a seeded PCG-backed generator.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}
