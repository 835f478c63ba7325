package sample

import (
	"github.com/scatterkit/scatter/point"
)

// primes are the bases used by the Halton and Hammersley sequences. Axes past
// the table reuse the last prime.
var primes = []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47}

func primeForAxis(axis int) int {
	if axis >= len(primes) {
		return primes[len(primes)-1]
	}
	return primes[axis]
}

// radicalInverse returns the radical inverse of n in the given base, the
// digit-reversed fraction driving both low-discrepancy sequences.
func radicalInverse(n, base int) float64 {
	var q float64
	bk := 1.0 / float64(base)
	for n > 0 {
		q += float64(n%base) * bk
		n /= base
		bk /= float64(base)
	}
	return q
}

// HaltonSequence returns count points of the dim-dimensional Halton sequence
// in the unit cube, starting at element shift+1.
func HaltonSequence(count, dim, shift int) []point.Point {
	pts := make([]point.Point, count)
	for i := range pts {
		p := make(point.Point, dim)
		for d := 0; d < dim; d++ {
			p[d] = radicalInverse(i+1+shift, primeForAxis(d))
		}
		pts[i] = p
	}
	return pts
}

// Halton returns count Halton points rescaled into the domain. The shift
// offsets the sequence start, standing in for a seed.
func Halton(count int, domain point.Domain, shift int) ([]point.Point, error) {
	if err := checkCountAndDomain(count, domain); err != nil {
		return nil, err
	}
	return point.RescaleToDomain(HaltonSequence(count, domain.Dim(), shift), domain)
}

// HammersleySequence returns count points of the dim-dimensional Hammersley
// set in the unit cube. Axis 0 is the regular fraction i/count; the remaining
// axes are radical inverses of i+shift.
func HammersleySequence(count, dim, shift int) []point.Point {
	pts := make([]point.Point, count)
	for i := range pts {
		p := make(point.Point, dim)
		p[0] = float64(i) / float64(count)
		for d := 1; d < dim; d++ {
			p[d] = radicalInverse(i+shift, primeForAxis(d-1))
		}
		pts[i] = p
	}
	return pts
}

// Hammersley returns count Hammersley points rescaled into the domain.
func Hammersley(count int, domain point.Domain, shift int) ([]point.Point, error) {
	if err := checkCountAndDomain(count, domain); err != nil {
		return nil, err
	}
	if count == 0 {
		return []point.Point{}, nil
	}
	return point.RescaleToDomain(HammersleySequence(count, domain.Dim(), shift), domain)
}
