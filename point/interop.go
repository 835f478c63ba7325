package point

import (
	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// FromR2 returns the 2-dimensional point with the coordinates of v.
func FromR2(v r2.Point) Point {
	return Point{v.X, v.Y}
}

// FromR3 returns the 3-dimensional point with the coordinates of v.
func FromR3(v r3.Vector) Point {
	return Point{v.X, v.Y, v.Z}
}

// R2 projects p onto its first two axes. Errors when p has fewer than two
// dimensions.
func (p Point) R2() (r2.Point, error) {
	if len(p) < 2 {
		return r2.Point{}, errors.Errorf("cannot project %d-dimensional point to r2", len(p))
	}
	return r2.Point{X: p[0], Y: p[1]}, nil
}

// R3 projects p onto its first three axes. Errors when p has fewer than three
// dimensions.
func (p Point) R3() (r3.Vector, error) {
	if len(p) < 3 {
		return r3.Vector{}, errors.Errorf("cannot project %d-dimensional point to r3", len(p))
	}
	return r3.Vector{X: p[0], Y: p[1], Z: p[2]}, nil
}
