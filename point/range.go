package point

import (
	"math/rand/v2"

	"github.com/pkg/errors"
)

// AxisRange is a closed interval [Min, Max] along one axis.
type AxisRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// CheckValid returns an error when the range is inverted.
func (r AxisRange) CheckValid() error {
	if r.Min > r.Max {
		return errors.Errorf("invalid axis range: min %v > max %v", r.Min, r.Max)
	}
	return nil
}

// Span returns Max - Min.
func (r AxisRange) Span() float64 {
	return r.Max - r.Min
}

// Center returns the midpoint of the range.
func (r AxisRange) Center() float64 {
	return (r.Min + r.Max) / 2
}

// Contains reports whether v lies in [Min, Max].
func (r AxisRange) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Domain is an axis-aligned bounding box, one range per dimension.
type Domain []AxisRange

// Unit returns the unit cube [0,1]^dim.
func Unit(dim int) Domain {
	return Box(dim, 0, 1)
}

// Box returns the cube [min,max]^dim.
func Box(dim int, min, max float64) Domain {
	d := make(Domain, dim)
	for i := range d {
		d[i] = AxisRange{Min: min, Max: max}
	}
	return d
}

// CheckValid returns an error when the domain is empty or any axis range is
// inverted.
func (d Domain) CheckValid() error {
	if len(d) == 0 {
		return errors.New("domain has no axes")
	}
	for i, r := range d {
		if err := r.CheckValid(); err != nil {
			return errors.Wrapf(err, "axis %d", i)
		}
	}
	return nil
}

// Dim returns the number of axes.
func (d Domain) Dim() int {
	return len(d)
}

// Contains reports whether p lies inside the domain, boundaries included.
func (d Domain) Contains(p Point) bool {
	if len(p) != len(d) {
		return false
	}
	for i, r := range d {
		if !r.Contains(p[i]) {
			return false
		}
	}
	return true
}

// Volume returns the product of the axis spans.
func (d Domain) Volume() float64 {
	v := 1.0
	for _, r := range d {
		v *= r.Span()
	}
	return v
}

// Center returns the midpoint of the domain.
func (d Domain) Center() Point {
	p := make(Point, len(d))
	for i, r := range d {
		p[i] = r.Center()
	}
	return p
}

// RandomPoint returns a point drawn uniformly from the domain.
func (d Domain) RandomPoint(rng *rand.Rand) Point {
	p := make(Point, len(d))
	for i, r := range d {
		p[i] = r.Min + rng.Float64()*r.Span()
	}
	return p
}
