// Package point provides N-dimensional points, axis-aligned domains, and the
// small geometric vocabulary the rest of the library is built on.
package point

import (
	"math"

	"github.com/pkg/errors"
)

// Point is an ordered tuple of coordinates in N-dimensional space. Identity is
// positional (its index in a containing slice); the value itself is a plain
// slice copied and moved freely. Arithmetic methods assume both operands share
// a dimension; callers validate mixed-source inputs with Dimension.
type Point []float64

// New returns a point with the given coordinates.
func New(coords ...float64) Point {
	return Point(coords)
}

// Zero returns the origin of the given dimension.
func Zero(dim int) Point {
	return make(Point, dim)
}

// Dim returns the number of coordinates.
func (p Point) Dim() int {
	return len(p)
}

// Clone returns a copy of p that shares no storage with it.
func (p Point) Clone() Point {
	out := make(Point, len(p))
	copy(out, p)
	return out
}

// Add returns the elementwise sum p + q.
func (p Point) Add(q Point) Point {
	out := make(Point, len(p))
	for i := range p {
		out[i] = p[i] + q[i]
	}
	return out
}

// Sub returns the elementwise difference p - q.
func (p Point) Sub(q Point) Point {
	out := make(Point, len(p))
	for i := range p {
		out[i] = p[i] - q[i]
	}
	return out
}

// Mul returns the elementwise product p * q.
func (p Point) Mul(q Point) Point {
	out := make(Point, len(p))
	for i := range p {
		out[i] = p[i] * q[i]
	}
	return out
}

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point {
	out := make(Point, len(p))
	for i := range p {
		out[i] = p[i] * s
	}
	return out
}

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 {
	var sum float64
	for i := range p {
		sum += p[i] * q[i]
	}
	return sum
}

// Norm2 returns the squared Euclidean length of p.
func (p Point) Norm2() float64 {
	return p.Dot(p)
}

// Norm returns the Euclidean length of p.
func (p Point) Norm() float64 {
	return math.Sqrt(p.Norm2())
}

// DistanceSquared returns the squared Euclidean distance between p and q.
func (p Point) DistanceSquared(q Point) float64 {
	var sum float64
	for i := range p {
		d := p[i] - q[i]
		sum += d * d
	}
	return sum
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Sqrt(p.DistanceSquared(q))
}

// Normalize returns p scaled to unit length. The zero vector normalizes to
// the zero vector.
func (p Point) Normalize() Point {
	n := p.Norm()
	if n == 0 {
		return Zero(len(p))
	}
	return p.Scale(1 / n)
}

// Lerp returns the linear interpolation between p and q at parameter t.
func (p Point) Lerp(q Point, t float64) Point {
	out := make(Point, len(p))
	for i := range p {
		out[i] = p[i] + (q[i]-p[i])*t
	}
	return out
}

// Clamp returns p with every coordinate clamped to [min, max].
func (p Point) Clamp(min, max float64) Point {
	out := make(Point, len(p))
	for i := range p {
		out[i] = math.Min(math.Max(p[i], min), max)
	}
	return out
}

// ClampToDomain returns p with each coordinate clamped into the matching axis
// range of the domain.
func (p Point) ClampToDomain(domain Domain) Point {
	out := make(Point, len(p))
	for i := range p {
		out[i] = math.Min(math.Max(p[i], domain[i].Min), domain[i].Max)
	}
	return out
}

// Equal reports whether p and q have the same dimension and coordinates.
func (p Point) Equal(q Point) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// ScalarField is a scalar function over points, used for density and local
// distance-scale warping.
type ScalarField func(Point) float64

// Dimension returns the shared dimension of the given points, erroring when
// they disagree. An empty slice has dimension 0.
func Dimension(pts []Point) (int, error) {
	if len(pts) == 0 {
		return 0, nil
	}
	dim := len(pts[0])
	for i, p := range pts {
		if len(p) != dim {
			return 0, errors.Errorf("point %d has dimension %d, want %d", i, len(p), dim)
		}
	}
	return dim, nil
}
