package point

import (
	"github.com/pkg/errors"
)

// degenerateSpan is the axis span below which RefitToDomain treats an axis as
// constant and maps it to the center of the target range.
const degenerateSpan = 1e-12

// Bounds returns the axis-aligned bounding box of the given points, or nil
// for an empty slice.
func Bounds(pts []Point) Domain {
	if len(pts) == 0 {
		return nil
	}
	d := make(Domain, len(pts[0]))
	for i, v := range pts[0] {
		d[i] = AxisRange{Min: v, Max: v}
	}
	for _, p := range pts[1:] {
		for i, v := range p {
			if v < d[i].Min {
				d[i].Min = v
			}
			if v > d[i].Max {
				d[i].Max = v
			}
		}
	}
	return d
}

// RefitToDomain linearly remaps the points so their bounding box fills the
// target domain. Axes whose input span is effectively zero map to the center
// of the target range. The input is not modified.
func RefitToDomain(pts []Point, target Domain) ([]Point, error) {
	if err := target.CheckValid(); err != nil {
		return nil, err
	}
	dim, err := Dimension(pts)
	if err != nil {
		return nil, err
	}
	if len(pts) == 0 {
		return []Point{}, nil
	}
	if dim != target.Dim() {
		return nil, errors.Errorf("points have dimension %d but target domain has %d axes", dim, target.Dim())
	}
	bounds := Bounds(pts)
	out := make([]Point, len(pts))
	for i, p := range pts {
		q := make(Point, dim)
		for d := 0; d < dim; d++ {
			span := bounds[d].Span()
			if span < degenerateSpan {
				q[d] = target[d].Center()
				continue
			}
			t := (p[d] - bounds[d].Min) / span
			q[d] = target[d].Min + t*target[d].Span()
		}
		out[i] = q
	}
	return out, nil
}

// RescaleToDomain maps points from the unit cube [0,1]^N into the target
// domain. Coordinates are not range-checked. The input is not modified.
func RescaleToDomain(pts []Point, target Domain) ([]Point, error) {
	if err := target.CheckValid(); err != nil {
		return nil, err
	}
	dim, err := Dimension(pts)
	if err != nil {
		return nil, err
	}
	if len(pts) > 0 && dim != target.Dim() {
		return nil, errors.Errorf("points have dimension %d but target domain has %d axes", dim, target.Dim())
	}
	out := make([]Point, len(pts))
	for i, p := range pts {
		q := make(Point, dim)
		for d := 0; d < dim; d++ {
			q[d] = target[d].Min + p[d]*target[d].Span()
		}
		out[i] = q
	}
	return out, nil
}

// SplitByAxis decomposes the points into per-axis coordinate columns.
func SplitByAxis(pts []Point) ([][]float64, error) {
	dim, err := Dimension(pts)
	if err != nil {
		return nil, err
	}
	cols := make([][]float64, dim)
	for d := range cols {
		cols[d] = make([]float64, len(pts))
	}
	for i, p := range pts {
		for d, v := range p {
			cols[d][i] = v
		}
	}
	return cols, nil
}
