package metrics

import (
	"math"

	"github.com/pkg/errors"

	"github.com/scatterkit/scatter/point"
)

// BoundaryDistances returns, per point, the smallest distance over all axes
// to either face of the domain. Points outside the domain report negative
// values for the axes they exceed.
func BoundaryDistances(pts []point.Point, domain point.Domain) ([]float64, error) {
	if err := domain.CheckValid(); err != nil {
		return nil, err
	}
	dim, err := point.Dimension(pts)
	if err != nil {
		return nil, err
	}
	if len(pts) > 0 && dim != domain.Dim() {
		return nil, errors.Errorf("points have dimension %d but domain has %d axes", dim, domain.Dim())
	}

	out := make([]float64, len(pts))
	for i, p := range pts {
		min := math.Inf(1)
		for d, r := range domain {
			min = math.Min(min, math.Min(p[d]-r.Min, r.Max-p[d]))
		}
		out[i] = min
	}
	return out, nil
}
