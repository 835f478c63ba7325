package metrics

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/scatterkit/scatter/point"
)

// AngleDistribution histograms the angles subtended at each point by every
// unordered pair of its k nearest neighbors, over bins of the given width
// spanning [0, pi]. The returned angles are the bin centers and the histogram
// is normalized to unit sum. Requires dimension at least 2.
func AngleDistribution(
	pts []point.Point,
	binWidth float64,
	k int,
) ([]float64, []float64, error) {
	if binWidth <= 0 {
		return nil, nil, errors.Errorf("bin width must be positive, got %v", binWidth)
	}
	dim, err := point.Dimension(pts)
	if err != nil {
		return nil, nil, err
	}
	if len(pts) > 0 && dim < 2 {
		return nil, nil, errors.Errorf("angle distribution needs dimension >= 2, got %d", dim)
	}

	bins := int(math.Ceil(math.Pi / binWidth))
	angles := make([]float64, bins)
	g := make([]float64, bins)
	for i := range angles {
		angles[i] = (float64(i) + 0.5) * binWidth
	}
	if len(pts) == 0 {
		return angles, g, nil
	}

	neighbors, err := NearestNeighbors(pts, k)
	if err != nil {
		return nil, nil, err
	}
	for i, p := range pts {
		nbrs := neighbors[i]
		for a := 0; a < len(nbrs); a++ {
			u := pts[nbrs[a]].Sub(p)
			uNorm := u.Norm()
			if uNorm == 0 {
				continue
			}
			for b := a + 1; b < len(nbrs); b++ {
				v := pts[nbrs[b]].Sub(p)
				vNorm := v.Norm()
				if vNorm == 0 {
					continue
				}
				cos := u.Dot(v) / (uNorm * vNorm)
				cos = math.Max(-1, math.Min(1, cos))
				bin := int(math.Acos(cos) / binWidth)
				if bin >= bins {
					bin = bins - 1
				}
				g[bin]++
			}
		}
	}

	if total := floats.Sum(g); total > 0 {
		floats.Scale(1/total, g)
	}
	return angles, g, nil
}
