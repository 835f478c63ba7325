package metrics

import (
	"math"

	"github.com/pkg/errors"

	"github.com/scatterkit/scatter/point"
	"github.com/scatterkit/scatter/spatial"
)

// RadialDistribution computes the radial distribution function g(r) over
// histogram bins of the given width out to maxDistance. The returned radii
// are the bin centers. Bin counts are normalized against an uncorrelated
// pattern of the same density over the domain, so g(r) near 1 indicates
// uncorrelated spacing at that separation.
func RadialDistribution(
	pts []point.Point,
	domain point.Domain,
	binWidth, maxDistance float64,
) ([]float64, []float64, error) {
	if binWidth <= 0 {
		return nil, nil, errors.Errorf("bin width must be positive, got %v", binWidth)
	}
	if maxDistance <= 0 {
		return nil, nil, errors.Errorf("max distance must be positive, got %v", maxDistance)
	}
	if err := domain.CheckValid(); err != nil {
		return nil, nil, err
	}
	if _, err := point.Dimension(pts); err != nil {
		return nil, nil, err
	}

	bins := int(math.Ceil(maxDistance / binWidth))
	radii := make([]float64, bins)
	g := make([]float64, bins)
	for i := range radii {
		radii[i] = (float64(i) + 0.5) * binWidth
	}
	if len(pts) == 0 {
		return radii, g, nil
	}

	ix, err := spatial.NewIndex(pts)
	if err != nil {
		return nil, nil, err
	}
	for i, p := range pts {
		neighbors, err := ix.InRadius(p, maxDistance)
		if err != nil {
			return nil, nil, err
		}
		for _, n := range neighbors {
			if n.Index == i {
				continue
			}
			bin := int(math.Sqrt(n.DistanceSquared) / binWidth)
			if bin >= bins {
				continue
			}
			// each unordered pair is seen from both endpoints, adding 2 in total
			g[bin]++
		}
	}

	dim := domain.Dim()
	n := float64(len(pts))
	density := n / domain.Volume()
	ballVol := unitBallVolume(dim)
	for i := range g {
		inner := float64(i) * binWidth
		outer := inner + binWidth
		shellVol := ballVol * (math.Pow(outer, float64(dim)) - math.Pow(inner, float64(dim)))
		g[i] /= n * density * shellVol
	}
	return radii, g, nil
}
