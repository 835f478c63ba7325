// Package metrics computes neighbor-based statistics of point patterns:
// nearest-neighbor structure, local density, radial and angular distribution
// functions, boundary distances, and scalar summaries.
package metrics

import (
	"math"

	"github.com/pkg/errors"

	"github.com/scatterkit/scatter/point"
	"github.com/scatterkit/scatter/spatial"
)

// distEpsilon pads squared nearest-neighbor distances so downstream inverse
// weights stay finite for coincident points.
const distEpsilon = 1e-6

// NearestNeighbors returns, per point, the indices of its up to k nearest
// neighbors ascending by distance, the point itself excluded.
func NearestNeighbors(pts []point.Point, k int) ([][]int, error) {
	if k < 1 {
		return nil, errors.Errorf("neighbor count must be at least 1, got %d", k)
	}
	ix, err := spatial.NewIndex(pts)
	if err != nil {
		return nil, err
	}

	out := make([][]int, len(pts))
	for i, p := range pts {
		neighbors, err := ix.Nearest(p, k+1)
		if err != nil {
			return nil, err
		}
		ids := make([]int, 0, k)
		for _, n := range neighbors {
			if n.Index == i {
				continue
			}
			if len(ids) == k {
				break
			}
			ids = append(ids, n.Index)
		}
		out[i] = ids
	}
	return out, nil
}

// NearestNeighborDistancesSquared returns each point's squared distance to
// its nearest neighbor, padded by a small epsilon. Sets with fewer than two
// points report zero.
func NearestNeighborDistancesSquared(pts []point.Point) ([]float64, error) {
	neighbors, err := NearestNeighbors(pts, 1)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(pts))
	for i, nbrs := range neighbors {
		if len(nbrs) == 0 {
			continue
		}
		out[i] = pts[i].DistanceSquared(pts[nbrs[0]]) + distEpsilon
	}
	return out, nil
}

// unitBallVolume returns the volume of the unit n-ball, pi^(n/2)/Gamma(n/2+1).
func unitBallVolume(n int) float64 {
	return math.Pow(math.Pi, float64(n)/2) / math.Gamma(float64(n)/2+1)
}

// LocalDensity estimates the density at each point as k/(V_N * r^N) where r
// is the distance to the k-th nearest neighbor (or the last available one)
// and V_N is the unit N-ball volume. Points with no neighbors report zero.
func LocalDensity(pts []point.Point, k int) ([]float64, error) {
	neighbors, err := NearestNeighbors(pts, k)
	if err != nil {
		return nil, err
	}
	dim, err := point.Dimension(pts)
	if err != nil {
		return nil, err
	}

	ballVol := unitBallVolume(dim)
	out := make([]float64, len(pts))
	for i, nbrs := range neighbors {
		if len(nbrs) == 0 {
			continue
		}
		r := pts[i].Distance(pts[nbrs[len(nbrs)-1]])
		volume := ballVol * math.Pow(r, float64(dim))
		out[i] = float64(k) / volume
	}
	return out, nil
}
