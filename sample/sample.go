// Package sample provides point-set generators: uniform random draws,
// low-discrepancy sequences, stratified grids, Gaussian clusters, random-walk
// filaments, and density-driven rejection and resampling. All randomized
// generators take an explicit *rand.Rand so runs are reproducible end to end;
// low-discrepancy sequences take an integer shift instead.
package sample

import (
	"math/rand/v2"

	"github.com/pkg/errors"

	"github.com/scatterkit/scatter/point"
)

func checkCountAndDomain(count int, domain point.Domain) error {
	if count < 0 {
		return errors.Errorf("count must be non-negative, got %d", count)
	}
	return domain.CheckValid()
}

// Uniform returns count points drawn independently and uniformly per axis.
func Uniform(count int, domain point.Domain, rng *rand.Rand) ([]point.Point, error) {
	if err := checkCountAndDomain(count, domain); err != nil {
		return nil, err
	}
	pts := make([]point.Point, count)
	for i := range pts {
		pts[i] = domain.RandomPoint(rng)
	}
	return pts, nil
}

// GaussianClusters returns perCluster points scattered around each center
// with normally distributed per-coordinate offsets of the given spread.
func GaussianClusters(centers []point.Point, perCluster int, spread float64, rng *rand.Rand) ([]point.Point, error) {
	if perCluster < 0 {
		return nil, errors.Errorf("points per cluster must be non-negative, got %d", perCluster)
	}
	if _, err := point.Dimension(centers); err != nil {
		return nil, err
	}
	pts := make([]point.Point, 0, len(centers)*perCluster)
	for _, c := range centers {
		for j := 0; j < perCluster; j++ {
			p := make(point.Point, len(c))
			for d := range p {
				p[d] = c[d] + rng.NormFloat64()*spread
			}
			pts = append(pts, p)
		}
	}
	return pts, nil
}

// RandomGaussianClusters draws clusterCount centers uniformly from the domain
// and scatters perCluster points around each.
func RandomGaussianClusters(clusterCount, perCluster int, domain point.Domain, spread float64, rng *rand.Rand) ([]point.Point, error) {
	centers, err := Uniform(clusterCount, domain, rng)
	if err != nil {
		return nil, err
	}
	return GaussianClusters(centers, perCluster, spread, rng)
}
