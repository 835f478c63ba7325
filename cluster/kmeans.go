package cluster

import (
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
	"github.com/pkg/errors"

	"github.com/scatterkit/scatter/point"
)

// observation adapts a point to the kmeans library while remembering its
// input index so labels can be aligned positionally.
type observation struct {
	index  int
	coords clusters.Coordinates
}

func (o observation) Coordinates() clusters.Coordinates {
	return o.coords
}

func (o observation) Distance(p clusters.Coordinates) float64 {
	var sum float64
	for i, v := range o.coords {
		d := v - p[i]
		sum += d * d
	}
	return sum
}

// KMeans partitions the points into k clusters with Lloyd's algorithm,
// delegating entirely to the kmeans library; the partition seeding randomness
// is the library's own, so labels are not reproducible across runs. When
// normalize is set the points are refit to the unit cube before partitioning
// and the centroids are mapped back afterward. Returns the centroids and a
// per-point label slice aligned by input index.
func KMeans(pts []point.Point, k int, normalize bool) ([]point.Point, []int, error) {
	if k < 1 {
		return nil, nil, errors.Errorf("cluster count must be at least 1, got %d", k)
	}
	dim, err := point.Dimension(pts)
	if err != nil {
		return nil, nil, err
	}
	if len(pts) == 0 {
		return []point.Point{}, []int{}, nil
	}

	data := pts
	var bounds point.Domain
	if normalize {
		bounds = point.Bounds(pts)
		data, err = point.RefitToDomain(pts, point.Unit(dim))
		if err != nil {
			return nil, nil, err
		}
	}

	all := make(clusters.Observations, len(data))
	for i, p := range data {
		all[i] = observation{index: i, coords: clusters.Coordinates(p)}
	}

	km := kmeans.New()
	partition, err := km.Partition(all, k)
	if err != nil {
		return nil, nil, errors.Wrap(err, "kmeans partition failed")
	}

	centroids := make([]point.Point, 0, len(partition))
	labels := make([]int, len(pts))
	for ci, c := range partition {
		centroid := point.Point(c.Center).Clone()
		if normalize {
			for d := range centroid {
				centroid[d] = bounds[d].Min + centroid[d]*bounds[d].Span()
			}
		}
		centroids = append(centroids, centroid)
		for _, o := range c.Observations {
			labels[o.(observation).index] = ci
		}
	}
	return centroids, labels, nil
}
