// Package cluster groups points by spatial density (DBSCAN), radius-graph
// connectivity (percolation), or centroid partitioning (k-means).
package cluster

import (
	"github.com/pkg/errors"

	"github.com/scatterkit/scatter/point"
	"github.com/scatterkit/scatter/spatial"
)

// Noise is the label of points assigned to no cluster.
const Noise = -1

// in-run label states; noise is kept distinct from unvisited so a noise point
// can still be adopted as a border member of a later cluster.
const (
	labelUnvisited = -1
	labelNoise     = -2
)

// DBSCAN labels each point with a cluster id in 0..k-1 or Noise. A point is a
// core point when its eps-neighborhood (self included) holds at least minPts
// points; clusters grow breadth-first from core points, and points reachable
// from a core without being cores themselves join as border points. Output is
// deterministic for a fixed input order. Returns the labels and the number of
// clusters.
func DBSCAN(pts []point.Point, eps float64, minPts int) ([]int, int, error) {
	if eps <= 0 {
		return nil, 0, errors.Errorf("eps must be positive, got %v", eps)
	}
	if minPts < 1 {
		return nil, 0, errors.Errorf("minimum points must be at least 1, got %d", minPts)
	}
	if len(pts) == 0 {
		return []int{}, 0, nil
	}
	ix, err := spatial.NewIndex(pts)
	if err != nil {
		return nil, 0, err
	}

	labels := make([]int, len(pts))
	for i := range labels {
		labels[i] = labelUnvisited
	}
	clusterID := 0

	for i := range pts {
		if labels[i] != labelUnvisited {
			continue
		}
		matches, err := ix.InRadius(pts[i], eps)
		if err != nil {
			return nil, 0, err
		}
		if len(matches) < minPts {
			labels[i] = labelNoise
			continue
		}

		labels[i] = clusterID
		seeds := make([]int, 0, len(matches))
		for _, m := range matches {
			if m.Index != i {
				seeds = append(seeds, m.Index)
			}
		}

		for j := 0; j < len(seeds); j++ {
			n := seeds[j]
			// the noise-to-border relabel must run before the
			// already-assigned skip: a point rejected as noise earlier can
			// still be a border member of this cluster
			if labels[n] == labelNoise {
				labels[n] = clusterID
			}
			if labels[n] != labelUnvisited {
				continue
			}
			labels[n] = clusterID

			nm, err := ix.InRadius(pts[n], eps)
			if err != nil {
				return nil, 0, err
			}
			if len(nm) >= minPts {
				for _, m := range nm {
					if labels[m.Index] == labelUnvisited {
						seeds = append(seeds, m.Index)
					}
				}
			}
		}
		clusterID++
	}

	for i, l := range labels {
		if l == labelNoise {
			labels[i] = Noise
		}
	}
	return labels, clusterID, nil
}
