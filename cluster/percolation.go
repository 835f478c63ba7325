package cluster

import (
	"github.com/pkg/errors"

	"github.com/scatterkit/scatter/point"
	"github.com/scatterkit/scatter/spatial"
)

// Percolation labels the connected components of the graph whose edges join
// any two points within connectionRadius, by breadth-first traversal. Every
// point receives a component id; isolated points form singleton components.
// Returns the labels and the number of components.
func Percolation(pts []point.Point, connectionRadius float64) ([]int, int, error) {
	if connectionRadius <= 0 {
		return nil, 0, errors.Errorf("connection radius must be positive, got %v", connectionRadius)
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
	component := 0

	for i := range pts {
		if labels[i] != labelUnvisited {
			continue
		}
		labels[i] = component
		queue := []int{i}

		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]

			matches, err := ix.InRadius(pts[cur], connectionRadius)
			if err != nil {
				return nil, 0, err
			}
			for _, m := range matches {
				if labels[m.Index] == labelUnvisited {
					labels[m.Index] = component
					queue = append(queue, m.Index)
				}
			}
		}
		component++
	}
	return labels, component, nil
}
