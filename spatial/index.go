// Package spatial provides a static nearest-neighbor and radius query engine
// over a snapshot of a point set. An Index is built once, queried many times,
// and discarded; any change to the underlying points means building a new
// Index. The rebuild-per-call pattern used throughout this library is a
// deliberate simplicity tradeoff, costing O(n log n) per build.
package spatial

import (
	"sort"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/kdtree"

	"github.com/scatterkit/scatter/point"
)

// Neighbor is one query result: the index of a point in the slice the Index
// was built from and its squared Euclidean distance to the query. Distances
// stay squared so callers only pay for a square root when they need one.
type Neighbor struct {
	Index           int
	DistanceSquared float64
}

// Index answers k-nearest and radius queries over a fixed point set.
type Index struct {
	tree *kdtree.Tree
	dim  int
	size int
}

// entry adapts a point and its position in the source slice to the kd-tree.
type entry struct {
	coords point.Point
	index  int
}

func (e entry) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(entry)
	return e.coords[d] - q.coords[d]
}

func (e entry) Dims() int { return len(e.coords) }

func (e entry) Distance(c kdtree.Comparable) float64 {
	q := c.(entry)
	return e.coords.DistanceSquared(q.coords)
}

type entries []entry

func (e entries) Index(i int) kdtree.Comparable { return e[i] }

func (e entries) Len() int { return len(e) }

func (e entries) Slice(start, end int) kdtree.Interface { return e[start:end] }
func (e entries) Pivot(d kdtree.Dim) int {
	return plane{Dim: d, entries: e}.Pivot()
}

// plane sorts entries along a single dimension for tree construction.
type plane struct {
	kdtree.Dim
	entries
}

func (p plane) Less(i, j int) bool {
	return p.entries[i].coords[p.Dim] < p.entries[j].coords[p.Dim]
}
func (p plane) Pivot() int { return kdtree.Partition(p, kdtree.MedianOfMedians(p)) }
func (p plane) Slice(start, end int) kdtree.SortSlicer {
	return plane{Dim: p.Dim, entries: p.entries[start:end]}
}
func (p plane) Swap(i, j int) {
	p.entries[i], p.entries[j] = p.entries[j], p.entries[i]
}

// NewIndex builds an index over the given points. The coordinates are copied,
// but callers must still not mutate the slice while querying since results
// reference it by position. An empty slice builds a valid empty index.
func NewIndex(pts []point.Point) (*Index, error) {
	dim, err := point.Dimension(pts)
	if err != nil {
		return nil, err
	}
	ix := &Index{dim: dim, size: len(pts)}
	if len(pts) == 0 {
		return ix, nil
	}
	data := make(entries, len(pts))
	for i, p := range pts {
		data[i] = entry{coords: p.Clone(), index: i}
	}
	ix.tree = kdtree.New(data, false)
	return ix, nil
}

// Len returns the number of indexed points.
func (ix *Index) Len() int { return ix.size }

// Dim returns the dimension of the indexed points, 0 for an empty index.
func (ix *Index) Dim() int { return ix.dim }

func (ix *Index) checkQuery(q point.Point) error {
	if ix.size > 0 && len(q) != ix.dim {
		return errors.Errorf("query has dimension %d but index has %d", len(q), ix.dim)
	}
	return nil
}

// Nearest returns up to k neighbors of q ordered by ascending squared
// distance, ties broken by index. Fewer than k results are returned when the
// index holds fewer points.
func (ix *Index) Nearest(q point.Point, k int) ([]Neighbor, error) {
	if k <= 0 {
		return nil, errors.Errorf("k must be positive, got %d", k)
	}
	if err := ix.checkQuery(q); err != nil {
		return nil, err
	}
	if ix.size == 0 {
		return []Neighbor{}, nil
	}
	keeper := kdtree.NewNKeeper(k)
	ix.tree.NearestSet(keeper, entry{coords: q})
	out := make([]Neighbor, 0, keeper.Len())
	for _, cd := range keeper.Heap {
		if cd.Comparable == nil {
			continue
		}
		out = append(out, Neighbor{Index: cd.Comparable.(entry).index, DistanceSquared: cd.Dist})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DistanceSquared != out[j].DistanceSquared {
			return out[i].DistanceSquared < out[j].DistanceSquared
		}
		return out[i].Index < out[j].Index
	})
	return out, nil
}

// InRadius returns all points with squared distance to q at most r*r,
// boundary included, in no particular order.
func (ix *Index) InRadius(q point.Point, r float64) ([]Neighbor, error) {
	if r < 0 {
		return nil, errors.Errorf("radius must be non-negative, got %v", r)
	}
	if err := ix.checkQuery(q); err != nil {
		return nil, err
	}
	if ix.size == 0 {
		return []Neighbor{}, nil
	}
	keeper := kdtree.NewDistKeeper(r * r)
	ix.tree.NearestSet(keeper, entry{coords: q})
	out := make([]Neighbor, 0, keeper.Len())
	for _, cd := range keeper.Heap {
		if cd.Comparable == nil {
			continue
		}
		out = append(out, Neighbor{Index: cd.Comparable.(entry).index, DistanceSquared: cd.Dist})
	}
	return out, nil
}
