package poisson

import (
	"math"

	"github.com/scatterkit/scatter/point"
)

// occupancyGrid is the dart-throwing acceleration structure: a dense array of
// cells sized so any two points violating the base minimum distance fall
// within a bounded cell neighborhood. Each cell holds at most one accepted
// point, which the minimum-distance constraint guarantees as long as callers
// only insert after a conflict check. Occupants are never removed; the grid
// lives for exactly one sampling run.
type occupancyGrid struct {
	cells    []int // occupant index into the accepted slice, -1 when empty
	res      []int
	strides  []int
	cellSize float64
	domain   point.Domain
}

func newOccupancyGrid(domain point.Domain, minDist float64) *occupancyGrid {
	dim := domain.Dim()
	g := &occupancyGrid{
		res:      make([]int, dim),
		strides:  make([]int, dim),
		cellSize: minDist / math.Sqrt(float64(dim)),
		domain:   domain,
	}
	total := 1
	for d, r := range domain {
		g.res[d] = int(math.Ceil(r.Span() / g.cellSize))
		if g.res[d] < 1 {
			g.res[d] = 1
		}
		g.strides[d] = total
		total *= g.res[d]
	}
	g.cells = make([]int, total)
	for i := range g.cells {
		g.cells[i] = -1
	}
	return g
}

// cellOf returns the multi-index of the cell containing p, clamping the
// coordinate into the domain and the index into the grid at the boundaries.
func (g *occupancyGrid) cellOf(p point.Point) []int {
	idx := make([]int, len(g.res))
	for d, r := range g.domain {
		clamped := math.Min(math.Max(p[d], r.Min), r.Max)
		i := int(math.Floor((clamped - r.Min) / g.cellSize))
		if i >= g.res[d] {
			i = g.res[d] - 1
		}
		idx[d] = i
	}
	return idx
}

func (g *occupancyGrid) linear(idx []int) int {
	lin := 0
	for d, i := range idx {
		lin += i * g.strides[d]
	}
	return lin
}

// insert records the accepted point's index in its cell.
func (g *occupancyGrid) insert(p point.Point, index int) {
	g.cells[g.linear(g.cellOf(p))] = index
}

// conflicts reports whether any occupant lies closer to the candidate than
// the larger of the two points' scaled minimum distances. The max-of-two-radii
// rule is required because the scale field can differ at the candidate and at
// each occupant. The hypercube of cells within the candidate's scaled radius
// is walked with an explicit odometer over an offset array, so the scan
// involves no recursion in the dimension.
func (g *occupancyGrid) conflicts(cand point.Point, accepted []point.Point, minDist float64, scale point.ScalarField) bool {
	scaledCand := scale(cand) * minDist
	center := g.cellOf(cand)
	radius := int(math.Ceil(scaledCand / g.cellSize))

	offset := make([]int, len(g.res))
	for d := range offset {
		offset[d] = -radius
	}
	for {
		inGrid := true
		lin := 0
		for d, off := range offset {
			v := center[d] + off
			if v < 0 || v >= g.res[d] {
				inGrid = false
				break
			}
			lin += v * g.strides[d]
		}
		if inGrid {
			if occ := g.cells[lin]; occ >= 0 {
				q := accepted[occ]
				thresh := math.Max(scaledCand, scale(q)*minDist)
				if cand.DistanceSquared(q) < thresh*thresh {
					return true
				}
			}
		}

		// advance the odometer, carrying into higher dimensions
		d := 0
		for d < len(offset) {
			offset[d]++
			if offset[d] <= radius {
				break
			}
			offset[d] = -radius
			d++
		}
		if d == len(offset) {
			return false
		}
	}
}
