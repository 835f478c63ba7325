package sample

import (
	"math"
	"math/rand/v2"

	"github.com/pkg/errors"

	"github.com/scatterkit/scatter/point"
)

// JitteredGrid partitions the domain into roughly count cells and places one
// point per cell, at most count in total. jitter is the per-axis fraction of
// the cell size a point may wander from the cell center (1 jitters across the
// whole cell, 0 pins points to centers). stagger offsets a cell along each
// axis by the given fraction of the cell size once per odd higher-axis cell
// index, producing brick-like layouts. Cells are visited in shuffled order so
// truncation to count does not bias toward one corner of the domain.
func JitteredGrid(count int, domain point.Domain, jitter, stagger []float64, rng *rand.Rand) ([]point.Point, error) {
	if err := checkCountAndDomain(count, domain); err != nil {
		return nil, err
	}
	dim := domain.Dim()
	if len(jitter) != dim || len(stagger) != dim {
		return nil, errors.Errorf("jitter and stagger must have %d entries, got %d and %d", dim, len(jitter), len(stagger))
	}
	if count == 0 {
		return []point.Point{}, nil
	}

	cellEstimate := math.Pow(domain.Volume()/float64(count), 1/float64(dim))
	resolution := make([]int, dim)
	totalCells := 1
	for d, r := range domain {
		resolution[d] = 1
		if cellEstimate > 0 {
			if n := int(r.Span() / cellEstimate); n > 1 {
				resolution[d] = n
			}
		}
		totalCells *= resolution[d]
	}

	cells := make([][]int, totalCells)
	for linear := range cells {
		idx := make([]int, dim)
		div := 1
		for d := 0; d < dim; d++ {
			idx[d] = (linear / div) % resolution[d]
			div *= resolution[d]
		}
		cells[linear] = idx
	}
	rng.Shuffle(len(cells), func(i, j int) {
		cells[i], cells[j] = cells[j], cells[i]
	})
	if count < len(cells) {
		cells = cells[:count]
	}

	pts := make([]point.Point, len(cells))
	for i, idx := range cells {
		p := make(point.Point, dim)
		for d, r := range domain {
			cellSize := r.Span() / float64(resolution[d])
			jitterCenter := (1 - jitter[d]) * 0.5 * cellSize
			jittered := rng.Float64() * jitter[d] * cellSize

			var staggerOffset float64
			for k := d + 1; k < dim; k++ {
				if idx[k]%2 == 1 {
					staggerOffset += stagger[d] * cellSize
				}
			}

			p[d] = r.Min + float64(idx[d])*cellSize + jitterCenter + jittered + staggerOffset
		}
		pts[i] = p
	}
	return pts, nil
}

// JitteredGridFull is JitteredGrid with full jitter and no stagger.
func JitteredGridFull(count int, domain point.Domain, rng *rand.Rand) ([]point.Point, error) {
	jitter := make([]float64, domain.Dim())
	for i := range jitter {
		jitter[i] = 1
	}
	stagger := make([]float64, domain.Dim())
	return JitteredGrid(count, domain, jitter, stagger, rng)
}

// LatinHypercube returns count points stratified independently along every
// axis: each axis is divided into count strata, one sample lands in each, and
// the strata are shuffled per axis.
func LatinHypercube(count int, domain point.Domain, rng *rand.Rand) ([]point.Point, error) {
	if err := checkCountAndDomain(count, domain); err != nil {
		return nil, err
	}
	pts := make([]point.Point, count)
	for i := range pts {
		pts[i] = make(point.Point, domain.Dim())
	}
	strata := make([]float64, count)
	for d, r := range domain {
		stride := r.Span() / float64(count)
		for i := range strata {
			strata[i] = r.Min + (float64(i)+rng.Float64())*stride
		}
		rng.Shuffle(len(strata), func(i, j int) {
			strata[i], strata[j] = strata[j], strata[i]
		})
		for i := range pts {
			pts[i][d] = strata[i]
		}
	}
	return pts, nil
}
