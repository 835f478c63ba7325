package cluster

import (
	"math/rand/v2"
	"testing"

	"go.viam.com/test"

	"github.com/scatterkit/scatter/point"
)

func TestPercolationBasic(t *testing.T) {
	pts := []point.Point{
		point.New(0.1, 0.2),
		point.New(0.15, 0.22),
		point.New(0.9, 0.9),
	}
	labels, n, err := Percolation(pts, 0.1)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, n, test.ShouldEqual, 2)
	test.That(t, labels, test.ShouldResemble, []int{0, 0, 1})
}

func TestPercolationEveryPointLabeled(t *testing.T) {
	rng := rand.New(rand.NewPCG(6, 6))
	pts := make([]point.Point, 150)
	for i := range pts {
		pts[i] = point.New(rng.Float64(), rng.Float64())
	}
	labels, n, err := Percolation(pts, 0.05)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, n, test.ShouldBeGreaterThan, 0)
	for _, l := range labels {
		test.That(t, l, test.ShouldBeGreaterThanOrEqualTo, 0)
		test.That(t, l, test.ShouldBeLessThan, n)
	}
}

// unionFind is a reference implementation used to cross-check that percolation
// labels induce the same partition as the radius graph's transitive closure.
type unionFind []int

func newUnionFind(n int) unionFind {
	uf := make(unionFind, n)
	for i := range uf {
		uf[i] = i
	}
	return uf
}

func (uf unionFind) find(i int) int {
	for uf[i] != i {
		uf[i] = uf[uf[i]]
		i = uf[i]
	}
	return i
}

func (uf unionFind) union(i, j int) {
	uf[uf.find(i)] = uf.find(j)
}

func TestPercolationMatchesUnionFind(t *testing.T) {
	rng := rand.New(rand.NewPCG(13, 37))
	pts := make([]point.Point, 80)
	for i := range pts {
		pts[i] = point.New(rng.Float64(), rng.Float64())
	}
	const radius = 0.12

	labels, _, err := Percolation(pts, radius)
	test.That(t, err, test.ShouldBeNil)

	uf := newUnionFind(len(pts))
	for i := 0; i < len(pts); i++ {
		for j := i + 1; j < len(pts); j++ {
			if pts[i].Distance(pts[j]) <= radius {
				uf.union(i, j)
			}
		}
	}

	// same component id if and only if same union-find root: the labeling is
	// the equivalence relation induced by the radius graph
	for i := 0; i < len(pts); i++ {
		for j := i + 1; j < len(pts); j++ {
			test.That(t, labels[i] == labels[j], test.ShouldEqual, uf.find(i) == uf.find(j))
		}
	}
}

func TestPercolationSingletons(t *testing.T) {
	pts := []point.Point{point.New(0, 0), point.New(10, 10), point.New(20, 20)}
	labels, n, err := Percolation(pts, 1)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, n, test.ShouldEqual, 3)
	test.That(t, labels, test.ShouldResemble, []int{0, 1, 2})
}

func TestPercolationDegenerate(t *testing.T) {
	labels, n, err := Percolation(nil, 1)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, n, test.ShouldEqual, 0)
	test.That(t, labels, test.ShouldBeEmpty)

	_, _, err = Percolation([]point.Point{point.New(0, 0)}, 0)
	test.That(t, err, test.ShouldNotBeNil)
}
