package cluster

import (
	"math/rand/v2"
	"testing"

	"go.viam.com/test"

	"github.com/scatterkit/scatter/point"
)

func twoBlobs(rng *rand.Rand) []point.Point {
	pts := make([]point.Point, 0, 100)
	for i := 0; i < 50; i++ {
		pts = append(pts, point.New(rng.NormFloat64()*0.05, rng.NormFloat64()*0.05))
	}
	for i := 0; i < 50; i++ {
		pts = append(pts, point.New(10+rng.NormFloat64()*0.05, 10+rng.NormFloat64()*0.05))
	}
	return pts
}

func TestKMeansTwoBlobs(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 17))
	pts := twoBlobs(rng)

	centroids, labels, err := KMeans(pts, 2, false)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, centroids, test.ShouldHaveLength, 2)
	test.That(t, labels, test.ShouldHaveLength, 100)

	// all points of one blob share a label and the two blobs differ
	for i := 1; i < 50; i++ {
		test.That(t, labels[i], test.ShouldEqual, labels[0])
	}
	for i := 51; i < 100; i++ {
		test.That(t, labels[i], test.ShouldEqual, labels[50])
	}
	test.That(t, labels[0], test.ShouldNotEqual, labels[50])

	// one centroid near each blob center
	var nearOrigin, nearTen int
	for _, c := range centroids {
		if c.Distance(point.New(0, 0)) < 1 {
			nearOrigin++
		}
		if c.Distance(point.New(10, 10)) < 1 {
			nearTen++
		}
	}
	test.That(t, nearOrigin, test.ShouldEqual, 1)
	test.That(t, nearTen, test.ShouldEqual, 1)
}

func TestKMeansNormalized(t *testing.T) {
	rng := rand.New(rand.NewPCG(21, 2))
	pts := twoBlobs(rng)

	centroids, labels, err := KMeans(pts, 2, true)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, centroids, test.ShouldHaveLength, 2)
	test.That(t, labels, test.ShouldHaveLength, 100)

	// centroids are mapped back into the original coordinate frame
	var nearOrigin, nearTen int
	for _, c := range centroids {
		if c.Distance(point.New(0, 0)) < 1 {
			nearOrigin++
		}
		if c.Distance(point.New(10, 10)) < 1 {
			nearTen++
		}
	}
	test.That(t, nearOrigin, test.ShouldEqual, 1)
	test.That(t, nearTen, test.ShouldEqual, 1)
}

func TestKMeansDegenerate(t *testing.T) {
	centroids, labels, err := KMeans(nil, 3, false)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, centroids, test.ShouldBeEmpty)
	test.That(t, labels, test.ShouldBeEmpty)

	_, _, err = KMeans([]point.Point{point.New(0, 0)}, 0, false)
	test.That(t, err, test.ShouldNotBeNil)

	_, _, err = KMeans([]point.Point{point.New(0), point.New(0, 1)}, 1, false)
	test.That(t, err, test.ShouldNotBeNil)
}
