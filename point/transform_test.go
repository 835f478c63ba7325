package point

import (
	"testing"

	"go.viam.com/test"
)

func TestBounds(t *testing.T) {
	test.That(t, Bounds(nil), test.ShouldBeNil)

	pts := []Point{New(0, 5), New(2, -1), New(1, 3)}
	b := Bounds(pts)
	test.That(t, b, test.ShouldResemble, Domain{{Min: 0, Max: 2}, {Min: -1, Max: 5}})
}

func TestRefitToDomain(t *testing.T) {
	pts := []Point{New(0, 0), New(1, 2), New(2, 4)}
	target := Domain{{Min: 10, Max: 20}, {Min: 50, Max: 100}}

	out, err := RefitToDomain(pts, target)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out[0], test.ShouldResemble, New(10, 50))
	test.That(t, out[2], test.ShouldResemble, New(20, 100))
	test.That(t, out[1][0], test.ShouldAlmostEqual, 15, 1e-12)
	test.That(t, out[1][1], test.ShouldAlmostEqual, 75, 1e-12)

	// input untouched
	test.That(t, pts[0], test.ShouldResemble, New(0, 0))

	// degenerate axis maps to the target center
	flat := []Point{New(0.5, 1), New(0.5, 2)}
	out, err = RefitToDomain(flat, Unit(2))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out[0][0], test.ShouldEqual, 0.5)
	test.That(t, out[1][0], test.ShouldEqual, 0.5)
	test.That(t, out[0][1], test.ShouldEqual, 0)
	test.That(t, out[1][1], test.ShouldEqual, 1)

	_, err = RefitToDomain([]Point{New(1, 2, 3)}, Unit(2))
	test.That(t, err, test.ShouldNotBeNil)
}

func TestRescaleToDomain(t *testing.T) {
	pts := []Point{New(0, 0), New(1, 1), New(0.5, 0.5)}
	target := Domain{{Min: 10, Max: 20}, {Min: 100, Max: 200}}

	out, err := RescaleToDomain(pts, target)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out[0], test.ShouldResemble, New(10, 100))
	test.That(t, out[1], test.ShouldResemble, New(20, 200))
	test.That(t, out[2], test.ShouldResemble, New(15, 150))
}

func TestSplitByAxis(t *testing.T) {
	cols, err := SplitByAxis([]Point{New(1, 4), New(2, 5), New(3, 6)})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cols, test.ShouldResemble, [][]float64{{1, 2, 3}, {4, 5, 6}})

	_, err = SplitByAxis([]Point{New(1, 2), New(1)})
	test.That(t, err, test.ShouldNotBeNil)
}

func TestInterop(t *testing.T) {
	p := New(1, 2, 3, 4)

	v2, err := p.R2()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, v2.X, test.ShouldEqual, 1)
	test.That(t, v2.Y, test.ShouldEqual, 2)

	v3, err := p.R3()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, v3.Z, test.ShouldEqual, 3)

	_, err = New(1).R2()
	test.That(t, err, test.ShouldNotBeNil)
	_, err = New(1, 2).R3()
	test.That(t, err, test.ShouldNotBeNil)

	test.That(t, FromR2(v2), test.ShouldResemble, New(1, 2))
	test.That(t, FromR3(v3), test.ShouldResemble, New(1, 2, 3))
}
