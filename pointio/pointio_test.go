package pointio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/edaniels/golog"
	"go.viam.com/test"

	"github.com/scatterkit/scatter/point"
)

func TestPointsRoundTrip(t *testing.T) {
	logger := golog.NewTestLogger(t)
	fn := filepath.Join(t.TempDir(), "points.csv")

	pts := []point.Point{
		point.New(0.25, -1.5, 3),
		point.New(1e-9, 2.5, 0),
		point.New(7, 8, 9.125),
	}
	test.That(t, WritePointsToCSV(fn, pts), test.ShouldBeNil)

	got, err := ReadPointsFromCSV(fn, logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, got, test.ShouldResemble, pts)
}

func TestReadPointsWithoutHeader(t *testing.T) {
	logger := golog.NewTestLogger(t)
	fn := filepath.Join(t.TempDir(), "raw.csv")
	err := os.WriteFile(fn, []byte("0.5,0.5\n0.25,0.75\n"), 0o600)
	test.That(t, err, test.ShouldBeNil)

	got, err := ReadPointsFromCSV(fn, logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, got, test.ShouldResemble, []point.Point{
		point.New(0.5, 0.5),
		point.New(0.25, 0.75),
	})
}

func TestReadPointsBadRows(t *testing.T) {
	logger := golog.NewTestLogger(t)
	dir := t.TempDir()

	fn := filepath.Join(dir, "bad.csv")
	err := os.WriteFile(fn, []byte("x0,x1\n0.5,oops\n"), 0o600)
	test.That(t, err, test.ShouldBeNil)
	_, err = ReadPointsFromCSV(fn, logger)
	test.That(t, err, test.ShouldNotBeNil)

	// mixed dimensions are rejected by the csv reader itself
	fn = filepath.Join(dir, "ragged.csv")
	err = os.WriteFile(fn, []byte("0.5,0.5\n0.25\n"), 0o600)
	test.That(t, err, test.ShouldBeNil)
	_, err = ReadPointsFromCSV(fn, logger)
	test.That(t, err, test.ShouldNotBeNil)

	_, err = ReadPointsFromCSV(filepath.Join(dir, "missing.csv"), logger)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestLabelsRoundTrip(t *testing.T) {
	logger := golog.NewTestLogger(t)
	fn := filepath.Join(t.TempDir(), "labels.csv")

	labels := []int{0, 0, 1, -1, 2}
	test.That(t, WriteLabelsToCSV(fn, "cluster", labels), test.ShouldBeNil)

	got, err := ReadLabelsFromCSV(fn, logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, got, test.ShouldResemble, labels)
}

func TestWriteCurveToCSV(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "curve.csv")
	err := WriteCurveToCSV(fn, "r", "g", []float64{0.05, 0.15}, []float64{0.9, 1.1})
	test.That(t, err, test.ShouldBeNil)
	data, err := os.ReadFile(fn)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, string(data), test.ShouldEqual, "r,g\n0.05,0.9\n0.15,1.1\n")

	err = WriteCurveToCSV(fn, "r", "g", []float64{1}, nil)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestWriteValuesAndLabels(t *testing.T) {
	dir := t.TempDir()

	fn := filepath.Join(dir, "values.csv")
	test.That(t, WriteValuesToCSV(fn, "density", []float64{1.5, 0.25}), test.ShouldBeNil)
	data, err := os.ReadFile(fn)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, string(data), test.ShouldEqual, "density\n1.5\n0.25\n")

	fn = filepath.Join(dir, "labels.csv")
	test.That(t, WriteLabelsToCSV(fn, "cluster", []int{0, 1, -1}), test.ShouldBeNil)
	data, err = os.ReadFile(fn)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, string(data), test.ShouldEqual, "cluster\n0\n1\n-1\n")
}
