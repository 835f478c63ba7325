package render

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"go.viam.com/test"

	"github.com/scatterkit/scatter/cluster"
	"github.com/scatterkit/scatter/point"
)

func decodePNGSize(t *testing.T, fn string) (int, int) {
	t.Helper()
	f, err := os.Open(fn)
	test.That(t, err, test.ShouldBeNil)
	defer func() {
		test.That(t, f.Close(), test.ShouldBeNil)
	}()
	img, err := png.Decode(f)
	test.That(t, err, test.ShouldBeNil)
	return img.Bounds().Dx(), img.Bounds().Dy()
}

func TestSavePointsPNGDefaults(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "points.png")
	pts := []point.Point{
		point.New(0, 0),
		point.New(0.5, 0.25),
		point.New(1, 1),
	}
	test.That(t, SavePointsPNG(fn, pts, Config{}), test.ShouldBeNil)

	w, h := decodePNGSize(t, fn)
	test.That(t, w, test.ShouldEqual, 800)
	test.That(t, h, test.ShouldEqual, 800)
}

func TestSavePointsPNGCustomSize(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "points.png")
	pts := []point.Point{point.New(0.5, 0.5)}
	cfg := Config{Width: 200, Height: 100, Domain: point.Unit(2)}
	test.That(t, SavePointsPNG(fn, pts, cfg), test.ShouldBeNil)

	w, h := decodePNGSize(t, fn)
	test.That(t, w, test.ShouldEqual, 200)
	test.That(t, h, test.ShouldEqual, 100)
}

func TestSavePointsPNGDegenerateAxis(t *testing.T) {
	// collinear points still produce a valid window
	fn := filepath.Join(t.TempDir(), "flat.png")
	pts := []point.Point{point.New(0, 0.5), point.New(1, 0.5)}
	test.That(t, SavePointsPNG(fn, pts, Config{}), test.ShouldBeNil)
	_, _ = decodePNGSize(t, fn)
}

func TestSaveLabeledPNG(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "labeled.png")
	pts := []point.Point{
		point.New(0.1, 0.1),
		point.New(0.9, 0.9),
		point.New(0.5, 0.5),
	}
	labels := []int{0, 1, cluster.Noise}
	test.That(t, SaveLabeledPNG(fn, pts, labels, Config{}), test.ShouldBeNil)
	_, _ = decodePNGSize(t, fn)

	err := SaveLabeledPNG(fn, pts, []int{0}, Config{})
	test.That(t, err, test.ShouldNotBeNil)
}

func TestSavePointsPNGErrors(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "bad.png")
	err := SavePointsPNG(fn, []point.Point{point.New(0.5)}, Config{})
	test.That(t, err, test.ShouldNotBeNil)
}

func TestSaveCurvePNG(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "curve.png")
	xs := []float64{0, 1, 2, 3}
	ys := []float64{0, 1, 4, 9}
	test.That(t, SaveCurvePNG(fn, xs, ys, "squares", "x", "y"), test.ShouldBeNil)

	info, err := os.Stat(fn)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, info.Size(), test.ShouldBeGreaterThan, 0)

	err = SaveCurvePNG(fn, xs, ys[:2], "squares", "x", "y")
	test.That(t, err, test.ShouldNotBeNil)
}
