package render

import (
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// SaveCurvePNG plots ys against xs as a line with a grid and writes a
// 6x4 inch PNG.
func SaveCurvePNG(fn string, xs, ys []float64, title, xLabel, yLabel string) error {
	if len(xs) != len(ys) {
		return errors.Errorf("have %d x values for %d y values", len(xs), len(ys))
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())

	xys := make(plotter.XYs, len(xs))
	for i := range xs {
		xys[i].X = xs[i]
		xys[i].Y = ys[i]
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return errors.Wrap(err, "building line plot")
	}
	p.Add(line)

	return p.Save(6*vg.Inch, 4*vg.Inch, fn)
}
