// Package render draws point sets and metric curves to PNG files.
package render

import (
	"image/color"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"

	"github.com/scatterkit/scatter/cluster"
	"github.com/scatterkit/scatter/point"
)

// Config controls scatter rendering. Zero values fall back to the defaults:
// 800x800 pixels, point radius 2, and the axis-aligned bounding box of the
// points as the view window.
type Config struct {
	Width       int          `json:"width"`
	Height      int          `json:"height"`
	PointRadius float64      `json:"point_radius"`
	Domain      point.Domain `json:"domain"`
}

const (
	defaultWidth  = 800
	defaultHeight = 800
	defaultRadius = 2.0
)

// palette is a fixed qualitative palette cycled by cluster label.
var palette = []color.NRGBA{
	{31, 119, 180, 255},
	{255, 127, 14, 255},
	{44, 160, 44, 255},
	{214, 39, 40, 255},
	{148, 103, 189, 255},
	{140, 86, 75, 255},
	{227, 119, 194, 255},
	{188, 189, 34, 255},
	{23, 190, 207, 255},
}

var noiseGray = color.NRGBA{160, 160, 160, 255}

func (c Config) withDefaults(pts []point.Point) (Config, error) {
	if c.Width <= 0 {
		c.Width = defaultWidth
	}
	if c.Height <= 0 {
		c.Height = defaultHeight
	}
	if c.PointRadius <= 0 {
		c.PointRadius = defaultRadius
	}
	if c.Domain == nil {
		bounds := point.Bounds(pts)
		if len(bounds) < 2 {
			return c, errors.Errorf("cannot render %d-dimensional points", len(bounds))
		}
		// pad degenerate axes so a flat set still maps to a visible window
		for d := range bounds {
			if bounds[d].Span() == 0 {
				bounds[d].Min--
				bounds[d].Max++
			}
		}
		c.Domain = bounds
	}
	if err := c.Domain.CheckValid(); err != nil {
		return c, err
	}
	if c.Domain.Dim() < 2 {
		return c, errors.Errorf("render domain needs at least 2 axes, got %d", c.Domain.Dim())
	}
	return c, nil
}

// pixel maps the first two axes of p into image coordinates, flipping y so
// the domain's max Y is at the top of the image.
func (c Config) pixel(p point.Point) (float64, float64, error) {
	v, err := p.R2()
	if err != nil {
		return 0, 0, err
	}
	x := (v.X - c.Domain[0].Min) / c.Domain[0].Span() * float64(c.Width)
	y := (v.Y - c.Domain[1].Min) / c.Domain[1].Span() * float64(c.Height)
	return x, float64(c.Height) - y, nil
}

// SavePointsPNG renders the points as dark dots on a white background.
func SavePointsPNG(fn string, pts []point.Point, cfg Config) error {
	labels := make([]int, len(pts))
	for i := range labels {
		labels[i] = cluster.Noise
	}
	return saveScatter(fn, pts, labels, cfg, color.NRGBA{40, 40, 40, 255})
}

// SaveLabeledPNG renders the points colored by cluster label, cycling a fixed
// palette; noise points are drawn gray.
func SaveLabeledPNG(fn string, pts []point.Point, labels []int, cfg Config) error {
	if len(labels) != len(pts) {
		return errors.Errorf("have %d labels for %d points", len(labels), len(pts))
	}
	return saveScatter(fn, pts, labels, cfg, noiseGray)
}

func saveScatter(
	fn string,
	pts []point.Point,
	labels []int,
	cfg Config,
	noiseColor color.NRGBA,
) error {
	if _, err := point.Dimension(pts); err != nil {
		return err
	}
	cfg, err := cfg.withDefaults(pts)
	if err != nil {
		return err
	}

	dc := gg.NewContext(cfg.Width, cfg.Height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	for i, p := range pts {
		x, y, err := cfg.pixel(p)
		if err != nil {
			return err
		}
		if labels[i] == cluster.Noise {
			dc.SetColor(noiseColor)
		} else {
			dc.SetColor(palette[labels[i]%len(palette)])
		}
		dc.DrawCircle(x, y, cfg.PointRadius)
		dc.Fill()
	}
	return dc.SavePNG(fn)
}
