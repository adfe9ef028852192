// Package chart renders training cost curves recorded by m.Network.Train.
package chart

import (
	"image/color"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"dnn/m"
)

// File draws the cost curve as a line chart and saves it to Path. The
// image format follows the extension (png, svg, pdf, ...).
type File struct {
	Path   string
	Width  vg.Length
	Height vg.Length
}

// Plot implements m.ChartSink.
func (f File) Plot(points []m.CostPoint) error {
	if len(points) == 0 {
		return errors.New("no cost points to plot")
	}

	p := plot.New()
	p.Title.Text = "Training Cost"
	p.X.Label.Text = "iteration"
	p.Y.Label.Text = "cost"

	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		xys[i].X = float64(pt.Iteration)
		xys[i].Y = pt.Cost
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return errors.Wrap(err, "building cost line")
	}
	line.LineStyle.Color = color.RGBA{B: 255, A: 255}
	p.Add(line)

	w, h := f.Width, f.Height
	if w == 0 {
		w = 6 * vg.Inch
	}
	if h == 0 {
		h = 4 * vg.Inch
	}
	if err := p.Save(w, h, f.Path); err != nil {
		return errors.Wrapf(err, "saving chart to %s", f.Path)
	}
	return nil
}

// Series keeps every plotted point in memory.
type Series struct {
	Points []m.CostPoint
}

func (s *Series) Plot(points []m.CostPoint) error {
	s.Points = append(s.Points, points...)
	return nil
}

// Multi forwards the points to every sink in order and stops at the first error.
type Multi []m.ChartSink

func (ms Multi) Plot(points []m.CostPoint) error {
	for _, s := range ms {
		if err := s.Plot(points); err != nil {
			return err
		}
	}
	return nil
}
