package report

import (
	"errors"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PlotHistory renders history as a line chart of best cost per step and
// saves it to outPath; the format follows the file extension (.png, .svg, .pdf).
func PlotHistory(history []float64, title, xLabel, outPath string) error {
	if len(history) == 0 {
		return errors.New("report: empty cost history")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = "Best cost"
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(history))
	for i, c := range history {
		pts[i].X = float64(i + 1)
		pts[i].Y = c
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(line)

	return p.Save(6*vg.Inch, 4*vg.Inch, outPath)
}
