package figure

import (
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"

	"github.com/conway-lab/lifebench/pkg/fit"
)

const (
	xAxisLabel = "cell number"
	yAxisLabel = "average execution time"
)

// renderPanel draws both time series against the cell counts: one scatter and
// one least-squares line per series, each series in its own color channel.
// Axis lower bounds are pinned to 0; upper bounds stay automatic.
func renderPanel(p *plot.Plot, multiTimes, singleTimes, cellCounts []float64) error {
	p.X.Label.Text = xAxisLabel
	p.Y.Label.Text = yAxisLabel

	for i, times := range [][]float64{multiTimes, singleTimes} {
		f, err := fit.Linear(cellCounts, times)
		if err != nil {
			return err
		}
		log.Debugf("Series %d fit: slope=%g intercept=%g", i, f.Slope, f.Intercept)

		domain := fit.Domain(cellCounts, fit.DefaultSamples)

		scatter, err := plotter.NewScatter(makeXYs(cellCounts, times))
		if err != nil {
			return err
		}
		scatter.Color = plotutil.Color(i)
		scatter.Shape = plotutil.Shape(i)

		line, err := plotter.NewLine(makeXYs(domain, f.Evaluate(domain)))
		if err != nil {
			return err
		}
		line.Color = plotutil.Color(i)

		p.Add(scatter, line)
	}

	// Pin after adding the data so the automatic range keeps the upper bounds.
	p.X.Min = 0
	p.Y.Min = 0

	return nil
}

func makeXYs(x, y []float64) plotter.XYs {
	pts := make(plotter.XYs, len(x))
	for i := range pts {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}
	return pts
}
