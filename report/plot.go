// Package report turns annealing results into charts and CSV tables.
package report

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/placer/sweep"
)

// ErrNoData indicates that nothing plottable was supplied.
var ErrNoData = errors.New("report: no data to plot")

// Default chart size.
const (
	PlotWidth  = 6 * vg.Inch
	PlotHeight = 4 * vg.Inch
)

// TrajectoryPlot charts total wirelength against temperature on log–log
// axes. Points with a non-positive temperature or cost cannot be shown on a
// log axis and are skipped.
func TrajectoryPlot(temps []float64, costs []int, rate float64) (*plot.Plot, error) {
	if len(temps) != len(costs) {
		return nil, fmt.Errorf("report: %d temperatures vs %d costs: %w", len(temps), len(costs), ErrNoData)
	}
	xys := make(plotter.XYs, 0, len(temps))
	for i, t := range temps {
		if t > 0 && costs[i] > 0 {
			xys = append(xys, plotter.XY{X: t, Y: float64(costs[i])})
		}
	}
	if len(xys) == 0 {
		return nil, ErrNoData
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Temperature vs. TWL (Cooling rate: %g)", rate)
	p.X.Label.Text = "Temperature"
	p.Y.Label.Text = "Total Wire Length"
	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}
	p.Add(line)

	return p, nil
}

// SweepPlot charts final wirelength against cooling rate. Failed points are skipped.
func SweepPlot(points []sweep.Point) (*plot.Plot, error) {
	xys := make(plotter.XYs, 0, len(points))
	for _, pt := range points {
		if pt.Err == nil {
			xys = append(xys, plotter.XY{X: pt.Rate, Y: float64(pt.FinalCost)})
		}
	}
	if len(xys) == 0 {
		return nil, ErrNoData
	}

	p := plot.New()
	p.Title.Text = "Cooling rate vs. Final TWL"
	p.X.Label.Text = "Cooling Rate"
	p.Y.Label.Text = "Final Total Wire Length"
	p.Add(plotter.NewGrid())

	line, marks, err := plotter.NewLinePoints(xys)
	if err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}
	p.Add(line, marks)

	return p, nil
}

// SavePlot writes p to path at the default size; the format follows the
// file extension (png, svg, pdf, ...).
func SavePlot(p *plot.Plot, path string) error {
	if err := p.Save(PlotWidth, PlotHeight, path); err != nil {
		return fmt.Errorf("report: save %s: %w", filepath.Base(path), err)
	}

	return nil
}

// WritePlot encodes p to w in the given format at the default size.
func WritePlot(w io.Writer, p *plot.Plot, format string) error {
	wt, err := p.WriterTo(PlotWidth, PlotHeight, strings.ToLower(format))
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	if _, err = wt.WriteTo(w); err != nil {
		return fmt.Errorf("report: %w", err)
	}

	return nil
}
