package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/placer/sweep"
)

func formatFloat(x float64) string { return strconv.FormatFloat(x, 'g', -1, 64) }

// WriteTrajectoryCSV writes one row per outer step: step, temperature, cost.
func WriteTrajectoryCSV(w io.Writer, temps []float64, costs []int) error {
	if len(temps) != len(costs) {
		return fmt.Errorf("report: %d temperatures vs %d costs: %w", len(temps), len(costs), ErrNoData)
	}
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"step", "temperature", "cost"}); err != nil {
		return err
	}
	for i, t := range temps {
		if err := cw.Write([]string{strconv.Itoa(i), formatFloat(t), strconv.Itoa(costs[i])}); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteSweepCSV writes one row per sweep point. The error column is empty
// for successful runs.
func WriteSweepCSV(w io.Writer, points []sweep.Point) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"rate", "seed", "initial_cost", "final_cost", "steps", "elapsed_seconds", "error"}); err != nil {
		return err
	}
	for _, p := range points {
		msg := ""
		if p.Err != nil {
			msg = p.Err.Error()
		}
		row := []string{
			formatFloat(p.Rate),
			strconv.FormatInt(p.Seed, 10),
			strconv.Itoa(p.InitialCost),
			strconv.Itoa(p.FinalCost),
			strconv.Itoa(p.Steps),
			formatFloat(p.Elapsed.Seconds()),
			msg,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteStudyCSV writes one row per cooling rate of a multi-seed study.
func WriteStudyCSV(w io.Writer, sums []sweep.Summary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"rate", "runs", "failed", "mean_initial", "mean", "stddev", "min", "max"}); err != nil {
		return err
	}
	for _, s := range sums {
		row := []string{
			formatFloat(s.Rate),
			strconv.Itoa(s.Runs),
			strconv.Itoa(s.Failed),
			formatFloat(s.MeanInitial),
			formatFloat(s.Mean),
			formatFloat(s.StdDev),
			formatFloat(s.Min),
			formatFloat(s.Max),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
