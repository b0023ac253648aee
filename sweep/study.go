package sweep

import (
	"context"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/placer/anneal"
	"github.com/katalvlaran/placer/netlist"
)

// Summary aggregates the runs of one cooling rate over several seeds.
type Summary struct {
	Rate float64
	// Runs counts successful runs; Failed counts the rest.
	Runs, Failed int
	// MeanInitial is the mean baseline cost of the successful runs.
	MeanInitial float64
	// Mean, StdDev, Min and Max describe the final costs of the successful runs.
	// StdDev is 0 for a single run.
	Mean, StdDev, Min, Max float64
	Points                 []Point
}

// Seeds returns n reproducible seeds derived from base.
func Seeds(base int64, n int) []int64 {
	out := make([]int64, n)
	for i := range out {
		out[i] = anneal.DeriveSeed(base, uint64(i))
	}

	return out
}

// Study runs every (rate, seed) pair and summarizes each rate.
// Summaries follow the order of rates; each summary's Points follow seeds.
func Study(ctx context.Context, nl *netlist.Netlist, rates []float64, seeds []int64, opts Options) []Summary {
	jobs := make([]job, 0, len(rates)*len(seeds))
	for _, r := range rates {
		for _, s := range seeds {
			jobs = append(jobs, job{rate: r, seed: s})
		}
	}
	points := runAll(ctx, nl, jobs, opts)

	out := make([]Summary, len(rates))
	for i, r := range rates {
		out[i] = summarize(r, points[i*len(seeds):(i+1)*len(seeds)])
	}

	return out
}

func summarize(rate float64, points []Point) Summary {
	s := Summary{Rate: rate, Points: points}
	final := make([]float64, 0, len(points))
	initial := make([]float64, 0, len(points))
	for _, p := range points {
		if p.Err != nil {
			s.Failed++
			continue
		}
		final = append(final, float64(p.FinalCost))
		initial = append(initial, float64(p.InitialCost))
	}
	s.Runs = len(final)
	if s.Runs == 0 {
		return s
	}

	s.MeanInitial = stat.Mean(initial, nil)
	s.Mean, s.StdDev = stat.MeanStdDev(final, nil)
	if s.Runs == 1 {
		s.StdDev = 0
	}
	s.Min = floats.Min(final)
	s.Max = floats.Max(final)

	return s
}
