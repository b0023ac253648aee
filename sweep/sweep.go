// Package sweep runs independent annealing runs over a set of cooling rates
// (and optionally seeds) and summarizes their outcomes.
//
// Every run gets its own RNG and placement, so runs share nothing and may
// execute concurrently; results are stored by index and therefore come back
// in input order whatever the number of workers. A failed run is recorded in
// its Point and never stops the sweep.
package sweep

import (
	"context"
	"sync"
	"time"

	"github.com/katalvlaran/placer/anneal"
	"github.com/katalvlaran/placer/netlist"
)

// DefaultRates is the reference set of cooling rates.
var DefaultRates = []float64{0.75, 0.80, 0.85, 0.90, 0.95}

// Point is the outcome of one run of a sweep.
type Point struct {
	Rate        float64
	Seed        int64
	InitialCost int
	FinalCost   int
	Steps       int
	Elapsed     time.Duration
	// Err is non-nil if the run failed; the cost fields are then zero.
	Err error
}

// Options configures a sweep.
type Options struct {
	// Anneal is the base configuration of every run. CoolingRate and Seed are
	// overridden per run; Rand and Observer are ignored.
	Anneal anneal.Options
	// Workers is the number of concurrent runs; values < 2 run sequentially.
	Workers int
}

// DefaultOptions returns a sequential sweep over anneal.DefaultOptions.
func DefaultOptions() Options {
	return Options{Anneal: anneal.DefaultOptions(), Workers: 1}
}

type job struct {
	rate float64
	seed int64
}

// Run anneals nl once per rate, every run reseeded with opts.Anneal.Seed.
// The returned points follow the order of rates.
func Run(ctx context.Context, nl *netlist.Netlist, rates []float64, opts Options) []Point {
	jobs := make([]job, len(rates))
	for i, r := range rates {
		jobs[i] = job{rate: r, seed: opts.Anneal.Seed}
	}

	return runAll(ctx, nl, jobs, opts)
}

// Best returns the successful point with the lowest final cost; ties keep the
// earliest point. ok is false if no run succeeded.
func Best(points []Point) (best Point, ok bool) {
	for _, p := range points {
		if p.Err != nil {
			continue
		}
		if !ok || p.FinalCost < best.FinalCost {
			best, ok = p, true
		}
	}

	return best, ok
}

func runAll(ctx context.Context, nl *netlist.Netlist, jobs []job, opts Options) []Point {
	if ctx == nil {
		ctx = context.Background()
	}
	out := make([]Point, len(jobs))
	if opts.Workers < 2 {
		for i, j := range jobs {
			out[i] = runOne(ctx, nl, j, opts.Anneal)
		}
		return out
	}

	sem := make(chan struct{}, opts.Workers)
	var wg sync.WaitGroup
	for i, j := range jobs {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, j job) {
			defer func() {
				<-sem
				wg.Done()
			}()
			out[i] = runOne(ctx, nl, j, opts.Anneal)
		}(i, j)
	}
	wg.Wait()

	return out
}

func runOne(ctx context.Context, nl *netlist.Netlist, j job, base anneal.Options) Point {
	p := Point{Rate: j.rate, Seed: j.seed}
	if err := ctx.Err(); err != nil {
		p.Err = err
		return p
	}

	o := base
	o.CoolingRate = j.rate
	o.Seed = j.seed
	o.Rand = nil
	o.Observer = nil
	res, err := anneal.Run(ctx, nl, o)
	if err != nil {
		p.Err = err
		return p
	}
	p.InitialCost = res.InitialCost
	p.FinalCost = res.FinalCost
	p.Steps = res.Steps
	p.Elapsed = res.Elapsed

	return p
}
