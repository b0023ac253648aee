// SPDX-License-Identifier: MIT
// Package: placer/anneal
//
// anneal.go — the annealing scheduler.
//
// Hot-path discipline:
//   • no allocations inside the inner loop (affected-net set and scratch
//     costs live in a per-run transaction buffer);
//   • the RNG is consumed in a fixed order: proposal draws, then one Float64
//     only when delta ≥ 0 (a strictly improving move needs no draw);
//   • exp(−delta/T) underflows to 0 for tiny T, which simply rejects.

package anneal

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/placer/hpwl"
	"github.com/katalvlaran/placer/netlist"
	"github.com/katalvlaran/placer/placement"
)

// Result is the outcome of a completed run.
type Result struct {
	// Initial is a copy of the starting placement; Final is the placement at DONE.
	Initial, Final *placement.State

	// InitialCost and FinalCost are total HPWL before the first and after the last move.
	InitialCost, FinalCost int

	// InitialTemp and FinalTemp are the schedule bounds derived from InitialCost.
	InitialTemp, FinalTemp float64

	// MovesPerTemp is the number of proposals per outer step.
	MovesPerTemp int

	// Temperatures[i] and Costs[i] are the temperature of outer step i and
	// the total HPWL at its end.
	Temperatures []float64
	Costs        []int

	// Steps is the number of outer steps run, len(Temperatures).
	Steps int

	// Proposed and Accepted count inner-loop moves.
	Proposed, Accepted int

	// Elapsed is the wall time of the ANNEALING phase per Options.Clock.
	Elapsed time.Duration
}

// AcceptanceRate returns Accepted/Proposed, or 0 when nothing was proposed.
func (r *Result) AcceptanceRate() float64 {
	if r.Proposed == 0 {
		return 0
	}

	return float64(r.Accepted) / float64(r.Proposed)
}

// StepBound returns the number of outer steps a geometric schedule from
// initialTemp down to finalTemp takes at the given cooling rate:
// ceil(log(finalTemp/initialTemp) / log(rate)), or 0 if initialTemp ≤ finalTemp.
func StepBound(initialTemp, finalTemp, rate float64) int {
	if !(initialTemp > finalTemp) || !(finalTemp > 0) || !(rate > 0 && rate < 1) {
		return 0
	}

	return int(math.Ceil(math.Log(finalTemp/initialTemp) / math.Log(rate)))
}

// RunNets is a convenience wrapper: it builds a netlist from grid and nets
// and runs with DefaultOptions at the given cooling rate and seed.
func RunNets(ctx context.Context, grid placement.Grid, nets [][]int, coolingRate float64, seed int64) (*Result, error) {
	nl, err := netlist.New(grid, nets)
	if err != nil {
		return nil, err
	}

	return Run(ctx, nl, NewOptions(WithCoolingRate(coolingRate), WithSeed(seed)))
}

// Run anneals nl under opts and returns the final placement, the costs and
// the (temperature, cost) trajectory.
//
// All parameter and instance errors are returned before the first move;
// no partial result is returned with an error. ctx is checked between outer
// steps; on cancellation ctx.Err() is returned.
//
// Complexity: O(steps · movesPerTemp · d · k) where d is the number of nets
// touching a moved cell and k their pin count.
func Run(ctx context.Context, nl *netlist.Netlist, opts Options) (*Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	// INITIALIZING.
	if nl == nil {
		return nil, fmt.Errorf("%s: nil netlist: %w", methodRun, ErrMalformedNetlist)
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	numCells, numNets := nl.NumCells(), nl.NumNets()
	if numNets == 0 || numCells == 0 {
		return nil, fmt.Errorf("%s: %d cells, %d nets: %w", methodRun, numCells, numNets, ErrDegenerateInstance)
	}

	rng := opts.rng()
	st, err := placement.Random(numCells, nl.Grid, rng)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRun, err)
	}
	prop, err := NewProposer(st, rng)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRun, err)
	}

	nets := nl.Dense()
	member := nl.Membership()
	cache := hpwl.Evaluate(nets, st)

	initialTemp := float64(cache.Total) * opts.InitialTempFactor
	finalTemp := opts.FinalTempFactor * float64(cache.Total) / float64(numNets)
	movesPerTemp := opts.MovesPerCell * numCells

	res := &Result{
		Initial:      st.Clone(),
		Final:        st,
		InitialCost:  cache.Total,
		InitialTemp:  initialTemp,
		FinalTemp:    finalTemp,
		MovesPerTemp: movesPerTemp,
	}
	if bound := StepBound(initialTemp, finalTemp, opts.CoolingRate); bound > 0 {
		if opts.MaxSteps > 0 && opts.MaxSteps < bound {
			bound = opts.MaxSteps
		}
		res.Temperatures = make([]float64, 0, bound)
		res.Costs = make([]int, 0, bound)
	}

	// ANNEALING.
	now := opts.clock()
	start := now()
	tx := newTransaction(numNets)
	var (
		a, b, ca, cb int
		idx          []int
		vals         []int
		newTotal     int
		delta        int
	)
	for temp := initialTemp; temp > finalTemp; temp *= opts.CoolingRate {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		if opts.MaxSteps > 0 && res.Steps >= opts.MaxSteps {
			break
		}

		for i := 0; i < movesPerTemp; i++ {
			a, b, err = prop.Propose()
			if err != nil {
				return nil, fmt.Errorf("%s: %w", methodRun, err)
			}

			ca, cb = st.Swap(a, b)
			idx = tx.affected(member, ca, cb)
			vals = tx.vals[:len(idx)]
			newTotal = cache.Subset(nets, st, idx, vals)
			delta = newTotal - cache.Total
			res.Proposed++

			if delta < 0 || rng.Float64() < math.Exp(-float64(delta)/temp) {
				cache.Commit(idx, vals, newTotal)
				res.Accepted++
			} else {
				st.Swap(a, b)
			}
		}

		res.Temperatures = append(res.Temperatures, temp)
		res.Costs = append(res.Costs, cache.Total)
		res.Steps++

		if opts.Verify {
			if err = cache.Verify(nets, st); err != nil {
				return nil, fmt.Errorf("%s: step %d: %w", methodRun, res.Steps-1, err)
			}
			if err = st.Validate(); err != nil {
				return nil, fmt.Errorf("%s: step %d: %w", methodRun, res.Steps-1, err)
			}
		}
		if opts.Observer != nil {
			snap := Snapshot{Step: res.Steps - 1, Temperature: temp, Cost: cache.Total, Placement: st}
			if err = opts.Observer.Observe(snap); err != nil {
				return nil, fmt.Errorf("%s: observer at step %d: %w", methodRun, res.Steps-1, err)
			}
		}
	}

	// DONE.
	res.FinalCost = cache.Total
	res.Elapsed = now().Sub(start)

	return res, nil
}

// transaction holds the per-run scratch buffers of a move: the affected net
// indices and their recomputed costs. Deduplication uses an epoch stamp per
// net, so building the set never clears or allocates.
type transaction struct {
	stamp []uint64
	epoch uint64
	idx   []int
	vals  []int
}

func newTransaction(numNets int) *transaction {
	return &transaction{
		stamp: make([]uint64, numNets),
		idx:   make([]int, 0, numNets),
		vals:  make([]int, numNets),
	}
}

// affected returns the union of the nets containing cells ca and cb,
// skipping placement.Empty.
func (tx *transaction) affected(member [][]int, ca, cb int) []int {
	tx.epoch++
	tx.idx = tx.idx[:0]
	if ca != placement.Empty {
		tx.mark(member[ca])
	}
	if cb != placement.Empty {
		tx.mark(member[cb])
	}

	return tx.idx
}

func (tx *transaction) mark(nets []int) {
	for _, ni := range nets {
		if tx.stamp[ni] != tx.epoch {
			tx.stamp[ni] = tx.epoch
			tx.idx = append(tx.idx, ni)
		}
	}
}
