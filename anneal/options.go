// SPDX-License-Identifier: MIT
// Package: placer/anneal
//
// options.go — run configuration and functional options.
//
// Contract:
//   • DefaultOptions reproduces the reference schedule (rate 0.95, seed 30,
//     T0 = 500·cost, Tf = 5e-6·cost/nets, 10 moves per cell per temperature).
//   • Options are validated once, at the start of Run; bad values surface as
//     ErrInvalidParameter. Option constructors panic only on nil arguments.
//   • Determinism is explicit: Rand if set, otherwise a source seeded with Seed.

package anneal

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

// Reference schedule constants.
const (
	// DefaultCoolingRate is the geometric temperature multiplier of a single run.
	DefaultCoolingRate = 0.95
	// DefaultSeed is used when Options.Seed is 0.
	DefaultSeed int64 = 30
	// DefaultInitialTempFactor scales the baseline cost into the start temperature.
	DefaultInitialTempFactor = 500.0
	// DefaultFinalTempFactor scales the per-net baseline cost into the stop temperature.
	DefaultFinalTempFactor = 5e-6
	// DefaultMovesPerCell is the number of proposals per cell at each temperature.
	DefaultMovesPerCell = 10
)

// Options configures Run.
type Options struct {
	// CoolingRate multiplies the temperature after each outer step; 0 < r < 1.
	CoolingRate float64

	// Seed seeds the run's RNG when Rand is nil. 0 selects DefaultSeed.
	Seed int64

	// Rand, if non-nil, is used instead of a Seed-derived source. It is
	// advanced by the run and must not be shared with concurrent runs.
	Rand *rand.Rand

	// InitialTempFactor: initialTemp = cost0 · InitialTempFactor. Must be > 0.
	InitialTempFactor float64

	// FinalTempFactor: finalTemp = FinalTempFactor · cost0 / nets. Must be > 0.
	FinalTempFactor float64

	// MovesPerCell: movesPerTemp = MovesPerCell · cells. Must be ≥ 1.
	MovesPerCell int

	// MaxSteps caps the number of outer steps; 0 means no cap.
	MaxSteps int

	// Verify re-checks the cost cache and placement injectivity after every
	// outer step. O(pins + sites) per step; meant for debugging and tests.
	Verify bool

	// Observer, if non-nil, receives a Snapshot after every outer step.
	Observer Observer

	// Clock supplies wall time for Result.Elapsed. nil means time.Now.
	Clock func() time.Time
}

// DefaultOptions returns the reference configuration.
func DefaultOptions() Options {
	return Options{
		CoolingRate:       DefaultCoolingRate,
		Seed:              DefaultSeed,
		InitialTempFactor: DefaultInitialTempFactor,
		FinalTempFactor:   DefaultFinalTempFactor,
		MovesPerCell:      DefaultMovesPerCell,
	}
}

// Option mutates Options; see NewOptions.
type Option func(*Options)

// NewOptions applies opts in order (later overrides earlier) on top of DefaultOptions.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithCoolingRate sets the cooling rate. Range is checked by Run.
func WithCoolingRate(r float64) Option {
	return func(o *Options) { o.CoolingRate = r }
}

// WithSeed seeds the run's RNG (0 selects DefaultSeed) and clears any explicit Rand.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
		o.Rand = nil
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("anneal: WithRand(nil)")
	}
	return func(o *Options) { o.Rand = r }
}

// WithMovesPerCell sets the number of proposals per cell per temperature.
func WithMovesPerCell(n int) Option {
	return func(o *Options) { o.MovesPerCell = n }
}

// WithTempFactors overrides the initial and final temperature factors.
func WithTempFactors(initial, final float64) Option {
	return func(o *Options) {
		o.InitialTempFactor = initial
		o.FinalTempFactor = final
	}
}

// WithMaxSteps caps the number of outer steps (0 = no cap).
func WithMaxSteps(n int) Option {
	return func(o *Options) { o.MaxSteps = n }
}

// WithVerify enables per-step invariant checks.
func WithVerify() Option {
	return func(o *Options) { o.Verify = true }
}

// WithObserver registers an observer. Panics on nil.
func WithObserver(obs Observer) Option {
	if obs == nil {
		panic("anneal: WithObserver(nil)")
	}
	return func(o *Options) { o.Observer = obs }
}

// WithClock replaces time.Now for Result.Elapsed. Panics on nil.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("anneal: WithClock(nil)")
	}
	return func(o *Options) { o.Clock = now }
}

// validate checks option ranges.
// Complexity: O(1).
func (o Options) validate() error {
	// NaN fails every comparison, so test the accepted range positively.
	if !(o.CoolingRate > 0 && o.CoolingRate < 1) {
		return fmt.Errorf("%s: cooling rate %v outside (0,1): %w", methodRun, o.CoolingRate, ErrInvalidParameter)
	}
	if !(o.InitialTempFactor > 0) || math.IsInf(o.InitialTempFactor, 0) {
		return fmt.Errorf("%s: initial temperature factor %v must be finite and > 0: %w", methodRun, o.InitialTempFactor, ErrInvalidParameter)
	}
	if !(o.FinalTempFactor > 0) || math.IsInf(o.FinalTempFactor, 0) {
		return fmt.Errorf("%s: final temperature factor %v must be finite and > 0: %w", methodRun, o.FinalTempFactor, ErrInvalidParameter)
	}
	if o.MovesPerCell < 1 {
		return fmt.Errorf("%s: moves per cell %d must be ≥ 1: %w", methodRun, o.MovesPerCell, ErrInvalidParameter)
	}
	if o.MaxSteps < 0 {
		return fmt.Errorf("%s: max steps %d must be ≥ 0: %w", methodRun, o.MaxSteps, ErrInvalidParameter)
	}

	return nil
}

// rng returns the run's random source following the seed policy.
func (o Options) rng() *rand.Rand {
	if o.Rand != nil {
		return o.Rand
	}

	return rngFromSeed(o.Seed)
}

// clock returns the configured clock or time.Now.
func (o Options) clock() func() time.Time {
	if o.Clock != nil {
		return o.Clock
	}

	return time.Now
}
