package sweep_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/placer/anneal"
	"github.com/katalvlaran/placer/netlist"
	"github.com/katalvlaran/placer/placement"
	"github.com/katalvlaran/placer/sweep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chain(t *testing.T, g placement.Grid, n int) *netlist.Netlist {
	t.Helper()
	nets := make([][]int, 0, n-1)
	for i := 0; i+1 < n; i++ {
		nets = append(nets, []int{i, i + 1})
	}
	nl, err := netlist.New(g, nets)
	require.NoError(t, err)

	return nl
}

func TestRun_DefaultRates(t *testing.T) {
	nl := chain(t, placement.Grid{Rows: 3, Cols: 3}, 8)
	points := sweep.Run(context.Background(), nl, sweep.DefaultRates, sweep.DefaultOptions())
	require.Len(t, points, len(sweep.DefaultRates))

	for i, p := range points {
		require.NoError(t, p.Err)
		assert.Equal(t, sweep.DefaultRates[i], p.Rate)
		assert.Equal(t, anneal.DefaultSeed, p.Seed)
		assert.LessOrEqual(t, p.FinalCost, p.InitialCost)
		assert.Positive(t, p.Steps)
		// Every run is reseeded identically, so the initial placement is shared.
		assert.Equal(t, points[0].InitialCost, p.InitialCost)
	}
	// Slower cooling takes more outer steps.
	assert.Less(t, points[0].Steps, points[len(points)-1].Steps)
}

func TestRun_ParallelMatchesSequential(t *testing.T) {
	nl := chain(t, placement.Grid{Rows: 3, Cols: 4}, 10)
	seq := sweep.Run(context.Background(), nl, sweep.DefaultRates, sweep.DefaultOptions())

	opts := sweep.DefaultOptions()
	opts.Workers = 3
	par := sweep.Run(context.Background(), nl, sweep.DefaultRates, opts)

	require.Len(t, par, len(seq))
	for i := range seq {
		assert.Equal(t, seq[i].Rate, par[i].Rate)
		assert.Equal(t, seq[i].InitialCost, par[i].InitialCost)
		assert.Equal(t, seq[i].FinalCost, par[i].FinalCost)
		assert.Equal(t, seq[i].Steps, par[i].Steps)
	}
}

func TestRun_FailuresAreRecorded(t *testing.T) {
	nl := chain(t, placement.Grid{Rows: 3, Cols: 3}, 5)
	points := sweep.Run(context.Background(), nl, []float64{0.8, 1.5, 0.9}, sweep.DefaultOptions())
	require.Len(t, points, 3)

	assert.NoError(t, points[0].Err)
	assert.ErrorIs(t, points[1].Err, anneal.ErrInvalidParameter)
	assert.Zero(t, points[1].FinalCost)
	assert.NoError(t, points[2].Err)

	best, ok := sweep.Best(points)
	require.True(t, ok)
	assert.NotEqual(t, 1.5, best.Rate)
}

func TestRun_Canceled(t *testing.T) {
	nl := chain(t, placement.Grid{Rows: 3, Cols: 3}, 5)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, p := range sweep.Run(ctx, nl, sweep.DefaultRates, sweep.DefaultOptions()) {
		assert.ErrorIs(t, p.Err, context.Canceled)
	}
}

func TestBest(t *testing.T) {
	_, ok := sweep.Best(nil)
	assert.False(t, ok)

	points := []sweep.Point{
		{Rate: 0.75, FinalCost: 9},
		{Rate: 0.80, FinalCost: 7},
		{Rate: 0.85, Err: anneal.ErrInvalidParameter},
		{Rate: 0.90, FinalCost: 7},
	}
	best, ok := sweep.Best(points)
	require.True(t, ok)
	assert.Equal(t, 0.80, best.Rate, "ties keep the earliest point")
}

func TestStudy(t *testing.T) {
	nl := chain(t, placement.Grid{Rows: 3, Cols: 3}, 7)
	seeds := sweep.Seeds(30, 3)
	opts := sweep.DefaultOptions()
	opts.Workers = 2

	sums := sweep.Study(context.Background(), nl, []float64{0.8, 0.9}, seeds, opts)
	require.Len(t, sums, 2)
	for _, s := range sums {
		assert.Equal(t, 3, s.Runs)
		assert.Zero(t, s.Failed)
		require.Len(t, s.Points, 3)
		for i, p := range s.Points {
			assert.Equal(t, seeds[i], p.Seed)
			assert.Equal(t, s.Rate, p.Rate)
		}
		assert.LessOrEqual(t, s.Min, s.Mean)
		assert.LessOrEqual(t, s.Mean, s.Max)
		assert.GreaterOrEqual(t, s.StdDev, 0.0)
		assert.LessOrEqual(t, s.Mean, s.MeanInitial)
		assert.GreaterOrEqual(t, s.Min, float64(nl.NumNets()))
	}

	single := sweep.Study(context.Background(), nl, []float64{0.85}, seeds[:1], sweep.DefaultOptions())
	require.Len(t, single, 1)
	assert.Zero(t, single[0].StdDev)
	assert.Equal(t, single[0].Min, single[0].Max)

	failed := sweep.Study(context.Background(), nl, []float64{2}, seeds, sweep.DefaultOptions())
	require.Len(t, failed, 1)
	assert.Zero(t, failed[0].Runs)
	assert.Equal(t, 3, failed[0].Failed)
}

// TestStudy_SlowerCoolingNoWorse checks that, averaged over seeds, cooling
// closer to 1 does not end at a higher wirelength.
func TestStudy_SlowerCoolingNoWorse(t *testing.T) {
	nl, err := netlist.Generate(placement.Grid{Rows: 6, Cols: 6}, 30, 40, 4, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	opts := sweep.DefaultOptions()
	opts.Workers = 4

	sums := sweep.Study(context.Background(), nl, []float64{0.75, 0.95}, sweep.Seeds(30, 8), opts)
	require.Len(t, sums, 2)
	require.Equal(t, 8, sums[0].Runs)
	require.Equal(t, 8, sums[1].Runs)
	assert.LessOrEqual(t, sums[1].Mean, sums[0].Mean,
		"rate 0.95 mean %.2f vs rate 0.75 mean %.2f", sums[1].Mean, sums[0].Mean)
}

func TestSeeds(t *testing.T) {
	a := sweep.Seeds(30, 4)
	assert.Equal(t, a, sweep.Seeds(30, 4))
	assert.Len(t, a, 4)
	seen := make(map[int64]bool)
	for _, s := range a {
		seen[s] = true
	}
	assert.Len(t, seen, 4)
	assert.Empty(t, sweep.Seeds(30, 0))
}
