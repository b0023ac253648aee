package hpwl_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/placer/hpwl"
	"github.com/katalvlaran/placer/placement"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scenario builds the 2×2 grid from the reference walkthrough:
// cell 0→(0,0), 1→(0,1), 2→(1,0), site (1,1) empty; nets [[0,1],[1,2]].
func scenario(t *testing.T) (*placement.State, [][]int) {
	t.Helper()
	st, err := placement.FromPositions(placement.Grid{Rows: 2, Cols: 2},
		[]placement.Position{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}})
	require.NoError(t, err)

	return st, [][]int{{0, 1}, {1, 2}}
}

// randomInstance returns a random placement and random nets for property tests.
func randomInstance(t *testing.T, rng *rand.Rand, cells, nets int, g placement.Grid) (*placement.State, [][]int) {
	t.Helper()
	st, err := placement.Random(cells, g, rng)
	require.NoError(t, err)
	out := make([][]int, nets)
	for i := range out {
		k := 1 + rng.Intn(5)
		out[i] = make([]int, k)
		for j := range out[i] {
			out[i][j] = rng.Intn(cells)
		}
	}

	return st, out
}

// TestNetHPWL covers degenerate and duplicate-pin nets.
func TestNetHPWL(t *testing.T) {
	st, nets := scenario(t)
	assert.Equal(t, 1, hpwl.NetHPWL(nets[0], st))
	assert.Equal(t, 2, hpwl.NetHPWL(nets[1], st))
	assert.Equal(t, 0, hpwl.NetHPWL([]int{2}, st), "single cell")
	assert.Equal(t, 0, hpwl.NetHPWL(nil, st), "empty net")
	assert.Equal(t, 1, hpwl.NetHPWL([]int{0, 1, 1, 0}, st), "duplicates are harmless")
	assert.Equal(t, 2, hpwl.NetHPWL([]int{0, 1, 2}, st))
}

// TestEvaluate_Scenario reproduces the reference walkthrough numbers.
func TestEvaluate_Scenario(t *testing.T) {
	st, nets := scenario(t)
	c := hpwl.Evaluate(nets, st)
	assert.Equal(t, []int{1, 2}, c.PerNet)
	assert.Equal(t, 3, c.Total)
	require.NoError(t, c.Verify(nets, st))

	// Move cell 0 from (0,0) to the empty site (1,1); only net 0 is affected.
	st.Swap(0, 3)
	idx := []int{0}
	out := make([]int, 1)
	total := c.Subset(nets, st, idx, out)
	assert.Equal(t, []int{1}, out)
	assert.Equal(t, 3, total)
	assert.Equal(t, []int{1, 2}, c.PerNet, "Subset must not mutate the cache")

	c.Commit(idx, out, total)
	require.NoError(t, c.Verify(nets, st))
}

// TestSubset_MatchesFull checks incremental/full equivalence for random swaps.
func TestSubset_MatchesFull(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	g := placement.Grid{Rows: 7, Cols: 9}
	st, nets := randomInstance(t, rng, 40, 60, g)

	// membership: cell -> nets containing it, deduplicated.
	member := make([][]int, st.NumCells())
	for ni, net := range nets {
		seen := map[int]bool{}
		for _, c := range net {
			if !seen[c] {
				seen[c] = true
				member[c] = append(member[c], ni)
			}
		}
	}

	c := hpwl.Evaluate(nets, st)
	out := make([]int, len(nets))
	for i := 0; i < 500; i++ {
		a, b := rng.Intn(g.Sites()), rng.Intn(g.Sites())
		ca, cb := st.Swap(a, b)

		set := map[int]bool{}
		var idx []int
		for _, cell := range []int{ca, cb} {
			if cell == placement.Empty {
				continue
			}
			for _, ni := range member[cell] {
				if !set[ni] {
					set[ni] = true
					idx = append(idx, ni)
				}
			}
		}
		total := c.Subset(nets, st, idx, out)
		full := hpwl.Evaluate(nets, st)
		require.Equal(t, full.Total, total, "swap %d: (%d,%d)", i, a, b)

		if rng.Intn(2) == 0 {
			c.Commit(idx, out, total)
			require.NoError(t, c.Verify(nets, st))
		} else {
			st.Swap(a, b)
		}
	}
}

// TestVerify_DetectsMismatch corrupts a cache in both possible ways.
func TestVerify_DetectsMismatch(t *testing.T) {
	st, nets := scenario(t)

	c := hpwl.Evaluate(nets, st)
	c.Total++
	assert.ErrorIs(t, c.Verify(nets, st), hpwl.ErrCacheMismatch)

	c = hpwl.Evaluate(nets, st)
	st.Swap(0, 3) // placement changes, cache does not
	st.Swap(1, 0)
	assert.ErrorIs(t, c.Verify(nets, st), hpwl.ErrCacheMismatch)

	c = hpwl.Evaluate(nets[:1], st)
	assert.ErrorIs(t, c.Verify(nets, st), hpwl.ErrCacheMismatch)
}

// TestClone_Independent verifies Clone copies the per-net slice.
func TestClone_Independent(t *testing.T) {
	st, nets := scenario(t)
	c := hpwl.Evaluate(nets, st)
	cp := c.Clone()
	cp.Commit([]int{0}, []int{9}, 11)
	assert.Equal(t, 3, c.Total)
	assert.Equal(t, 1, c.PerNet[0])
	assert.Equal(t, 11, cp.Sum())
}
