// SPDX-License-Identifier: MIT
// Package: placer/hpwl
//
// hpwl.go — half-perimeter wirelength and the incremental cost cache.

// Package hpwl computes half-perimeter wirelength (HPWL) for nets on a grid
// and maintains a per-net cost cache that can be updated incrementally.
//
// HPWL(net) = (max row − min row) + (max col − min col) over the positions of
// the net's cells. A net with a single cell has HPWL 0.
//
// Costs are integers, so the incremental total produced by Cache.Subset is
// exactly equal to the total a full Evaluate would produce on the same
// placement; there is no floating-point drift to stabilize.
//
// Complexity:
//   - NetHPWL:  O(k) for a net of k pins.
//   - Evaluate: O(P), P = total pins over all nets.
//   - Subset:   O(Σ pins of the requested nets).
package hpwl

import (
	"errors"
	"fmt"
)

// ErrCacheMismatch indicates that a cache no longer matches its placement.
var ErrCacheMismatch = errors.New("hpwl: cost cache out of sync with placement")

// Locator reports the grid coordinates of a cell.
// *placement.State satisfies Locator.
type Locator interface {
	Locate(cell int) (row, col int)
}

// NetHPWL returns the half-perimeter wirelength of net under loc.
// Empty and single-cell nets yield 0.
func NetHPWL(net []int, loc Locator) int {
	if len(net) == 0 {
		return 0
	}
	r, c := loc.Locate(net[0])
	minR, maxR, minC, maxC := r, r, c, c
	for _, cell := range net[1:] {
		r, c = loc.Locate(cell)
		if r < minR {
			minR = r
		} else if r > maxR {
			maxR = r
		}
		if c < minC {
			minC = c
		} else if c > maxC {
			maxC = c
		}
	}

	return (maxR - minR) + (maxC - minC)
}

// Cache holds the HPWL of every net, index-aligned with the net list, and
// their sum. Invariant: Total == Σ PerNet.
type Cache struct {
	PerNet []int
	Total  int
}

// Evaluate computes every net's HPWL from scratch.
// Complexity: O(P) time, O(len(nets)) memory.
func Evaluate(nets [][]int, loc Locator) *Cache {
	c := &Cache{PerNet: make([]int, len(nets))}
	for i, net := range nets {
		v := NetHPWL(net, loc)
		c.PerNet[i] = v
		c.Total += v
	}

	return c
}

// Subset recomputes the HPWL of nets[idx[i]] under loc, writes the new values
// to out[i], and returns Total − Σ old + Σ new. The cache itself is not
// modified; call Commit to adopt the values.
//
// idx must not contain duplicates and len(out) must be at least len(idx).
// Complexity: O(Σ pins of the requested nets), no allocations.
func (c *Cache) Subset(nets [][]int, loc Locator, idx []int, out []int) int {
	total := c.Total
	var v int
	for i, ni := range idx {
		v = NetHPWL(nets[ni], loc)
		out[i] = v
		total += v - c.PerNet[ni]
	}

	return total
}

// Commit stores vals[i] as the cost of net idx[i] and sets Total.
// It is the counterpart of Subset: Commit(idx, out, Subset(..., idx, out)).
func (c *Cache) Commit(idx []int, vals []int, total int) {
	for i, ni := range idx {
		c.PerNet[ni] = vals[i]
	}
	c.Total = total
}

// Sum returns Σ PerNet.
func (c *Cache) Sum() int {
	s := 0
	for _, v := range c.PerNet {
		s += v
	}

	return s
}

// Clone returns a deep copy of c.
func (c *Cache) Clone() *Cache {
	cp := &Cache{PerNet: make([]int, len(c.PerNet)), Total: c.Total}
	copy(cp.PerNet, c.PerNet)

	return cp
}

// Verify checks both cache invariants against a full recomputation:
// Total == Σ PerNet and PerNet[i] == NetHPWL(nets[i], loc) for every i.
// Complexity: O(P).
func (c *Cache) Verify(nets [][]int, loc Locator) error {
	if len(c.PerNet) != len(nets) {
		return fmt.Errorf("cache holds %d nets, netlist has %d: %w", len(c.PerNet), len(nets), ErrCacheMismatch)
	}
	if s := c.Sum(); s != c.Total {
		return fmt.Errorf("total %d != sum of nets %d: %w", c.Total, s, ErrCacheMismatch)
	}
	for i, net := range nets {
		if v := NetHPWL(net, loc); v != c.PerNet[i] {
			return fmt.Errorf("net %d: cached %d, actual %d: %w", i, c.PerNet[i], v, ErrCacheMismatch)
		}
	}

	return nil
}
