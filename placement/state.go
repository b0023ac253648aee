// SPDX-License-Identifier: MIT
// Package: placer/placement
//
// state.go — injective cell↔site placement arena.

package placement

import (
	"fmt"
	"math/rand"
)

const (
	methodRandom        = "Random"
	methodFromPositions = "FromPositions"
)

// State is a mutable cell→site assignment on a Grid.
//
// Cells are dense indices 0..NumCells()-1. cellSite[c] is the site of cell c
// and siteCell[s] is the cell on site s (or Empty). The two arrays are only
// ever updated together, which keeps the mapping injective.
//
// State is not safe for concurrent use.
type State struct {
	grid     Grid
	cellSite []int
	siteCell []int
}

// newState returns a State with numCells unplaced cells and all sites empty.
func newState(g Grid, numCells int) *State {
	s := &State{
		grid:     g,
		cellSite: make([]int, numCells),
		siteCell: make([]int, g.Sites()),
	}
	for i := range s.cellSite {
		s.cellSite[i] = Empty
	}
	for i := range s.siteCell {
		s.siteCell[i] = Empty
	}

	return s
}

// Random assigns each of numCells cells a distinct site drawn uniformly at
// random without replacement. The first numCells steps of a Fisher–Yates
// shuffle over the site indices yield the sample, so the procedure is bounded
// and never retries.
//
// Returns ErrInvalidParameter for an invalid grid or numCells < 0,
// ErrCapacityExceeded if numCells > g.Sites(), ErrNilRand if rng is nil.
//
// Complexity: O(S) time and memory, S = g.Sites().
func Random(numCells int, g Grid, rng *rand.Rand) (*State, error) {
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandom, err)
	}
	if numCells < 0 {
		return nil, fmt.Errorf("%s: numCells=%d: %w", methodRandom, numCells, ErrInvalidParameter)
	}
	sites := g.Sites()
	if numCells > sites {
		return nil, fmt.Errorf("%s: %d cells on %d sites: %w", methodRandom, numCells, sites, ErrCapacityExceeded)
	}
	if rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRandom, ErrNilRand)
	}

	perm := make([]int, sites)
	for i := range perm {
		perm[i] = i
	}
	var i, j int
	for i = 0; i < numCells; i++ {
		j = i + rng.Intn(sites-i)
		perm[i], perm[j] = perm[j], perm[i]
	}

	s := newState(g, numCells)
	for i = 0; i < numCells; i++ {
		s.cellSite[i] = perm[i]
		s.siteCell[perm[i]] = i
	}

	return s, nil
}

// FromPositions builds a State where cell i sits at pos[i].
// Returns ErrOutOfGrid or ErrSiteOccupied on an invalid assignment.
func FromPositions(g Grid, pos []Position) (*State, error) {
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodFromPositions, err)
	}
	if len(pos) > g.Sites() {
		return nil, fmt.Errorf("%s: %d cells on %d sites: %w", methodFromPositions, len(pos), g.Sites(), ErrCapacityExceeded)
	}
	s := newState(g, len(pos))
	for c, p := range pos {
		if !g.InBounds(p) {
			return nil, fmt.Errorf("%s: cell %d at %s: %w", methodFromPositions, c, p, ErrOutOfGrid)
		}
		site := g.Index(p)
		if other := s.siteCell[site]; other != Empty {
			return nil, fmt.Errorf("%s: cells %d and %d at %s: %w", methodFromPositions, other, c, p, ErrSiteOccupied)
		}
		s.cellSite[c] = site
		s.siteCell[site] = c
	}

	return s, nil
}

// Grid returns the grid the state is laid out on.
func (s *State) Grid() Grid { return s.grid }

// NumCells returns the number of placed cells.
func (s *State) NumCells() int { return len(s.cellSite) }

// Site returns the row-major site index of cell.
func (s *State) Site(cell int) int { return s.cellSite[cell] }

// Position returns the grid position of cell.
func (s *State) Position(cell int) Position {
	return s.grid.Coordinate(s.cellSite[cell])
}

// Locate returns the row and column of cell. It is the hot-path accessor
// used by wirelength evaluation.
// Complexity: O(1).
func (s *State) Locate(cell int) (row, col int) {
	site := s.cellSite[cell]
	return site / s.grid.Cols, site % s.grid.Cols
}

// Occupant returns the cell on site, or Empty.
func (s *State) Occupant(site int) int { return s.siteCell[site] }

// Occupied reports whether a cell sits on site.
func (s *State) Occupied(site int) bool { return s.siteCell[site] != Empty }

// Swap exchanges the occupants of sites a and b and returns them as they
// were before the swap. (cell,cell), (cell,Empty) and (Empty,cell) pairs move
// one or two cells; (Empty,Empty) and a == b leave the state unchanged.
//
// Swap is an involution: applying the same swap twice restores the state.
// Both sites must be valid indices in [0, Grid().Sites()).
//
// Complexity: O(1), no allocations.
func (s *State) Swap(a, b int) (ca, cb int) {
	ca, cb = s.siteCell[a], s.siteCell[b]
	if a == b || (ca == Empty && cb == Empty) {
		return ca, cb
	}
	s.siteCell[a], s.siteCell[b] = cb, ca
	if ca != Empty {
		s.cellSite[ca] = b
	}
	if cb != Empty {
		s.cellSite[cb] = a
	}

	return ca, cb
}

// Positions returns the position of every cell, indexed by cell.
func (s *State) Positions() []Position {
	out := make([]Position, len(s.cellSite))
	for c := range s.cellSite {
		out[c] = s.grid.Coordinate(s.cellSite[c])
	}

	return out
}

// Clone returns a deep copy of s.
// Complexity: O(S + N).
func (s *State) Clone() *State {
	cp := &State{
		grid:     s.grid,
		cellSite: make([]int, len(s.cellSite)),
		siteCell: make([]int, len(s.siteCell)),
	}
	copy(cp.cellSite, s.cellSite)
	copy(cp.siteCell, s.siteCell)

	return cp
}

// Equal reports whether s and o place every cell on the same site of the same grid.
func (s *State) Equal(o *State) bool {
	if s == nil || o == nil {
		return s == o
	}
	if s.grid != o.grid || len(s.cellSite) != len(o.cellSite) {
		return false
	}
	for c := range s.cellSite {
		if s.cellSite[c] != o.cellSite[c] {
			return false
		}
	}

	return true
}

// Validate checks that every cell sits on an in-range site, that no two
// cells share a site, and that the site→cell index agrees with the
// cell→site index. It returns a wrapped ErrNotInjective on the first violation.
//
// Complexity: O(S + N).
func (s *State) Validate() error {
	sites := len(s.siteCell)
	seen := 0
	for c, site := range s.cellSite {
		if site < 0 || site >= sites {
			return fmt.Errorf("cell %d on site %d outside [0,%d): %w", c, site, sites, ErrNotInjective)
		}
		if s.siteCell[site] != c {
			return fmt.Errorf("cell %d on site %d but site holds %d: %w", c, site, s.siteCell[site], ErrNotInjective)
		}
	}
	for _, c := range s.siteCell {
		if c != Empty {
			seen++
		}
	}
	if seen != len(s.cellSite) {
		return fmt.Errorf("%d occupied sites for %d cells: %w", seen, len(s.cellSite), ErrNotInjective)
	}

	return nil
}
