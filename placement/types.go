// SPDX-License-Identifier: MIT
// Package: placer/placement
//
// types.go — grid and position value types.

package placement

import (
	"fmt"
	"strconv"
)

// Empty is the occupant of a site that holds no cell.
const Empty = -1

// MaxSites caps Rows×Cols. Placement arrays are sized by the site count, so
// larger grids are refused before anything is allocated.
const MaxSites = 1 << 26

// Grid is the Rows×Cols universe of candidate sites.
type Grid struct {
	Rows, Cols int
}

// Position is a site coordinate with 0 ≤ Row < Rows and 0 ≤ Col < Cols.
type Position struct {
	Row, Col int
}

// String renders the position as "(row,col)".
func (p Position) String() string {
	return "(" + strconv.Itoa(p.Row) + "," + strconv.Itoa(p.Col) + ")"
}

// Validate reports ErrInvalidParameter unless both dimensions are positive
// and the grid has at most MaxSites sites.
func (g Grid) Validate() error {
	if g.Rows <= 0 || g.Cols <= 0 {
		return fmt.Errorf("grid %dx%d (each dimension must be ≥ 1): %w", g.Rows, g.Cols, ErrInvalidParameter)
	}
	// Division keeps the check free of Rows*Cols overflow.
	if g.Rows > MaxSites/g.Cols {
		return fmt.Errorf("grid %dx%d exceeds %d sites: %w", g.Rows, g.Cols, MaxSites, ErrInvalidParameter)
	}

	return nil
}

// Sites returns the number of sites, Rows×Cols.
func (g Grid) Sites() int {
	return g.Rows * g.Cols
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.Rows && p.Col >= 0 && p.Col < g.Cols
}

// Index maps p to its row‑major site index: Row*Cols + Col.
// Complexity: O(1).
func (g Grid) Index(p Position) int {
	return p.Row*g.Cols + p.Col
}

// Coordinate converts a row‑major site index back to a Position.
// Complexity: O(1).
func (g Grid) Coordinate(site int) Position {
	return Position{Row: site / g.Cols, Col: site % g.Cols}
}
