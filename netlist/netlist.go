// SPDX-License-Identifier: MIT
// Package: placer/netlist
//
// netlist.go — netlist model and dense views.

package netlist

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/placer/placement"
)

// ErrMalformedNetlist indicates a structurally invalid netlist.
var ErrMalformedNetlist = errors.New("netlist: malformed netlist")

// Netlist is an immutable set of nets over a placement grid.
type Netlist struct {
	// Grid is the placement grid declared by the header.
	Grid placement.Grid
	// Nets holds the cell identifiers of each net in file order.
	Nets [][]int

	cells      []int
	index      map[int]int
	dense      [][]int
	membership [][]int
}

// New validates grid and nets and builds the dense views.
// nets is deep-copied. Zero nets are accepted here; optimizers decide whether
// such an instance is usable.
//
// Complexity: O(P + N log N), P = total pins, N = distinct cells.
func New(grid placement.Grid, nets [][]int) (*Netlist, error) {
	if err := grid.Validate(); err != nil {
		return nil, fmt.Errorf("netlist: %w", err)
	}

	nl := &Netlist{
		Grid:  grid,
		Nets:  make([][]int, len(nets)),
		index: make(map[int]int),
	}
	for i, net := range nets {
		if len(net) == 0 {
			return nil, fmt.Errorf("net %d has no cells: %w", i, ErrMalformedNetlist)
		}
		nl.Nets[i] = append([]int(nil), net...)
		for _, id := range net {
			if _, ok := nl.index[id]; !ok {
				nl.index[id] = 0
				nl.cells = append(nl.cells, id)
			}
		}
	}

	// Dense indices follow ascending identifier order so that two loads of the
	// same file always agree, whatever the order cells first appear in.
	sort.Ints(nl.cells)
	for i, id := range nl.cells {
		nl.index[id] = i
	}

	nl.dense = make([][]int, len(nl.Nets))
	nl.membership = make([][]int, len(nl.cells))
	last := make([]int, len(nl.cells))
	for i := range last {
		last[i] = -1
	}
	for ni, net := range nl.Nets {
		d := make([]int, len(net))
		for j, id := range net {
			c := nl.index[id]
			d[j] = c
			if last[c] != ni {
				last[c] = ni
				nl.membership[c] = append(nl.membership[c], ni)
			}
		}
		nl.dense[ni] = d
	}

	return nl, nil
}

// NumCells returns the number of distinct cells.
func (nl *Netlist) NumCells() int { return len(nl.cells) }

// NumNets returns the number of nets.
func (nl *Netlist) NumNets() int { return len(nl.Nets) }

// Pins returns the total number of cell occurrences over all nets.
func (nl *Netlist) Pins() int {
	p := 0
	for _, net := range nl.Nets {
		p += len(net)
	}

	return p
}

// Cells returns a copy of the distinct cell identifiers in dense-index order.
func (nl *Netlist) Cells() []int {
	return append([]int(nil), nl.cells...)
}

// CellID returns the identifier of dense cell index c.
func (nl *Netlist) CellID(c int) int { return nl.cells[c] }

// CellIndex returns the dense index of identifier id.
func (nl *Netlist) CellIndex(id int) (int, bool) {
	c, ok := nl.index[id]
	return c, ok
}

// Dense returns the nets rewritten in dense cell indices.
// The returned slices are shared and must not be modified.
func (nl *Netlist) Dense() [][]int { return nl.dense }

// Membership returns, for each dense cell, the ascending indices of the nets
// containing it. The returned slices are shared and must not be modified.
func (nl *Netlist) Membership() [][]int { return nl.membership }

// MaxDegree returns the largest number of nets any single cell belongs to.
func (nl *Netlist) MaxDegree() int {
	m := 0
	for _, nets := range nl.membership {
		if len(nets) > m {
			m = len(nets)
		}
	}

	return m
}
