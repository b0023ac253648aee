// SPDX-License-Identifier: MIT
// Package: placer/netlist
//
// generate.go — synthetic netlists for tests and benchmarks.

package netlist

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/placer/placement"
)

const methodGenerate = "Generate"

// Generate builds a synthetic netlist: numCells cells with identifiers
// 0..numCells-1 and numNets nets of 2..maxPins distinct cells drawn from rng.
// Every cell is guaranteed to appear in at least one net when
// numNets*2 ≥ numCells, so the instance has exactly numCells cells.
//
// Intended for benchmarks and property tests.
func Generate(grid placement.Grid, numCells, numNets, maxPins int, rng *rand.Rand) (*Netlist, error) {
	if err := grid.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, err)
	}
	switch {
	case rng == nil:
		return nil, fmt.Errorf("%s: %w", methodGenerate, placement.ErrNilRand)
	case numCells < 2 || numNets < 1 || maxPins < 2:
		return nil, fmt.Errorf("%s: cells=%d nets=%d maxPins=%d (need ≥2, ≥1, ≥2): %w",
			methodGenerate, numCells, numNets, maxPins, placement.ErrInvalidParameter)
	case numCells > grid.Sites():
		return nil, fmt.Errorf("%s: %d cells on %d sites: %w",
			methodGenerate, numCells, grid.Sites(), placement.ErrCapacityExceeded)
	}
	if maxPins > numCells {
		maxPins = numCells
	}

	// Round-robin seeding of the first pin keeps every cell referenced.
	order := rng.Perm(numCells)
	nets := make([][]int, numNets)
	used := make(map[int]bool, maxPins)
	for i := range nets {
		k := 2 + rng.Intn(maxPins-1)
		net := make([]int, 0, k)
		clear(used)

		first := order[(2*i)%numCells]
		second := order[(2*i+1)%numCells]
		net = append(net, first)
		used[first] = true
		if !used[second] {
			net = append(net, second)
			used[second] = true
		}
		for len(net) < k {
			c := rng.Intn(numCells)
			if used[c] {
				continue
			}
			used[c] = true
			net = append(net, c)
		}
		nets[i] = net
	}

	return New(grid, nets)
}
