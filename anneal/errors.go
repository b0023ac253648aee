// SPDX-License-Identifier: MIT
// Package: placer/anneal
//
// errors.go — sentinel errors for the annealing engine.
//
// Error policy:
//   • Callers branch with errors.Is(err, ErrX); messages are not part of the contract.
//   • Context is attached with %w: "Run: cooling rate 1.2 outside (0,1): <sentinel>".
//   • The taxonomy kinds owned by netlist/placement are re-exported here as the
//     same error values, so callers can branch on this package alone.

package anneal

import (
	"errors"

	"github.com/katalvlaran/placer/netlist"
	"github.com/katalvlaran/placer/placement"
)

// ErrDegenerateInstance indicates an instance with no cells, no nets, or no
// valid move (a single site). The temperature schedule or the move generator
// cannot operate on it.
var ErrDegenerateInstance = errors.New("anneal: degenerate instance")

// ErrMalformedNetlist is netlist.ErrMalformedNetlist.
var ErrMalformedNetlist = netlist.ErrMalformedNetlist

// ErrCapacityExceeded is placement.ErrCapacityExceeded.
var ErrCapacityExceeded = placement.ErrCapacityExceeded

// ErrInvalidParameter is placement.ErrInvalidParameter; it also covers
// annealing options such as a cooling rate outside (0,1).
var ErrInvalidParameter = placement.ErrInvalidParameter

const methodRun = "Run"
