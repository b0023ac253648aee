// SPDX-License-Identifier: MIT
// Package: placer/placement
//
// errors.go — sentinel errors for placement operations.

package placement

import "errors"

// Sentinel errors for placement operations.
var (
	// ErrInvalidParameter indicates non-positive grid dimensions or a negative cell count.
	ErrInvalidParameter = errors.New("placement: invalid parameter")
	// ErrCapacityExceeded indicates that more cells were requested than the grid has sites.
	ErrCapacityExceeded = errors.New("placement: number of cells exceeds number of grid sites")
	// ErrNilRand indicates that a random placement was requested without an RNG.
	ErrNilRand = errors.New("placement: rng is required")
	// ErrOutOfGrid indicates a position outside [0,Rows)×[0,Cols).
	ErrOutOfGrid = errors.New("placement: position out of grid")
	// ErrSiteOccupied indicates that two cells were assigned the same site.
	ErrSiteOccupied = errors.New("placement: site already occupied")
	// ErrNotInjective indicates that the cell→site and site→cell arrays disagree.
	ErrNotInjective = errors.New("placement: placement is not injective")
)
