// Package placement models the assignment of cells to the sites of a
// rectangular grid.
//
// What:
//
//   - Grid describes a Rows×Cols universe of sites, addressed either by
//     Position{Row, Col} or by the row-major site index Row*Cols+Col.
//   - State is an arena-style placement: cell→site and site→cell arrays kept
//     in lock-step, so the "one cell per site" invariant holds by construction.
//   - Random builds an initial placement by sampling distinct sites uniformly
//     without replacement.
//
// Why:
//
//   - Annealing placers mutate the placement millions of times; both lookups
//     (where is cell c, who sits on site s) must be O(1) and Swap must never
//     allocate.
//   - A swap applied twice restores the previous state, which lets callers
//     roll back a rejected move without copying the grid.
//
// Complexity:
//
//   - Random:            O(S) time and memory, S = Rows×Cols.
//   - Swap / Locate:     O(1), no allocations.
//   - Clone / Validate:  O(S + N), N = number of cells.
//
// Errors:
//
//   - ErrInvalidParameter: non-positive grid dimensions or negative cell count.
//   - ErrCapacityExceeded: more cells than sites.
//   - ErrNilRand:          Random called without a random source.
//   - ErrOutOfGrid:        a position lies outside the grid.
//   - ErrSiteOccupied:     two cells requested the same site.
//   - ErrNotInjective:     Validate found a broken cell↔site mapping.
package placement
