// Package anneal places the cells of a netlist on a grid by simulated
// annealing, minimizing total half-perimeter wirelength (HPWL).
//
// Run drives a three-phase state machine:
//
//	INITIALIZING  random injective placement, full HPWL evaluation, schedule:
//	                initialTemp  = cost0 · InitialTempFactor      (500)
//	                finalTemp    = FinalTempFactor · cost0 / nets (5e-6)
//	                movesPerTemp = MovesPerCell · cells           (10)
//	ANNEALING     while T > finalTemp: movesPerTemp proposals, each one
//	                swapped in place, scored on the affected nets only, then
//	                committed or rolled back by the Metropolis rule; record
//	                (T, cost), notify the Observer, T *= CoolingRate
//	DONE          return final placement, costs and the (T, cost) trajectory
//
// Moves come from Proposer: two uniformly drawn sites that are distinct and
// not both empty. A move is a transaction on the live placement: the swap is
// applied, the affected nets (union of the moved cells' memberships) are
// re-scored into a scratch buffer, and a rejected move is undone by applying
// the same swap again. No grid copy is made per move.
//
// Determinism: a single *rand.Rand drives initial placement, proposals and
// acceptance draws, in that order. The same netlist, options and seed yield
// identical trajectories and final placements. The clock only feeds
// Result.Elapsed.
//
// Errors (all detected before the first move, see errors.go):
//
//   - ErrMalformedNetlist:   nil netlist.
//   - ErrCapacityExceeded:   more cells than sites.
//   - ErrDegenerateInstance: zero cells, zero nets, or no valid move exists.
//   - ErrInvalidParameter:   cooling rate outside (0,1) or other bad options.
//
// Rejected moves are the normal outcome of the acceptance test and are never
// reported.
//
// Concurrency: a run is single-threaded and owns its placement. Independent
// runs share nothing and may execute in parallel (see package sweep).
package anneal
