// Package placer places the cells of a netlist on a rectangular grid by
// simulated annealing, minimizing total half-perimeter wirelength (HPWL).
//
// 🚀 What is placer?
//
//	A small, deterministic, dependency-light placement engine:
//		• Netlists: parse, validate and densify cell identifiers
//		• Placements: injective cell↔site arenas with O(1) swaps
//		• Cost: per-net HPWL cache with incremental subset re-evaluation
//		• Annealing: Metropolis acceptance over a geometric schedule
//		• Studies: cooling-rate sweeps and multi-seed statistics
//		• Output: text grids, PNG frames, animated GIFs, charts and CSV
//
// ✨ Guarantees
//
//   - Same netlist, options and seed ⇒ identical trajectory and final placement
//   - At most one cell per site, every cell placed, at every step
//   - Incremental cost always equals a full re-evaluation
//   - Libraries never log; the command reports on stdout/stderr
//
// Packages:
//
//	placement/ — Grid, Position and the injective placement State
//	hpwl/      — net HPWL and the incremental cost cache
//	netlist/   — Netlist model, text format (Parse/Load/Format), Generate
//	anneal/    — Run, Options, Proposer, Observer, Result
//	sweep/     — cooling-rate sweeps and multi-seed studies
//	render/    — text grid, PNG painter, frame and GIF recorders
//	report/    — gonum/plot charts and CSV tables
//	cmd/placer — the command-line front end
//
// Quick example:
//
//	nl, _ := netlist.New(placement.Grid{Rows: 2, Cols: 2}, [][]int{{0, 1}, {1, 2}})
//	res, _ := anneal.Run(ctx, nl, anneal.DefaultOptions())
//	fmt.Println(res.FinalCost) // 2
//	fmt.Print(render.String(res.Final, render.IDOptions(nl))) // cell identifiers, "--" for empty sites
package placer
