// Package netlist loads and indexes the cells and nets of a placement problem.
//
// File format (whitespace separated, one record per line):
//
//	<label> <unit> <rows> <cols>       header: only rows and cols are used
//	<net-label> <cell> <cell> ...      one line per net, in net-index order
//
// Blank lines are skipped. Cell identifiers are arbitrary integers; a net may
// list the same cell more than once.
//
// A Netlist also carries the dense views an optimizer needs:
//
//   - Cells():      distinct cell identifiers in ascending order; the position
//     of an identifier in this slice is its dense cell index.
//   - Dense():      every net rewritten in dense cell indices.
//   - Membership(): for each dense cell, the ascending indices of the nets
//     that contain it (each net listed once).
//
// All views are computed once by New and never change.
//
// Errors:
//
//   - ErrMalformedNetlist: missing header tokens, non-integer fields, or a net
//     without cells.
//   - placement.ErrInvalidParameter: non-positive grid dimensions.
package netlist
