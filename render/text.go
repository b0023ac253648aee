// Package render draws placements for people: as a text grid for the
// console, as a labelled PNG, and as per-step frames or an animated GIF
// through anneal observers.
package render

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/placer/netlist"
	"github.com/katalvlaran/placer/placement"
)

// Placeholder is the default token printed for an empty site.
const Placeholder = "--"

// TextOptions controls text rendering. The zero value prints dense cell
// indices and Placeholder; set Label to CellIDs(nl) to print the cell
// identifiers of a netlist instead.
type TextOptions struct {
	// Placeholder replaces empty sites; "" selects Placeholder.
	Placeholder string
	// Label maps a dense cell index to its printed token; nil prints the index.
	Label func(cell int) string
}

// CellIDs returns a Label that prints the netlist identifier of each dense cell.
func CellIDs(nl *netlist.Netlist) func(cell int) string {
	return func(cell int) string { return strconv.Itoa(nl.CellID(cell)) }
}

// IDOptions prints the cell identifiers of nl and Placeholder.
func IDOptions(nl *netlist.Netlist) TextOptions {
	return TextOptions{Label: CellIDs(nl)}
}

// OccupancyOptions renders "0" for an occupied site and "1" for an empty one.
func OccupancyOptions() TextOptions {
	return TextOptions{
		Placeholder: "1",
		Label:       func(int) string { return "0" },
	}
}

func (o TextOptions) placeholder() string {
	if o.Placeholder == "" {
		return Placeholder
	}
	return o.Placeholder
}

func (o TextOptions) label(cell int) string {
	if o.Label == nil {
		return strconv.Itoa(cell)
	}
	return o.Label(cell)
}

// Text writes st as Rows lines of Cols space-separated tokens followed by a
// blank line. Tokens are right-aligned to the widest one.
func Text(w io.Writer, st *placement.State, opts TextOptions) error {
	g := st.Grid()
	tokens := make([]string, g.Sites())
	width := 0
	for site := range tokens {
		tok := opts.placeholder()
		if c := st.Occupant(site); c != placement.Empty {
			tok = opts.label(c)
		}
		tokens[site] = tok
		if len(tok) > width {
			width = len(tok)
		}
	}

	bw := bufio.NewWriter(w)
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if c > 0 {
				bw.WriteByte(' ')
			}
			tok := tokens[r*g.Cols+c]
			bw.WriteString(strings.Repeat(" ", width-len(tok)))
			bw.WriteString(tok)
		}
		bw.WriteByte('\n')
	}
	bw.WriteByte('\n')

	return bw.Flush()
}

// String returns the Text rendering of st.
func String(st *placement.State, opts TextOptions) string {
	var sb strings.Builder
	_ = Text(&sb, st, opts)

	return sb.String()
}
