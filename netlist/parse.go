// SPDX-License-Identifier: MIT
// Package: placer/netlist
//
// parse.go — text format reader and writer.

package netlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/placer/placement"
)

const (
	headerTokens = 4        // label, unit, rows, cols
	maxLineBytes = 16 << 20 // nets with many pins produce long lines
)

// Parse reads a netlist from r. See the package documentation for the format.
//
// Errors carry the offending line number and wrap ErrMalformedNetlist, or
// placement.ErrInvalidParameter for a non-positive grid.
//
// Complexity: O(size of input).
func Parse(r io.Reader) (*Netlist, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		grid   placement.Grid
		nets   [][]int
		header bool
		lineNo int
	)
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}

		if !header {
			if len(fields) != headerTokens {
				return nil, fmt.Errorf("line %d: header needs %d tokens, got %d: %w",
					lineNo, headerTokens, len(fields), ErrMalformedNetlist)
			}
			rows, err := atoi(fields[2], lineNo)
			if err != nil {
				return nil, err
			}
			cols, err := atoi(fields[3], lineNo)
			if err != nil {
				return nil, err
			}
			grid = placement.Grid{Rows: rows, Cols: cols}
			header = true
			continue
		}

		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: net %q has no cells: %w", lineNo, fields[0], ErrMalformedNetlist)
		}
		net := make([]int, len(fields)-1)
		for i, tok := range fields[1:] {
			id, err := atoi(tok, lineNo)
			if err != nil {
				return nil, err
			}
			net[i] = id
		}
		nets = append(nets, net)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("line %d: %v: %w", lineNo+1, err, ErrMalformedNetlist)
	}
	if !header {
		return nil, fmt.Errorf("missing header: %w", ErrMalformedNetlist)
	}

	return New(grid, nets)
}

// Load opens path and parses it with Parse.
func Load(path string) (*Netlist, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	nl, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return nl, nil
}

// Format writes nl in the format accepted by Parse. Nets are labelled
// "n<index>" and the header label/unit are "grid" and "sites".
func Format(w io.Writer, nl *Netlist) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "grid sites %d %d\n", nl.Grid.Rows, nl.Grid.Cols)
	for i, net := range nl.Nets {
		bw.WriteString("n")
		bw.WriteString(strconv.Itoa(i))
		for _, id := range net {
			bw.WriteByte(' ')
			bw.WriteString(strconv.Itoa(id))
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// atoi parses an integer token and reports failures with their line.
func atoi(tok string, lineNo int) (int, error) {
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("line %d: %q is not an integer: %w", lineNo, tok, ErrMalformedNetlist)
	}

	return v, nil
}
