// SPDX-License-Identifier: MIT
// Package: placer/anneal
//
// proposer.go — move generator.
//
// A move is a pair of sites (a, b) with a != b and at least one of them
// occupied. Both sites are drawn uniformly (row, then column) and both are
// redrawn whenever the pair is invalid. The rejection loop has a finite
// expected length whenever one cell and two sites exist; instances without
// a valid move are refused up front and the loop is additionally bounded.

package anneal

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/placer/placement"
)

const (
	methodPropose = "Propose"

	// minProposalAttempts and attemptsPerSite bound the rejection loop at
	// max(minProposalAttempts, attemptsPerSite·sites). With a single cell the
	// success probability per draw is ≈ 2/sites, so the bound is only reached
	// with probability ≈ e^-128.
	minProposalAttempts = 1024
	attemptsPerSite     = 64
)

// Proposer draws candidate swaps for a placement.
// It reads the placement's occupancy on every call, so it always reflects
// the live state.
type Proposer struct {
	st          *placement.State
	rng         *rand.Rand
	rows, cols  int
	maxAttempts int
}

// NewProposer returns a Proposer over st driven by rng.
// Returns ErrDegenerateInstance if st has no cells or fewer than two sites.
func NewProposer(st *placement.State, rng *rand.Rand) (*Proposer, error) {
	if st == nil || rng == nil {
		return nil, fmt.Errorf("%s: placement and rng are required: %w", methodPropose, ErrInvalidParameter)
	}
	g := st.Grid()
	if st.NumCells() == 0 {
		return nil, fmt.Errorf("%s: no cells to move: %w", methodPropose, ErrDegenerateInstance)
	}
	if g.Sites() < 2 {
		return nil, fmt.Errorf("%s: a %dx%d grid admits no swap: %w", methodPropose, g.Rows, g.Cols, ErrDegenerateInstance)
	}
	maxAttempts := attemptsPerSite * g.Sites()
	if maxAttempts < minProposalAttempts {
		maxAttempts = minProposalAttempts
	}

	return &Proposer{st: st, rng: rng, rows: g.Rows, cols: g.Cols, maxAttempts: maxAttempts}, nil
}

// Propose returns two site indices that are distinct and not both empty.
// Only an exhausted attempt bound yields an error (ErrDegenerateInstance).
//
// Complexity: O(1) expected per call.
func (p *Proposer) Propose() (a, b int, err error) {
	for attempt := 0; attempt < p.maxAttempts; attempt++ {
		a = p.draw()
		b = p.draw()
		if a == b || (!p.st.Occupied(a) && !p.st.Occupied(b)) {
			continue
		}

		return a, b, nil
	}

	return 0, 0, fmt.Errorf("%s: no valid move after %d attempts: %w", methodPropose, p.maxAttempts, ErrDegenerateInstance)
}

// draw picks one site uniformly: row first, then column.
func (p *Proposer) draw() int {
	r := p.rng.Intn(p.rows)
	c := p.rng.Intn(p.cols)

	return r*p.cols + c
}
