// Package solver adapts the deductive engine (and a plain backtracker for
// uniqueness checks) to the ports.Solver interface.
package solver

import (
	"context"

	"svw.info/dedoku/internal/domain"
	"svw.info/dedoku/internal/engine"
	"svw.info/dedoku/internal/ports"
)

// DefaultDepthLimit is the absolute iterative-deepening cap. Four guesses
// with full propagation in between is enough for every published puzzle;
// deeper search is impractical with branching factors this large.
const DefaultDepthLimit = 4

// DeduceSolver solves through constraint propagation plus depth-limited
// iterative-deepening search. Uniqueness checks are delegated to the
// backtracking solver, which enumerates a second solution if one exists.
type DeduceSolver struct {
	Limit     int
	backtrack *BacktrackingSolver
}

func NewDeduceSolver(limit int) *DeduceSolver {
	if limit <= 0 {
		limit = DefaultDepthLimit
	}
	return &DeduceSolver{Limit: limit, backtrack: NewBacktrackingSolver()}
}

func (s *DeduceSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	sol, st, err := engine.Solve(ctx, engine.Grid(b.Values), s.Limit)
	stats := ports.Stats{Nodes: st.Visited, Duration: st.Duration, Deduce: st}
	if err != nil {
		return nil, stats, err
	}
	return &domain.Board{Values: [9][9]uint8(*sol), Fixed: b.Fixed}, stats, nil
}

func (s *DeduceSolver) Unique(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	return s.backtrack.Unique(ctx, b)
}

var _ ports.Solver = (*DeduceSolver)(nil)
