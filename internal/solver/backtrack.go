package solver

import (
	"context"
	"errors"
	"time"

	"svw.info/dedoku/internal/domain"
	"svw.info/dedoku/internal/ports"
)

// BacktrackingSolver is a plain recursive solver. It is kept alongside the
// deductive solver because counting solutions (for uniqueness testing) is
// cheaper this way than first-solution deductive search.
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

var _ ports.Solver = (*BacktrackingSolver)(nil)

func canPlace(g *[9][9]uint8, r, c int, v uint8) bool {
	for i := 0; i < 9; i++ {
		if g[r][i] == v || g[i][c] == v {
			return false
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if g[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}

func nextEmpty(g *[9][9]uint8) (int, int, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// countSolutions fills grid depth-first, stopping once want solutions are
// found or the context is done. The grid is left in its final backtracked
// state; callers wanting the solution read it when count reaches want.
func countSolutions(ctx context.Context, grid *[9][9]uint8, want int, nodes *int) int {
	count := 0
	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return true
		}
		r, c, ok := nextEmpty(grid)
		if !ok {
			count++
			return count >= want
		}
		for v := uint8(1); v <= 9; v++ {
			*nodes++
			if canPlace(grid, r, c, v) {
				grid[r][c] = v
				if dfs() {
					return true
				}
				grid[r][c] = 0
			}
		}
		return false
	}
	dfs()
	return count
}

func (s *BacktrackingSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	grid := b.Values
	nodes := 0
	found := countSolutions(ctx, &grid, 1, &nodes)
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if found < 1 {
		return nil, st, errors.New("unsolvable or canceled")
	}
	return &domain.Board{Values: grid, Fixed: b.Fixed}, st, nil
}

// Unique counts solutions up to 2 and reports whether exactly one exists.
func (s *BacktrackingSolver) Unique(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	start := time.Now()
	grid := b.Values
	nodes := 0
	found := countSolutions(ctx, &grid, 2, &nodes)
	return found == 1, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
