package generator

import (
	"context"
	"math/rand"
	"time"

	"svw.info/dedoku/internal/domain"
	"svw.info/dedoku/internal/engine"
	"svw.info/dedoku/internal/ports"
	"svw.info/dedoku/internal/solver"
)

func targetGivens(d domain.Difficulty) int {
	switch d {
	case domain.Easy:
		return 40
	case domain.Medium:
		return 34
	case domain.Hard:
		return 28
	default:
		return 24 // Expert
	}
}

// Generate creates a puzzle from seed at a target difficulty: fill a full
// random solution, then remove clues in random order as long as the puzzle
// stays unique. The stored difficulty is re-graded from the techniques the
// deductive engine needed on the final clue set.
func (g *UniqueGenerator) Generate(ctx context.Context, seed int64, diff domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))

	var full [9][9]uint8
	if !fillRandom(ctx, rng, &full) {
		return nil, ports.Stats{}, context.Canceled
	}

	puz := full
	fixed := [9][9]bool{}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			fixed[r][c] = true
		}
	}
	positions := rng.Perm(81)

	target := targetGivens(diff)
	nodes := 0

	for _, pos := range positions {
		if ctx.Err() != nil || countGivens(&puz) <= target {
			break
		}
		r, c := pos/9, pos%9
		old := puz[r][c]
		puz[r][c] = 0
		fixed[r][c] = false
		unique, st, _ := g.Solver.Unique(ctx, &domain.Board{Values: puz})
		nodes += st.Nodes
		if !unique {
			puz[r][c] = old
			fixed[r][c] = true
		}
	}

	graded, st := grade(ctx, puz)
	nodes += st.Visited

	p := &domain.Puzzle{
		Seed:       seed,
		Difficulty: graded,
		Board:      domain.Board{Values: puz, Fixed: fixed},
		CreatedAt:  time.Now().UnixNano(),
	}
	return p, ports.Stats{Nodes: nodes, Duration: time.Since(start), Deduce: st}, nil
}

// grade runs the deductive engine on the carved puzzle and labels it by
// the hardest technique it had to use. A puzzle the engine must guess on
// is Expert regardless of clue count.
func grade(ctx context.Context, puz [9][9]uint8) (domain.Difficulty, engine.Stats) {
	_, st, err := engine.Solve(ctx, engine.Grid(puz), solver.DefaultDepthLimit)
	switch {
	case err != nil || st.Visited > 0:
		return domain.Expert, st
	case st.NakedPairs > 0 || st.NakedTriples > 0:
		return domain.Hard, st
	case st.HiddenSingles > 0:
		return domain.Medium, st
	default:
		return domain.Easy, st
	}
}

func countGivens(b *[9][9]uint8) int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b[r][c] != 0 {
				n++
			}
		}
	}
	return n
}

// fillRandom solves an empty grid into a full valid solution, trying the
// values of each cell in random order.
func fillRandom(ctx context.Context, rng *rand.Rand, grid *[9][9]uint8) bool {
	var nums [9]uint8
	for i := 0; i < 9; i++ {
		nums[i] = uint8(i + 1)
	}
	var dfs func(int, int) bool
	dfs = func(r, c int) bool {
		if ctx.Err() != nil {
			return false
		}
		if r == 9 {
			return true
		}
		nr, nc := r, c+1
		if nc == 9 {
			nr, nc = r+1, 0
		}
		rng.Shuffle(9, func(i, j int) { nums[i], nums[j] = nums[j], nums[i] })
		for _, v := range nums {
			if allowed(grid, r, c, v) {
				grid[r][c] = v
				if dfs(nr, nc) {
					return true
				}
				grid[r][c] = 0
			}
		}
		return false
	}
	return dfs(0, 0)
}

func allowed(b *[9][9]uint8, r, c int, v uint8) bool {
	for i := 0; i < 9; i++ {
		if b[r][i] == v || b[i][c] == v {
			return false
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if b[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}
