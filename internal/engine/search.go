package engine

import (
	"context"
	"time"
)

// Solve propagates constraints on the initial grid and, if that does not
// finish the board, runs iterative-deepening depth-limited search: depth
// caps 1..limit, first solution wins. A nil grid with ErrNoSolution means
// the depth budget was exhausted; any *Fault error means a broken engine
// invariant. Partial grids are never returned.
func Solve(ctx context.Context, g Grid, limit int) (sol *Grid, st Stats, err error) {
	start := time.Now()
	defer func() { st.Duration = time.Since(start) }()

	b, err := NewBoard(g)
	if err != nil {
		return nil, st, err
	}
	if err = Propagate(b, &st); err != nil {
		return nil, st, err
	}
	if !b.Valid() {
		st.Contradictions++
		return nil, st, ErrNoSolution
	}
	if b.Complete() {
		if !b.Correct() {
			return nil, st, faultf(b, nil, "complete board fails correctness check")
		}
		g := b.Grid()
		return &g, st, nil
	}

	for depthCap := 1; depthCap <= limit; depthCap++ {
		sol, err = search(ctx, b, 0, depthCap, &st)
		if err != nil {
			return nil, st, err
		}
		if sol != nil {
			return sol, st, nil
		}
	}
	return nil, st, ErrNoSolution
}

// search is the depth-limited recursive driver. Each branch clones the
// state, assigns one guess and propagates; failed branches are discarded,
// never unwound. Guesses start at the most-constrained unassigned cells and
// escalate to less-constrained ones only when every candidate at the
// current level is exhausted. Branches that collapse to a state already
// explored from this node are skipped.
func search(ctx context.Context, b *Board, depth, limit int, st *Stats) (*Grid, error) {
	st.Visited++

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if b.unplayed < 0 {
		return nil, faultf(b, nil, "negative unplayed counter (%d)", b.unplayed)
	}
	if !b.Valid() {
		st.Contradictions++
		return nil, nil
	}
	if b.Complete() {
		if !b.Correct() {
			return nil, faultf(b, nil, "complete board fails correctness check")
		}
		g := b.Grid()
		return &g, nil
	}
	if depth >= limit {
		return nil, nil
	}

	// Sibling-branch dedup, scoped to this node only.
	seen := make(map[uint64][]*Board)

	cm := b.ConstraintMap()
	level := 9
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if !b.assigned[r][c] && cm[r][c] < level {
				level = cm[r][c]
			}
		}
	}

	for k := level; k <= 9; k++ {
		for r := 0; r < 9; r++ {
			for c := 0; c < 9; c++ {
				if b.assigned[r][c] || cm[r][c] != k {
					continue
				}
				for _, v := range b.Candidates(r, c) {
					branch := b.Clone()
					if err := branch.Assign(r, c, v); err != nil {
						return nil, faultf(branch, err, "branch assignment rejected")
					}
					if err := Propagate(branch, st); err != nil {
						return nil, err
					}

					fp := branch.Fingerprint()
					duplicate := false
					for _, prev := range seen[fp] {
						if prev.Equal(branch) {
							duplicate = true
							break
						}
					}
					if duplicate {
						continue
					}
					seen[fp] = append(seen[fp], branch)

					sol, err := search(ctx, branch, depth+1, limit, st)
					if sol != nil || err != nil {
						return sol, err
					}
				}
			}
		}
	}
	return nil, nil
}
