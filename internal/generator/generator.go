// Package generator creates puzzles by carving clues out of a random full
// solution while a solver confirms the remaining clues still force a
// unique solution. The finished puzzle is graded by what the deductive
// engine actually needed to solve it.
package generator

import (
	"svw.info/dedoku/internal/ports"
)

// UniqueGenerator creates puzzles with a unique solution using a provided
// Solver for uniqueness checks.
type UniqueGenerator struct {
	Solver ports.Solver
}

func NewUniqueGenerator(s ports.Solver) *UniqueGenerator {
	return &UniqueGenerator{Solver: s}
}

var _ ports.Generator = (*UniqueGenerator)(nil)
