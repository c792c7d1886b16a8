package generator

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/dedoku/internal/domain"
	"svw.info/dedoku/internal/solver"
)

func TestGenerateAllDifficultiesUnder2s(t *testing.T) {
	s := solver.NewBacktrackingSolver()
	g := NewUniqueGenerator(s)

	for _, diff := range domain.Difficulties() {
		t.Run(diff.String(), func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			p, st, err := g.Generate(ctx, 12345, diff)
			require.NoError(t, err, "stats=%+v", st)

			givens := 0
			for r := 0; r < 9; r++ {
				for c := 0; c < 9; c++ {
					if p.Board.Values[r][c] != 0 {
						givens++
						assert.True(t, p.Board.Fixed[r][c])
					}
				}
			}
			require.GreaterOrEqual(t, givens, 17, "fewer clues cannot be unique")
			require.LessOrEqual(t, givens, 81)

			ok, _, err := s.Unique(ctx, &p.Board)
			require.NoError(t, err)
			assert.True(t, ok, "generated puzzle must have a unique solution")
		})
	}
}

func TestGenerateIsSeedDeterministic(t *testing.T) {
	g := NewUniqueGenerator(solver.NewBacktrackingSolver())
	ctx := context.Background()

	a, _, err := g.Generate(ctx, 7, domain.Easy)
	require.NoError(t, err)
	b, _, err := g.Generate(ctx, 7, domain.Easy)
	require.NoError(t, err)
	assert.Equal(t, a.Board.Values, b.Board.Values)
}
