package hint

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/dedoku/internal/domain"
)

// Four 5s pin a hidden single into (0,4); no cell is down to one candidate.
func hiddenSingleBoard() *domain.Board {
	b := &domain.Board{}
	b.Values[1][0] = 5
	b.Values[4][3] = 5
	b.Values[5][5] = 5
	b.Values[2][6] = 5
	return b
}

func TestHintFindsHiddenSingle(t *testing.T) {
	h, ok, err := New().Hint(context.Background(), hiddenSingleBoard(), domain.StrategySingles)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, domain.StrategySingles, h.Strategy)
	assert.Equal(t, []domain.CellCoord{{Row: 0, Col: 4}}, h.Cells)
	assert.Contains(t, h.Message, "5")
}

func TestHintRespectsTierCap(t *testing.T) {
	// An empty board admits no deduction at all.
	_, ok, err := New().Hint(context.Background(), &domain.Board{}, domain.StrategyXWing)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHintOnContradictoryBoard(t *testing.T) {
	b := &domain.Board{}
	b.Values[0][0] = 3
	b.Values[0][5] = 3

	_, ok, err := New().Hint(context.Background(), b, domain.StrategyXWing)
	require.NoError(t, err)
	assert.False(t, ok)
}
