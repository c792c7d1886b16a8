package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Pins 5 into (0,4): block 0 and block 2 are covered by 5s in other rows,
// columns 3 and 5 by 5s further down. Row 0 then admits 5 at column 4 only,
// while (0,4) itself keeps several candidates.
func hiddenSingleGrid() Grid {
	var g Grid
	g[1][0] = 5
	g[4][3] = 5
	g[5][5] = 5
	g[2][6] = 5
	return g
}

func TestHiddenSingleDetected(t *testing.T) {
	b, err := NewBoard(hiddenSingleGrid())
	require.NoError(t, err)

	d, ok := NextDeduction(b, nil)
	require.True(t, ok)
	assert.Equal(t, RuleHiddenSingle, d.Rule)
	assert.Equal(t, []Cell{{Row: 0, Col: 4}}, d.Cells)
	assert.Equal(t, []uint8{5}, d.Values)
}

func TestPropagateCountsHiddenSinglesWithoutPairs(t *testing.T) {
	b, err := NewBoard(hiddenSingleGrid())
	require.NoError(t, err)

	var st Stats
	require.NoError(t, Propagate(b, &st))

	assert.Greater(t, st.HiddenSingles, 0)
	assert.Zero(t, st.NakedPairs)
	assert.Zero(t, st.NakedTriples)
	v, ok := b.Value(0, 4)
	require.True(t, ok)
	assert.Equal(t, uint8(5), v)
}

func TestNakedPairEliminatesInRow(t *testing.T) {
	b := emptyBoard(t)
	pair := bit(1) | bit(2)
	b.cands[0][0] = pair
	b.cands[0][1] = pair

	require.True(t, applyNakedSubsets(b, &rowUnits, 2))

	for c := 2; c < 9; c++ {
		assert.Zero(t, b.cands[0][c]&pair, "col %d should have lost 1 and 2", c)
	}
	assert.Equal(t, pair, b.cands[0][0])
	assert.Equal(t, pair, b.cands[0][1])

	// A second sweep has nothing left to eliminate.
	assert.False(t, applyNakedSubsets(b, &rowUnits, 2))
}

// The three triple cells must all survive the elimination, including the
// third one in column units.
func TestNakedTripleColumnExcludesAllThreeCells(t *testing.T) {
	b := emptyBoard(t)
	b.cands[0][0] = bit(1) | bit(2)
	b.cands[1][0] = bit(2) | bit(3)
	b.cands[2][0] = bit(1) | bit(3)

	require.True(t, applyNakedSubsets(b, &colUnits, 3))

	triple := bit(1) | bit(2) | bit(3)
	for r := 3; r < 9; r++ {
		assert.Zero(t, b.cands[r][0]&triple, "row %d should have lost 1,2,3", r)
	}
	assert.Equal(t, bit(1)|bit(2), b.cands[0][0])
	assert.Equal(t, bit(2)|bit(3), b.cands[1][0])
	assert.Equal(t, bit(1)|bit(3), b.cands[2][0])
}

func TestNakedTripleDeductionReported(t *testing.T) {
	b := emptyBoard(t)
	b.cands[0][0] = bit(4) | bit(5) | bit(6)
	b.cands[0][3] = bit(4) | bit(5)
	b.cands[0][7] = bit(5) | bit(6)

	d, ok := NextDeduction(b, func(r Rule) bool {
		return r == RuleNakedTriple || r == RuleNakedPair
	})
	require.True(t, ok)
	assert.Equal(t, RuleNakedTriple, d.Rule)
	assert.ElementsMatch(t, []Cell{{0, 0}, {0, 3}, {0, 7}}, d.Cells)
	assert.Equal(t, []uint8{4, 5, 6}, d.Values)
}

func TestPropagateIsIdempotent(t *testing.T) {
	b, err := NewBoard(sample)
	require.NoError(t, err)

	var st Stats
	require.NoError(t, Propagate(b, &st))

	snapshot := b.Clone()
	var again Stats
	require.NoError(t, Propagate(b, &again))

	assert.True(t, b.Equal(snapshot))
	assert.Zero(t, again.LoneSingles)
	assert.Zero(t, again.HiddenSingles)
	assert.Zero(t, again.NakedPairs)
	assert.Zero(t, again.NakedTriples)
}

func TestPropagateIsMonotonic(t *testing.T) {
	before, err := NewBoard(sample)
	require.NoError(t, err)
	after := before.Clone()

	var st Stats
	require.NoError(t, Propagate(after, &st))

	assert.LessOrEqual(t, after.Unplayed(), before.Unplayed())
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			assert.Zero(t, after.cands[r][c]&^before.cands[r][c],
				"candidates at (%d,%d) may only shrink", r, c)
		}
	}
}
