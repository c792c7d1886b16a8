package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A classic, solvable Sudoku (0 = empty).
var sample = Grid{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

var solvedSample = Grid{
	{5, 3, 4, 6, 7, 8, 9, 1, 2},
	{6, 7, 2, 1, 9, 5, 3, 4, 8},
	{1, 9, 8, 3, 4, 2, 5, 6, 7},
	{8, 5, 9, 7, 6, 1, 4, 2, 3},
	{4, 2, 6, 8, 5, 3, 7, 9, 1},
	{7, 1, 3, 9, 2, 4, 8, 5, 6},
	{9, 6, 1, 5, 3, 7, 2, 8, 4},
	{2, 8, 7, 4, 1, 9, 6, 3, 5},
	{3, 4, 5, 2, 8, 6, 1, 7, 9},
}

// The 2012 Inkala puzzle, commonly billed as the hardest published Sudoku.
var hardest = Grid{
	{8, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 3, 6, 0, 0, 0, 0, 0},
	{0, 7, 0, 0, 9, 0, 2, 0, 0},
	{0, 5, 0, 0, 0, 7, 0, 0, 0},
	{0, 0, 0, 0, 4, 5, 7, 0, 0},
	{0, 0, 0, 1, 0, 0, 0, 3, 0},
	{0, 0, 1, 0, 0, 0, 0, 6, 8},
	{0, 0, 8, 5, 0, 0, 0, 1, 0},
	{0, 9, 0, 0, 0, 0, 4, 0, 0},
}

var hardestSolution = Grid{
	{8, 1, 2, 7, 5, 3, 6, 4, 9},
	{9, 4, 3, 6, 8, 2, 1, 7, 5},
	{6, 7, 5, 4, 9, 1, 2, 8, 3},
	{1, 5, 4, 2, 3, 7, 8, 9, 6},
	{3, 6, 9, 8, 4, 5, 7, 2, 1},
	{2, 8, 7, 1, 6, 9, 5, 3, 4},
	{5, 2, 1, 9, 7, 4, 3, 6, 8},
	{4, 3, 8, 5, 2, 6, 9, 1, 7},
	{7, 9, 6, 3, 1, 8, 4, 5, 2},
}

func requireValidSolution(t *testing.T, g Grid) {
	t.Helper()
	b, err := NewBoard(g)
	require.NoError(t, err)
	require.True(t, b.Complete())
	require.True(t, b.Correct())
}

func TestSolveClassicSample(t *testing.T) {
	sol, st, err := Solve(context.Background(), sample, 4)
	require.NoError(t, err)
	require.NotNil(t, sol)
	requireValidSolution(t, *sol)
	assert.Equal(t, solvedSample, *sol)
	assert.Positive(t, st.LoneSingles+st.HiddenSingles)
}

func TestSolveIsDeterministic(t *testing.T) {
	if testing.Short() {
		t.Skip("deep search in -short mode")
	}
	first, st1, err := Solve(context.Background(), hardest, 4)
	require.NoError(t, err)
	second, st2, err := Solve(context.Background(), hardest, 4)
	require.NoError(t, err)

	assert.Equal(t, *first, *second)
	st1.Duration, st2.Duration = 0, 0
	assert.Equal(t, st1, st2)
}

func TestEmptyGridZeroLimitFindsNothing(t *testing.T) {
	sol, st, err := Solve(context.Background(), Grid{}, 0)
	require.ErrorIs(t, err, ErrNoSolution)
	assert.Nil(t, sol)
	assert.Zero(t, st.Visited)
}

func TestSingleBlankSolvedByPropagationAlone(t *testing.T) {
	puzzle := solvedSample
	puzzle[4][4] = 0

	sol, st, err := Solve(context.Background(), puzzle, 4)
	require.NoError(t, err)
	assert.Equal(t, solvedSample, *sol)
	assert.Zero(t, st.Visited, "no guesses expected")
	assert.Equal(t, 1, st.LoneSingles)
}

func TestHardestPuzzleSolvedWithinDepthFour(t *testing.T) {
	if testing.Short() {
		t.Skip("deep search in -short mode")
	}
	sol, st, err := Solve(context.Background(), hardest, 4)
	require.NoError(t, err)
	require.NotNil(t, sol)
	requireValidSolution(t, *sol)
	assert.Equal(t, hardestSolution, *sol)
	assert.Positive(t, st.Visited)
	t.Logf("visited=%d contradictions=%d LS=%d HS=%d NP=%d NT=%d",
		st.Visited, st.Contradictions, st.LoneSingles, st.HiddenSingles,
		st.NakedPairs, st.NakedTriples)
}

func TestContradictoryGivensFailWithoutSearch(t *testing.T) {
	var g Grid
	g[2][1] = 4
	g[2][6] = 4 // duplicate in row 2

	sol, st, err := Solve(context.Background(), g, 4)
	require.ErrorIs(t, err, ErrNoSolution)
	assert.Nil(t, sol)
	assert.Zero(t, st.Visited)
	assert.Equal(t, 1, st.Contradictions)
}

func TestSolveHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := Solve(ctx, hardest, 4)
	require.ErrorIs(t, err, context.Canceled)
}

func TestBrokenCounterIsAFault(t *testing.T) {
	b := emptyBoard(t)
	b.unplayed = -1

	var st Stats
	_, err := search(context.Background(), b, 0, 1, &st)
	var fault *Fault
	require.ErrorAs(t, err, &fault)
}

func TestCompleteButIncorrectBoardIsAFault(t *testing.T) {
	b, err := NewBoard(solvedSample)
	require.NoError(t, err)
	b.rows[0] = 0 // simulate a corrupted bitmap on a complete board

	var st Stats
	_, serr := search(context.Background(), b, 0, 1, &st)
	var fault *Fault
	require.ErrorAs(t, serr, &fault)
	assert.Contains(t, fault.Reason, "correctness")
}
