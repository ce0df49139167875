package queens_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdithyaSean/game-project/queens"
)

func TestSolveBacktracking_BadSize(t *testing.T) {
	_, err := queens.SolveBacktracking(0)
	assert.ErrorIs(t, err, queens.ErrBadBoardSize)
}

func TestSolveBacktracking_KnownCounts(t *testing.T) {
	// Sequence A000170: number of N-Queens solutions per board size.
	counts := map[int]int{1: 1, 2: 0, 3: 0, 4: 2, 5: 10, 6: 4, 7: 40, 8: 92}

	for n, want := range counts {
		res, err := queens.SolveBacktracking(n)
		require.NoError(t, err, "n=%d", n)
		assert.Len(t, res.Solutions, want, "n=%d", n)
		assert.True(t, res.Perfect)
	}
}

func TestSolveBacktracking_Eight_AllDistinctAndValid(t *testing.T) {
	res, err := queens.SolveBacktracking(8)
	require.NoError(t, err)
	require.Len(t, res.Solutions, 92)

	seen := make(map[string]bool, 92)
	for _, board := range res.Solutions {
		require.Len(t, []int(board), 8, "exactly 8 queens")
		assert.True(t, board.Valid(), "board %s must be attack-free", board)
		key := board.String()
		assert.False(t, seen[key], "duplicate solution %s", key)
		seen[key] = true
	}
}

func TestSolveBacktracking_DeterministicOrder(t *testing.T) {
	res, err := queens.SolveBacktracking(8)
	require.NoError(t, err)
	// Row-major enumeration per column: the lexicographically first n=8
	// solution is the classic 15863724.
	assert.Equal(t, "15863724", res.Solutions[0].String())

	again, err := queens.SolveBacktracking(8)
	require.NoError(t, err)
	assert.Equal(t, res.Solutions, again.Solutions)
}

func TestSolveBacktracking_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := queens.SolveBacktracking(8, queens.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBoard_Valid(t *testing.T) {
	tests := []struct {
		name  string
		board queens.Board
		want  bool
	}{
		{"classic solution", queens.Board{0, 4, 7, 5, 2, 6, 1, 3}, true},
		{"shared row", queens.Board{0, 0, 2, 4}, false},
		{"shared diagonal", queens.Board{0, 1, 4, 6}, false},
		{"row out of range", queens.Board{0, 9, 2, 4}, false},
		{"four queens solution", queens.Board{1, 3, 0, 2}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.board.Valid())
		})
	}
}

func TestBoard_String(t *testing.T) {
	assert.Equal(t, "2413", queens.Board{1, 3, 0, 2}.String())
}

func TestFitness(t *testing.T) {
	// A valid n=8 board scores the maximum 28.
	assert.Equal(t, 28, queens.Fitness([]int{0, 4, 7, 5, 2, 6, 1, 3}))
	// The identity permutation puts all 8 queens on one diagonal: every
	// one of the 28 pairs conflicts.
	assert.Equal(t, 0, queens.Fitness([]int{0, 1, 2, 3, 4, 5, 6, 7}))
}

func TestSolveGenetic_FindsPerfectSolutions(t *testing.T) {
	res, err := queens.SolveGenetic(8, queens.WithSeed(1))
	require.NoError(t, err)

	require.True(t, res.Perfect, "seeded run must reach fitness 28")
	require.NotEmpty(t, res.Solutions)
	assert.LessOrEqual(t, len(res.Solutions), 10)
	assert.Equal(t, 28, res.BestFitness)

	seen := map[string]bool{}
	for _, board := range res.Solutions {
		assert.True(t, board.Valid(), "collected board %s must be attack-free", board)
		key := board.String()
		assert.False(t, seen[key], "collected boards must be distinct")
		seen[key] = true
	}
}

func TestSolveGenetic_DeterministicForFixedSeed(t *testing.T) {
	a, err := queens.SolveGenetic(8, queens.WithSeed(99))
	require.NoError(t, err)
	b, err := queens.SolveGenetic(8, queens.WithSeed(99))
	require.NoError(t, err)

	assert.Equal(t, a.Solutions, b.Solutions)
	assert.Equal(t, a.BestFitness, b.BestFitness)
}

func TestSolveGenetic_BudgetExhausted(t *testing.T) {
	// One tiny generation cannot reach a perfect 8-queens board; the
	// result must carry the best boards found and Perfect == false.
	res, err := queens.SolveGenetic(8,
		queens.WithSeed(5),
		queens.WithGenerations(1),
		queens.WithPopulation(4),
		queens.WithEliteCount(1),
	)
	require.NoError(t, err)
	if !res.Perfect {
		assert.NotEmpty(t, res.Solutions)
		assert.Less(t, res.BestFitness, 28)
	}
}

func TestSolveGenetic_BadParameters(t *testing.T) {
	_, err := queens.SolveGenetic(8, queens.WithPopulation(1))
	assert.Error(t, err)
}
