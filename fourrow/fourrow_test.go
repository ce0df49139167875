package fourrow_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdithyaSean/game-project/fourrow"
)

// place is a test helper filling cells with one mark.
func place(b *fourrow.Board, m fourrow.Mark, cells ...[2]int) {
	for _, rc := range cells {
		b[rc[0]][rc[1]] = m
	}
}

func TestBoard_Winner(t *testing.T) {
	tests := []struct {
		name  string
		cells [][2]int
		want  fourrow.Mark
	}{
		{"empty board", nil, fourrow.Empty},
		{"row", [][2]int{{2, 1}, {2, 2}, {2, 3}, {2, 4}}, fourrow.PlayerX},
		{"column", [][2]int{{0, 3}, {1, 3}, {2, 3}, {3, 3}}, fourrow.PlayerX},
		{"falling diagonal", [][2]int{{1, 1}, {2, 2}, {3, 3}, {4, 4}}, fourrow.PlayerX},
		{"rising diagonal", [][2]int{{4, 0}, {3, 1}, {2, 2}, {1, 3}}, fourrow.PlayerX},
		{"three only", [][2]int{{0, 0}, {0, 1}, {0, 2}}, fourrow.Empty},
		{"broken row", [][2]int{{0, 0}, {0, 1}, {0, 3}, {0, 4}}, fourrow.Empty},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var b fourrow.Board
			place(&b, fourrow.PlayerX, tc.cells...)
			assert.Equal(t, tc.want, b.Winner())
		})
	}
}

func TestBoard_LegalAndFull(t *testing.T) {
	var b fourrow.Board
	assert.Len(t, b.Legal(), 25)
	assert.False(t, b.Full())

	for r := 0; r < fourrow.Size; r++ {
		for c := 0; c < fourrow.Size; c++ {
			if (r+c)%2 == 0 {
				b[r][c] = fourrow.PlayerX
			} else {
				b[r][c] = fourrow.PlayerO
			}
		}
	}
	assert.True(t, b.Full())
	assert.Empty(t, b.Legal())
}

func TestEvaluate_WindowWeights(t *testing.T) {
	// Three O marks in the top-left corner of row 0. From O's view the
	// window (0,0..3) is worth +5 and (0,1..4) worth +2; from X's view
	// the same windows weigh -10 and -2. Open-three penalties outweigh
	// open-three bonuses, so the two perspectives are not mirror images.
	var b fourrow.Board
	place(&b, fourrow.PlayerO, [2]int{0, 0}, [2]int{0, 1}, [2]int{0, 2})

	assert.Equal(t, 7, fourrow.Evaluate(b, fourrow.PlayerO))
	assert.Equal(t, -12, fourrow.Evaluate(b, fourrow.PlayerX))
}

func TestEvaluate_EmptyBoardIsNeutral(t *testing.T) {
	var b fourrow.Board
	assert.Zero(t, fourrow.Evaluate(b, fourrow.PlayerO))
}

func TestMinimaxMove_Validation(t *testing.T) {
	var b fourrow.Board

	_, err := fourrow.MinimaxMove(b, fourrow.Empty)
	assert.ErrorIs(t, err, fourrow.ErrBadPlayer)

	_, err = fourrow.MinimaxMove(b, fourrow.PlayerO, fourrow.WithDepth(0))
	assert.ErrorIs(t, err, fourrow.ErrBadDepth)

	place(&b, fourrow.PlayerX, [2]int{0, 0}, [2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3})
	_, err = fourrow.MinimaxMove(b, fourrow.PlayerO)
	assert.ErrorIs(t, err, fourrow.ErrGameOver)
}

func TestMinimaxMove_BlocksForcedWin(t *testing.T) {
	// X threatens to complete the top row at (0,3); every other reply
	// loses one ply later, so the block is chosen for any shuffle seed.
	var b fourrow.Board
	place(&b, fourrow.PlayerX, [2]int{0, 0}, [2]int{0, 1}, [2]int{0, 2})
	place(&b, fourrow.PlayerO, [2]int{4, 4}, [2]int{3, 3})

	for seed := int64(1); seed <= 5; seed++ {
		d, err := fourrow.MinimaxMove(b, fourrow.PlayerO, fourrow.WithSeed(seed))
		require.NoError(t, err)
		assert.Equal(t, fourrow.Move{Row: 0, Col: 3}, d.Move, "seed %d", seed)
	}
}

func TestMinimaxMove_TakesImmediateWin(t *testing.T) {
	// O has three in the first column; (0,0) is blocked by X, so (4,0)
	// is the unique winning completion and must score 10.
	var b fourrow.Board
	place(&b, fourrow.PlayerO, [2]int{1, 0}, [2]int{2, 0}, [2]int{3, 0})
	place(&b, fourrow.PlayerX, [2]int{0, 0}, [2]int{0, 4}, [2]int{1, 4})

	for seed := int64(1); seed <= 5; seed++ {
		d, err := fourrow.MinimaxMove(b, fourrow.PlayerO, fourrow.WithSeed(seed))
		require.NoError(t, err)
		assert.Equal(t, fourrow.Move{Row: 4, Col: 0}, d.Move, "seed %d", seed)
		assert.Equal(t, 10.0, d.Score)
	}
}

func TestMinimaxMove_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var b fourrow.Board
	_, err := fourrow.MinimaxMove(b, fourrow.PlayerO, fourrow.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMCTSMove_Validation(t *testing.T) {
	var b fourrow.Board

	_, err := fourrow.MCTSMove(b, fourrow.PlayerO, fourrow.WithIterations(0))
	assert.ErrorIs(t, err, fourrow.ErrBadIterations)

	_, err = fourrow.MCTSMove(b, fourrow.PlayerO, fourrow.WithExploration(0))
	assert.ErrorIs(t, err, fourrow.ErrBadExploration)

	_, err = fourrow.MCTSMove(b, fourrow.Empty)
	assert.ErrorIs(t, err, fourrow.ErrBadPlayer)
}

func TestMCTSMove_ReturnsEmptyCell(t *testing.T) {
	var b fourrow.Board
	place(&b, fourrow.PlayerX, [2]int{0, 0}, [2]int{1, 1})
	place(&b, fourrow.PlayerO, [2]int{2, 2})

	d, err := fourrow.MCTSMove(b, fourrow.PlayerO, fourrow.WithSeed(7))
	require.NoError(t, err)
	assert.Equal(t, fourrow.Empty, b[d.Move.Row][d.Move.Col],
		"MCTS must choose a currently empty cell")
	assert.Positive(t, d.Score)
}

func TestMCTSMove_DeterministicForFixedSeed(t *testing.T) {
	var b fourrow.Board
	place(&b, fourrow.PlayerX, [2]int{0, 0})

	a, err := fourrow.MCTSMove(b, fourrow.PlayerO, fourrow.WithSeed(42))
	require.NoError(t, err)
	c, err := fourrow.MCTSMove(b, fourrow.PlayerO, fourrow.WithSeed(42))
	require.NoError(t, err)
	assert.Equal(t, a.Move, c.Move)
	assert.Equal(t, a.Score, c.Score)
}

func TestMCTSMove_FindsOnlyWinningCell(t *testing.T) {
	// Two empty cells remain: (4,0) completes O's column for an instant
	// win, (4,4) lets the game fizzle into a draw. Every rollout through
	// the winning child succeeds, so the robust-child rule must pick it.
	b := almostFullBoard(t)

	d, err := fourrow.MCTSMove(b, fourrow.PlayerO, fourrow.WithSeed(3))
	require.NoError(t, err)
	assert.Equal(t, fourrow.Move{Row: 4, Col: 0}, d.Move)
}

// almostFullBoard builds a legal-shaped 23-mark position with exactly
// (4,0) and (4,4) empty, where (4,0) wins for O and nothing wins for X.
func almostFullBoard(t *testing.T) fourrow.Board {
	t.Helper()

	var b fourrow.Board
	// O holds column 0 rows 1..3; the rest is packed so that neither
	// side has four in a line and neither empty cell wins for X.
	layout := [fourrow.Size][fourrow.Size]int8{
		{1, -1, 1, -1, 1},
		{-1, 1, -1, 1, -1},
		{-1, 1, 1, -1, 1},
		{-1, -1, 1, -1, 1},
		{0, 1, 1, -1, 0},
	}
	for r := 0; r < fourrow.Size; r++ {
		for c := 0; c < fourrow.Size; c++ {
			b[r][c] = fourrow.Mark(layout[r][c])
		}
	}
	require.Equal(t, fourrow.Empty, b.Winner(), "setup must not be already won")
	require.Len(t, b.Legal(), 2)

	return b
}

func TestMCTSMove_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var b fourrow.Board
	_, err := fourrow.MCTSMove(b, fourrow.PlayerO, fourrow.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
