package knight_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdithyaSean/game-project/knight"
)

// requireFullTour asserts the solver output is a complete valid tour.
func requireFullTour(t *testing.T, n int, start knight.Cell, tour knight.Tour) {
	t.Helper()
	require.NotNil(t, tour, "expected a tour from (%d,%d)", start.Row, start.Col)
	require.NoError(t, knight.VerifyTour(n, start, tour))
}

func TestSolvers_InstanceValidation(t *testing.T) {
	_, err := knight.SolveBacktracking(0, knight.Cell{})
	assert.ErrorIs(t, err, knight.ErrBadBoardSize)

	_, err = knight.SolveWarnsdorff(8, knight.Cell{Row: 8, Col: 0})
	assert.ErrorIs(t, err, knight.ErrStartOffBoard)

	_, err = knight.SolveCenterHeuristic(8, knight.Cell{Row: -1, Col: 2})
	assert.ErrorIs(t, err, knight.ErrStartOffBoard)
}

func TestSolveBacktracking_CornerStart(t *testing.T) {
	start := knight.Cell{Row: 0, Col: 0}
	res, err := knight.SolveBacktracking(8, start)
	require.NoError(t, err)
	requireFullTour(t, 8, start, res.Tour)
	assert.Len(t, res.Tour, 64)
}

func TestSolveBacktracking_Deterministic(t *testing.T) {
	start := knight.Cell{Row: 0, Col: 0}
	a, err := knight.SolveBacktracking(8, start)
	require.NoError(t, err)
	b, err := knight.SolveBacktracking(8, start)
	require.NoError(t, err)
	assert.Equal(t, a.Tour, b.Tour)
}

func TestSolveBacktracking_NoTourOnTinyBoard(t *testing.T) {
	// A 3x3 board admits no knight's tour from the center: the center
	// cell has no knight moves at all.
	res, err := knight.SolveBacktracking(3, knight.Cell{Row: 1, Col: 1})
	require.NoError(t, err)
	assert.Nil(t, res.Tour, "infeasibility is a nil tour, not an error")
}

func TestSolveBacktracking_TrivialBoard(t *testing.T) {
	res, err := knight.SolveBacktracking(1, knight.Cell{})
	require.NoError(t, err)
	require.Len(t, res.Tour, 1)
}

func TestSolveBacktracking_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := knight.SolveBacktracking(8, knight.Cell{}, knight.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSolveWarnsdorff_AllStartingCells(t *testing.T) {
	// With first-offset tie-breaking the greedy rule completes the
	// classic board from every starting cell except (2,4), where it
	// strands — a deterministic dead end the caller must branch on.
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			start := knight.Cell{Row: row, Col: col}
			res, err := knight.SolveWarnsdorff(8, start)
			require.NoError(t, err)

			if row == 2 && col == 4 {
				assert.Nil(t, res.Tour, "start (2,4) dead-ends under this tie order")
				continue
			}
			requireFullTour(t, 8, start, res.Tour)
		}
	}
}

func TestSolveWarnsdorff_DeadEndIsNil(t *testing.T) {
	// 4x4 boards admit no full knight's tour, so the greedy pass must
	// strand and report nil rather than error.
	res, err := knight.SolveWarnsdorff(4, knight.Cell{})
	require.NoError(t, err)
	assert.Nil(t, res.Tour)
}

func TestSolveCenterHeuristic_StrandsOnClassicBoard(t *testing.T) {
	// The center-pull outweighs the degree term enough that the blended
	// heuristic dead-ends on the 8x8 board; failure must come back as a
	// nil tour, not an error. (Callers wanting a guaranteed tour use
	// Warnsdorff or backtracking.)
	res, err := knight.SolveCenterHeuristic(8, knight.Cell{Row: 0, Col: 0})
	require.NoError(t, err)
	assert.Nil(t, res.Tour)
}

func TestSolveCenterHeuristic_WeightOverride(t *testing.T) {
	// Degree weight 1 / center weight 0 reduces the heuristic to
	// Warnsdorff's rule: both must emit the identical tour.
	start := knight.Cell{Row: 2, Col: 3}
	w, err := knight.SolveWarnsdorff(8, start)
	require.NoError(t, err)
	c, err := knight.SolveCenterHeuristic(8, start, knight.WithHeuristicWeights(0, 1))
	require.NoError(t, err)
	assert.Equal(t, w.Tour, c.Tour)
}

func TestVerifyTour_Violations(t *testing.T) {
	start := knight.Cell{Row: 0, Col: 0}
	res, err := knight.SolveWarnsdorff(8, start)
	require.NoError(t, err)
	good := res.Tour

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, knight.VerifyTour(8, start, good))
	})

	t.Run("wrong length", func(t *testing.T) {
		assert.ErrorIs(t, knight.VerifyTour(8, start, good[:63]), knight.ErrTourLength)
	})

	t.Run("wrong start", func(t *testing.T) {
		assert.ErrorIs(t, knight.VerifyTour(8, knight.Cell{Row: 4, Col: 4}, good), knight.ErrTourStart)
	})

	t.Run("revisit", func(t *testing.T) {
		bad := append(knight.Tour(nil), good...)
		bad[63] = bad[0]
		err := knight.VerifyTour(8, start, bad)
		assert.Error(t, err)
	})

	t.Run("illegal move", func(t *testing.T) {
		bad := append(knight.Tour(nil), good...)
		bad[1], bad[2] = bad[2], bad[1]
		assert.ErrorIs(t, knight.VerifyTour(8, start, bad), knight.ErrTourMove)
	})

	t.Run("off board", func(t *testing.T) {
		bad := append(knight.Tour(nil), good...)
		bad[63] = knight.Cell{Row: 8, Col: 8}
		err := knight.VerifyTour(8, start, bad)
		assert.Error(t, err)
	})
}

func TestTour_Closed(t *testing.T) {
	// (0,0) -> (2,1) is one knight move; (2,1) -> (0,0) closes it.
	assert.True(t, knight.Tour{{Row: 0, Col: 0}, {Row: 2, Col: 1}}.Closed())
	assert.False(t, knight.Tour{{Row: 0, Col: 0}, {Row: 4, Col: 4}}.Closed())
	assert.False(t, knight.Tour{{Row: 0, Col: 0}}.Closed())
}
