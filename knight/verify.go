// Package knight - tour verification.
package knight

import "fmt"

// VerifyTour replays a candidate tour against the movement rules and
// returns the first violation, or nil for a valid tour:
//
//   - the sequence begins at start            (ErrTourStart)
//   - it covers exactly n² cells              (ErrTourLength)
//   - every cell lies on the board            (ErrTourOffBoard)
//   - no cell is visited twice                (ErrTourRevisit)
//   - consecutive cells are knight moves      (ErrTourMove)
//
// This is the predicate UI layers must call for user-entered move lists;
// use Tour.Closed afterwards to distinguish closed from open tours.
//
// Complexity: O(n²).
func VerifyTour(n int, start Cell, tour Tour) error {
	if n < 1 {
		return ErrBadBoardSize
	}
	if len(tour) != n*n {
		return fmt.Errorf("%w: got %d cells, want %d", ErrTourLength, len(tour), n*n)
	}
	if tour[0] != start {
		return fmt.Errorf("%w: begins at (%d,%d), want (%d,%d)",
			ErrTourStart, tour[0].Row, tour[0].Col, start.Row, start.Col)
	}

	b := newBoard(n)
	var (
		i int
		c Cell
	)
	for i, c = range tour {
		if !b.onBoard(c) {
			return fmt.Errorf("%w: cell %d is (%d,%d)", ErrTourOffBoard, i, c.Row, c.Col)
		}
		if b.seen(c) {
			return fmt.Errorf("%w: cell (%d,%d)", ErrTourRevisit, c.Row, c.Col)
		}
		if i > 0 && !legalMove(tour[i-1], c) {
			return fmt.Errorf("%w: step %d, (%d,%d) -> (%d,%d)",
				ErrTourMove, i, tour[i-1].Row, tour[i-1].Col, c.Row, c.Col)
		}
		b.visit(c)
	}

	return nil
}
