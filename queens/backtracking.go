// Package queens - exhaustive backtracking enumeration.
package queens

import (
	"context"

	"github.com/AdithyaSean/game-project/perf"
)

// SolveBacktracking enumerates every attack-free placement of n queens.
//
// The search walks columns left to right; in each column, candidate rows
// are tried in ascending order and rejected before recursing when an
// earlier queen attacks them. On reaching column n the placement is
// recorded and the search continues, so the full solution set is
// enumerated in deterministic row-major order (92 solutions for n=8).
//
// An exhausted search space is not an error: Result.Solutions is simply
// empty (n=2 and n=3 have no solutions).
//
// Complexity: exponential in n; memory O(n) beyond the collected
// solutions. Recursion depth is exactly n.
func SolveBacktracking(n int, opts ...Option) (Result, error) {
	if n < 1 {
		return Result{}, ErrBadBoardSize
	}

	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}

	w := &backtracker{ctx: o.Ctx, n: n, rows: make([]int, n)}

	var err error
	elapsed := perf.Measure(func() {
		err = w.place(0)
	})
	if err != nil {
		return Result{}, err
	}

	return Result{
		Solutions: w.solutions,
		Perfect:   true,
		Elapsed:   elapsed,
	}, nil
}

// backtracker holds the single mutable working copy of the search; the
// caller's instance is never touched.
type backtracker struct {
	ctx       context.Context
	n         int
	rows      []int // rows[col] = row of the queen placed in col
	solutions []Board
}

// place extends the partial placement at col, recursing on every safe row.
func (w *backtracker) place(col int) error {
	// Cancellation boundary: one check per search-tree node.
	select {
	case <-w.ctx.Done():
		return w.ctx.Err()
	default:
	}

	if col == w.n {
		w.solutions = append(w.solutions, append(Board(nil), w.rows...))

		return nil
	}

	var row int
	for row = 0; row < w.n; row++ {
		if !w.safe(col, row) {
			continue
		}
		w.rows[col] = row
		if err := w.place(col + 1); err != nil {
			return err
		}
		// Undo is implicit: rows[col] is overwritten by the next candidate.
	}

	return nil
}

// safe reports whether a queen at (row, col) is attacked by any queen in
// an earlier column: same row or same diagonal.
func (w *backtracker) safe(col, row int) bool {
	var c int
	for c = 0; c < col; c++ {
		if w.rows[c] == row {
			return false
		}
		if abs(w.rows[c]-row) == col-c {
			return false
		}
	}

	return true
}
