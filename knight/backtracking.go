// Package knight - exhaustive backtracking tour search.
package knight

import (
	"context"

	"github.com/AdithyaSean/game-project/perf"
)

// SolveBacktracking finds one complete knight's tour from start by
// exhaustive depth-first search, or reports none when the search space is
// exhausted. Moves are tried in the fixed offset order, and every failed
// extension is undone exactly before the next candidate (the invertible
// Move contract backtracking relies on).
//
// Unlike the queens enumeration this is single-solution mode: the first
// tour found ends the search.
//
// Complexity: worst-case exponential in n²; fine for the classic 8×8
// board from most starting cells. Recursion depth is bounded by n².
func SolveBacktracking(n int, start Cell, opts ...Option) (Result, error) {
	o, err := prepare(n, start, opts)
	if err != nil {
		return Result{}, err
	}

	var (
		b    = newBoard(n)
		tour = make(Tour, 0, n*n)
	)

	var found bool
	var searchErr error
	elapsed := perf.Measure(func() {
		b.visit(start)
		tour = append(tour, start)
		found, searchErr = extend(o.Ctx, b, &tour, start)
	})
	if searchErr != nil {
		return Result{}, searchErr
	}
	if !found {
		return Result{Elapsed: elapsed}, nil
	}

	return Result{Tour: tour, Elapsed: elapsed}, nil
}

// extend grows the partial tour at cur by one move, recursing until the
// board is covered. Returns true as soon as any branch completes a tour.
func extend(ctx context.Context, b *board, tour *Tour, cur Cell) (bool, error) {
	// Cancellation boundary: one check per search-tree node.
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	default:
	}

	if len(*tour) == b.n*b.n {
		return true, nil
	}

	var off Cell
	for _, off = range offsets {
		next := Cell{cur.Row + off.Row, cur.Col + off.Col}
		if !b.open(next) {
			continue
		}

		b.visit(next)
		*tour = append(*tour, next)

		done, err := extend(ctx, b, tour, next)
		if err != nil {
			return false, err
		}
		if done {
			return true, nil
		}

		// Exact undo.
		b.unvisit(next)
		*tour = (*tour)[:len(*tour)-1]
	}

	return false, nil
}

// prepare validates the instance and applies options.
func prepare(n int, start Cell, opts []Option) (Options, error) {
	if n < 1 {
		return Options{}, ErrBadBoardSize
	}
	if start.Row < 0 || start.Row >= n || start.Col < 0 || start.Col >= n {
		return Options{}, ErrStartOffBoard
	}

	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}

	return o, nil
}
