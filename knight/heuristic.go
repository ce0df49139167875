// Package knight - greedy single-pass solvers (Warnsdorff and the
// center-weighted heuristic).
package knight

import (
	"math"

	"github.com/AdithyaSean/game-project/perf"
)

// SolveWarnsdorff runs Warnsdorff's rule from start: at each cell, step
// to the open candidate with the minimum onward degree, ties broken by
// offset order. No backtracking, no restarts — if the knight is ever
// stranded before the board is covered the solver fails immediately and
// Result.Tour is nil.
//
// Complexity: O(n²) steps, O(1) candidate work per step.
func SolveWarnsdorff(n int, start Cell, opts ...Option) (Result, error) {
	if _, err := prepare(n, start, opts); err != nil {
		return Result{}, err
	}

	var tour Tour
	elapsed := perf.Measure(func() {
		tour = greedy(n, start, func(b *board, next Cell) float64 {
			// Lower onward degree is better; negate for the shared
			// maximizing skeleton.
			return -float64(b.degree(next))
		})
	})

	return Result{Tour: tour, Elapsed: elapsed}, nil
}

// SolveCenterHeuristic runs the same greedy skeleton with a blended
// score: CenterWeight·(−squared Euclidean distance from the board
// center) − DegreeWeight·onward degree, maximized, ties broken by offset
// order. Same failure semantics as Warnsdorff.
//
// Complexity: O(n²) steps.
func SolveCenterHeuristic(n int, start Cell, opts ...Option) (Result, error) {
	o, err := prepare(n, start, opts)
	if err != nil {
		return Result{}, err
	}

	center := Cell{n / 2, n / 2}

	var tour Tour
	elapsed := perf.Measure(func() {
		tour = greedy(n, start, func(b *board, next Cell) float64 {
			dr := float64(next.Row - center.Row)
			dc := float64(next.Col - center.Col)

			return o.CenterWeight*(-(dr*dr + dc*dc)) - o.DegreeWeight*float64(b.degree(next))
		})
	})

	return Result{Tour: tour, Elapsed: elapsed}, nil
}

// greedy is the shared single-pass loop: repeatedly apply the best-scored
// open move (strictly-greater comparison, so the first candidate in
// offset order wins ties) until the board is covered or no candidate
// remains. Returns nil on a dead end.
func greedy(n int, start Cell, score func(*board, Cell) float64) Tour {
	b := newBoard(n)
	b.visit(start)

	var (
		tour = make(Tour, 1, n*n)
		cur  = start
	)
	tour[0] = start

	for len(tour) < n*n {
		var (
			best      = math.Inf(-1)
			bestCell  Cell
			found     = false
			off, next Cell
		)
		for _, off = range offsets {
			next = Cell{cur.Row + off.Row, cur.Col + off.Col}
			if !b.open(next) {
				continue
			}
			if s := score(b, next); s > best {
				best = s
				bestCell = next
				found = true
			}
		}

		if !found {
			return nil // stranded before covering the board
		}

		b.visit(bestCell)
		tour = append(tour, bestCell)
		cur = bestCell
	}

	return tour
}
