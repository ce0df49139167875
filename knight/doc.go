// Package knight solves the Knight's Tour: move a chess knight across an
// n×n board so that every cell is visited exactly once.
//
// All three solvers generate candidate moves from the same fixed cyclic
// offset ring, tried in the same order at every cell:
//
//	(2,1) (1,2) (-1,2) (-2,1) (-2,-1) (-1,-2) (1,-2) (2,-1)
//
// Solvers:
//
//   - SolveBacktracking — exhaustive depth-first search with exact undo;
//     stops at the first complete tour (single-solution mode). Reports no
//     tour when the offset ring is exhausted at every depth. Worst-case
//     exponential; recursion depth is bounded by n².
//
//   - SolveWarnsdorff — greedy single pass, no backtracking: always step
//     to the candidate with the minimum onward degree (number of unvisited
//     legal neighbors), ties broken by offset order. Fails immediately
//     when no candidate exists before the board is covered. O(n²) steps.
//
//   - SolveCenterHeuristic — same greedy skeleton with a blended score,
//     0.3·(−squared distance from the board center) − 0.7·onward degree,
//     maximized, ties broken by offset order. A stand-in for a trained
//     move-scoring network; same failure semantics as Warnsdorff.
//
// A failed search is a normal outcome, not an error: Result.Tour is nil
// and callers must branch on it.
//
// VerifyTour is the package's verification predicate: it replays a
// candidate move sequence and reports the first rule violation. UI layers
// checking user-entered tours must call it rather than re-implement the
// movement rules. Tour.Closed additionally reports whether the last cell
// attacks the first (a closed tour).
//
// Errors:
//
//   - ErrBadBoardSize   if n < 1.
//   - ErrStartOffBoard  if the starting cell is outside the board.
//   - ErrTour*          from VerifyTour, naming the violated rule.
package knight
