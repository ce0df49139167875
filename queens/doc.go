// Package queens solves the N-Queens puzzle: place n queens on an n×n
// chessboard so that no two share a row, column, or diagonal.
//
// Two solvers are provided:
//
//   - SolveBacktracking — exhaustive constrained depth-first search.
//     Decision order is column by column; for each column rows 0..n-1 are
//     tried in ascending order, and a row is accepted only if no earlier
//     queen attacks it (constraint propagation, not post-hoc rejection).
//     Every complete placement is recorded, so the enumeration is total
//     and deterministic: n=8 yields exactly the 92 known solutions.
//     Complexity: exponential in n; callers choosing large n accept the
//     combinatorial cost. Recursion depth is bounded by n.
//
//   - SolveGenetic — genetic algorithm over row permutations (column i ↦
//     genome[i]), run on the evolve engine. Fitness is the number of
//     non-attacking queen pairs, maximal at C(n,2) (28 for n=8, since
//     columns are distinct by construction). Perfect individuals are
//     collected as distinct solutions (deduplicated by the canonical
//     solution string) and the run stops once MaxSolutions are found or
//     the generation budget is spent, returning the best boards reached.
//
// A Board is the row index of the queen in each column. Board.Valid is
// the package's verification predicate: UI layers checking a user's
// hand-placed configuration must call it rather than re-implement the
// attack rules.
//
// Finding zero perfect boards within the genetic budget is a legitimate
// outcome, reported through Result.Perfect == false, never as an error.
//
// Errors:
//
//   - ErrBadBoardSize     if n < 1.
//   - evolve sentinels    for out-of-range genetic parameters.
//   - context error       if the run is cancelled.
package queens
