// Package gameproject is the algorithmic core of a five-puzzle game
// collection: classic combinatorial search and optimization, free of any
// UI or storage concerns.
//
// What lives here:
//
//   - queens/  — N-Queens: exhaustive backtracking (all solutions) and a
//     genetic solver over row permutations
//   - knight/  — Knight's Tour: backtracking, Warnsdorff's rule, and a
//     center-weighted greedy heuristic
//   - fourrow/ — 5×5 four-in-a-row: minimax with alpha-beta pruning and
//     Monte Carlo tree search
//   - tsp/     — round-trip planning: nearest-neighbor, exact Held–Karp,
//     and a genetic route optimizer
//   - hanoi/   — Tower of Hanoi: recursive and iterative minimal
//     solutions plus a move-list verifier
//   - evolve/  — the shared permutation genetic-algorithm engine behind
//     queens and tsp
//   - perf/    — wall-clock measurement records for benchmarking solver
//     rounds
//
// Shared conventions:
//
//   - Solvers accept functional options (WithContext, WithSeed, …) and
//     return a Result struct; misuse fails fast with package sentinels.
//   - Randomized solvers take an explicit seed; seed 0 selects a fixed
//     default stream, so every run is reproducible.
//   - Long searches honor context cancellation.
//   - Each puzzle package exports the verification predicate its UI
//     needs (Board.Valid, VerifyTour, Board.Winner, RouteLength, Replay)
//     so game rules are never re-implemented upstream.
//
// Dive into examples/ for runnable end-to-end scenarios.
package gameproject
