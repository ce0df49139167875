// Package fourrow plays the 5×5 four-in-a-row board game: two players
// alternate placing marks, and the first to align four in a row, column,
// or diagonal wins.
//
// Two move-decision engines are provided, both synchronous and both
// working on private copies of the position:
//
//   - MinimaxMove — depth-limited minimax with alpha-beta pruning.
//     The default depth of 3 plies keeps the 25-cell branching factor
//     tractable. Terminal win/loss scores are depth-adjusted (a win at
//     depth d scores 10−d, a loss d−10) so the search prefers faster
//     wins and slower losses. Non-terminal leaves at the cutoff are
//     scored by Evaluate, a static sum over every 4-cell sliding window.
//     Root candidates are shuffled from the seeded RNG, which affects
//     only tie-breaking among equal-score moves.
//
//   - MCTSMove — Monte Carlo tree search with UCT selection
//     (wins/visits + c·sqrt(ln(parent.visits)/visits), c = 1.4) over a
//     fixed budget of 1000 simulations. Each iteration selects by UCT,
//     expands one uniformly random untried move, rolls out uniformly
//     random play to a terminal state, and backpropagates, crediting the
//     win to every node whose mover matches the simulated winner. The
//     final choice is the most-visited root child (robust-child rule),
//     not the highest win ratio.
//
// The MCTS tree is an owned structure: every node is reachable only from
// its parent and children live in a growable slice, so no shared or
// cyclic references exist.
//
// Board, Winner, Full, and Legal are the package's verification
// predicates; UI layers validating user moves must use them rather than
// re-implement the win scan.
//
// Determinism: both engines are reproducible under a fixed Options.Seed.
//
// Errors:
//
//   - ErrBadPlayer      if the deciding mark is Empty.
//   - ErrGameOver       if the position is already won or full.
//   - ErrBadDepth       if the minimax depth is < 1.
//   - ErrBadIterations  if the MCTS budget is < 1.
//   - ErrBadExploration if the UCT constant is ≤ 0.
//   - context error     if the search is cancelled.
package fourrow
