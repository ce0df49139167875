// Package hanoi solves the Tower of Hanoi: move n disks from peg A to
// peg C, one disk at a time, never placing a larger disk on a smaller
// one. The minimal solution takes exactly 2^n - 1 moves and is unique,
// so both solvers emit the same sequence by different routes.
//
// Solvers:
//
//   - SolveRecursive — the textbook recursion: move n-1 disks aside,
//     move the largest, move the n-1 back. O(2^n) time, O(n) stack.
//
//   - SolveIterative — the parity rule: on even steps the smallest disk
//     advances one peg along a fixed cycle, on odd steps the single
//     other legal move is played. The cycle direction depends on the
//     parity of n, which is what lands the stack on C either way.
//     O(2^n) time, O(n) memory, no recursion.
//
// Replay is the package's verification predicate: it simulates an
// arbitrary move list under the stacking rules and reports whether it
// ends with the full tower on C. UI layers checking a user's move list
// parse it with ParseMove and hand it to Replay rather than re-implement
// the rules.
//
// Errors:
//
//   - ErrBadDiskCount  if n < 1.
//   - ErrTooManyDisks  if n exceeds MaxDisks (the move list would not
//     fit in memory).
//   - ErrBadPeg, ErrEmptySource, ErrLargerOnSmaller from Replay, naming
//     the violated rule.
//   - ErrBadMoveFormat from ParseMove.
package hanoi
