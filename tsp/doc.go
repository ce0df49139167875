// Package tsp plans round trips for the travelling-salesman puzzle: given
// a symmetric distance matrix over all cities, a home city, and a player's
// selection of destinations, find an order that visits every selected city
// once and returns home.
//
// All solvers share one index convention. The caller addresses cities by
// their row/column in the full matrix; internally index 0 is the home city
// and indices 1..m-1 are the selected cities in selection order. Results
// are translated back, so Result.Route lists original matrix indices,
// home excluded.
//
// Solvers:
//
//   - Nearest — greedy nearest-neighbor construction: from the current
//     city step to the closest unvisited selected city, ties broken by
//     selection order, then close the loop home. Always succeeds on a
//     complete matrix; the route is generally sub-optimal and must not be
//     treated as ground truth. O(m²).
//
//   - Exact — Held–Karp dynamic programming over bitmask subsets. The
//     route is provably optimal for the selected set. O(m²·2^m) time and
//     O(m·2^m) memory; requests beyond MaxExactCities fail fast with
//     ErrTooManyCities.
//
//   - Genetic — permutation evolution via the evolve engine with
//     fitness 1/length; returns the best individual of the final
//     generation. Stochastic, seedable, never guaranteed optimal.
//
// RouteLength is the package's verification helper: it prices an
// arbitrary visiting order, home legs included, so UI layers can score a
// user-proposed route against a solver's.
//
// Errors:
//
//   - ErrBadMatrix      if the matrix is not square, symmetric,
//     zero-diagonal and non-negative.
//   - ErrBadHome        if the home index is out of range.
//   - ErrEmptySelection if no cities were selected.
//   - ErrBadSelection   if a selected index repeats, is out of range, or
//     names the home city.
//   - ErrTooManyCities  if Exact is asked for more than MaxExactCities.
package tsp
