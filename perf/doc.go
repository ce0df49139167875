// Package perf measures solver wall-clock time and carries the performance
// reporting contract between the solver packages and the caller's
// persistence layer.
//
// Every solver entry point in this module reports how long the search took.
// The measurement itself is a plain monotonic stopwatch; what the caller
// does with it (display, database row, nothing) is expressed through the
// Sink interface, so the solvers never know about storage.
//
// Key pieces:
//   - Measure(fn):                run fn, return its wall-clock duration.
//   - Record{Algorithm, Elapsed, Round}: one reported measurement.
//   - Sink / SinkFunc / Discard:  where records go.
//
// Records render elapsed time with microsecond precision (Seconds /
// String), matching the display contract of the collaborating UI layer.
//
// Complexity: all helpers are O(1); Measure adds two clock reads around fn.
package perf
