package perf

import (
	"fmt"
	"time"
)

// Measure runs fn and returns its wall-clock duration.
// The duration comes from the runtime's monotonic clock, so it is safe
// against wall-clock adjustments during long searches.
func Measure(fn func()) time.Duration {
	start := time.Now()
	fn()

	return time.Since(start)
}

// Record is one reported solver measurement.
//
// Algorithm is the canonical solver name (e.g. "eight_queens_backtracking",
// "tsp_dynamic_programming"); Round is a caller-maintained counter. Both are
// purely informational: no solver behavior depends on them.
type Record struct {
	Algorithm string        // canonical algorithm name
	Elapsed   time.Duration // wall-clock duration of the solve call
	Round     int           // caller's round counter
}

// Seconds returns the elapsed time in seconds as a float64.
// Useful for callers that persist raw seconds.
func (r Record) Seconds() float64 {
	return r.Elapsed.Seconds()
}

// String renders the record with microsecond precision, the same
// granularity the collaborating UI displays.
func (r Record) String() string {
	return fmt.Sprintf("%s: %.6fs (round %d)", r.Algorithm, r.Elapsed.Seconds(), r.Round)
}

// Sink receives solver measurements. The caller's persistence layer
// implements this; solvers only ever see the interface.
type Sink interface {
	Observe(Record)
}

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc func(Record)

// Observe implements Sink.
func (f SinkFunc) Observe(r Record) { f(r) }

// Discard is a Sink that drops every record.
var Discard Sink = SinkFunc(func(Record) {})
