package perf_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdithyaSean/game-project/perf"
)

func TestMeasure_ReturnsPositiveDuration(t *testing.T) {
	d := perf.Measure(func() {
		time.Sleep(time.Millisecond)
	})
	require.GreaterOrEqual(t, d, time.Millisecond)
}

func TestRecord_SecondsAndString(t *testing.T) {
	r := perf.Record{
		Algorithm: "eight_queens_backtracking",
		Elapsed:   1500 * time.Microsecond,
		Round:     3,
	}
	assert.InDelta(t, 0.0015, r.Seconds(), 1e-12)
	assert.Equal(t, "eight_queens_backtracking: 0.001500s (round 3)", r.String())
}

func TestSinkFunc_Observe(t *testing.T) {
	var got []perf.Record
	sink := perf.SinkFunc(func(r perf.Record) { got = append(got, r) })

	sink.Observe(perf.Record{Algorithm: "tsp_nearest_neighbor", Round: 1})
	sink.Observe(perf.Record{Algorithm: "tsp_dynamic_programming", Round: 1})

	require.Len(t, got, 2)
	assert.Equal(t, "tsp_nearest_neighbor", got[0].Algorithm)
	assert.Equal(t, "tsp_dynamic_programming", got[1].Algorithm)
}

func TestDiscard_DoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		perf.Discard.Observe(perf.Record{Algorithm: "noop"})
	})
}
