// Package tsp - instance validation, options, and sentinel errors.
package tsp

import (
	"context"
	"errors"
	"time"
)

// Algorithm names reported to the caller's performance sink.
const (
	AlgorithmNearest = "tsp_nearest_neighbor"
	AlgorithmExact   = "tsp_dynamic_programming"
	AlgorithmGenetic = "tsp_genetic_algorithm"
)

// MaxExactCities bounds the Held-Karp working set (home + selected).
// Beyond this the 2^m memo table stops being tractable on a desktop.
const MaxExactCities = 20

var (
	// ErrBadMatrix is returned when the distance matrix is not square,
	// not symmetric, has a non-zero diagonal, or holds a negative entry.
	ErrBadMatrix = errors.New("tsp: malformed distance matrix")

	// ErrBadHome is returned when the home index is outside the matrix.
	ErrBadHome = errors.New("tsp: home city out of range")

	// ErrEmptySelection is returned when no cities were selected.
	ErrEmptySelection = errors.New("tsp: no cities selected")

	// ErrBadSelection is returned when a selected index is out of range,
	// repeats, or names the home city.
	ErrBadSelection = errors.New("tsp: invalid city selection")

	// ErrTooManyCities is returned by Exact when home + selected exceeds
	// MaxExactCities.
	ErrTooManyCities = errors.New("tsp: too many cities for exact search")
)

// Options configures the solvers.
type Options struct {
	// Ctx is checked during the search; defaults to context.Background()
	// when nil.
	Ctx context.Context

	// Seed drives the genetic solver's randomness; seed==0 selects the
	// fixed default stream. Nearest and Exact are seed-free.
	Seed int64

	// PopulationSize, Generations, CrossoverRate, MutationRate,
	// EliteCount, and TournamentSize parameterize the genetic run.
	PopulationSize int
	Generations    int
	CrossoverRate  float64
	MutationRate   float64
	EliteCount     int
	TournamentSize int
}

// Option mutates Options.
type Option func(*Options)

// WithContext makes the search cancellable through ctx.
func WithContext(ctx context.Context) Option {
	return func(o *Options) { o.Ctx = ctx }
}

// WithSeed fixes the genetic solver's random stream.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithPopulation overrides the genetic population size.
func WithPopulation(size int) Option {
	return func(o *Options) { o.PopulationSize = size }
}

// WithGenerations overrides the genetic generation budget.
func WithGenerations(n int) Option {
	return func(o *Options) { o.Generations = n }
}

// WithMutationRate overrides the swap-mutation probability.
func WithMutationRate(rate float64) Option {
	return func(o *Options) { o.MutationRate = rate }
}

// DefaultOptions returns the documented constants for the genetic run:
// population 50, 100 generations, crossover 0.7, mutation 0.01, 1 elite,
// tournament 3.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		PopulationSize: 50,
		Generations:    100,
		CrossoverRate:  0.7,
		MutationRate:   0.01,
		EliteCount:     1,
		TournamentSize: 3,
	}
}

// Result is the outcome of one solver run.
type Result struct {
	// Route lists the selected cities in visiting order, as indices into
	// the caller's distance matrix. The home city is implicit at both
	// ends and never appears in Route.
	Route []int

	// Distance is the full loop length: home to Route[0], every
	// consecutive leg, and Route[last] back home.
	Distance float64

	// Elapsed is the wall-clock duration of the search.
	Elapsed time.Duration
}

// instance is the validated working form shared by all solvers:
// cities[0] is home, cities[1:] the selection in its original order.
type instance struct {
	dist   [][]float64
	cities []int
}

// m returns the working city count (home included).
func (in instance) m() int { return len(in.cities) }

// d prices the leg between two working indices.
func (in instance) d(i, j int) float64 {
	return in.dist[in.cities[i]][in.cities[j]]
}

// newInstance validates the caller's inputs and builds the working index
// space. The matrix is never copied or mutated.
func newInstance(dist [][]float64, home int, selected []int) (instance, error) {
	n := len(dist)
	if n == 0 {
		return instance{}, ErrBadMatrix
	}
	var i, j int
	for i = 0; i < n; i++ {
		if len(dist[i]) != n {
			return instance{}, ErrBadMatrix
		}
		if dist[i][i] != 0 {
			return instance{}, ErrBadMatrix
		}
		for j = 0; j < n; j++ {
			if dist[i][j] < 0 || dist[i][j] != dist[j][i] {
				return instance{}, ErrBadMatrix
			}
		}
	}
	if home < 0 || home >= n {
		return instance{}, ErrBadHome
	}
	if len(selected) == 0 {
		return instance{}, ErrEmptySelection
	}

	var (
		seen   = make(map[int]bool, len(selected))
		cities = make([]int, 0, len(selected)+1)
		c      int
	)
	cities = append(cities, home)
	for _, c = range selected {
		if c < 0 || c >= n || c == home || seen[c] {
			return instance{}, ErrBadSelection
		}
		seen[c] = true
		cities = append(cities, c)
	}

	return instance{dist: dist, cities: cities}, nil
}

// route translates a working-index visiting order (indices 1..m-1) back
// into the caller's matrix indices.
func (in instance) route(order []int) []int {
	out := make([]int, len(order))
	var i, w int
	for i, w = range order {
		out[i] = in.cities[w]
	}

	return out
}

// loopLength prices a working-index visiting order, home legs included.
func (in instance) loopLength(order []int) float64 {
	total := in.d(0, order[0])
	var i int
	for i = 1; i < len(order); i++ {
		total += in.d(order[i-1], order[i])
	}
	total += in.d(order[len(order)-1], 0)

	return total
}

// applyOptions merges caller overrides onto the defaults.
func applyOptions(opts []Option) Options {
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}

	return o
}
