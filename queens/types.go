// Package queens - board representation, options, and sentinel errors.
package queens

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"
)

// Algorithm names reported to the caller's performance sink.
const (
	AlgorithmBacktracking = "eight_queens_backtracking"
	AlgorithmGenetic      = "eight_queens_genetic"
)

// ErrBadBoardSize is returned when the requested board size is < 1.
// A malformed instance fails fast before any search begins.
var ErrBadBoardSize = errors.New("queens: board size must be at least 1")

// Board is one queen placement: Board[col] is the row of the queen in
// column col. A complete board always holds exactly len(Board) queens,
// one per column.
type Board []int

// String renders the canonical solution string: the 1-based row of each
// queen, column by column ("15863724" is the first n=8 solution). This is
// the deduplication key used by the genetic solver.
func (b Board) String() string {
	var sb strings.Builder
	var row int
	for _, row = range b {
		sb.WriteString(strconv.Itoa(row + 1))
	}

	return sb.String()
}

// Valid reports whether the configuration is attack-free: all rows
// distinct and no two queens on a shared diagonal. Columns are distinct
// by representation. UI layers verifying a user's placement must call
// this predicate.
//
// Complexity: O(n²) pairs.
func (b Board) Valid() bool {
	var i, j int
	for i = 0; i < len(b); i++ {
		if b[i] < 0 || b[i] >= len(b) {
			return false
		}
		for j = i + 1; j < len(b); j++ {
			if b[i] == b[j] {
				return false // shared row
			}
			if abs(b[i]-b[j]) == j-i {
				return false // shared diagonal
			}
		}
	}

	return true
}

// Options configures the two solvers.
type Options struct {
	// Ctx is checked at every backtracking node and every genetic
	// generation; defaults to context.Background() when nil.
	Ctx context.Context

	// Seed drives the genetic solver's randomness; seed==0 selects the
	// fixed default stream. The backtracking solver is seed-free.
	Seed int64

	// PopulationSize, Generations, CrossoverRate, MutationRate,
	// EliteCount, and TournamentSize parameterize the genetic run.
	PopulationSize int
	Generations    int
	CrossoverRate  float64
	MutationRate   float64
	EliteCount     int
	TournamentSize int

	// MaxSolutions stops the genetic run once that many distinct perfect
	// boards have been collected.
	MaxSolutions int
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

// WithEliteCount overrides the number of individuals copied unchanged
// into each next generation.
func WithEliteCount(n int) Option {
	return func(o *Options) { o.EliteCount = n }
}

// WithMaxSolutions overrides the perfect-board collection limit.
func WithMaxSolutions(n int) Option {
	return func(o *Options) { o.MaxSolutions = n }
}

// DefaultOptions returns the documented constants: population 100,
// 1000 generations, crossover 0.7, mutation 0.1, 10 elites, tournament 3,
// and a 10-solution collection limit.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		PopulationSize: 100,
		Generations:    1000,
		CrossoverRate:  0.7,
		MutationRate:   0.1,
		EliteCount:     10,
		TournamentSize: 3,
		MaxSolutions:   10,
	}
}

// Result is the outcome of one solver run.
type Result struct {
	// Solutions holds the distinct boards found, in discovery order.
	Solutions []Board

	// Perfect reports whether Solutions are attack-free. Backtracking
	// always sets it; the genetic solver clears it when the budget ran
	// out before any fitness-maximal individual appeared, in which case
	// Solutions holds the best boards of the final generation.
	Perfect bool

	// BestFitness is the highest fitness observed (genetic solver only;
	// C(n,2) when Perfect).
	BestFitness int

	// Elapsed is the wall-clock duration of the search.
	Elapsed time.Duration
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
