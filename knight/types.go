// Package knight - cells, tours, options, and sentinel errors.
package knight

import (
	"context"
	"errors"
	"time"
)

// Algorithm names reported to the caller's performance sink.
const (
	AlgorithmBacktracking = "knights_tour_backtracking"
	AlgorithmWarnsdorff   = "knights_tour_warnsdorff"
	AlgorithmNeural       = "knights_tour_neural"
)

var (
	// ErrBadBoardSize is returned when the requested board size is < 1.
	ErrBadBoardSize = errors.New("knight: board size must be at least 1")

	// ErrStartOffBoard is returned when the starting cell lies outside
	// the board.
	ErrStartOffBoard = errors.New("knight: starting cell is off the board")

	// ErrTourStart is returned by VerifyTour when the sequence does not
	// begin at the required starting cell.
	ErrTourStart = errors.New("knight: tour does not begin at the starting cell")

	// ErrTourLength is returned by VerifyTour when the sequence does not
	// cover exactly n² cells.
	ErrTourLength = errors.New("knight: tour must visit every cell exactly once")

	// ErrTourOffBoard is returned by VerifyTour when a cell lies outside
	// the board.
	ErrTourOffBoard = errors.New("knight: tour leaves the board")

	// ErrTourRevisit is returned by VerifyTour when a cell is visited twice.
	ErrTourRevisit = errors.New("knight: tour revisits a cell")

	// ErrTourMove is returned by VerifyTour when two consecutive cells are
	// not a legal knight move apart.
	ErrTourMove = errors.New("knight: tour contains an illegal knight move")
)

// Cell is one board coordinate, zero-based.
type Cell struct {
	Row int
	Col int
}

// offsets is the fixed cyclic ring of knight moves, tried in this order
// at every node by all three solvers. Order matters: it fixes both the
// backtracking branch order and the greedy tie-breaking.
var offsets = [8]Cell{
	{2, 1}, {1, 2}, {-1, 2}, {-2, 1},
	{-2, -1}, {-1, -2}, {1, -2}, {2, -1},
}

// Tour is a visiting sequence of cells.
type Tour []Cell

// Closed reports whether the tour ends a knight's move away from its
// first cell, i.e. whether it could be continued into a cycle.
func (t Tour) Closed() bool {
	if len(t) < 2 {
		return false
	}

	return legalMove(t[len(t)-1], t[0])
}

// legalMove reports whether from → to is a (1,2) or (2,1) displacement.
func legalMove(from, to Cell) bool {
	dr := abs(to.Row - from.Row)
	dc := abs(to.Col - from.Col)

	return (dr == 1 && dc == 2) || (dr == 2 && dc == 1)
}

// Options configures the solvers.
type Options struct {
	// Ctx is checked at every backtracking node; defaults to
	// context.Background() when nil.
	Ctx context.Context

	// CenterWeight and DegreeWeight blend the center-heuristic score:
	// CenterWeight·(−squared center distance) − DegreeWeight·degree.
	// Defaults are the documented 0.3 and 0.7.
	CenterWeight float64
	DegreeWeight float64
}

// Option mutates Options.
type Option func(*Options)

// WithContext makes the search cancellable through ctx.
func WithContext(ctx context.Context) Option {
	return func(o *Options) { o.Ctx = ctx }
}

// WithHeuristicWeights overrides the center-heuristic blend.
func WithHeuristicWeights(center, degree float64) Option {
	return func(o *Options) {
		o.CenterWeight = center
		o.DegreeWeight = degree
	}
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Ctx:          context.Background(),
		CenterWeight: 0.3,
		DegreeWeight: 0.7,
	}
}

// Result is the outcome of one solver run. Tour == nil means the solver
// exhausted its search without finding a tour — a legitimate outcome the
// caller must branch on, not an error.
type Result struct {
	Tour    Tour
	Elapsed time.Duration
}

// board tracks visited cells during a search. It is always a solver-local
// working copy; the caller's instance data is never mutated.
type board struct {
	n       int
	visited []bool
}

func newBoard(n int) *board {
	return &board{n: n, visited: make([]bool, n*n)}
}

func (b *board) onBoard(c Cell) bool {
	return c.Row >= 0 && c.Row < b.n && c.Col >= 0 && c.Col < b.n
}

func (b *board) seen(c Cell) bool {
	return b.visited[c.Row*b.n+c.Col]
}

func (b *board) visit(c Cell)   { b.visited[c.Row*b.n+c.Col] = true }
func (b *board) unvisit(c Cell) { b.visited[c.Row*b.n+c.Col] = false }

// open reports whether c is on the board and unvisited.
func (b *board) open(c Cell) bool {
	return b.onBoard(c) && !b.seen(c)
}

// degree is c's onward degree: the number of open knight moves out of c.
func (b *board) degree(c Cell) int {
	count := 0
	var off Cell
	for _, off = range offsets {
		if b.open(Cell{c.Row + off.Row, c.Col + off.Col}) {
			count++
		}
	}

	return count
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
