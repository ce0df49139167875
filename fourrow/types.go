// Package fourrow - board representation, options, and sentinel errors.
package fourrow

import (
	"context"
	"errors"
	"time"
)

// Size is the board edge length; Target aligned marks win.
const (
	Size   = 5
	Target = 4
)

// Algorithm names reported to the caller's performance sink.
const (
	AlgorithmMinimax = "tic_tac_toe_minimax"
	AlgorithmMCTS    = "tic_tac_toe_mcts"
)

var (
	// ErrBadPlayer is returned when the deciding mark is Empty.
	ErrBadPlayer = errors.New("fourrow: player must be X or O")

	// ErrGameOver is returned when a move is requested from a position
	// that is already won or has no empty cell.
	ErrGameOver = errors.New("fourrow: position is terminal")

	// ErrBadDepth is returned when the minimax depth limit is < 1.
	ErrBadDepth = errors.New("fourrow: depth must be at least 1")

	// ErrBadIterations is returned when the MCTS budget is < 1.
	ErrBadIterations = errors.New("fourrow: iterations must be at least 1")

	// ErrBadExploration is returned when the UCT constant is not positive.
	ErrBadExploration = errors.New("fourrow: exploration constant must be positive")
)

// Mark is a cell state.
type Mark int8

const (
	Empty   Mark = 0
	PlayerX Mark = 1  // conventionally the human side
	PlayerO Mark = -1 // conventionally the computer side
)

// Opponent returns the other player's mark.
func (m Mark) Opponent() Mark { return -m }

// String renders the mark for diagnostics.
func (m Mark) String() string {
	switch m {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return "."
	}
}

// Move is one mark placement.
type Move struct {
	Row int
	Col int
}

// Board is the full position. Its value semantics ([Size][Size] array)
// make private copies a plain assignment, which the tree searches rely on.
type Board [Size][Size]Mark

// Legal returns the empty cells in row-major order.
func (b Board) Legal() []Move {
	moves := make([]Move, 0, Size*Size)
	var r, c int
	for r = 0; r < Size; r++ {
		for c = 0; c < Size; c++ {
			if b[r][c] == Empty {
				moves = append(moves, Move{r, c})
			}
		}
	}

	return moves
}

// Full reports whether no empty cell is left.
func (b Board) Full() bool {
	var r, c int
	for r = 0; r < Size; r++ {
		for c = 0; c < Size; c++ {
			if b[r][c] == Empty {
				return false
			}
		}
	}

	return true
}

// Winner returns the mark holding four aligned cells, or Empty. At most
// one player can have an alignment in a legally reached position.
func (b Board) Winner() Mark {
	var r, c, k int

	// Horizontal and vertical windows.
	for r = 0; r < Size; r++ {
		for c = 0; c+Target <= Size; c++ {
			if m := b[r][c]; m != Empty {
				for k = 1; k < Target && b[r][c+k] == m; k++ {
				}
				if k == Target {
					return m
				}
			}
		}
	}
	for c = 0; c < Size; c++ {
		for r = 0; r+Target <= Size; r++ {
			if m := b[r][c]; m != Empty {
				for k = 1; k < Target && b[r+k][c] == m; k++ {
				}
				if k == Target {
					return m
				}
			}
		}
	}

	// Diagonals, both directions.
	for r = 0; r+Target <= Size; r++ {
		for c = 0; c+Target <= Size; c++ {
			if m := b[r][c]; m != Empty {
				for k = 1; k < Target && b[r+k][c+k] == m; k++ {
				}
				if k == Target {
					return m
				}
			}
		}
	}
	for r = Target - 1; r < Size; r++ {
		for c = 0; c+Target <= Size; c++ {
			if m := b[r][c]; m != Empty {
				for k = 1; k < Target && b[r-k][c+k] == m; k++ {
				}
				if k == Target {
					return m
				}
			}
		}
	}

	return Empty
}

// Terminal reports whether the game is over (a win or a full board).
func (b Board) Terminal() bool {
	return b.Winner() != Empty || b.Full()
}

// Options configures the two engines.
type Options struct {
	// Ctx is checked at every minimax node and every MCTS iteration;
	// defaults to context.Background() when nil.
	Ctx context.Context

	// Seed drives root-move shuffling (minimax) and expansion/rollout
	// randomness (MCTS); seed==0 selects the fixed default stream.
	Seed int64

	// Depth is the minimax ply limit.
	Depth int

	// Iterations is the MCTS simulation budget per decision.
	Iterations int

	// Exploration is the UCT constant c.
	Exploration float64
}

// Option mutates Options.
type Option func(*Options)

// WithContext makes the search cancellable through ctx.
func WithContext(ctx context.Context) Option {
	return func(o *Options) { o.Ctx = ctx }
}

// WithSeed fixes the random stream.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithDepth overrides the minimax ply limit.
func WithDepth(depth int) Option {
	return func(o *Options) { o.Depth = depth }
}

// WithIterations overrides the MCTS simulation budget.
func WithIterations(n int) Option {
	return func(o *Options) { o.Iterations = n }
}

// WithExploration overrides the UCT constant.
func WithExploration(c float64) Option {
	return func(o *Options) { o.Exploration = c }
}

// DefaultOptions returns depth 3, 1000 iterations, exploration 1.4.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		Depth:       3,
		Iterations:  1000,
		Exploration: 1.4,
	}
}

// Decision is the outcome of one engine call.
type Decision struct {
	// Move is the chosen placement; always an empty cell of the input.
	Move Move

	// Score is engine-specific: the minimax root score of Move, or the
	// visit count of the chosen MCTS child.
	Score float64

	// Elapsed is the wall-clock duration of the decision.
	Elapsed time.Duration
}
