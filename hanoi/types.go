// Package hanoi - pegs, moves, options, and sentinel errors.
package hanoi

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Algorithm names reported to the caller's performance sink.
const (
	AlgorithmRecursive = "tower_of_hanoi_recursive"
	AlgorithmIterative = "tower_of_hanoi_iterative"
)

// MaxDisks bounds the solvers; beyond it the 2^n - 1 move list stops
// being a sensible in-memory value.
const MaxDisks = 20

var (
	// ErrBadDiskCount is returned when the requested disk count is < 1.
	ErrBadDiskCount = errors.New("hanoi: disk count must be at least 1")

	// ErrTooManyDisks is returned when the disk count exceeds MaxDisks.
	ErrTooManyDisks = errors.New("hanoi: too many disks")

	// ErrBadPeg is returned by Replay when a move names an unknown peg.
	ErrBadPeg = errors.New("hanoi: unknown peg")

	// ErrEmptySource is returned by Replay when a move takes from an
	// empty peg.
	ErrEmptySource = errors.New("hanoi: move from empty peg")

	// ErrLargerOnSmaller is returned by Replay when a move would place a
	// larger disk on a smaller one.
	ErrLargerOnSmaller = errors.New("hanoi: larger disk on smaller")

	// ErrBadMoveFormat is returned by ParseMove for anything that is not
	// "X->Y" with two distinct pegs.
	ErrBadMoveFormat = errors.New("hanoi: bad move format")
)

// Peg identifies one of the three pegs.
type Peg byte

// The three pegs. A holds the initial tower, C is the goal.
const (
	PegA Peg = 'A'
	PegB Peg = 'B'
	PegC Peg = 'C'
)

// index maps a peg to its simulation slot; -1 for unknown pegs.
func (p Peg) index() int {
	switch p {
	case PegA:
		return 0
	case PegB:
		return 1
	case PegC:
		return 2
	default:
		return -1
	}
}

// Move relocates the top disk of From onto To.
type Move struct {
	From Peg
	To   Peg
}

// String renders the UI wire form, "A->C".
func (m Move) String() string {
	return string(m.From) + "->" + string(m.To)
}

// ParseMove reads the "X->Y" form emitted by String and typed by
// players. Whitespace around the pegs is tolerated; the pegs must be
// distinct and drawn from A, B, C.
func ParseMove(s string) (Move, error) {
	from, to, found := strings.Cut(s, "->")
	if !found {
		return Move{}, fmt.Errorf("%w: %q", ErrBadMoveFormat, s)
	}
	from = strings.TrimSpace(from)
	to = strings.TrimSpace(to)
	if len(from) != 1 || len(to) != 1 {
		return Move{}, fmt.Errorf("%w: %q", ErrBadMoveFormat, s)
	}

	m := Move{From: Peg(from[0]), To: Peg(to[0])}
	if m.From.index() < 0 || m.To.index() < 0 || m.From == m.To {
		return Move{}, fmt.Errorf("%w: %q", ErrBadMoveFormat, s)
	}

	return m, nil
}

// Options configures the solvers.
type Options struct {
	// Ctx is checked as the move list grows; defaults to
	// context.Background() when nil.
	Ctx context.Context
}

// Option mutates Options.
type Option func(*Options)

// WithContext makes the solve cancellable through ctx.
func WithContext(ctx context.Context) Option {
	return func(o *Options) { o.Ctx = ctx }
}

// Result is the outcome of one solver run.
type Result struct {
	// Moves is the full solution, always 2^n - 1 moves from A to C.
	Moves []Move

	// Elapsed is the wall-clock duration of the solve.
	Elapsed time.Duration
}

func applyOptions(opts []Option) Options {
	o := Options{Ctx: context.Background()}
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}

	return o
}

// checkDisks validates the disk count shared by both solvers.
func checkDisks(n int) error {
	if n < 1 {
		return ErrBadDiskCount
	}
	if n > MaxDisks {
		return ErrTooManyDisks
	}

	return nil
}
