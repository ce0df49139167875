// Package fourrow - depth-limited minimax with alpha-beta pruning.
package fourrow

import (
	"context"
	"math"

	"github.com/AdithyaSean/game-project/perf"
)

// MinimaxMove picks player's best move from the position by depth-limited
// minimax with alpha-beta pruning.
//
// Root candidates are shuffled from the seeded RNG before evaluation;
// the shuffle affects only which of several equal-score moves wins, never
// the score itself. A branch is pruned as soon as beta <= alpha.
//
// The returned Decision.Score is the root minimax value of the chosen
// move: 10−d for a forced win d plies ahead, d−10 for an unavoidable
// loss, otherwise the static evaluation reached at the cutoff.
//
// Complexity: O(b^Depth) positions for branching factor b ≤ 25.
func MinimaxMove(b Board, player Mark, opts ...Option) (Decision, error) {
	o, err := applyOptions(opts)
	if err != nil {
		return Decision{}, err
	}
	if o.Depth < 1 {
		return Decision{}, ErrBadDepth
	}
	if player != PlayerX && player != PlayerO {
		return Decision{}, ErrBadPlayer
	}
	if b.Terminal() {
		return Decision{}, ErrGameOver
	}

	var (
		s = &minimaxSearch{ctx: o.Ctx, board: b, player: player, maxDepth: o.Depth}

		best      Move
		bestScore = math.Inf(-1)
		searchErr error
	)

	elapsed := perf.Measure(func() {
		moves := s.board.Legal()
		shuffleMoves(moves, rngFromSeed(o.Seed))

		var m Move
		for _, m = range moves {
			s.board[m.Row][m.Col] = player
			score, err2 := s.search(0, false, math.Inf(-1), math.Inf(1))
			s.board[m.Row][m.Col] = Empty
			if err2 != nil {
				searchErr = err2

				return
			}
			if score > bestScore {
				bestScore = score
				best = m
			}
		}
	})
	if searchErr != nil {
		return Decision{}, searchErr
	}

	return Decision{Move: best, Score: bestScore, Elapsed: elapsed}, nil
}

// minimaxSearch owns the single working board; every applied move is
// undone before the frame returns.
type minimaxSearch struct {
	ctx      context.Context
	board    Board
	player   Mark
	maxDepth int
}

// search evaluates the position for s.player. maximizing marks whose turn
// it is: true when s.player is to move. depth counts plies below the root
// move.
func (s *minimaxSearch) search(depth int, maximizing bool, alpha, beta float64) (float64, error) {
	// Cancellation boundary: one check per search-tree node.
	select {
	case <-s.ctx.Done():
		return 0, s.ctx.Err()
	default:
	}

	// Terminal: the previous mover completed four in a row. Faster wins
	// score higher, slower losses score higher.
	if w := s.board.Winner(); w != Empty {
		if w == s.player {
			return float64(10 - depth), nil
		}

		return float64(depth - 10), nil
	}
	if s.board.Full() || depth == s.maxDepth {
		return float64(Evaluate(s.board, s.player)), nil
	}

	mover := s.player
	if !maximizing {
		mover = s.player.Opponent()
	}

	var (
		best = math.Inf(1)
		r, c int
	)
	if maximizing {
		best = math.Inf(-1)
	}

	for r = 0; r < Size; r++ {
		for c = 0; c < Size; c++ {
			if s.board[r][c] != Empty {
				continue
			}
			s.board[r][c] = mover
			score, err := s.search(depth+1, !maximizing, alpha, beta)
			s.board[r][c] = Empty
			if err != nil {
				return 0, err
			}

			if maximizing {
				best = math.Max(best, score)
				alpha = math.Max(alpha, best)
			} else {
				best = math.Min(best, score)
				beta = math.Min(beta, best)
			}
			if beta <= alpha {
				return best, nil // cutoff
			}
		}
	}

	return best, nil
}

// applyOptions folds opts over the defaults and validates the shared
// parameters.
func applyOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Exploration <= 0 {
		return Options{}, ErrBadExploration
	}
	if o.Iterations < 1 {
		return Options{}, ErrBadIterations
	}

	return o, nil
}
