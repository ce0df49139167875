// Package fourrow - Monte Carlo tree search with UCT.
package fourrow

import (
	"math"
	"math/rand"

	"github.com/AdithyaSean/game-project/perf"
)

// mctsNode is one state in the owned search tree. mover is the player
// whose move produced this state; wins counts simulations won by mover.
type mctsNode struct {
	board    Board
	parent   *mctsNode
	move     Move
	mover    Mark
	children []*mctsNode
	untried  []Move
	wins     float64
	visits   float64
}

func newMCTSNode(b Board, parent *mctsNode, move Move, mover Mark) *mctsNode {
	return &mctsNode{
		board:   b,
		parent:  parent,
		move:    move,
		mover:   mover,
		untried: b.Legal(),
	}
}

func (n *mctsNode) fullyExpanded() bool { return len(n.untried) == 0 }

func (n *mctsNode) terminal() bool { return n.board.Terminal() }

// bestChild applies the UCT rule: wins/visits + c·sqrt(ln(parent)/visits).
func (n *mctsNode) bestChild(c float64) *mctsNode {
	var (
		best      *mctsNode
		bestScore = math.Inf(-1)
		child     *mctsNode
	)
	for _, child = range n.children {
		score := child.wins/child.visits + c*math.Sqrt(math.Log(n.visits)/child.visits)
		if score > bestScore {
			bestScore = score
			best = child
		}
	}

	return best
}

// expand pops one uniformly random untried move and instantiates the
// child state it leads to.
func (n *mctsNode) expand(rng *rand.Rand) *mctsNode {
	i := rng.Intn(len(n.untried))
	move := n.untried[i]
	n.untried[i] = n.untried[len(n.untried)-1]
	n.untried = n.untried[:len(n.untried)-1]

	board := n.board // value copy
	mover := n.mover.Opponent()
	board[move.Row][move.Col] = mover

	child := newMCTSNode(board, n, move, mover)
	n.children = append(n.children, child)

	return child
}

// MCTSMove picks player's move by Monte Carlo tree search under a fixed
// simulation budget.
//
// Each iteration descends from the root by the UCT rule until it reaches
// a node with untried moves or a terminal state, expands one uniformly
// random untried move, plays uniformly random legal moves to the end of
// the game, and backpropagates: every ancestor's visit count grows by
// one, and the win count grows on nodes whose mover is the simulated
// winner. The final decision is the root child with the most visits
// (robust child), with Decision.Score carrying that visit count.
//
// Complexity: O(Iterations · Size²) per decision.
func MCTSMove(b Board, player Mark, opts ...Option) (Decision, error) {
	o, err := applyOptions(opts)
	if err != nil {
		return Decision{}, err
	}
	if player != PlayerX && player != PlayerO {
		return Decision{}, ErrBadPlayer
	}
	if b.Terminal() {
		return Decision{}, ErrGameOver
	}

	var (
		rng = rngFromSeed(o.Seed)
		// The opponent moved into the current state, so root children
		// are exactly player's candidate moves.
		root      = newMCTSNode(b, nil, Move{}, player.Opponent())
		searchErr error
	)

	elapsed := perf.Measure(func() {
		var i int
		for i = 0; i < o.Iterations; i++ {
			// Cancellation boundary: one check per iteration.
			select {
			case <-o.Ctx.Done():
				searchErr = o.Ctx.Err()

				return
			default:
			}

			node := selectNode(root, o.Exploration, rng)
			winner := simulate(node.board, node.mover, rng)
			backpropagate(node, winner)
		}
	})
	if searchErr != nil {
		return Decision{}, searchErr
	}

	var best *mctsNode
	var child *mctsNode
	for _, child = range root.children {
		if best == nil || child.visits > best.visits {
			best = child
		}
	}

	return Decision{Move: best.move, Score: best.visits, Elapsed: elapsed}, nil
}

// selectNode descends by UCT until a node with untried moves (which it
// expands) or a terminal node is reached.
func selectNode(node *mctsNode, c float64, rng *rand.Rand) *mctsNode {
	for {
		if !node.fullyExpanded() {
			return node.expand(rng)
		}
		if node.terminal() {
			return node
		}
		node = node.bestChild(c)
	}
}

// simulate plays uniformly random legal moves from b until the game
// ends. mover is the player who produced b; the return value is the
// winning mark, or Empty for a draw.
func simulate(b Board, mover Mark, rng *rand.Rand) Mark {
	current := mover.Opponent()
	for {
		if w := b.Winner(); w != Empty {
			return w
		}
		moves := b.Legal()
		if len(moves) == 0 {
			return Empty // draw
		}

		m := moves[rng.Intn(len(moves))]
		b[m.Row][m.Col] = current
		current = current.Opponent()
	}
}

// backpropagate walks to the root, growing visit counts everywhere and
// win counts on nodes whose mover won the simulation.
func backpropagate(node *mctsNode, winner Mark) {
	for node != nil {
		node.visits++
		if node.mover == winner {
			node.wins++
		}
		node = node.parent
	}
}
