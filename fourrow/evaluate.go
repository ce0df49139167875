// Package fourrow - static position evaluation.
package fourrow

// Window pattern weights, from the player's perspective. Opponent
// four-in-a-row never reaches the evaluator in search (the terminal check
// fires first) but is weighted for completeness.
const (
	scoreWin          = 100
	scoreThreeOpen    = 5
	scoreTwoOpen      = 2
	scoreOppThreeOpen = -10
	scoreOppTwoOpen   = -2
)

// Evaluate scores the position for player by summing every 4-cell
// sliding window over rows, columns, and both diagonal directions:
//
//	four own marks            +100
//	three own + one empty       +5
//	two own + two empties       +2
//	three opponent + one empty −10
//	two opponent + two empties  −2
//	four opponent marks       −100
//
// Complexity: O(Size²) windows of constant width.
func Evaluate(b Board, player Mark) int {
	score := 0
	var r, c int

	for r = 0; r < Size; r++ {
		for c = 0; c+Target <= Size; c++ {
			score += scoreWindow(b, player, r, c, 0, 1)
		}
	}
	for r = 0; r+Target <= Size; r++ {
		for c = 0; c < Size; c++ {
			score += scoreWindow(b, player, r, c, 1, 0)
		}
	}
	for r = 0; r+Target <= Size; r++ {
		for c = 0; c+Target <= Size; c++ {
			score += scoreWindow(b, player, r, c, 1, 1)
		}
	}
	for r = Target - 1; r < Size; r++ {
		for c = 0; c+Target <= Size; c++ {
			score += scoreWindow(b, player, r, c, -1, 1)
		}
	}

	return score
}

// scoreWindow weighs the 4-cell window starting at (r, c) with step
// (dr, dc).
func scoreWindow(b Board, player Mark, r, c, dr, dc int) int {
	var own, opp, empty, k int
	for k = 0; k < Target; k++ {
		switch b[r+k*dr][c+k*dc] {
		case player:
			own++
		case Empty:
			empty++
		default:
			opp++
		}
	}

	switch {
	case own == 4:
		return scoreWin
	case opp == 4:
		return -scoreWin
	case own == 3 && empty == 1:
		return scoreThreeOpen
	case own == 2 && empty == 2:
		return scoreTwoOpen
	case opp == 3 && empty == 1:
		return scoreOppThreeOpen
	case opp == 2 && empty == 2:
		return scoreOppTwoOpen
	default:
		return 0
	}
}
