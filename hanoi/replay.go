package hanoi

import "fmt"

// Replay simulates moves from the initial n-disk tower on A under the
// stacking rules. It returns true when every disk ends on C, false for a
// legal but unfinished sequence, and an error naming the first illegal
// move. The error wraps ErrBadPeg, ErrEmptySource, or ErrLargerOnSmaller
// and carries the offending move's position.
//
// Complexity: O(len(moves)) time, O(n) memory.
func Replay(n int, moves []Move) (bool, error) {
	if n < 1 {
		return false, ErrBadDiskCount
	}

	var state [3][]int
	state[0] = make([]int, n)
	var i int
	for i = 0; i < n; i++ {
		state[0][i] = n - i
	}

	var (
		m        Move
		src, dst int
	)
	for i, m = range moves {
		src, dst = m.From.index(), m.To.index()
		if src < 0 || dst < 0 {
			return false, fmt.Errorf("move %d (%s): %w", i, m, ErrBadPeg)
		}
		if len(state[src]) == 0 {
			return false, fmt.Errorf("move %d (%s): %w", i, m, ErrEmptySource)
		}
		if !legal(&state, src, dst) {
			return false, fmt.Errorf("move %d (%s): %w", i, m, ErrLargerOnSmaller)
		}

		disk := state[src][len(state[src])-1]
		state[src] = state[src][:len(state[src])-1]
		state[dst] = append(state[dst], disk)
	}

	return len(state[2]) == n, nil
}
