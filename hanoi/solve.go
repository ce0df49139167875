package hanoi

import "time"

// SolveRecursive produces the minimal solution by recursion: park n-1
// disks on the auxiliary peg, move the largest disk to the goal, bring
// the n-1 disks back on top of it.
//
// Complexity: O(2^n) moves, O(n) recursion depth.
func SolveRecursive(n int, opts ...Option) (Result, error) {
	o := applyOptions(opts)
	if err := checkDisks(n); err != nil {
		return Result{}, err
	}

	start := time.Now()

	s := &recurser{moves: make([]Move, 0, 1<<n-1)}
	s.hanoi(n, PegA, PegB, PegC)

	if err := o.Ctx.Err(); err != nil {
		return Result{}, err
	}

	return Result{Moves: s.moves, Elapsed: time.Since(start)}, nil
}

type recurser struct {
	moves []Move
}

func (s *recurser) hanoi(n int, source, auxiliary, destination Peg) {
	if n == 0 {
		return
	}
	s.hanoi(n-1, source, destination, auxiliary)
	s.moves = append(s.moves, Move{From: source, To: destination})
	s.hanoi(n-1, auxiliary, source, destination)
}

// SolveIterative produces the same minimal solution without recursion,
// using the parity rule: step i moves the smallest disk one slot along a
// fixed cycle when i is even, and plays the only other legal move when
// i is odd. The slots are labeled A,B,C for an even disk count and
// A,C,B for an odd one; that relabeling is what makes the smallest
// disk's cycle point toward C and the tower finish there.
//
// Complexity: O(2^n) moves, O(n) memory.
func SolveIterative(n int, opts ...Option) (Result, error) {
	o := applyOptions(opts)
	if err := checkDisks(n); err != nil {
		return Result{}, err
	}

	start := time.Now()

	labels := [3]Peg{PegA, PegB, PegC}
	if n%2 != 0 {
		labels = [3]Peg{PegA, PegC, PegB}
	}

	// Slot 0 starts with the full tower, largest disk first.
	var state [3][]int
	state[0] = make([]int, n)
	var i int
	for i = 0; i < n; i++ {
		state[0][i] = n - i
	}

	var (
		total    = 1<<n - 1
		moves    = make([]Move, 0, total)
		src, dst int
		step     int
	)
	for step = 0; step < total; step++ {
		if err := o.Ctx.Err(); err != nil {
			return Result{}, err
		}

		if step%2 == 0 {
			// The smallest disk advances one slot along the cycle.
			src = topOne(&state)
			dst = (src + 1) % 3
		} else {
			// Exactly one legal move not touching the smallest disk
			// exists; scan slots in order until it is found.
			src, dst = otherMove(&state)
		}

		disk := state[src][len(state[src])-1]
		state[src] = state[src][:len(state[src])-1]
		state[dst] = append(state[dst], disk)
		moves = append(moves, Move{From: labels[src], To: labels[dst]})
	}

	return Result{Moves: moves, Elapsed: time.Since(start)}, nil
}

// topOne returns the slot whose top disk is the smallest disk.
func topOne(state *[3][]int) int {
	var i int
	for i = 0; i < 3; i++ {
		if s := state[i]; len(s) > 0 && s[len(s)-1] == 1 {
			return i
		}
	}

	return -1 // unreachable: disk 1 is always on some slot
}

// otherMove finds the odd-step move: the smallest movable disk other
// than disk 1, sent to the one slot that is neither its own nor disk
// 1's, falling back to a plain legal-destination scan when only one
// slot is occupied.
func otherMove(state *[3][]int) (src, dst int) {
	var (
		bestDisk = 0
		count    = 0
		i, top   int
	)
	src = -1
	for i = 0; i < 3; i++ {
		if len(state[i]) == 0 {
			continue
		}
		count++
		top = state[i][len(state[i])-1]
		if top != 1 && (src < 0 || top < bestDisk) {
			src, bestDisk = i, top
		}
	}

	if count == 1 {
		// Only the smallest disk's stack is occupied; move its slot's
		// top to the first legal destination.
		src = topOne(state)
		for dst = 0; dst < 3; dst++ {
			if dst != src && legal(state, src, dst) {
				return src, dst
			}
		}
	}

	one := topOne(state)
	for dst = 0; dst < 3; dst++ {
		if dst != src && dst != one && legal(state, src, dst) {
			break
		}
	}

	return src, dst
}

// legal reports whether src's top disk may land on dst.
func legal(state *[3][]int, src, dst int) bool {
	if len(state[dst]) == 0 {
		return true
	}

	return state[src][len(state[src])-1] < state[dst][len(state[dst])-1]
}
