package tsp

import (
	"context"
	"errors"
	"math"
	"time"
)

// errIncompleteMemo signals a broken solver invariant: the reconstruction
// asked for a subproblem the forward pass never evaluated.
var errIncompleteMemo = errors.New("tsp: memo table incomplete after forward pass")

// Exact solves the restricted instance optimally with Held-Karp dynamic
// programming. The memo holds suffix costs:
//
//	dp[mask][pos] = cheapest way to leave pos, visit every city outside
//	                mask exactly once, and return home,
//
// with the base case dp[full][pos] = d(pos, home). The optimum is
// dp[{home}][home]. The route is then rebuilt walking forward from home,
// at each step taking the unvisited city minimizing
// d(pos, city) + dp[mask|{city}][city]; every value that walk reads was
// memoized by the forward pass, and Exact checks that completeness before
// reconstructing rather than trusting the recursion's side effects.
//
// Complexity: O(m²·2^m) time, O(m·2^m) memory. Practical on a desktop up
// to roughly 15 selected cities; instances with more than MaxExactCities
// working cities are rejected with ErrTooManyCities.
func Exact(dist [][]float64, home int, selected []int, opts ...Option) (Result, error) {
	o := applyOptions(opts)

	in, err := newInstance(dist, home, selected)
	if err != nil {
		return Result{}, err
	}
	if in.m() > MaxExactCities {
		return Result{}, ErrTooManyCities
	}

	start := time.Now()

	s := &exactSolver{
		in:   in,
		m:    in.m(),
		full: 1<<in.m() - 1,
		ctx:  o.Ctx,
	}
	s.memo = make([]float64, (s.full+1)*s.m)
	s.seen = make([]bool, (s.full+1)*s.m)

	// Stage 1 - forward pass: evaluate the whole suffix tree top-down.
	best := s.suffix(1, 0)
	if s.stopped {
		return Result{}, s.ctx.Err()
	}

	// Stage 2 - postcondition: every state the reconstruction may touch
	// must already be memoized.
	if err = s.verifyComplete(); err != nil {
		return Result{}, err
	}

	// Stage 3 - rebuild the visiting order from the memo.
	order, err := s.reconstruct()
	if err != nil {
		return Result{}, err
	}

	return Result{
		Route:    in.route(order),
		Distance: best,
		Elapsed:  time.Since(start),
	}, nil
}

type exactSolver struct {
	in      instance
	m       int
	full    int
	memo    []float64
	seen    []bool
	ctx     context.Context
	stopped bool
}

// suffix computes dp[mask][pos] top-down. mask is the set of visited
// working cities (home bit always set); pos is the current city.
func (s *exactSolver) suffix(mask, pos int) float64 {
	if s.stopped {
		return math.Inf(1)
	}
	select {
	case <-s.ctx.Done():
		s.stopped = true

		return math.Inf(1)
	default:
	}

	if mask == s.full {
		return s.in.d(pos, 0)
	}
	idx := mask*s.m + pos
	if s.seen[idx] {
		return s.memo[idx]
	}

	var (
		best = math.Inf(1)
		j    int
		cand float64
	)
	for j = 1; j < s.m; j++ {
		if mask&(1<<j) != 0 {
			continue
		}
		cand = s.in.d(pos, j) + s.suffix(mask|1<<j, j)
		if cand < best {
			best = cand
		}
	}
	s.seen[idx] = true
	s.memo[idx] = best

	return best
}

// verifyComplete sweeps every reachable non-base state and confirms the
// forward pass memoized it. Reachable means: home bit set, pos inside
// mask, and pos != home except for the root state.
func (s *exactSolver) verifyComplete() error {
	var mask, pos int
	for mask = 1; mask < s.full; mask += 2 { // home bit always set
		for pos = 0; pos < s.m; pos++ {
			if mask&(1<<pos) == 0 {
				continue
			}
			if pos == 0 && mask != 1 {
				continue // only the root state ends at home
			}
			if !s.seen[mask*s.m+pos] {
				return errIncompleteMemo
			}
		}
	}

	return nil
}

// reconstruct walks forward from home, greedily following the memo.
func (s *exactSolver) reconstruct() ([]int, error) {
	var (
		order      = make([]int, 0, s.m-1)
		mask       = 1
		pos        = 0
		j, next    int
		cand, best float64
	)
	for len(order) < s.m-1 {
		next = -1
		for j = 1; j < s.m; j++ {
			if mask&(1<<j) != 0 {
				continue
			}
			cand = s.in.d(pos, j) + s.lookup(mask|1<<j, j)
			if next < 0 || cand < best {
				next, best = j, cand
			}
		}
		if math.IsInf(best, 1) {
			return nil, errIncompleteMemo
		}
		mask |= 1 << next
		order = append(order, next)
		pos = next
	}

	return order, nil
}

// lookup reads dp[mask][pos]; the full mask is the closed-form base case.
func (s *exactSolver) lookup(mask, pos int) float64 {
	if mask == s.full {
		return s.in.d(pos, 0)
	}
	idx := mask*s.m + pos
	if !s.seen[idx] {
		return math.Inf(1)
	}

	return s.memo[idx]
}
