package tsp

import "time"

// Nearest builds a route greedily: starting from home, repeatedly step to
// the closest unvisited selected city, then return home. Ties are broken
// by selection order, so the construction is fully deterministic. The
// result is a feasible loop but generally not the shortest one.
//
// Complexity: O(m²) time, O(m) memory, for m selected cities.
func Nearest(dist [][]float64, home int, selected []int, opts ...Option) (Result, error) {
	o := applyOptions(opts)

	in, err := newInstance(dist, home, selected)
	if err != nil {
		return Result{}, err
	}

	start := time.Now()

	var (
		m       = in.m()
		visited = make([]bool, m)
		order   = make([]int, 0, m-1)
		pos     = 0 // home
		i, next int
		best    float64
	)
	for len(order) < m-1 {
		if err = o.Ctx.Err(); err != nil {
			return Result{}, err
		}

		// Scan candidates in selection order; strict < keeps the
		// earliest-selected city on a tie.
		next = -1
		for i = 1; i < m; i++ {
			if visited[i] {
				continue
			}
			if next < 0 || in.d(pos, i) < best {
				next, best = i, in.d(pos, i)
			}
		}
		visited[next] = true
		order = append(order, next)
		pos = next
	}

	return Result{
		Route:    in.route(order),
		Distance: in.loopLength(order),
		Elapsed:  time.Since(start),
	}, nil
}
