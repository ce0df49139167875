package tsp

// RouteLength prices an arbitrary visiting order over the caller's matrix
// indices: home to route[0], every consecutive leg, and the return leg.
// UI layers scoring a user-proposed route call this against the same
// instance a solver saw; validation mirrors the solvers', so an order
// that a solver would reject is rejected here too.
func RouteLength(dist [][]float64, home int, route []int) (float64, error) {
	in, err := newInstance(dist, home, route)
	if err != nil {
		return 0, err
	}

	order := make([]int, in.m()-1)
	var i int
	for i = range order {
		order[i] = i + 1
	}

	return in.loopLength(order), nil
}
