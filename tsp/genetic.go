package tsp

import (
	"time"

	"github.com/AdithyaSean/game-project/evolve"
)

// Genetic evolves a visiting order with the permutation engine. Genomes
// are orderings of the selected cities; fitness is the inverse loop
// length, so shorter routes rank higher. The returned route is the best
// individual of the final generation and carries no optimality guarantee.
//
// The run is reproducible for a fixed Seed and the documented defaults
// (population 50, 100 generations, crossover 0.7, mutation 0.01).
func Genetic(dist [][]float64, home int, selected []int, opts ...Option) (Result, error) {
	o := applyOptions(opts)

	in, err := newInstance(dist, home, selected)
	if err != nil {
		return Result{}, err
	}

	start := time.Now()

	base := make([]int, in.m()-1)
	var i int
	for i = range base {
		base[i] = i + 1
	}

	res, err := evolve.Run(base, func(genome []int) float64 {
		return 1 / in.loopLength(genome)
	}, evolve.Config{
		Ctx:            o.Ctx,
		PopulationSize: o.PopulationSize,
		Generations:    o.Generations,
		CrossoverRate:  o.CrossoverRate,
		MutationRate:   o.MutationRate,
		EliteCount:     o.EliteCount,
		TournamentSize: o.TournamentSize,
		Seed:           o.Seed,
	})
	if err != nil {
		return Result{}, err
	}

	return Result{
		Route:    in.route(res.Best),
		Distance: in.loopLength(res.Best),
		Elapsed:  time.Since(start),
	}, nil
}
