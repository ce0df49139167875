// Package evolve - the generation loop.
package evolve

import (
	"context"
	"math/rand"
	"sort"
)

// Run executes the genetic algorithm over permutations of base.
//
// The initial population is PopulationSize independent shuffles of base.
// Each generation is evaluated with fn, offered to the Inspect hook, and
// then bred: EliteCount fittest individuals survive unchanged, the rest
// are produced by tournament selection, ordered crossover, and swap
// mutation. After the budget is exhausted (or Inspect stops the run) the
// final population is evaluated once more and the best individual of that
// evaluation is reported.
//
// Run never mutates base. The populations inside Result are freshly
// allocated and safe for the caller to keep.
//
// Complexity: O(Generations · PopulationSize · (fitness + n)) time,
// O(PopulationSize · n) memory for genome length n.
func Run(base []int, fn Fitness, cfg Config) (Result, error) {
	// Stage 1 - fail-fast validation before any search begins.
	if len(base) == 0 {
		return Result{}, ErrEmptyGenome
	}
	if err := cfg.validate(); err != nil {
		return Result{}, err
	}

	ctx := cfg.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	rng := rngFromSeed(cfg.Seed)

	// Stage 2 - initial population: independent shuffles of base.
	population := make([][]int, cfg.PopulationSize)
	var i int
	for i = range population {
		genome := append([]int(nil), base...)
		shuffleIntsInPlace(genome, rng)
		population[i] = genome
	}

	var (
		fitness = make([]float64, cfg.PopulationSize)
		ranks   = make([]int, cfg.PopulationSize)
		gensRun = 0
		stopped = false
		gen     int
	)

	// Stage 3 - generation loop.
	for gen = 0; gen < cfg.Generations; gen++ {
		// Cancellation boundary: one check per generation.
		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		default:
		}

		for i = range population {
			fitness[i] = fn(population[i])
		}
		gensRun = gen + 1

		if cfg.OnGeneration != nil && cfg.OnGeneration(gen, population, fitness) {
			stopped = true
			break
		}

		population = breed(population, fitness, ranks, cfg, rng)
	}

	// Stage 4 - final evaluation. When Inspect stopped the run the current
	// population is already scored; otherwise the last breeding step left
	// it unevaluated.
	if !stopped {
		for i = range population {
			fitness[i] = fn(population[i])
		}
	}

	best := 0
	for i = 1; i < len(fitness); i++ {
		if fitness[i] > fitness[best] {
			best = i
		}
	}

	return Result{
		Best:        append([]int(nil), population[best]...),
		BestFitness: fitness[best],
		Population:  population,
		Fitness:     append([]float64(nil), fitness...),
		Generations: gensRun,
	}, nil
}

// breed produces the next generation: elites first, then tournament /
// crossover / mutation offspring until the population is full.
func breed(population [][]int, fitness []float64, ranks []int, cfg Config, rng *rand.Rand) [][]int {
	var i int
	for i = range ranks {
		ranks[i] = i
	}
	// Stable sort keeps the earlier individual ahead on fitness ties.
	sort.SliceStable(ranks, func(a, b int) bool {
		return fitness[ranks[a]] > fitness[ranks[b]]
	})

	next := make([][]int, 0, cfg.PopulationSize)
	for i = 0; i < cfg.EliteCount; i++ {
		next = append(next, append([]int(nil), population[ranks[i]]...))
	}

	for len(next) < cfg.PopulationSize {
		parent1 := Tournament(rng, population, fitness, cfg.TournamentSize)
		parent2 := Tournament(rng, population, fitness, cfg.TournamentSize)

		var child []int
		if rng.Float64() < cfg.CrossoverRate {
			child = OrderedCrossover(rng, parent1, parent2)
		} else {
			child = append([]int(nil), parent1...)
		}

		if rng.Float64() < cfg.MutationRate {
			SwapMutate(rng, child)
		}

		next = append(next, child)
	}

	return next
}
