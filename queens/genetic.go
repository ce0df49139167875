// Package queens - genetic algorithm mode.
package queens

import (
	"github.com/AdithyaSean/game-project/evolve"
	"github.com/AdithyaSean/game-project/perf"
)

// Fitness scores a row permutation: the number of non-attacking queen
// pairs, i.e. C(n,2) minus the count of pairs sharing a diagonal. Rows
// and columns cannot conflict because the genome is a permutation. The
// maximum (28 for n=8) marks a valid solution.
//
// Complexity: O(n²).
func Fitness(genome []int) int {
	conflicts := 0
	var i, j int
	for i = 0; i < len(genome); i++ {
		for j = i + 1; j < len(genome); j++ {
			if abs(genome[i]-genome[j]) == j-i {
				conflicts++
			}
		}
	}

	return maxPairs(len(genome)) - conflicts
}

// SolveGenetic searches for attack-free boards with the evolve engine.
//
// Each generation is scanned for fitness-maximal individuals; every such
// individual is converted to a Board and collected once (deduplicated by
// the canonical solution string). The run stops as soon as MaxSolutions
// distinct perfect boards exist, or when the generation budget is spent —
// in that case the best boards of the final generation are returned with
// Result.Perfect reporting whether they are actually attack-free.
//
// Complexity: O(Generations · PopulationSize · n²) worst case.
func SolveGenetic(n int, opts ...Option) (Result, error) {
	if n < 1 {
		return Result{}, ErrBadBoardSize
	}

	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}

	base := make([]int, n)
	var i int
	for i = range base {
		base[i] = i
	}

	var (
		perfect []Board
		seen    = map[string]bool{}
		maxFit  = float64(maxPairs(n))
		collect evolve.Inspect
		res     evolve.Result
		runErr  error
	)

	collect = func(_ int, population [][]int, fitness []float64) bool {
		var k int
		for k = range population {
			if fitness[k] != maxFit {
				continue
			}
			board := append(Board(nil), population[k]...)
			key := board.String()
			if seen[key] {
				continue
			}
			seen[key] = true
			perfect = append(perfect, board)
			if len(perfect) >= o.MaxSolutions {
				return true
			}
		}

		return false
	}

	cfg := evolve.Config{
		Ctx:            o.Ctx,
		PopulationSize: o.PopulationSize,
		Generations:    o.Generations,
		CrossoverRate:  o.CrossoverRate,
		MutationRate:   o.MutationRate,
		EliteCount:     o.EliteCount,
		TournamentSize: o.TournamentSize,
		Seed:           o.Seed,
		OnGeneration:   collect,
	}

	elapsed := perf.Measure(func() {
		res, runErr = evolve.Run(base, func(g []int) float64 { return float64(Fitness(g)) }, cfg)
	})
	if runErr != nil {
		return Result{}, runErr
	}

	if len(perfect) > 0 {
		return Result{
			Solutions:   perfect,
			Perfect:     true,
			BestFitness: maxPairs(n),
			Elapsed:     elapsed,
		}, nil
	}

	// Budget exhausted with no perfect individual: report the distinct
	// best-fitness boards of the final generation.
	var (
		best      = res.BestFitness
		solutions []Board
		k         int
	)
	for k = range res.Population {
		if res.Fitness[k] != best {
			continue
		}
		board := append(Board(nil), res.Population[k]...)
		key := board.String()
		if seen[key] {
			continue
		}
		seen[key] = true
		solutions = append(solutions, board)
	}

	return Result{
		Solutions:   solutions,
		Perfect:     best == maxFit,
		BestFitness: int(best),
		Elapsed:     elapsed,
	}, nil
}

// maxPairs is C(n,2), the fitness ceiling.
func maxPairs(n int) int {
	return n * (n - 1) / 2
}
