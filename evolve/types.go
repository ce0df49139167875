// Package evolve - configuration, hooks, and sentinel errors for the
// permutation genetic algorithm engine.
package evolve

import (
	"context"
	"errors"
)

var (
	// ErrEmptyGenome is returned when the base permutation has no elements.
	ErrEmptyGenome = errors.New("evolve: base genome is empty")

	// ErrBadPopulation is returned when PopulationSize < 2; breeding needs
	// at least two individuals.
	ErrBadPopulation = errors.New("evolve: PopulationSize must be at least 2")

	// ErrBadGenerations is returned when Generations < 1.
	ErrBadGenerations = errors.New("evolve: Generations must be at least 1")

	// ErrBadRate is returned when CrossoverRate or MutationRate lies
	// outside the closed interval [0, 1].
	ErrBadRate = errors.New("evolve: rates must be within [0, 1]")

	// ErrBadEliteCount is returned when EliteCount is negative or leaves
	// no room for bred offspring (EliteCount >= PopulationSize).
	ErrBadEliteCount = errors.New("evolve: EliteCount must be in [0, PopulationSize)")

	// ErrBadTournament is returned when TournamentSize < 1 or exceeds the
	// population size.
	ErrBadTournament = errors.New("evolve: TournamentSize must be in [1, PopulationSize]")
)

// Fitness scores a genome; higher is better. The engine never mutates the
// slice it passes in, and callers must not retain it across calls.
type Fitness func(genome []int) float64

// Inspect observes each generation right after fitness evaluation and
// before breeding. Returning true stops the run early; the engine then
// reports the inspected generation as the final one. The population and
// fitness slices are engine-owned: copy anything that must outlive the call.
type Inspect func(generation int, population [][]int, fitness []float64) (stop bool)

// Config holds the engine parameters. There is no package-wide default:
// each solver package supplies the documented constants of its puzzle
// (queens: 100/1000/0.7/0.1/10/3 - tsp: 50/100/0.7/0.01/1/3).
type Config struct {
	// Ctx is checked at every generation boundary; defaults to
	// context.Background() when nil.
	Ctx context.Context

	// PopulationSize is the number of individuals per generation.
	PopulationSize int

	// Generations is the maximum number of generations to run.
	Generations int

	// CrossoverRate is the probability of ordered crossover per child;
	// otherwise the child is a clone of its first parent.
	CrossoverRate float64

	// MutationRate is the probability of one swap mutation per child.
	MutationRate float64

	// EliteCount individuals with the highest fitness are copied unchanged
	// into the next generation.
	EliteCount int

	// TournamentSize individuals are sampled uniformly per parent pick;
	// the fittest of the sample wins.
	TournamentSize int

	// Seed drives all randomness. Seed==0 selects the fixed default
	// stream, so runs are reproducible by construction.
	Seed int64

	// OnGeneration, if non-nil, is the per-generation Inspect hook.
	OnGeneration Inspect
}

// validate applies the fail-fast parameter checks. Parameter nonsense is a
// programmer error, so it surfaces before any search begins.
func (c Config) validate() error {
	if c.PopulationSize < 2 {
		return ErrBadPopulation
	}
	if c.Generations < 1 {
		return ErrBadGenerations
	}
	if c.CrossoverRate < 0 || c.CrossoverRate > 1 || c.MutationRate < 0 || c.MutationRate > 1 {
		return ErrBadRate
	}
	if c.EliteCount < 0 || c.EliteCount >= c.PopulationSize {
		return ErrBadEliteCount
	}
	if c.TournamentSize < 1 || c.TournamentSize > c.PopulationSize {
		return ErrBadTournament
	}

	return nil
}

// Result is the outcome of one engine run.
type Result struct {
	// Best is the highest-fitness individual seen in the final evaluation.
	Best []int

	// BestFitness is Best's score.
	BestFitness float64

	// Population is the final generation, re-evaluated after the last
	// breeding step.
	Population [][]int

	// Fitness holds the final population's scores, index-aligned.
	Fitness []float64

	// Generations is the number of generations actually evaluated
	// (smaller than Config.Generations when Inspect stopped the run).
	Generations int
}
