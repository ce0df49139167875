// Package evolve implements a generic genetic algorithm over permutation
// genomes, shared by the N-Queens and Traveling-Salesman solvers.
//
// The engine is parameterized by representation (the base permutation),
// fitness function, and termination (generation budget plus an optional
// per-generation Inspect hook). One loop serves both puzzle encodings:
//
//   - queens: genome[i] = row of the queen in column i
//   - tsp:    genome    = visiting order of the selected cities
//
// Per generation the engine evaluates every individual, copies the top
// EliteCount individuals unchanged, and fills the remainder by tournament
// selection of two parents, ordered crossover with probability
// CrossoverRate (otherwise a clone of the first parent), and swap mutation
// with probability MutationRate. Every operator preserves the permutation
// property: a child is always a rearrangement of the base genome.
//
// Determinism:
//
//	All randomness flows from Config.Seed through a single *rand.Rand;
//	the same seed, base, and fitness function reproduce the run exactly.
//
// Termination:
//
//	The generation budget always bounds the run. The Inspect hook may stop
//	earlier (the N-Queens solver stops once it has collected ten distinct
//	perfect boards), and Config.Ctx is checked at every generation
//	boundary so interactive callers can cancel a long run.
//
// Errors:
//
//   - ErrEmptyGenome       if the base permutation is empty.
//   - ErrBadPopulation     if PopulationSize < 2.
//   - ErrBadGenerations    if Generations < 1.
//   - ErrBadRate           if CrossoverRate or MutationRate is outside [0,1].
//   - ErrBadEliteCount     if EliteCount is negative or ≥ PopulationSize.
//   - ErrBadTournament     if TournamentSize < 1 or > PopulationSize.
//   - context error        if Config.Ctx is cancelled mid-run.
//
// Complexity: O(G · P · (F + n)) time for G generations, population P,
// genome length n, and fitness cost F; O(P · n) memory.
package evolve
