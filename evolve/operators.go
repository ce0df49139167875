// Package evolve - the three genetic operators.
//
// All operators are pure with respect to their inputs except SwapMutate,
// which mutates its genome in place by contract. Each one takes the RNG
// explicitly so determinism is the caller's to control.
package evolve

import "math/rand"

// Tournament picks one parent by tournament selection: size individuals
// are sampled uniformly without replacement and the fittest of the sample
// wins. The returned slice aliases the population; callers that modify it
// must copy first.
//
// Contracts: 1 ≤ size ≤ len(population); fitness is index-aligned.
//
// Complexity: O(size) expected time, O(size) space for the sample.
func Tournament(rng *rand.Rand, population [][]int, fitness []float64, size int) []int {
	var (
		winner  = -1
		sampled = make([]int, 0, size)
		idx     int
	)
	for len(sampled) < size {
		idx = rng.Intn(len(population))
		if containsInt(sampled, idx) {
			continue // without replacement
		}
		sampled = append(sampled, idx)
		if winner < 0 || fitness[idx] > fitness[winner] {
			winner = idx
		}
	}

	return population[winner]
}

// OrderedCrossover builds a child from two parent permutations: a random
// inclusive sub-range [start, end] of parent1 is copied verbatim, then the
// remaining positions are filled, in order, with parent2's elements
// skipping any value already present. The child is always a permutation of
// the parents' shared element set.
//
// Contracts: len(parent1) == len(parent2); both are permutations of the
// same elements. Genomes shorter than two elements are cloned as-is.
//
// Complexity: O(n) time, O(n) space.
func OrderedCrossover(rng *rand.Rand, parent1, parent2 []int) []int {
	n := len(parent1)
	if n < 2 {
		return append([]int(nil), parent1...)
	}

	// Two distinct cut points, ordered.
	start := rng.Intn(n)
	end := rng.Intn(n - 1)
	if end >= start {
		end++
	} else {
		start, end = end, start
	}

	var (
		child = make([]int, n)
		used  = make(map[int]bool, n)
		i     int
	)
	for i = range child {
		child[i] = -1
	}

	// Copy the [start, end] window from parent1.
	for i = start; i <= end; i++ {
		child[i] = parent1[i]
		used[parent1[i]] = true
	}

	// Fill the gaps with parent2's elements in their original order.
	p2 := 0
	for i = 0; i < n; i++ {
		if child[i] != -1 {
			continue
		}
		for used[parent2[p2]] {
			p2++
		}
		child[i] = parent2[p2]
		used[parent2[p2]] = true
	}

	return child
}

// SwapMutate exchanges two distinct positions of genome in place.
//
// Complexity: O(1).
func SwapMutate(rng *rand.Rand, genome []int) {
	n := len(genome)
	if n < 2 {
		return
	}
	i := rng.Intn(n)
	j := rng.Intn(n - 1)
	if j >= i {
		j++
	}
	genome[i], genome[j] = genome[j], genome[i]
}

// containsInt reports whether v occurs in a. Samples are tiny (tournament
// size), so a linear probe beats a map here.
func containsInt(a []int, v int) bool {
	var x int
	for _, x = range a {
		if x == v {
			return true
		}
	}

	return false
}
