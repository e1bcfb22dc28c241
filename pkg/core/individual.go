// Package core defines the genome representation, the cliff Score ordering,
// and the operator contracts the run engine is built from.
package core

import "math/rand"

// Individual pairs a genome with its computed score. Individuals are
// replaced wholesale each generation, never edited.
type Individual struct {
	Genome Genome
	Score  Score
}

// Population is one generation's individuals. The engine keeps its size
// fixed for the whole run.
type Population []Individual

// Best returns the index of the best-scoring individual, first-seen on ties.
// It returns -1 for an empty population.
func (p Population) Best() int {
	if len(p) == 0 {
		return -1
	}
	best := 0
	for i := 1; i < len(p); i++ {
		if p[i].Score.Better(p[best].Score) {
			best = i
		}
	}
	return best
}

// Scorer maps a genome to a score. Implementations must be pure: no side
// effects and safe for concurrent use, since evaluation may run one goroutine
// per individual.
type Scorer interface {
	Score(g Genome) Score
}

// Selector picks a parent genome from a scored population. The returned
// genome must be independent storage so later mutation of the child cannot
// touch the population.
type Selector interface {
	Select(pop Population, rng *rand.Rand) Genome
}

// Mutator derives a new genome from an existing one. The input is not
// modified.
type Mutator interface {
	Mutate(g Genome, rng *rand.Rand) Genome
}

// Recombinator derives a child genome from two parents of identical length.
// A length mismatch is a programming-contract violation, not a runtime
// error; genome length is fixed per run.
type Recombinator interface {
	Recombine(a, b Genome, rng *rand.Rand) Genome
}

// Inspector observes each generation after evaluation. It must treat the
// population as read-only; the engine reuses the backing storage for the
// next generation.
type Inspector interface {
	Inspect(generation int, pop Population)
}

// InspectorFunc adapts a function to the Inspector interface.
type InspectorFunc func(generation int, pop Population)

func (f InspectorFunc) Inspect(generation int, pop Population) {
	f(generation, pop)
}
