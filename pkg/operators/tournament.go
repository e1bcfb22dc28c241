// Package operators provides the parent-selection and variation operators
// used by the run engine: tournament selection, per-bit mutation at rate
// 1/length, and uniform crossover.
package operators

import (
	"math/rand"

	"github.com/evoknap/evoknap/pkg/core"
	"github.com/evoknap/evoknap/pkg/errors"
)

// TournamentSelector picks a parent by drawing size individuals uniformly at
// random with replacement and returning the best of the contestants. Larger
// tournaments mean stronger selection pressure; size 1 degenerates to
// uniform random selection, and a size at or above the population size is
// legal.
type TournamentSelector struct {
	size int
}

// NewTournament returns a selector for tournaments of the given size.
func NewTournament(size int) (*TournamentSelector, error) {
	if size < 1 {
		return nil, errors.Newf(errors.InvalidConfig, "tournament size must be >= 1, got %d", size)
	}
	return &TournamentSelector{size: size}, nil
}

// Size returns the configured tournament size.
func (s *TournamentSelector) Size() int {
	return s.size
}

// Select implements core.Selector. Ties go to the earliest-drawn contestant.
// The winner's genome is cloned so the population is never aliased.
func (s *TournamentSelector) Select(pop core.Population, rng *rand.Rand) core.Genome {
	best := rng.Intn(len(pop))
	for i := 1; i < s.size; i++ {
		cand := rng.Intn(len(pop))
		if pop[cand].Score.Better(pop[best].Score) {
			best = cand
		}
	}
	return pop[best].Genome.Clone()
}
