package operators

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evoknap/evoknap/pkg/core"
	"github.com/evoknap/evoknap/pkg/errors"
)

// scoredPopulation builds a population whose individual i has genome with
// only bit i set and score Feasible(values[i]).
func scoredPopulation(t *testing.T, values ...uint64) core.Population {
	t.Helper()
	pop := make(core.Population, len(values))
	for i, v := range values {
		g := core.NewGenome(len(values))
		g.Set(i)
		pop[i] = core.Individual{Genome: g, Score: core.Feasible(v)}
	}
	return pop
}

func TestNewTournamentValidatesSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		_, err := NewTournament(size)
		require.Error(t, err)
		assert.Equal(t, errors.InvalidConfig, errors.Code(err))
	}

	sel, err := NewTournament(1)
	require.NoError(t, err)
	assert.Equal(t, 1, sel.Size())
}

func TestSelectReturnsClone(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	pop := scoredPopulation(t, 5)
	sel, err := NewTournament(2)
	require.NoError(t, err)

	g := sel.Select(pop, rng)
	require.True(t, g.Equal(pop[0].Genome))

	g.Flip(0)
	assert.True(t, pop[0].Genome.Has(0), "selection must not alias the population")
}

func TestSelectSizeLargerThanPopulation(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	pop := scoredPopulation(t, 1, 9, 4)
	sel, err := NewTournament(64)
	require.NoError(t, err)

	// With 64 draws over 3 individuals the best one is picked with near
	// certainty on every call.
	for i := 0; i < 20; i++ {
		g := sel.Select(pop, rng)
		assert.True(t, g.Equal(pop[1].Genome))
	}
}

func TestSelectPrefersFeasibleOverOverloaded(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	pop := core.Population{
		{Genome: core.NewGenome(2), Score: core.Overloaded()},
		{Genome: core.NewGenome(2), Score: core.Feasible(0)},
	}
	pop[1].Genome.Set(1)

	sel, err := NewTournament(16)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		assert.True(t, sel.Select(pop, rng).Equal(pop[1].Genome))
	}
}

func TestSelectSizeOneIsUniform(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	pop := scoredPopulation(t, 1, 2, 3, 4)
	sel, err := NewTournament(1)
	require.NoError(t, err)

	const trials = 40_000
	counts := make([]int, len(pop))
	for i := 0; i < trials; i++ {
		g := sel.Select(pop, rng)
		for j := range pop {
			if g.Equal(pop[j].Genome) {
				counts[j]++
				break
			}
		}
	}

	// Each index should be drawn about trials/4 times; 4 sigma is ~175.
	for j, c := range counts {
		assert.InDelta(t, trials/4, c, 400, "index %d drawn %d times", j, c)
	}
}

func TestSelectLargerTournamentsRaisePressure(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	pop := scoredPopulation(t, 0, 1, 2, 3, 4, 5, 6, 7)

	meanSelected := func(size int) float64 {
		sel, err := NewTournament(size)
		require.NoError(t, err)
		var total uint64
		const trials = 20_000
		for i := 0; i < trials; i++ {
			g := sel.Select(pop, rng)
			for j := range pop {
				if g.Equal(pop[j].Genome) {
					v, _ := pop[j].Score.Value()
					total += v
					break
				}
			}
		}
		return float64(total) / trials
	}

	m2 := meanSelected(2)
	m8 := meanSelected(8)
	assert.Greater(t, m8, m2, "tournament size 8 must select fitter parents than size 2 on average")
}

func TestSelectSingleIndividual(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	pop := scoredPopulation(t, 3)
	sel, err := NewTournament(8)
	require.NoError(t, err)

	assert.True(t, sel.Select(pop, rng).Equal(pop[0].Genome))
}
