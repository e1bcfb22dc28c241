package operators

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/evoknap/evoknap/pkg/core"
)

func TestMutateLeavesInputUntouched(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	g := core.RandomGenome(200, rng)
	snapshot := g.Clone()

	BitFlipMutator{}.Mutate(g, rng)
	assert.True(t, g.Equal(snapshot))
}

func TestMutatePreservesLength(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	g := core.RandomGenome(137, rng)

	child := BitFlipMutator{}.Mutate(g, rng)
	assert.Equal(t, 137, child.Len())
}

func TestMutateExpectedOneFlip(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	const length = 500
	const trials = 5_000
	g := core.RandomGenome(length, rng)

	totalFlips := 0
	for i := 0; i < trials; i++ {
		child := BitFlipMutator{}.Mutate(g, rng)
		totalFlips += g.HammingDistance(child)
	}

	// Expected Hamming distance per call is 1 regardless of length.
	mean := float64(totalFlips) / trials
	assert.InDelta(t, 1.0, mean, 0.1)
}

func TestMutateLengthOneGenome(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	g := core.NewGenome(1)

	// Rate is 1/1, so every call flips the single bit.
	child := BitFlipMutator{}.Mutate(g, rng)
	assert.True(t, child.Has(0))
	assert.False(t, g.Has(0))
}
