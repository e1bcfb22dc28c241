package operators

import (
	"math/rand"

	"github.com/evoknap/evoknap/pkg/core"
)

// BitFlipMutator flips each bit independently with probability 1/N for a
// genome of length N, so the expected disruption is one bit per call no
// matter how many items the instance has.
type BitFlipMutator struct{}

// Mutate implements core.Mutator. The input genome is left untouched.
func (BitFlipMutator) Mutate(g core.Genome, rng *rand.Rand) core.Genome {
	child := g.Clone()
	rate := 1.0 / float64(g.Len())
	for i := 0; i < g.Len(); i++ {
		if rng.Float64() < rate {
			child.Flip(i)
		}
	}
	return child
}
