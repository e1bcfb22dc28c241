package operators

import (
	"fmt"
	"math/rand"

	"github.com/evoknap/evoknap/pkg/core"
)

// UniformCrossover builds a child by taking each bit from one parent or the
// other with probability 1/2. Parents must have identical length; genome
// length is fixed per run, so a mismatch is a contract violation and panics.
type UniformCrossover struct{}

// Recombine implements core.Recombinator.
func (UniformCrossover) Recombine(a, b core.Genome, rng *rand.Rand) core.Genome {
	if a.Len() != b.Len() {
		panic(fmt.Sprintf("operators: uniform crossover on mismatched genome lengths %d and %d", a.Len(), b.Len()))
	}
	child := a.Clone()
	for i := 0; i < a.Len(); i++ {
		if rng.Intn(2) == 1 {
			if b.Has(i) {
				child.Set(i)
			} else {
				child.Clear(i)
			}
		}
	}
	return child
}
