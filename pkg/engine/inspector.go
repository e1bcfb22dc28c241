package engine

import (
	"math"
	"sort"

	"github.com/evoknap/evoknap/pkg/core"
)

// GenerationRecord is the per-generation progress record the run emits:
// which generation, its best score, and the entropy of the population's
// score distribution (a cheap convergence signal — it falls toward zero as
// the population fixates).
type GenerationRecord struct {
	Generation int
	Best       core.Score
	Entropy    float64
}

// BestTracker is the inspector that maintains the run's two output metrics:
// the best individual ever seen and the best of the most recent generation.
// The engine installs one on every run; its state is handed back to the
// caller through the Result rather than captured in a closure.
//
// Breeding offers no elitism, so the bred population can lose the best
// solution found. The tracker is what prevents that loss from discarding
// the run's output.
type BestTracker struct {
	bestEver  *core.Individual
	finalBest *core.Individual
	records   []GenerationRecord
}

// NewBestTracker returns an empty tracker.
func NewBestTracker() *BestTracker {
	return &BestTracker{}
}

// Inspect implements core.Inspector. It treats the population as read-only
// and clones anything it keeps.
func (t *BestTracker) Inspect(generation int, pop core.Population) {
	idx := pop.Best()
	if idx < 0 {
		return
	}
	best := core.Individual{
		Genome: pop[idx].Genome.Clone(),
		Score:  pop[idx].Score,
	}

	t.finalBest = &best
	// Strictly better only, so ties keep the first-seen individual.
	if t.bestEver == nil || best.Score.Better(t.bestEver.Score) {
		t.bestEver = &best
	}
	t.records = append(t.records, GenerationRecord{
		Generation: generation,
		Best:       best.Score,
		Entropy:    ScoreEntropy(pop),
	})
}

// BestEver returns the best individual seen across all generations so far.
func (t *BestTracker) BestEver() (core.Individual, bool) {
	if t.bestEver == nil {
		return core.Individual{}, false
	}
	return *t.bestEver, true
}

// FinalBest returns the best individual of the most recently inspected
// generation, even when that best is Overloaded.
func (t *BestTracker) FinalBest() (core.Individual, bool) {
	if t.finalBest == nil {
		return core.Individual{}, false
	}
	return *t.finalBest, true
}

// Records returns the per-generation progress records in order.
func (t *BestTracker) Records() []GenerationRecord {
	return t.records
}

// ScoreEntropy returns the Shannon entropy, in bits, of the population's
// score distribution. Zero means every individual scores identically.
func ScoreEntropy(pop core.Population) float64 {
	if len(pop) == 0 {
		return 0
	}
	byScore := make(map[core.Score]int)
	for _, ind := range pop {
		byScore[ind.Score]++
	}

	// Sum in a fixed order so identical populations always yield the exact
	// same float, independent of map iteration.
	counts := make([]int, 0, len(byScore))
	for _, c := range byScore {
		counts = append(counts, c)
	}
	sort.Ints(counts)

	entropy := 0.0
	n := float64(len(pop))
	for _, c := range counts {
		p := float64(c) / n
		entropy -= p * math.Log2(p)
	}
	return entropy
}
