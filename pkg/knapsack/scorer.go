package knapsack

import "github.com/evoknap/evoknap/pkg/core"

// CliffScorer rates a genome against one instance: any selection over
// capacity collapses to Overloaded with no partial credit, anything that
// fits scores Feasible with its total value. It is a pure function of
// (genome, instance) and safe for concurrent use.
type CliffScorer struct {
	inst *Instance
}

// NewCliffScorer binds a scorer to an instance.
func NewCliffScorer(inst *Instance) *CliffScorer {
	return &CliffScorer{inst: inst}
}

// Score implements core.Scorer.
func (s *CliffScorer) Score(g core.Genome) core.Score {
	if s.inst.WeightOf(g) > s.inst.capacity {
		return core.Overloaded()
	}
	return core.Feasible(s.inst.ValueOf(g))
}
