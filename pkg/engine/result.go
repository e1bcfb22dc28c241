package engine

import (
	"time"

	"github.com/evoknap/evoknap/pkg/core"
)

// Result is the output of a run: the two metrics the study collects, plus
// run metadata and the per-generation history. BestEver and FinalBest are
// nil only when no generation was evaluated (MaxGenerations 0, or
// cancellation before the first evaluation).
type Result struct {
	// BestEver is the best-scoring individual observed across the whole
	// run, independent of population churn.
	BestEver *core.Individual

	// FinalBest is the best individual of the final evaluated generation.
	// It is reported even when Overloaded, never silently dropped.
	FinalBest *core.Individual

	// Generations is the number of generations actually evaluated; it is
	// lower than configured when the run was cancelled.
	Generations int

	// Evaluations counts scorer invocations.
	Evaluations int

	Duration time.Duration

	// History holds one record per evaluated generation.
	History []GenerationRecord
}
