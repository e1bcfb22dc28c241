package runner

import "math"

// Summary aggregates a batch of trial results. Value statistics cover only
// trials whose best-ever score was Feasible; Overloaded bests are counted,
// never folded into the numeric aggregates.
type Summary struct {
	Trials int

	// FeasibleBest counts trials whose best-ever score was Feasible.
	FeasibleBest int

	// OverloadedFinal counts trials whose final-generation best was
	// Overloaded.
	OverloadedFinal int

	MeanBestValue   float64
	StdDevBestValue float64
	MinBestValue    uint64
	MaxBestValue    uint64
}

// Summarize computes batch statistics over the trials.
func Summarize(results []TrialResult) Summary {
	s := Summary{Trials: len(results)}

	var values []uint64
	for _, r := range results {
		if r.BestEver != nil {
			if v, ok := r.BestEver.Value(); ok {
				values = append(values, v)
			}
		}
		if r.FinalBest != nil && !r.FinalBest.IsFeasible() {
			s.OverloadedFinal++
		}
	}
	s.FeasibleBest = len(values)
	if len(values) == 0 {
		return s
	}

	s.MinBestValue = values[0]
	s.MaxBestValue = values[0]
	var total float64
	for _, v := range values {
		total += float64(v)
		if v < s.MinBestValue {
			s.MinBestValue = v
		}
		if v > s.MaxBestValue {
			s.MaxBestValue = v
		}
	}
	s.MeanBestValue = total / float64(len(values))

	var sumSq float64
	for _, v := range values {
		d := float64(v) - s.MeanBestValue
		sumSq += d * d
	}
	s.StdDevBestValue = math.Sqrt(sumSq / float64(len(values)))

	return s
}
