package runner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/evoknap/evoknap/pkg/core"
)

func scorePtr(s core.Score) *core.Score {
	return &s
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, 0, s.Trials)
	assert.Equal(t, 0, s.FeasibleBest)
}

func TestSummarize(t *testing.T) {
	results := []TrialResult{
		{BestEver: scorePtr(core.Feasible(10)), FinalBest: scorePtr(core.Feasible(8))},
		{BestEver: scorePtr(core.Feasible(20)), FinalBest: scorePtr(core.Overloaded())},
		{BestEver: scorePtr(core.Feasible(30)), FinalBest: scorePtr(core.Feasible(30))},
		{BestEver: scorePtr(core.Overloaded()), FinalBest: scorePtr(core.Overloaded())},
	}

	s := Summarize(results)
	assert.Equal(t, 4, s.Trials)
	assert.Equal(t, 3, s.FeasibleBest)
	assert.Equal(t, 2, s.OverloadedFinal)
	assert.InDelta(t, 20.0, s.MeanBestValue, 1e-9)
	assert.Equal(t, uint64(10), s.MinBestValue)
	assert.Equal(t, uint64(30), s.MaxBestValue)
	// Population standard deviation of {10, 20, 30}.
	assert.InDelta(t, 8.1649658, s.StdDevBestValue, 1e-6)
}

func TestSummarizeAllOverloadedBests(t *testing.T) {
	results := []TrialResult{
		{BestEver: scorePtr(core.Overloaded()), FinalBest: scorePtr(core.Overloaded())},
	}
	s := Summarize(results)
	assert.Equal(t, 1, s.Trials)
	assert.Equal(t, 0, s.FeasibleBest)
	assert.Equal(t, 1, s.OverloadedFinal)
	assert.Zero(t, s.MeanBestValue)
}

func TestSummarizeSkipsNilScores(t *testing.T) {
	s := Summarize([]TrialResult{{}})
	assert.Equal(t, 1, s.Trials)
	assert.Equal(t, 0, s.FeasibleBest)
	assert.Equal(t, 0, s.OverloadedFinal)
}
