package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig(25_000)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 1000, cfg.PopulationSize)
	assert.Equal(t, 1000, cfg.MaxGenerations)
	assert.Equal(t, 2, cfg.TournamentSize)
	assert.True(t, cfg.ParallelEval)
}

func TestValidateReportsOffendingField(t *testing.T) {
	cfg := DefaultConfig(10)
	cfg.TournamentSize = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TournamentSize")
}

func TestValidateAllowsZeroGenerations(t *testing.T) {
	cfg := DefaultConfig(10)
	cfg.MaxGenerations = 0
	assert.NoError(t, cfg.Validate())
}
