package logging

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockOutput struct {
	mu      sync.Mutex
	entries []Entry
	closed  bool
}

func (m *mockOutput) Write(e Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return fmt.Errorf("output is closed")
	}
	m.entries = append(m.entries, e)
	return nil
}

func (m *mockOutput) Sync() error { return nil }

func (m *mockOutput) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

func (m *mockOutput) Entries() []Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.entries
}

func TestSeverityFiltering(t *testing.T) {
	out := &mockOutput{}
	logger := NewLogger(Config{Severity: WARN, Outputs: []Output{out}})

	ctx := context.Background()
	logger.Debug(ctx, "dropped")
	logger.Info(ctx, "dropped too")
	logger.Warn(ctx, "kept")
	logger.Error(ctx, "kept as well")

	entries := out.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, WARN, entries[0].Severity)
	assert.Equal(t, ERROR, entries[1].Severity)
}

func TestRunIDFromContext(t *testing.T) {
	out := &mockOutput{}
	logger := NewLogger(Config{Severity: DEBUG, Outputs: []Output{out}})

	ctx := WithRunID(context.Background(), "trial-42")
	logger.Info(ctx, "generation %d done", 7)

	entries := out.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "trial-42", entries[0].RunID)
	assert.Equal(t, "generation 7 done", entries[0].Message)
}

func TestDefaultFields(t *testing.T) {
	out := &mockOutput{}
	logger := NewLogger(Config{
		Severity:      INFO,
		Outputs:       []Output{out},
		DefaultFields: map[string]interface{}{"component": "engine"},
	})

	logger.Info(context.Background(), "hello")

	entries := out.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "engine", entries[0].Fields["component"])
}

func TestGlobalLogger(t *testing.T) {
	first := GetLogger()
	assert.NotNil(t, first)

	custom := NewLogger(Config{Severity: DEBUG})
	SetLogger(custom)
	assert.Equal(t, custom, GetLogger())

	SetLogger(first)
}

func TestParseSeverity(t *testing.T) {
	assert.Equal(t, DEBUG, ParseSeverity("DEBUG"))
	assert.Equal(t, ERROR, ParseSeverity("ERROR"))
	assert.Equal(t, INFO, ParseSeverity("nonsense"))
}
