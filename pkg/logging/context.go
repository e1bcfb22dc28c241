package logging

import "context"

type contextKey int

const runIDKey contextKey = iota

// WithRunID attaches a trial/run identifier to the context so every log
// record emitted during that run carries it.
func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey, id)
}

// RunID extracts the run identifier from the context, if present.
func RunID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(runIDKey).(string)
	return id, ok
}
