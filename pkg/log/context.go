package log

import "context"

type runIDKey struct{}

// WithRunID returns a copy of ctx carrying the given run ID.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey{}, runID)
}

// RunID returns the run ID stored in ctx, or "" when none is set.
func RunID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(runIDKey{}).(string)
	return id
}
