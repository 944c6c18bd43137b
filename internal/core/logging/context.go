package logging

import "context"

type contextKey string

const runIDKey contextKey = "run_id"

// WithRunID tags ctx with the id of the current process run so log lines
// from one session of the board can be grouped.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey, runID)
}

// GetRunID retrieves the run ID from the context.
// Returns empty string if not present.
func GetRunID(ctx context.Context) string {
	if id, ok := ctx.Value(runIDKey).(string); ok {
		return id
	}
	return ""
}
