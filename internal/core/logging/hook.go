package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// ContextHook copies the run ID from an event's context onto the event.
type ContextHook struct{}

// Run adds contextual fields to the zerolog event.
func (h ContextHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	ctx := e.GetCtx()
	if ctx == nil || ctx == context.Background() {
		return
	}

	if runID := GetRunID(ctx); runID != "" {
		e.Str("run_id", runID)
	}
}

// ForContext binds ctx to every event of l and installs ContextHook, so
// child loggers built from the result carry the run ID without calling Ctx.
func ForContext(l zerolog.Logger, ctx context.Context) zerolog.Logger {
	return l.With().Ctx(ctx).Logger().Hook(ContextHook{})
}
