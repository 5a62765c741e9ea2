package slog

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type callIDKey struct{}

// withCallID returns ctx carrying a call id and logger tagged with it.
// An id already on ctx is reused so nested calls share the outer id.
func withCallID(ctx context.Context, logger *slog.Logger) (context.Context, *slog.Logger) {
	id, ok := ctx.Value(callIDKey{}).(string)
	if !ok {
		id = uuid.NewString()
		ctx = context.WithValue(ctx, callIDKey{}, id)
	}
	return ctx, logger.With("id", id)
}

// callLogger tags logger with the call id on ctx, if any.
func callLogger(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if id, ok := ctx.Value(callIDKey{}).(string); ok {
		return logger.With("id", id)
	}
	return logger
}
