package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Logger records access decisions as structured log events. It is advisory
// diagnostics only: recording never influences a verdict, and a logging
// failure never blocks a request.
type Logger struct {
	log *slog.Logger
}

// NewLogger creates a decision logger writing through the given slog logger.
// A nil logger discards events.
func NewLogger(log *slog.Logger) *Logger {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Logger{log: log}
}

// Record logs the event, filling in the ID and timestamp when unset.
func (l *Logger) Record(ctx context.Context, e Event) Event {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.Time.IsZero() {
		e.Time = time.Now()
	}

	l.log.LogAttrs(ctx, slog.LevelWarn, "access decision",
		slog.String("event_id", e.ID.String()),
		slog.Time("decision_time", e.Time),
		slog.String("outcome", string(e.Outcome)),
		slog.String("operation", e.Operation),
		slog.String("role", e.Role),
		slog.String("identity", e.Identity),
	)

	return e
}
