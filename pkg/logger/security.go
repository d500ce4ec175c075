package logger

import (
	"context"
	"log/slog"
)

// EventTypeSecurity is the event_type value of every security event.
const EventTypeSecurity = "security"

// SecurityEvent writes a structured security event record.
// A nil logger is a no-op so library components can call it unconditionally.
func SecurityEvent(ctx context.Context, log *slog.Logger, level slog.Level, event string, attrs ...slog.Attr) {
	if log == nil {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if !log.Enabled(ctx, level) {
		return
	}

	all := make([]slog.Attr, 0, len(attrs)+2)
	all = append(all, EventType(EventTypeSecurity), Event(event))
	all = append(all, attrs...)
	log.LogAttrs(ctx, level, "security event", all...)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// OrDiscard returns log, or a discarding logger when log is nil.
func OrDiscard(log *slog.Logger) *slog.Logger {
	if log == nil {
		return Discard()
	}
	return log
}
