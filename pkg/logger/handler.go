package logger

import (
	"context"
	"log/slog"
)

// ContextExtractor pulls one attribute out of a record's context.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

// contextHandler adds context attributes to each record and optionally
// filters message text before handing the record to next.
type contextHandler struct {
	next       slog.Handler
	extractors []ContextExtractor
	filter     func(string) string
}

func newContextHandler(next slog.Handler, extractors []ContextExtractor, filter func(string) string) slog.Handler {
	if len(extractors) == 0 && filter == nil {
		return next
	}
	return &contextHandler{next: next, extractors: extractors, filter: filter}
}

func (h *contextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *contextHandler) Handle(ctx context.Context, rec slog.Record) error {
	if h.filter != nil {
		rec = h.filterRecord(rec)
	}
	for _, ex := range h.extractors {
		if attr, ok := ex(ctx); ok {
			rec.AddAttrs(attr)
		}
	}
	return h.next.Handle(ctx, rec)
}

// filterRecord copies rec because Record attributes cannot be replaced in
// place.
func (h *contextHandler) filterRecord(rec slog.Record) slog.Record {
	out := slog.NewRecord(rec.Time, rec.Level, h.filter(rec.Message), rec.PC)
	rec.Attrs(func(a slog.Attr) bool {
		out.AddAttrs(h.filterAttr(a))
		return true
	})
	return out
}

func (h *contextHandler) filterAttr(a slog.Attr) slog.Attr {
	v := a.Value.Resolve()
	switch v.Kind() {
	case slog.KindString:
		return slog.String(a.Key, h.filter(v.String()))
	case slog.KindGroup:
		attrs := v.Group()
		filtered := make([]slog.Attr, len(attrs))
		for i, ga := range attrs {
			filtered[i] = h.filterAttr(ga)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(filtered...)}
	case slog.KindAny:
		if err, ok := v.Any().(error); ok {
			return slog.String(a.Key, h.filter(err.Error()))
		}
	}
	return a
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if h.filter != nil {
		filtered := make([]slog.Attr, len(attrs))
		for i, a := range attrs {
			filtered[i] = h.filterAttr(a)
		}
		attrs = filtered
	}
	return &contextHandler{next: h.next.WithAttrs(attrs), extractors: h.extractors, filter: h.filter}
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return &contextHandler{next: h.next.WithGroup(name), extractors: h.extractors, filter: h.filter}
}
