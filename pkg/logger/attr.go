package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
// If id is nil, it returns an empty Attr.
func RequestID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("request_id", id)
}

// EventType records the event type under the key "event_type".
func EventType(eventType string) slog.Attr {
	return slog.String("event_type", eventType)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event records the event name under the key "event".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Key records a storage key under the key "key".
// Only the key is logged, never the stored value.
func Key(key string) slog.Attr {
	return slog.String("key", key)
}

// InputKind records the validated input kind under the key "input_kind".
func InputKind(kind string) slog.Attr {
	return slog.String("input_kind", kind)
}

// Pattern records a matched catalog pattern under the key "pattern".
func Pattern(name string) slog.Attr {
	return slog.String("pattern", name)
}

// Rounds records the number of sanitization passes under the key "rounds".
func Rounds(n int) slog.Attr {
	return slog.Int("rounds", n)
}

// InputLength records an input size in bytes under the key "input_len".
// Untrusted input itself is never logged.
func InputLength(n int) slog.Attr {
	return slog.Int("input_len", n)
}
