package requestid

import (
	"context"
	"log/slog"
	"regexp"

	"github.com/google/uuid"
)

const maxLength = 128

var validID = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

type contextKey struct{}

// New returns a random UUID string.
func New() string {
	return uuid.NewString()
}

// Valid reports whether id is 1 to 128 characters of letters, digits, '-'
// and '_'. Anything else could smuggle markup or newlines into logs.
func Valid(id string) bool {
	return id != "" && len(id) <= maxLength && validID.MatchString(id)
}

// Resolve returns id when it is Valid and a fresh id otherwise.
func Resolve(id string) string {
	if Valid(id) {
		return id
	}
	return New()
}

func WithContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns the id stored by WithContext, or "".
func FromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(contextKey{}).(string)
	return id
}

// LoggerExtractor adds request_id to log records whose context carries one.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id := FromContext(ctx); id != "" {
			return slog.String("request_id", id), true
		}
		return slog.Attr{}, false
	}
}
