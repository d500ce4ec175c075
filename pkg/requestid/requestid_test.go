package requestid_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lloms/securekit/pkg/logger"
	"github.com/lloms/securekit/pkg/requestid"
)

func TestValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		id   string
		want bool
	}{
		{"abc-123_XYZ", true},
		{uuid.NewString(), true},
		{"", false},
		{"has space", false},
		{"<script>", false},
		{"line\nbreak", false},
		{strings.Repeat("a", 128), true},
		{strings.Repeat("a", 129), false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, requestid.Valid(tt.id), "id %q", tt.id)
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "job-42", requestid.Resolve("job-42"))

	generated := requestid.Resolve("bad id")
	_, err := uuid.Parse(generated)
	require.NoError(t, err)

	assert.NotEqual(t, requestid.New(), requestid.New())
}

func TestContext(t *testing.T) {
	t.Parallel()

	assert.Empty(t, requestid.FromContext(context.Background()))
	//nolint:staticcheck // nil context is handled explicitly
	assert.Empty(t, requestid.FromContext(nil))

	ctx := requestid.WithContext(context.Background(), "abc")
	assert.Equal(t, "abc", requestid.FromContext(ctx))
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithContextExtractors(requestid.LoggerExtractor()))

	log.InfoContext(requestid.WithContext(context.Background(), "req-1"), "hello")
	assert.Contains(t, buf.String(), `"request_id":"req-1"`)

	buf.Reset()
	log.InfoContext(context.Background(), "hello")
	assert.NotContains(t, buf.String(), "request_id")
}
