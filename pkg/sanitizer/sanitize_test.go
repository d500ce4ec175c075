package sanitizer_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lloms/securekit/pkg/sanitizer"
)

// forbidden must never appear, case-insensitively, in sanitized output.
var forbidden = []string{"<script", "javascript:", "data:", "vbscript:", "<iframe", "<object", "<embed"}

func assertClean(t testing.TB, s string) {
	t.Helper()
	lower := strings.ToLower(s)
	for _, f := range forbidden {
		assert.NotContains(t, lower, f)
	}
}

func TestSanitize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "removes script element",
			input:    "<script>alert(1)</script>Hello",
			expected: "Hello",
		},
		{
			name:     "removes quoted event handler",
			input:    `<img src=x onerror="alert(1)">`,
			expected: `<img src=x>`,
		},
		{
			name:     "removes handler glued to a quoted value",
			input:    `<img src="x"onerror=alert(1)>`,
			expected: `<img src="x">`,
		},
		{
			name:     "removes handler glued to a single quoted value",
			input:    `<svg id='a'onload='go()'>`,
			expected: `<svg id='a'>`,
		},
		{
			name:     "defeats nested script reconstruction",
			input:    "<scr<script>ipt>alert(1)</script>",
			expected: "<scr",
		},
		{
			name:     "script with attributes and upper case",
			input:    `<SCRIPT type="text/javascript">evil()</SCRIPT >ok`,
			expected: "ok",
		},
		{
			name:     "script close tag spanning lines",
			input:    "<script\n>x</script\n bar>after",
			expected: "after",
		},
		{
			name:     "removes iframe",
			input:    `<iframe src="https://evil"></iframe>text`,
			expected: "text",
		},
		{
			name:     "removes object",
			input:    `<object data="x.swf"></object>ok`,
			expected: "ok",
		},
		{
			name:     "removes unterminated embed",
			input:    "<embed src=x>",
			expected: "",
		},
		{
			name:     "strips javascript protocol in attribute",
			input:    `<a href="javascript:alert(1)">x</a>`,
			expected: `<a href="alert(1)">x</a>`,
		},
		{
			name:     "strips nested javascript protocol",
			input:    "javajavascript:script:alert(1)",
			expected: "alert(1)",
		},
		{
			name:     "strips nested data protocol",
			input:    "dadata:ta:x",
			expected: "x",
		},
		{
			name:     "strips vbscript protocol",
			input:    "vbscript:msgbox(1)",
			expected: "msgbox(1)",
		},
		{
			name:     "removes single quoted handler",
			input:    `<div onclick='steal()'>hi</div>`,
			expected: `<div>hi</div>`,
		},
		{
			name:     "folds full-width evasion",
			input:    "ｊａｖａｓｃｒｉｐｔ：alert(1)",
			expected: "alert(1)",
		},
		{
			name:     "keeps benign text",
			input:    "hello world",
			expected: "hello world",
		},
		{
			name:     "keeps benign markup and colons",
			input:    "<b>Meet at 10:30</b>",
			expected: "<b>Meet at 10:30</b>",
		},
		{
			name:     "handles empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := sanitizer.Sanitize(tt.input)
			assert.Equal(t, tt.expected, got)
			assertClean(t, got)
			assert.Equal(t, got, sanitizer.Sanitize(got), "sanitize must be idempotent")
		})
	}
}

func TestSanitize_KeepsCleanUnicode(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"Café™ ﬁle ① x²",
		"ｶﾀｶﾅ",
		"Ｔｏｋｙｏ ２０２６",
		"Straße ½ kg",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, in, sanitizer.Sanitize(in))
			assert.Equal(t, in, sanitizer.Validate(in, sanitizer.KindText))
			assert.False(t, sanitizer.IsMalicious(in))
		})
	}
}

func TestSanitize_FoldsOnlyDisguisedPayloads(t *testing.T) {
	t.Parallel()

	got := sanitizer.Sanitize("Café ＜ｓｃｒｉｐｔ＞x＜／ｓｃｒｉｐｔ＞ok")
	assert.Equal(t, "Café ok", got)
	assertClean(t, got)
}

func TestSanitizeValue(t *testing.T) {
	t.Parallel()

	s := "<script>x</script>ok"
	var nilPtr *string

	assert.Equal(t, "ok", sanitizer.SanitizeValue(s))
	assert.Equal(t, "ok", sanitizer.SanitizeValue(&s))
	assert.Equal(t, "", sanitizer.SanitizeValue(nil))
	assert.Equal(t, "", sanitizer.SanitizeValue(nilPtr))
	assert.Equal(t, "", sanitizer.SanitizeValue(42))
	assert.Equal(t, "", sanitizer.SanitizeValue([]byte("ok")))
}

// nestedScript wraps a script element depth times so that every pass
// removes exactly one level.
func nestedScript(depth int) string {
	s := "<script>x</script>"
	for range depth {
		s = "<scr" + s + "ipt>x</script>"
	}
	return s
}

func TestSanitize_DeepNesting(t *testing.T) {
	t.Parallel()

	got := sanitizer.Sanitize(nestedScript(20))
	assert.Equal(t, "", got)
}

func TestEngine_Ceiling(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := slog.New(slog.NewJSONHandler(buf, nil))
	eng := sanitizer.New(sanitizer.WithMaxRounds(3), sanitizer.WithLogger(log))

	got := eng.Sanitize(nestedScript(10) + ` <a href="javascript:x">`)

	assertClean(t, got)
	assert.NotContains(t, got, "<")
	assert.NotContains(t, got, ">")
	assert.NotContains(t, got, ":")
	assert.NotContains(t, got, "=")
	assert.Equal(t, got, eng.Sanitize(got), "fallback output must be a fixed point")

	require.NotZero(t, buf.Len())
	assert.Contains(t, buf.String(), `"event":"sanitize_ceiling"`)
	assert.Contains(t, buf.String(), `"level":"WARN"`)
}

func TestEngine_Options(t *testing.T) {
	t.Parallel()

	t.Run("without normalization full-width text is left alone", func(t *testing.T) {
		t.Parallel()
		eng := sanitizer.New(sanitizer.WithNormalization(false))
		assert.Equal(t, "ｊａｖａｓｃｒｉｐｔ：x", eng.Sanitize("ｊａｖａｓｃｒｉｐｔ：x"))
	})

	t.Run("config applies rounds and normalization", func(t *testing.T) {
		t.Parallel()
		eng := sanitizer.New(sanitizer.WithConfig(sanitizer.Config{MaxRounds: 1, Normalize: true}))
		got := eng.Sanitize(nestedScript(5))
		assert.NotContains(t, got, "<")
	})

	t.Run("non-positive rounds keep default", func(t *testing.T) {
		t.Parallel()
		eng := sanitizer.New(sanitizer.WithMaxRounds(0), sanitizer.WithLogger(nil))
		assert.Equal(t, "", eng.Sanitize(nestedScript(20)))
	})
}

func TestCompose(t *testing.T) {
	t.Parallel()

	clean := sanitizer.Compose(strings.TrimSpace, sanitizer.Sanitize, sanitizer.EscapeHTML)
	assert.Equal(t, "&lt;b&gt;hi&lt;/b&gt;", clean("  <b>hi</b><script>x</script>  "))
	assert.Equal(t, "x", sanitizer.Apply("x"))
}

func TestEscapeHTML(t *testing.T) {
	t.Parallel()

	escaped := sanitizer.EscapeHTML(`<p title="a">'b' & c</p>`)
	assert.Equal(t, "&lt;p title=&#34;a&#34;&gt;&#39;b&#39; &amp; c&lt;/p&gt;", escaped)
	assert.Equal(t, `<p title="a">'b' & c</p>`, sanitizer.UnescapeHTML(escaped))
}
