package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lloms/securekit/pkg/config"
	"github.com/lloms/securekit/pkg/sanitizer"
	"github.com/lloms/securekit/pkg/securestore"
	"github.com/lloms/securekit/pkg/token"
)

// Tests in this file share the process environment and the config cache,
// so none of them run in parallel.

type cachedConfig struct {
	Value string `env:"CONFIG_TEST_CACHED" envDefault:"first"`
}

type requiredConfig struct {
	Value string `env:"CONFIG_TEST_REQUIRED,required"`
}

type overrideConfig struct {
	Name  string `env:"CONFIG_TEST_NAME"`
	Extra string `env:"CONFIG_TEST_EXTRA"`
}

func TestLoad_PackageDefaults(t *testing.T) {
	config.ResetCache()

	var sc sanitizer.Config
	require.NoError(t, config.Load(&sc))
	assert.Equal(t, 100, sc.MaxRounds)
	assert.True(t, sc.Normalize)

	var tc token.Config
	require.NoError(t, config.Load(&tc))
	assert.Equal(t, 32, tc.Length)

	var ssc securestore.Config
	require.NoError(t, config.Load(&ssc))
	assert.True(t, ssc.Encode)
	assert.Zero(t, ssc.LRUCapacity)
}

func TestLoad_FromEnvironment(t *testing.T) {
	config.ResetCache()
	t.Setenv("SANITIZER_MAX_ROUNDS", "7")
	t.Setenv("SANITIZER_NORMALIZE", "false")

	var sc sanitizer.Config
	require.NoError(t, config.Load(&sc))
	assert.Equal(t, 7, sc.MaxRounds)
	assert.False(t, sc.Normalize)
}

func TestLoad_Cached(t *testing.T) {
	config.ResetCache()
	t.Setenv("CONFIG_TEST_CACHED", "first")

	var a cachedConfig
	require.NoError(t, config.Load(&a))

	t.Setenv("CONFIG_TEST_CACHED", "second")

	var b cachedConfig
	require.NoError(t, config.Load(&b))
	assert.Equal(t, "first", b.Value)

	var c cachedConfig
	require.NoError(t, config.Reload(&c))
	assert.Equal(t, "second", c.Value)

	var d cachedConfig
	require.NoError(t, config.Load(&d))
	assert.Equal(t, "second", d.Value, "reload replaces the cached value")
}

func TestLoad_Errors(t *testing.T) {
	config.ResetCache()

	t.Run("missing required", func(t *testing.T) {
		os.Unsetenv("CONFIG_TEST_REQUIRED")
		var cfg requiredConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)

		t.Setenv("CONFIG_TEST_REQUIRED", "set")
		require.NoError(t, config.Load(&cfg), "failed loads are not cached")
		assert.Equal(t, "set", cfg.Value)
	})

	t.Run("bad type", func(t *testing.T) {
		t.Setenv("TOKEN_LENGTH", "many")
		var cfg token.Config
		assert.ErrorIs(t, config.Reload(&cfg), config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var cfg *sanitizer.Config
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
		assert.ErrorIs(t, config.Reload(cfg), config.ErrNilPointer)
	})

	t.Run("must load panics", func(t *testing.T) {
		os.Unsetenv("CONFIG_TEST_REQUIRED")
		config.ResetCache()
		var cfg requiredConfig
		assert.Panics(t, func() { config.MustLoad(&cfg) })
	})
}

func writeEnv(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadEnv(t *testing.T) {
	t.Cleanup(func() {
		os.Unsetenv("CONFIG_TEST_NAME")
		os.Unsetenv("CONFIG_TEST_EXTRA")
	})

	base := writeEnv(t, ".env", "CONFIG_TEST_NAME=base\nCONFIG_TEST_EXTRA=\"quoted value\"\n")
	override := writeEnv(t, ".env.override", "CONFIG_TEST_NAME=override\n")

	var cfg overrideConfig
	require.NoError(t, config.LoadEnv(base))
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "base", cfg.Name)
	assert.Equal(t, "quoted value", cfg.Extra)

	require.NoError(t, config.LoadEnv(base, override))
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "override", cfg.Name, "later files win and the cache is cleared")
	assert.Equal(t, "quoted value", cfg.Extra)
}

func TestLoadEnv_Missing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.env")

	err := config.LoadEnv(missing)
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	assert.Panics(t, func() { config.MustLoadEnv(missing) })
}
