package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	// Empty values read as unset.
	for _, key := range []string{
		"PORT", "DEBUG", "PROJECT_ID", "GEMINI_MODEL", "JOB_RESOLVER_MODE",
		"RATE_LIMIT_PER_HOUR", "FILTER_MODE", "ALLOWED_ORIGINS",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.Debug)
	assert.Equal(t, "gemini-2.5-pro", cfg.GeminiModel)
	assert.Equal(t, JobResolverScrape, cfg.JobResolverMode)
	assert.Equal(t, 50, cfg.RateLimitPerHour)
	assert.Equal(t, 1000, cfg.RateLimitGlobalPerDay)
	assert.Equal(t, 500, cfg.MaxMessageLength)
	assert.Equal(t, FilterOff, cfg.FilterMode)
	assert.InDelta(t, 0.58, cfg.SimilarityThreshold, 1e-9)
	assert.True(t, cfg.RefusalStatusOK)
	assert.Equal(t, 20, cfg.MinJobDescriptionLength)
	assert.Nil(t, cfg.AllowedOrigins)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DEBUG", "true")
	t.Setenv("JOB_RESOLVER_MODE", "bucket")
	t.Setenv("RATE_LIMIT_PER_HOUR", "5")
	t.Setenv("SIMILARITY_THRESHOLD", "0.7")
	t.Setenv("ALLOWED_ORIGINS", "https://chrisbarreras.com, https://www.chrisbarreras.com ,")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.Debug)
	assert.Equal(t, JobResolverBucket, cfg.JobResolverMode)
	assert.Equal(t, 5, cfg.RateLimitPerHour)
	assert.InDelta(t, 0.7, cfg.SimilarityThreshold, 1e-9)
	assert.Equal(t, []string{"https://chrisbarreras.com", "https://www.chrisbarreras.com"}, cfg.AllowedOrigins)
}

func TestLoadIgnoresUnparsableValues(t *testing.T) {
	t.Setenv("DEBUG", "definitely")
	t.Setenv("RATE_LIMIT_PER_HOUR", "fifty")

	cfg := Load()

	assert.False(t, cfg.Debug)
	assert.Equal(t, 50, cfg.RateLimitPerHour)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			JobResolverMode:       JobResolverScrape,
			FilterMode:            FilterOff,
			RateLimitPerHour:      50,
			RateLimitGlobalPerDay: 1000,
		}
	}

	t.Run("valid config passes", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("unknown resolver mode fails", func(t *testing.T) {
		cfg := valid()
		cfg.JobResolverMode = "crawl"

		err := cfg.Validate()
		require.Error(t, err)
		var cfgErr *ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, "JOB_RESOLVER_MODE", cfgErr.Field)
	})

	t.Run("bucket mode requires a bucket name", func(t *testing.T) {
		cfg := valid()
		cfg.JobResolverMode = JobResolverBucket
		cfg.JobPostBucket = ""

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "JOB_POST_BUCKET")
	})

	t.Run("unknown filter mode fails", func(t *testing.T) {
		cfg := valid()
		cfg.FilterMode = "regex"
		assert.Error(t, cfg.Validate())
	})

	t.Run("non-positive ceilings fail", func(t *testing.T) {
		cfg := valid()
		cfg.RateLimitGlobalPerDay = 0
		assert.Error(t, cfg.Validate())
	})
}

func TestResolveAPIKey(t *testing.T) {
	t.Run("environment variable wins", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "  env-key  ")

		keyFile := filepath.Join(t.TempDir(), "key")
		require.NoError(t, os.WriteFile(keyFile, []byte("file-key"), 0o600))
		cfg := &Config{GeminiAPIKeyFile: keyFile}

		key, err := cfg.ResolveAPIKey()
		require.NoError(t, err)
		assert.Equal(t, "env-key", key)
	})

	t.Run("falls back to the key file", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "")

		keyFile := filepath.Join(t.TempDir(), "key")
		require.NoError(t, os.WriteFile(keyFile, []byte("file-key\n"), 0o600))
		cfg := &Config{GeminiAPIKeyFile: keyFile}

		key, err := cfg.ResolveAPIKey()
		require.NoError(t, err)
		assert.Equal(t, "file-key", key)
	})

	t.Run("missing key file is not an error by itself", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "")
		cfg := &Config{GeminiAPIKeyFile: filepath.Join(t.TempDir(), "absent")}

		_, err := cfg.ResolveAPIKey()
		assert.ErrorIs(t, err, ErrAPIKeyNotFound)
	})

	t.Run("no source at all", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "")
		cfg := &Config{}

		_, err := cfg.ResolveAPIKey()
		assert.ErrorIs(t, err, ErrAPIKeyNotFound)
	})
}
