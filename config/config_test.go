package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		API: APIConfig{
			URL:     "https://api.api-ninjas.com/v1/loremipsum",
			Key:     "valid-api-key",
			Timeout: 30 * time.Second,
		},
		Generate: GenerateConfig{Paragraphs: 1},
		Batch:    BatchConfig{Concurrency: 4},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		modify      func(*Config)
		wantErr     bool
		errContains string
	}{
		{
			name:   "valid",
			modify: func(c *Config) {},
		},
		{
			name:        "missing key",
			modify:      func(c *Config) { c.API.Key = "" },
			wantErr:     true,
			errContains: "api.key",
		},
		{
			name:        "placeholder key",
			modify:      func(c *Config) { c.API.Key = "your-api-key-here" },
			wantErr:     true,
			errContains: "api.key",
		},
		{
			name:        "relative URL",
			modify:      func(c *Config) { c.API.URL = "v1/loremipsum" },
			wantErr:     true,
			errContains: "api.url",
		},
		{
			name:        "negative timeout",
			modify:      func(c *Config) { c.API.Timeout = -time.Second },
			wantErr:     true,
			errContains: "api.timeout",
		},
		{
			name:   "zero paragraphs",
			modify: func(c *Config) { c.Generate.Paragraphs = 0 },
		},
		{
			name:        "negative paragraphs",
			modify:      func(c *Config) { c.Generate.Paragraphs = -1 },
			wantErr:     true,
			errContains: "generate.paragraphs",
		},
		{
			name:        "zero concurrency",
			modify:      func(c *Config) { c.Batch.Concurrency = 0 },
			wantErr:     true,
			errContains: "batch.concurrency",
		},
		{
			name:        "invalid level",
			modify:      func(c *Config) { c.Logging.Level = "trace" },
			wantErr:     true,
			errContains: "invalid logging level: trace",
		},
		{
			name:        "invalid format",
			modify:      func(c *Config) { c.Logging.Format = "xml" },
			wantErr:     true,
			errContains: "invalid logging format: xml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.modify(cfg)

			err := validate(cfg)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
api:
  key: file-key
  timeout: 10s
generate:
  paragraphs: 3
  filter: Words > 2
logging:
  level: debug
  format: json
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "file-key", cfg.API.Key)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
	assert.Equal(t, "https://api.api-ninjas.com/v1/loremipsum", cfg.API.URL)
	assert.Equal(t, 3, cfg.Generate.Paragraphs)
	assert.Equal(t, "Words > 2", cfg.Generate.Filter)
	assert.Equal(t, 4, cfg.Batch.Concurrency)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api:\n  key: file-key\n"), 0o600))

	t.Setenv("LOREM_API_KEY", "env-key")
	t.Setenv("LOREM_BATCH_CONCURRENCY", "8")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.API.Key)
	assert.Equal(t, 8, cfg.Batch.Concurrency)
}

func TestLoad_WithoutFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)

	t.Run("env only", func(t *testing.T) {
		t.Setenv("LOREM_API_KEY", "env-key")

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "env-key", cfg.API.Key)
		assert.Equal(t, 1, cfg.Generate.Paragraphs)
	})

	t.Run("no key", func(t *testing.T) {
		t.Setenv("LOREM_API_KEY", "")

		_, err := Load("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "api.key")
	})

	t.Run("explicit path missing", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "missing.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error reading config")
	})
}
