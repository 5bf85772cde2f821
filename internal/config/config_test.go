package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 4, cfg.Conversion.Workers)
	assert.Equal(t, 2, cfg.Conversion.MaxConcurrentJobs)
	assert.False(t, cfg.Conversion.Overwrite)
	assert.Equal(t, "info", cfg.Observability.LogLevel)
	assert.Equal(t, "console", cfg.Observability.LogFormat)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bandconv.yaml")
	yaml := `
conversion:
  workers: 8
  max_concurrent_jobs: 3
  overwrite: true
  output_dir: /data/out
observability:
  log_level: debug
  log_format: json
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Conversion.Workers)
	assert.Equal(t, 3, cfg.Conversion.MaxConcurrentJobs)
	assert.True(t, cfg.Conversion.Overwrite)
	assert.Equal(t, "/data/out", cfg.Conversion.OutputDir)
	assert.Equal(t, "debug", cfg.Observability.LogLevel)
	assert.Equal(t, "json", cfg.Observability.LogFormat)
}

func TestLoad_MissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("BANDCONV_WORKERS", "6")
	t.Setenv("BANDCONV_MAX_JOBS", "5")
	t.Setenv("BANDCONV_OUTPUT_DIR", "/tmp/converted")
	t.Setenv("BANDCONV_OVERWRITE", "true")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Conversion.Workers)
	assert.Equal(t, 5, cfg.Conversion.MaxConcurrentJobs)
	assert.Equal(t, "/tmp/converted", cfg.Conversion.OutputDir)
	assert.True(t, cfg.Conversion.Overwrite)
	assert.Equal(t, "warn", cfg.Observability.LogLevel)
	assert.Equal(t, "json", cfg.Observability.LogFormat)
}

func TestLoad_BadEnvNumberIgnored(t *testing.T) {
	t.Setenv("BANDCONV_WORKERS", "lots")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Conversion.Workers)
}

func TestValidate_Failures(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Conversion.Workers = 0
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Conversion.MaxConcurrentJobs = -1
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Observability.LogFormat = "xml"
	assert.Error(t, cfg.Validate())
}
