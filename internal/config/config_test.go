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

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, OutputRepr, cfg.Output)
	assert.Equal(t, "0", cfg.Fill)
	assert.Equal(t, 0.0, cfg.Normalize.NewMin)
	assert.Equal(t, 1.0, cfg.Normalize.NewMax)
	assert.Nil(t, cfg.Shuffle.Seed)
	assert.Equal(t, ',', cfg.CSV.DelimiterRune())
	require.NoError(t, cfg.Validate())
}

func TestLoadEmptyPath(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadPartialFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "prep.yaml")
	data := `
log_level: debug
normalize:
  new_min: -1
  new_max: 1
shuffle:
  seed: 42
csv:
  delimiter: ";"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, -1.0, cfg.Normalize.NewMin)
	assert.Equal(t, 1.0, cfg.Normalize.NewMax)
	require.NotNil(t, cfg.Shuffle.Seed)
	assert.Equal(t, int64(42), *cfg.Shuffle.Seed)
	assert.Equal(t, ';', cfg.CSV.DelimiterRune())

	// Untouched keys keep their defaults
	assert.Equal(t, OutputRepr, cfg.Output)
	assert.True(t, cfg.CSV.HasHeader)
	assert.Equal(t, 1.0, cfg.Clip.MaxValue)
}

func TestSaveLoad(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "prep.yaml")

	cfg := DefaultConfig()
	cfg.Output = OutputJSON
	cfg.Fill = "missing"
	seed := int64(7)
	cfg.Shuffle.Seed = &seed

	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prep.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: [unclosed"), 0644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PREP_OUTPUT", "json")
	t.Setenv("PREP_LOG_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, OutputJSON, cfg.Output)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"bad level", func(c *Config) { c.LogLevel = "verbose" }, true},
		{"bad output", func(c *Config) { c.Output = "xml" }, true},
		{"empty delimiter", func(c *Config) { c.CSV.Delimiter = "" }, true},
		{"long delimiter", func(c *Config) { c.CSV.Delimiter = "::" }, true},
		{"tab delimiter", func(c *Config) { c.CSV.Delimiter = "\t" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// clearEnv keeps the caller's environment from overriding loaded values.
func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("PREP_OUTPUT", "")
	t.Setenv("PREP_LOG_LEVEL", "")
}
