package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"INPUT_DIR", "OUTPUT_DIR", "LOG_LEVEL"} {
		if v, ok := os.LookupEnv(k); ok {
			t.Cleanup(func() { os.Setenv(k, v) })
			os.Unsetenv(k)
		}
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := loadConfig("")

	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
	assert.Equal(t, "/pfs/videos", cfg.InputDir)
	assert.Equal(t, "/pfs/out", cfg.OutputDir)
}

func TestLoadConfig_FileThenEnv(t *testing.T) {
	clearConfigEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input_dir: /data/in\noutput_dir: /data/out\n"), 0o644))
	t.Setenv("OUTPUT_DIR", "/env/out")

	cfg, err := loadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, Config{InputDir: "/data/in", OutputDir: "/env/out", LogLevel: "info"}, cfg)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml"))

	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadConfig_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input_dir: [unterminated\n"), 0o644))

	_, err := loadConfig(path)

	assert.ErrorContains(t, err, "parse config")
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"no input", func(c *Config) { c.InputDir = "" }, "input_dir"},
		{"no output", func(c *Config) { c.OutputDir = "" }, "output_dir"},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, "log_level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(&cfg)
			err := cfg.validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
