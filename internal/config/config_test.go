package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		config      string
		wantErr     bool
		errContains string
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name: "full_config",
			config: `
input_dir: ./exports
output_file: out/summary.csv
log_level: DEBUG
verbose: true
exclude_patterns:
  - "*.draft.xml"
  - "tmp_*"
summary_dir: ./logs
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "./exports", cfg.InputDir, "input dir should match")
				assert.Equal(t, "out/summary.csv", cfg.OutputFile, "output file should match")
				assert.Equal(t, "debug", cfg.LogLevel, "log level should be lowercased")
				assert.True(t, cfg.Verbose, "verbose should be set")
				assert.Equal(t, []string{"*.draft.xml", "tmp_*"}, cfg.ExcludePatterns)
				assert.Equal(t, "./logs", cfg.SummaryDir)
			},
		},
		{
			name:   "defaults_applied",
			config: "input_dir: ./in\n",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DefaultOutputFile, cfg.OutputFile, "output file should default")
				assert.Equal(t, "info", cfg.LogLevel, "log level should default")
				assert.False(t, cfg.Verbose)
				assert.Empty(t, cfg.ExcludePatterns)
			},
		},
		{
			name:        "bad_yaml",
			config:      "input_dir: [unterminated\n",
			wantErr:     true,
			errContains: "failed to parse config file",
		},
		{
			name:        "bad_log_level",
			config:      "log_level: loud\n",
			wantErr:     true,
			errContains: "unknown log_level",
		},
		{
			name:        "bad_pattern",
			config:      "exclude_patterns: [\"[\"]\n",
			wantErr:     true,
			errContains: "invalid exclude pattern",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.config), 0o644))

			cfg, err := Load(path)
			if tt.wantErr {
				require.Error(t, err, "load should fail")
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err, "load should succeed")
			tt.check(t, cfg)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, DefaultOutputFile, cfg.OutputFile)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.NoError(t, cfg.Validate())
}

func TestRequireInputDir(t *testing.T) {
	cfg := Default()
	assert.Error(t, cfg.RequireInputDir(), "empty input dir should be rejected")

	cfg.InputDir = "  "
	assert.Error(t, cfg.RequireInputDir(), "blank input dir should be rejected")

	cfg.InputDir = "./in"
	assert.NoError(t, cfg.RequireInputDir())
}
