// =============================================================================
// XML Status Summary - Configuration Module
// =============================================================================
//
// This module loads the optional YAML configuration file. Every setting can
// also be given on the command line; flags that are set explicitly override
// the file.
//
// CONFIGURATION FILE (config.yaml):
//   input_dir: ./input
//   output_file: status_output.csv
//   log_level: info
//   verbose: false
//   exclude_patterns:
//     - "*.draft.xml"
//   summary_dir: ./logs
//
// =============================================================================

package config

import (
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// DefaultOutputFile is the output table written when no output file is configured.
const DefaultOutputFile = "status_output.csv"

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the settings for one run.
type Config struct {
	// InputDir is the directory scanned (non-recursively) for .xml files.
	// Required.
	InputDir string `yaml:"input_dir"`

	// OutputFile is the path of the CSV table to write.
	// Default: "status_output.csv"
	OutputFile string `yaml:"output_file"`

	// LogLevel controls the verbosity of the structured log on stderr.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// Verbose prints each processed file and its extracted values to stdout.
	Verbose bool `yaml:"verbose"`

	// ExcludePatterns are glob patterns (doublestar syntax) matched against
	// candidate file names. Matching files are skipped without being opened.
	ExcludePatterns []string `yaml:"exclude_patterns"`

	// SummaryDir, when set, receives a processing summary log after each run.
	SummaryDir string `yaml:"summary_dir"`
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load loads the configuration from a YAML file.
//
// PARAMETERS:
//   - configPath: The path to the configuration file.
//
// RETURNS:
//   - A pointer to the Config struct with defaults applied.
//   - An error if the file cannot be read, parsed or validated.
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config file %s", configPath)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid configuration in %s", configPath)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(cfg *Config) {
	if cfg.OutputFile == "" {
		cfg.OutputFile = DefaultOutputFile
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
}

// Validate checks the settings that can be checked without touching the
// file system.
func (c *Config) Validate() error {
	if !validLogLevels[c.LogLevel] {
		return errors.Newf("unknown log_level %q (valid: debug, info, warn, error)", c.LogLevel)
	}

	for _, pattern := range c.ExcludePatterns {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Newf("invalid exclude pattern %q", pattern)
		}
	}

	return nil
}

// RequireInputDir returns an error when no input directory is configured.
func (c *Config) RequireInputDir() error {
	if strings.TrimSpace(c.InputDir) == "" {
		return errors.WithHint(
			errors.New("no input directory configured"),
			"pass --input-dir or set input_dir in the config file")
	}
	return nil
}
