// =============================================================================
// CFmask Dispatcher - Configuration Module
// =============================================================================
//
// The dispatcher forwards every command-line option to the CFmask executable,
// so none of its own settings can come from flags. They are resolved in three
// layers, later layers winning:
//
//   1. Built-in defaults
//   2. An optional YAML file named by CFMASK_DISPATCH_CONFIG
//   3. Individual environment variables (CFMASK_L8_EXECUTABLE, ...)
//
// With nothing set, the dispatcher runs l8cfmask or cfmask from PATH and logs
// at info level to stderr.
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/lsrd/cfmask-dispatcher/internal/platform"
)

// EnvConfigFile names the environment variable holding the YAML file path.
const EnvConfigFile = "CFMASK_DISPATCH_CONFIG"

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the dispatcher settings.
type Config struct {
	// =========================================================================
	// EXECUTABLES
	// =========================================================================

	// Landsat8Executable runs LC8 and LO8 scenes.
	// Default: "l8cfmask"
	Landsat8Executable string `yaml:"landsat8_executable" env:"CFMASK_L8_EXECUTABLE"`

	// LegacyExecutable runs LT4, LT5 and LE7 scenes.
	// Default: "cfmask"
	LegacyExecutable string `yaml:"legacy_executable" env:"CFMASK_LEGACY_EXECUTABLE"`

	// =========================================================================
	// LOGGING SETTINGS
	// =========================================================================

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level" env:"CFMASK_LOG_LEVEL"`

	// LogFile, when set, receives a copy of every log line.
	LogFile string `yaml:"log_file" env:"CFMASK_LOG_FILE"`
}

// Executables returns the configured executable names.
func (c *Config) Executables() platform.Executables {
	return platform.Executables{
		Landsat8: c.Landsat8Executable,
		Legacy:   c.LegacyExecutable,
	}
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// Load resolves the configuration from the file named by CFMASK_DISPATCH_CONFIG
// (if any) and the environment.
func Load() (*Config, error) {
	return LoadFile(os.Getenv(EnvConfigFile))
}

// LoadFile resolves the configuration from configPath and the environment.
// An empty configPath skips the file layer.
func LoadFile(configPath string) (*Config, error) {
	var config Config

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	// Environment variables override the file.
	if err := env.Parse(&config); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	applyDefaults(&config)

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(config *Config) {
	if config.Landsat8Executable == "" {
		config.Landsat8Executable = platform.DefaultLandsat8Executable
	}
	if config.LegacyExecutable == "" {
		config.LegacyExecutable = platform.DefaultLegacyExecutable
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
}

// validate checks values that defaults cannot repair.
func validate(config *Config) error {
	if _, err := log.ParseLevel(config.LogLevel); err != nil {
		return fmt.Errorf("log_level %q: %w", config.LogLevel, err)
	}
	return nil
}
