// Package config reads the process-level configuration shared by the
// ScoreCraft executables from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Config holds the settings read from SCORECRAFT_* environment variables.
type Config struct {
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `env:"SCORECRAFT_LOG_LEVEL" envDefault:"info"`
	// LogFile is the path of the rotated JSON log. Empty disables file logging.
	LogFile string `env:"SCORECRAFT_LOG_FILE"`
	// CatalogPath, if set, replaces the built-in instrument catalog.
	CatalogPath string `env:"SCORECRAFT_CATALOG"`
}

// Dir returns the per-user configuration directory of ScoreCraft, or an empty
// string if the platform has none.
func Dir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, "ScoreCraft")
}

// Parse reads the configuration from the environment. When
// SCORECRAFT_LOG_FILE is not set at all, the log goes to scorecraft.log in
// Dir(); setting it to an empty value disables the log file.
func Parse() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if _, ok := os.LookupEnv("SCORECRAFT_LOG_FILE"); !ok {
		if dir := Dir(); dir != "" {
			c.LogFile = filepath.Join(dir, "scorecraft.log")
		}
	}
	return c, nil
}
