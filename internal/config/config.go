// Package config loads runner settings from the environment. A .env file in
// the working directory is honored when present.
package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds process-wide runner settings. Everything has a sensible
// default; a missing environment is fully valid.
type Config struct {
	// LogEnabled turns the operator file log on.
	LogEnabled bool `env:"MANAGE_LOG" envDefault:"false"`

	// LogLevel is the minimum file log level: debug, info, warn, error.
	LogLevel string `env:"MANAGE_LOG_LEVEL" envDefault:"warn"`

	// NoColor disables styled output regardless of TTY detection.
	NoColor bool `env:"MANAGE_NO_COLOR" envDefault:"false"`

	// HistoryEnabled records each invocation in the local history database.
	HistoryEnabled bool `env:"MANAGE_HISTORY" envDefault:"true"`

	// DBPath overrides the history database location.
	DBPath string `env:"MANAGE_DB_PATH"`
}

// Load reads the configuration from the environment. A .env file is loaded
// first if one exists; its absence is not an error.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
