// Package config loads process configuration from the environment.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// Config is the full runtime configuration of the planner server.
type Config struct {
	Port string `env:"PORT" envDefault:"8000"`

	StorageDriver string `env:"WORKOUT_STORAGE_DRIVER" envDefault:"file"`
	// StoragePath is a directory for the file driver and a database file
	// for sqlite and bolt.
	StoragePath string `env:"WORKOUT_STORAGE_PATH" envDefault:"data"`

	RedisAddr     string `env:"WORKOUT_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"WORKOUT_REDIS_PASSWORD"`
	RedisDB       int    `env:"WORKOUT_REDIS_DB" envDefault:"0"`
	RedisPrefix   string `env:"WORKOUT_REDIS_PREFIX" envDefault:"workout:"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	OTelEnabled  bool   `env:"WORKOUT_OTEL_ENABLED" envDefault:"true"`
	OTelEndpoint string `env:"WORKOUT_OTEL_ENDPOINT"`

	CORSOrigins []string `env:"WORKOUT_CORS_ORIGINS" envSeparator:"," envDefault:"*"`

	// ICSStartHour is the local hour the first exercise of a day starts at
	// in calendar exports.
	ICSStartHour int `env:"WORKOUT_ICS_START_HOUR" envDefault:"7"`
}

// Load parses Config from the environment and checks value ranges.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.ICSStartHour < 0 || cfg.ICSStartHour > 23 {
		return Config{}, fmt.Errorf("WORKOUT_ICS_START_HOUR must be 0-23, got %d", cfg.ICSStartHour)
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
