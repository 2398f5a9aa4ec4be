package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds settings read from the environment.
type Env struct {
	ConfigPath string `env:"SCRAMBLE_CONFIG"`
	DBPath     string `env:"SCRAMBLE_DB"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"warn"`
}

// ParseEnv loads Env from environment variables and fills unset paths with
// the XDG defaults.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	if e.ConfigPath == "" {
		e.ConfigPath = DefaultConfigPath()
	}
	if e.DBPath == "" {
		e.DBPath = DefaultDBPath()
	}
	return e, nil
}
