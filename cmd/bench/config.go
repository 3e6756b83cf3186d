package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config tunes a bench run. Builds come from the command line.
type Config struct {
	Seed    int64   `env:"STACKFIRE_SEED"          envDefault:"1"`
	Seconds float64 `env:"STACKFIRE_BENCH_SECONDS" envDefault:"30"`
	Targets int     `env:"STACKFIRE_BENCH_TARGETS" envDefault:"6"`
	HP      float64 `env:"STACKFIRE_BENCH_HP"      envDefault:"400"`
	Plain   bool    `env:"STACKFIRE_BENCH_PLAIN"`
}

// LoadConfig parses the configuration. A nil environ reads the process
// environment.
func LoadConfig(environ map[string]string) (Config, error) {
	var cfg Config
	opts := env.Options{}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Seconds <= 0 || cfg.Targets <= 0 || cfg.HP <= 0 {
		return Config{}, fmt.Errorf("invalid config: seconds, targets and hp must be positive")
	}
	return cfg, nil
}
