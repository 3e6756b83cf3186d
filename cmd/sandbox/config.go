package main

import (
	"fmt"

	"github.com/1siamBot/stackfire/engine/compose"
	"github.com/1siamBot/stackfire/engine/core"
	"github.com/1siamBot/stackfire/engine/systems"
	"github.com/caarlos0/env/v11"
)

// Config is the sandbox setup, read from STACKFIRE_* environment variables.
// Builds preload pick sequences, e.g. "arrow:arrow.pierce,+count;beam:beam.prism".
type Config struct {
	Seed    int64    `env:"STACKFIRE_SEED"    envDefault:"1"`
	Mode    string   `env:"STACKFIRE_MODE"    envDefault:"sandbox"`
	Width   float64  `env:"STACKFIRE_WIDTH"   envDefault:"960"`
	Height  float64  `env:"STACKFIRE_HEIGHT"  envDefault:"720"`
	Weapons []string `env:"STACKFIRE_WEAPONS" envDefault:"arrow,fireball,beam,orb,frost" envSeparator:","`
	Builds  []string `env:"STACKFIRE_BUILDS"  envSeparator:";"`
	Enemies int      `env:"STACKFIRE_ENEMIES" envDefault:"8"`
	Debug   bool     `env:"STACKFIRE_DEBUG"`
}

var modes = map[string]func() core.Mode{
	"sandbox": core.SandboxMode,
	"scored":  core.ScoredMode,
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
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks ranges and names
func (c Config) Validate() error {
	if c.Width < 100 || c.Height < 100 {
		return fmt.Errorf("arena %vx%v is smaller than 100x100", c.Width, c.Height)
	}
	if c.Enemies < 0 {
		return fmt.Errorf("negative enemy count %d", c.Enemies)
	}
	if _, ok := modes[c.Mode]; !ok {
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	known := make(map[compose.WeaponID]bool)
	for _, id := range systems.Registered() {
		known[id] = true
	}
	for _, w := range c.Weapons {
		if !known[compose.WeaponID(w)] {
			return fmt.Errorf("unknown weapon %q", w)
		}
	}
	return nil
}

// GameMode returns the core mode named by the config
func (c Config) GameMode() core.Mode {
	if m, ok := modes[c.Mode]; ok {
		return m()
	}
	return core.SandboxMode()
}
