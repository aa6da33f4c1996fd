// Package config holds the YAML run configuration for the CLI and the
// named environment presets.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tfunk1030/Test-yardage-sub000/internal/physics"
)

const (
	DefaultClub     = "driver"
	DefaultSkillPct = 100.0
)

// Config is one shot setup: which club, how well struck, and the
// weather it is hit into. Zero-valued integration settings fall back to
// the physics defaults.
type Config struct {
	Club     string                          `yaml:"club"`
	SkillPct float64                         `yaml:"skill"`
	ClubFile string                          `yaml:"club_file,omitempty"`
	Env      physics.EnvironmentalConditions `yaml:"environment"`
	Dt       float64                         `yaml:"dt,omitempty"`
	MaxTime  float64                         `yaml:"max_time,omitempty"`
}

// DefaultConfig is a tour-average driver under the standard atmosphere.
func DefaultConfig() *Config {
	return &Config{
		Club:     DefaultClub,
		SkillPct: DefaultSkillPct,
		Env:      physics.StandardConditions(),
	}
}

// Load reads a config file over the defaults, so partial files work.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config back out as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Options converts the integration settings for the simulator.
func (c *Config) Options() physics.Options {
	return physics.Options{Dt: c.Dt, MaxTime: c.MaxTime}
}
