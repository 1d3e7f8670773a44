// Package modecfg loads the injected game-mode contract (spec.md §6
// "Game mode contract") from a small YAML document, the way the example
// pack's data loaders (e.g. internal/data/skill.go in the debug-L1JGO
// server) decode static game configuration with gopkg.in/yaml.v3 struct
// tags rather than hand-rolled parsing. It stops at the mode's own
// parameters — full deck/card catalog loading stays out of scope per
// spec.md §1.
package modecfg

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk shape of a game mode's configuration.
type Config struct {
	ID                 string `yaml:"id"`
	DisplayName        string `yaml:"display_name"`
	SeatCount          int    `yaml:"seat_count"`
	AssignRoles        bool   `yaml:"assign_roles"`
	EnableWinCondition bool   `yaml:"enable_win_condition"`
}

// Load parses a Config from path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("modecfg: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse parses a Config from raw YAML bytes.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("modecfg: unmarshal: %w", err)
	}
	if cfg.SeatCount <= 0 {
		cfg.SeatCount = 4
	}
	return cfg, nil
}
