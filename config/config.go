// Package config loads the game settings from YAML.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"war/game"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

type Config struct {
	Player   string `yaml:"player"`
	Rules    string `yaml:"rules"`
	Seed     uint64 `yaml:"seed"`
	LogLevel string `yaml:"log_level"`
	Mission  int    `yaml:"mission"`
	Target   string `yaml:"target"`
}

// Default returns the hardcoded settings, matching default.yaml.
func Default() Config {
	return Config{
		Player:   "blue",
		Rules:    game.SingleDieRulesName,
		LogLevel: "warn",
	}
}

// Load reads the configuration.
// Search order: customPath -> ~/.war/config.yaml -> ./configs/war.yaml -> embedded default
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "war.yaml")); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parse(defaultYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse overlays data on the defaults and validates the result.
func parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".war", filename)
}

func (c Config) Validate() error {
	player, err := c.PlayerFaction()
	if err != nil {
		return err
	}
	if _, err := game.ParseRules(c.Rules); err != nil {
		return err
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	if c.Mission < 0 || c.Mission > len(game.MissionIDs) {
		return fmt.Errorf("mission must be between 0 and %d, got %d", len(game.MissionIDs), c.Mission)
	}
	if c.Target != "" {
		target, err := game.ParseFaction(c.Target)
		if err != nil {
			return fmt.Errorf("invalid target: %w", err)
		}
		if target == player {
			return fmt.Errorf("target %s is the player's own faction", target)
		}
	}
	return nil
}

func (c Config) PlayerFaction() (game.Faction, error) {
	return game.ParseFaction(c.Player)
}

func (c Config) RuleSet() (game.Rules, error) {
	return game.ParseRules(c.Rules)
}

func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.WarnLevel
	}
	return level
}

// FixedMission returns the forced mission, if any.
func (c Config) FixedMission() (*game.Mission, error) {
	if c.Mission == 0 {
		return nil, nil
	}
	m := &game.Mission{ID: game.MissionID(c.Mission)}
	if m.ID == game.DestroyFaction && c.Target != "" {
		target, err := game.ParseFaction(c.Target)
		if err != nil {
			return nil, fmt.Errorf("invalid target: %w", err)
		}
		m.Target = target
	}
	return m, nil
}
