package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Match    MatchConfig
	UI       UIConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path           string
	MigrationsPath string
}

// MatchConfig holds scoring defaults.
type MatchConfig struct {
	TeamA         string
	TeamB         string
	Targets       []int
	DefaultTarget int
	PresetsPath   string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	DateFormat string
}

// Load reads configuration from file and env. Env var overrides use prefix MATCHPAD_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "matchpad", "matchpad.db"))
	v.SetDefault("database.migrations_path", "")
	v.SetDefault("match.team_a", "Us")
	v.SetDefault("match.team_b", "Them")
	v.SetDefault("match.targets", []int{11, 15, 21})
	v.SetDefault("match.default_target", 11)
	v.SetDefault("match.presets_path", filepath.Join(os.Getenv("HOME"), ".config", "matchpad", "presets.toml"))
	v.SetDefault("ui.date_format", "02/01")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("MATCHPAD_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "matchpad"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("MATCHPAD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := validate(c); err != nil {
		return Config{}, err
	}
	return c, nil
}

func validate(c Config) error {
	if len(c.Match.Targets) == 0 {
		return fmt.Errorf("match.targets must list at least one target score")
	}
	for _, t := range c.Match.Targets {
		if t < 1 {
			return fmt.Errorf("match.targets: target %d out of range", t)
		}
	}
	if c.Match.DefaultTarget < 1 {
		return fmt.Errorf("match.default_target must be positive")
	}
	return nil
}

// Save writes the provided config to disk, creating the config directory if needed.
// Used by the settings flow for non-sensitive preferences.
func Save(cfg Config) error {
	path := os.Getenv("MATCHPAD_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "matchpad", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("database.migrations_path", cfg.Database.MigrationsPath)
	v.Set("match.team_a", cfg.Match.TeamA)
	v.Set("match.team_b", cfg.Match.TeamB)
	v.Set("match.targets", cfg.Match.Targets)
	v.Set("match.default_target", cfg.Match.DefaultTarget)
	v.Set("match.presets_path", cfg.Match.PresetsPath)
	v.Set("ui.date_format", cfg.UI.DateFormat)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
