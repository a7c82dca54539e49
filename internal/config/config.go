// Package config provides centralized configuration management using Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration values for starcharter.
type Config struct {
	DataDir     string `mapstructure:"data_dir" yaml:"data_dir"`
	LogLevel    string `mapstructure:"log_level" yaml:"log_level"`
	LogFile     string `mapstructure:"log_file" yaml:"log_file"`
	WorldFile   string `mapstructure:"world_file" yaml:"world_file"`
	PaletteSeed int64  `mapstructure:"palette_seed" yaml:"palette_seed"`
	Profile     string `mapstructure:"profile" yaml:"profile"`
}

// Load loads configuration with full precedence:
// ENV vars > project config > XDG global config > defaults
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("starcharter")

	v.SetDefault("data_dir", ".starcharter")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")
	v.SetDefault("world_file", "")
	v.SetDefault("palette_seed", 0)
	v.SetDefault("profile", "default")

	v.SetEnvPrefix("STARCHARTER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Explicit ENV bindings for better int parsing. BindEnv only fails on
	// invalid key names, but the errors are checked anyway.
	for key, env := range map[string]string{
		"data_dir":     "STARCHARTER_DATA_DIR",
		"log_level":    "STARCHARTER_LOG_LEVEL",
		"log_file":     "STARCHARTER_LOG_FILE",
		"world_file":   "STARCHARTER_WORLD_FILE",
		"palette_seed": "STARCHARTER_PALETTE_SEED",
		"profile":      "STARCHARTER_PROFILE",
	} {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("binding %s env: %w", key, err)
		}
	}

	// Load global config first (if exists)
	globalPath := GlobalPath()
	if fileExists(globalPath) {
		v.SetConfigFile(globalPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading global config: %w", err)
		}
	}

	// Merge project config on top (if exists)
	projectPath := ProjectPath()
	if fileExists(projectPath) {
		v.SetConfigFile(projectPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Exists returns true if any config file exists (global or project).
func Exists() bool {
	return fileExists(GlobalPath()) || fileExists(ProjectPath())
}

// GlobalPath returns the XDG global config path.
// Returns ~/.config/starcharter/starcharter.yml or the XDG_CONFIG_HOME equivalent.
func GlobalPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "starcharter", "starcharter.yml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "starcharter", "starcharter.yml")
}

// ProjectPath returns the project-local config path in the current directory.
func ProjectPath() string {
	return "starcharter.yml"
}

// WriteGlobal writes the config to the XDG global location.
func WriteGlobal(cfg *Config) error {
	path := GlobalPath()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	return writeYAML(path, cfg)
}

// WriteProject writes the config to the project-local location.
func WriteProject(cfg *Config) error {
	return writeYAML(ProjectPath(), cfg)
}

func writeYAML(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
