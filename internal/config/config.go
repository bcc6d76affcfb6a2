package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	appName = "bidboard"

	// ThemeFileEnv names a YAML file whose theme section overrides the config
	ThemeFileEnv = "BIDBOARD_THEME_FILE"
)

// Config represents the application configuration
type Config struct {
	KeyMappings KeyMappings `yaml:"key_mappings"`
	ColorScheme ColorScheme `yaml:"theme"`
	Board       Board       `yaml:"board"`
	Log         Log         `yaml:"log"`
}

// Board holds layout and data settings for the pipeline view
type Board struct {
	ColumnWidth           int    `yaml:"column_width"`
	SidebarWidth          int    `yaml:"sidebar_width"`
	CollapsedSidebarWidth int    `yaml:"collapsed_sidebar_width"`
	SeedFile              string `yaml:"seed_file,omitempty"`
}

// Log controls where the application writes its log file
type Log struct {
	Path  string `yaml:"path,omitempty"`
	Level string `yaml:"level"`
}

// Default returns a config with every value set to its default
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// loadThemeFile loads and merges theme from BIDBOARD_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(ThemeFileEnv)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		slog.Warn("ignoring theme file", "path", themeFile, "error", err)
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if err := yaml.Unmarshal(themeData, &themeConfig); err != nil {
		slog.Warn("ignoring malformed theme file", "path", themeFile, "error", err)
		return
	}
	config.ColorScheme.MergeFrom(themeConfig.Theme)
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		slog.Debug("config path unavailable, using defaults", "error", err)
		config := Default()
		loadThemeFile(config)
		return config, nil
	}
	return LoadFrom(configPath)
}

// LoadFrom loads config from an explicit path
// A missing file yields the defaults, a malformed one an error
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		config := Default()
		loadThemeFile(config)
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	// Theme file first so its preset choice is respected by the defaults
	loadThemeFile(&config)
	config.applyDefaults()

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", appName, "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
	c.Board.applyDefaults()
	c.Log.applyDefaults()
}

func (b *Board) applyDefaults() {
	if b.ColumnWidth <= 0 {
		b.ColumnWidth = 30
	}
	if b.SidebarWidth <= 0 {
		b.SidebarWidth = 22
	}
	if b.CollapsedSidebarWidth <= 0 {
		b.CollapsedSidebarWidth = 6
	}
}

func (l *Log) applyDefaults() {
	if l.Level == "" {
		l.Level = "info"
	}
}
