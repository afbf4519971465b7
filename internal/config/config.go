package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	toml "github.com/pelletier/go-toml/v2"
)

// Config holds htmlref settings. Values come from the TOML file, then from
// HTMLREF_* environment variables, then from command-line flags.
type Config struct {
	CatalogPath string `toml:"catalog_path" env:"HTMLREF_CATALOG"`
	LogFile     string `toml:"log_file" env:"HTMLREF_LOG_FILE"`
	LogLevel    string `toml:"log_level" env:"HTMLREF_LOG_LEVEL"`
	Theme       string `toml:"theme" env:"HTMLREF_THEME"`
}

const (
	defaultConfigPath = "~/.config/htmlref/config.toml"
	defaultLogLevel   = "info"
)

var validLevels = []string{"debug", "info", "warn", "error"}

// DefaultPath returns the config file location used when none is given.
func DefaultPath() string {
	return defaultConfigPath
}

// Load reads the config at path (or the default location), applies environment
// overrides and normalises the result. A missing file is not an error.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{LogLevel: defaultLogLevel}

	file, err := os.Open(resolved)
	switch {
	case err == nil:
		defer file.Close()
		bytes, err := io.ReadAll(file)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := toml.Unmarshal(bytes, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return Config{}, fmt.Errorf("open config: %w", err)
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.normalize(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Override applies non-empty values from flags on top of c.
func (c *Config) Override(catalogPath, logFile, logLevel string) error {
	if v := strings.TrimSpace(catalogPath); v != "" {
		c.CatalogPath = v
	}
	if v := strings.TrimSpace(logFile); v != "" {
		c.LogFile = v
	}
	if v := strings.TrimSpace(logLevel); v != "" {
		c.LogLevel = v
	}
	return c.normalize()
}

func (c *Config) normalize() error {
	c.CatalogPath = strings.TrimSpace(c.CatalogPath)
	if c.CatalogPath != "" {
		c.CatalogPath = mustExpand(c.CatalogPath)
	}

	c.LogFile = strings.TrimSpace(c.LogFile)
	if c.LogFile != "" {
		c.LogFile = mustExpand(c.LogFile)
	}

	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	valid := false
	for _, level := range validLevels {
		if c.LogLevel == level {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid log level %q (want one of %s)", c.LogLevel, strings.Join(validLevels, ", "))
	}

	c.Theme = strings.TrimSpace(c.Theme)
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath resolves a leading ~ and returns an absolute path.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
