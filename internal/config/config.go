// Package config loads tasklist settings from a TOML file and the environment.
//
// Precedence, lowest first: defaults, config file, environment, command line flags.
// Flags are applied by the caller after Load returns.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

var ErrInvalidBackend = errors.New("invalid backend")

// Backends understood by the command line
const (
	BackendFile   = "file"
	BackendMemory = "memory"
	BackendMySQL  = "mysql"
)

// FileName is the config file looked up inside the workspace state directory
const FileName = "config.toml"

// Config holds every tunable setting
type Config struct {
	Backend         string `toml:"backend"`
	DSN             string `toml:"dsn"`
	LogLevel        string `toml:"log_level"`
	LogFormat       string `toml:"log_format"`
	SeedDemo        bool   `toml:"seed_demo"`
	DefaultPriority string `toml:"default_priority"`
	DefaultFilter   string `toml:"default_filter"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Backend:         BackendFile,
		DSN:             "root:123456@tcp(127.0.0.1:3306)/tasklist?parseTime=true",
		LogLevel:        "warn",
		LogFormat:       "text",
		SeedDemo:        true,
		DefaultPriority: "medium",
		DefaultFilter:   "all",
	}
}

// DefaultPath returns the config path for a workspace
func DefaultPath(workspaceDir string) string {
	return filepath.Join(workspaceDir, ".tasklist", FileName)
}

// Load reads path (a missing file is fine), then applies environment overrides
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		// File doesn't exist, not an error
	default:
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("TASKLIST_BACKEND"); ok && v != "" {
		c.Backend = v
	}
	if v, ok := lookup("TASKLIST_DSN"); ok && v != "" {
		c.DSN = v
	}
	if v, ok := lookup("LOG_LEVEL"); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := lookup("LOG_FORMAT"); ok && v != "" {
		c.LogFormat = v
	}
	if v, ok := lookup("TASKLIST_SEED_DEMO"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("TASKLIST_SEED_DEMO: %w", err)
		}
		c.SeedDemo = b
	}
	return nil
}

// Validate checks the backend and normalizes case
func (c *Config) Validate() error {
	c.Backend = strings.ToLower(strings.TrimSpace(c.Backend))
	switch c.Backend {
	case BackendFile, BackendMemory:
	case BackendMySQL:
		if c.DSN == "" {
			return fmt.Errorf("%w: mysql backend needs a dsn", ErrInvalidBackend)
		}
	default:
		return fmt.Errorf("%w: %q", ErrInvalidBackend, c.Backend)
	}
	return nil
}

// Write stores c as TOML at path, creating parent directories
func Write(path string, c Config) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
