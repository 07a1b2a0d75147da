// Package config loads runtime settings for the input tree editor.
//
// Settings come from an optional YAML file, then INPUTTREE_* environment
// variables, which win over the file. The file path is INPUTTREE_CONFIG if
// set, else $XDG_CONFIG_HOME/inputtree/config.yaml (~/.config/inputtree).
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alexanderramin/inputtree/internal/domain"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the editor.
type Config struct {
	RootGuard      domain.RootGuard      `yaml:"root_guard"`
	BroadcastScope domain.BroadcastScope `yaml:"broadcast_scope"`
	HistoryLimit   int                   `yaml:"history_limit"`
	LogUseCases    bool                  `yaml:"log_use_cases"`
	LogLevel       string                `yaml:"log_level"`
}

// DefaultConfig returns the literal editor behavior: position-guarded root
// and global broadcast.
func DefaultConfig() Config {
	return Config{
		RootGuard:      domain.GuardPosition,
		BroadcastScope: domain.ScopeGlobal,
		HistoryLimit:   100,
		LogUseCases:    false,
		LogLevel:       "info",
	}
}

// Path returns the config file location, or "" when no home directory can
// be determined.
func Path() string {
	if p := os.Getenv("INPUTTREE_CONFIG"); p != "" {
		return p
	}
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "inputtree", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "inputtree", "config.yaml")
}

// LoadConfig reads the config file at Path, applies environment overrides
// and validates the result.
func LoadConfig() (Config, error) {
	return LoadFrom(Path())
}

// LoadFrom reads config from a specific path. A missing file yields the
// defaults with environment overrides applied.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parsing config %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return cfg, fmt.Errorf("reading config: %w", err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("INPUTTREE_ROOT_GUARD"); v != "" {
		cfg.RootGuard = domain.RootGuard(strings.ToLower(v))
	}
	if v := os.Getenv("INPUTTREE_BROADCAST_SCOPE"); v != "" {
		cfg.BroadcastScope = domain.BroadcastScope(strings.ToLower(v))
	}
	if v := os.Getenv("INPUTTREE_HISTORY_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.HistoryLimit = n
		}
	}
	if v := os.Getenv("INPUTTREE_LOG_USE_CASES"); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("INPUTTREE_LOG_LEVEL"); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
}

// Validate rejects unknown modes and non-positive history limits.
func (c Config) Validate() error {
	if !domain.ValidRootGuards[string(c.RootGuard)] {
		return fmt.Errorf("invalid root_guard %q: want position or token", c.RootGuard)
	}
	if !domain.ValidBroadcastScopes[string(c.BroadcastScope)] {
		return fmt.Errorf("invalid broadcast_scope %q: want global or lineage", c.BroadcastScope)
	}
	if c.HistoryLimit <= 0 {
		return fmt.Errorf("invalid history_limit %d: must be positive", c.HistoryLimit)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel maps LogLevel onto a slog.Level.
func (c Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}
