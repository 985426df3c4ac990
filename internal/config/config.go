// Package config loads user settings from ~/.todo/config.yaml.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/jaydenyuan326/todo-list-manager/internal/history"
	"github.com/jaydenyuan326/todo-list-manager/internal/project"
)

// History depth stays within this band regardless of what the config
// file asks for: deep enough to be useful, small enough that snapshots
// stay readable.
const (
	MinHistoryDepth = 10
	MaxHistoryDepth = history.DefaultDepth
)

type Config struct {
	// DataDir is where the snapshot and activity log live.
	DataDir string `mapstructure:"data_dir"`

	// HistoryDepth bounds the undo and redo stacks.
	HistoryDepth int `mapstructure:"history_depth"`

	// DefaultProject is selected when the snapshot names no current
	// project.
	DefaultProject string `mapstructure:"default_project"`

	TUI TUIConfig `mapstructure:"tui"`
}

type TUIConfig struct {
	// Glyphs selects the glyph set ("unicode" or "ascii").
	Glyphs string `mapstructure:"glyphs"`
}

// Dir returns the config directory. TODO_CONFIG_DIR overrides the
// default ~/.todo (keeps unit tests from touching the real home).
func Dir() (string, error) {
	if v := strings.TrimSpace(os.Getenv("TODO_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".todo"), nil
}

// Load reads config.yaml from the config directory, filling defaults
// for anything unset. A missing file is not an error.
func Load() (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetDefault("data_dir", dir)
	v.SetDefault("history_depth", history.DefaultDepth)
	v.SetDefault("default_project", project.DefaultName)
	v.SetDefault("tui.glyphs", "unicode")

	_ = v.BindEnv("data_dir", "TODO_DIR")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.DataDir = expandHome(cfg.DataDir)
	cfg.HistoryDepth = ClampDepth(cfg.HistoryDepth)
	if strings.TrimSpace(cfg.DefaultProject) == "" {
		cfg.DefaultProject = project.DefaultName
	}
	if cfg.TUI.Glyphs != "ascii" {
		cfg.TUI.Glyphs = "unicode"
	}
	return &cfg, nil
}

// ClampDepth forces a history depth into the supported band.
func ClampDepth(n int) int {
	if n < MinHistoryDepth {
		return MinHistoryDepth
	}
	if n > MaxHistoryDepth {
		return MaxHistoryDepth
	}
	return n
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}
	return path
}
