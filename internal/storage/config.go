package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/nikbrunner/shelf/internal/filter"
	"github.com/nikbrunner/shelf/internal/model"
)

// Config holds application configuration.
type Config struct {
	Dataset     string `json:"dataset"`     // "" = DefaultDatasetPath
	Locale      string `json:"locale"`      // collation locale for sorting
	DefaultSort string `json:"defaultSort"` // "asc" or "desc"
	DefaultView string `json:"defaultView"` // "grid" or "list"
	LogLevel    string `json:"logLevel"`    // debug, info, warn, error
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Dataset:     "",
		Locale:      "en",
		DefaultSort: "asc",
		DefaultView: "grid",
		LogLevel:    "info",
	}
}

// Validate checks enumerated fields.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.DefaultSort, validation.By(func(v any) error {
			_, err := filter.ParseSortOrder(v.(string))
			return err
		})),
		validation.Field(&c.DefaultView, validation.By(func(v any) error {
			_, err := model.ParseViewMode(v.(string))
			return err
		})),
		validation.Field(&c.LogLevel, validation.By(func(v any) error {
			_, err := parseLevel(v.(string))
			return err
		})),
	)
}

// SlogLevel returns the configured log level, falling back to info.
func (c Config) SlogLevel() slog.Level {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, err
	}
	return level, nil
}

// LoadConfig reads config from the JSON file.
// Creates the file with defaults if it doesn't exist.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			config := DefaultConfig()
			// Non-fatal: return defaults even if save fails
			_ = SaveConfig(path, &config)
			return &config, nil
		}
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	// Apply defaults for missing fields
	defaults := DefaultConfig()
	if config.Locale == "" {
		config.Locale = defaults.Locale
	}
	if config.DefaultSort == "" {
		config.DefaultSort = defaults.DefaultSort
	}
	if config.DefaultView == "" {
		config.DefaultView = defaults.DefaultView
	}
	if config.LogLevel == "" {
		config.LogLevel = defaults.LogLevel
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return &config, nil
}

// SaveConfig writes config to the JSON file.
// Creates the directory if it doesn't exist.
func SaveConfig(path string, config *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultConfigFilePath returns the default config path: ~/.config/shelf/config.json
func DefaultConfigFilePath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// DefaultLogFilePath returns where logs go while the TUI owns the terminal.
func DefaultLogFilePath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "shelf.log"), nil
}
