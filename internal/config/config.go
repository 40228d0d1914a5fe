// Package config loads settings from ~/.config/myday/config.json and
// MYDAY_* environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/balkashynov/myday/internal/db"
	"github.com/balkashynov/myday/internal/weather"
)

// Config holds the application configuration
type Config struct {
	Database string
	City     string
	Weather  Weather
	LogLevel string
}

// Weather configures the weather lookup
type Weather struct {
	APIKey  string
	BaseURL string
	Refresh string // Go duration or cron expression
}

const (
	keyDatabase       = "database"
	keyCity           = "city"
	keyWeatherAPIKey  = "weather.api_key"
	keyWeatherBaseURL = "weather.base_url"
	keyWeatherRefresh = "weather.refresh"
	keyLogLevel       = "log.level"
)

// DefaultPath returns ~/.config/myday/config.json
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "myday", "config.json"), nil
}

func defaults() (map[string]any, error) {
	dbPath, err := db.DefaultPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get database path: %w", err)
	}
	return map[string]any{
		keyDatabase:       dbPath,
		keyCity:           "London",
		keyWeatherAPIKey:  "",
		keyWeatherBaseURL: weather.DefaultBaseURL,
		keyWeatherRefresh: weather.DefaultRefresh.String(),
		keyLogLevel:       "warn",
	}, nil
}

// Load reads the config file at path (DefaultPath when empty). A missing
// file is created with the defaults. Environment variables override the file.
func Load(path string) (Config, error) {
	var cfg Config

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return cfg, err
		}
		path = p
	}

	defs, err := defaults()
	if err != nil {
		return cfg, err
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	v.SetEnvPrefix("MYDAY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for k, val := range defs {
		v.SetDefault(k, val)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := writeDefaults(path, defs); err != nil {
			return cfg, err
		}
	}

	cfg = Config{
		Database: v.GetString(keyDatabase),
		City:     v.GetString(keyCity),
		Weather: Weather{
			APIKey:  v.GetString(keyWeatherAPIKey),
			BaseURL: v.GetString(keyWeatherBaseURL),
			Refresh: v.GetString(keyWeatherRefresh),
		},
		LogLevel: v.GetString(keyLogLevel),
	}
	return cfg, nil
}

// writeDefaults creates the config file from a separate viper instance so
// environment overrides are never written to disk
func writeDefaults(path string, defs map[string]any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	w := viper.New()
	w.SetConfigType("json")
	for k, val := range defs {
		w.Set(k, val)
	}
	if err := w.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write default config: %w", err)
	}
	return nil
}

// SlogLevel maps LogLevel to a slog level, defaulting to warn
func (c Config) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelWarn
	}
	return lvl
}
