// Package config provides configuration management for theater with
// Viper integration. The file config seeds the demo shell and the
// presentation defaults; the coordinator's own PresentationConfig stays
// immutable once constructed.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// dirPerm is the standard directory permission (rwxr-xr-x).
const dirPerm = 0755

// Config represents the complete configuration for theater.
type Config struct {
	Window   WindowConfig   `mapstructure:"window" yaml:"window"`
	Playback PlaybackConfig `mapstructure:"playback" yaml:"playback"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging"`
}

// WindowConfig holds the demo shell's window geometry.
type WindowConfig struct {
	Width  int `mapstructure:"width" yaml:"width"`
	Height int `mapstructure:"height" yaml:"height"`
}

// PlaybackConfig holds presentation defaults.
type PlaybackConfig struct {
	WakeLockInline       bool          `mapstructure:"wake_lock_inline" yaml:"wake_lock_inline"`
	WakeLockFullscreen   bool          `mapstructure:"wake_lock_fullscreen" yaml:"wake_lock_fullscreen"`
	SettleDelay          time.Duration `mapstructure:"settle_delay" yaml:"settle_delay"`
	HideCursorFullscreen bool          `mapstructure:"hide_cursor_fullscreen" yaml:"hide_cursor_fullscreen"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Dir returns the theater configuration directory, creating it if
// needed.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	dir := filepath.Join(base, "theater")
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return "", fmt.Errorf("create config dir: %w", err)
	}
	return dir, nil
}

// Load reads the configuration file, falling back to defaults when the
// file is absent. THEATER_-prefixed environment variables override file
// values.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")

	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	v.AddConfigPath(dir)

	v.SetEnvPrefix("THEATER")
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

// Path returns the expected config file location, whether or not the
// file exists.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}
