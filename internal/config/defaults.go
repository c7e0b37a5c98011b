package config

import (
	"time"

	"github.com/spf13/viper"
)

// Default values for every configurable knob.
const (
	DefaultWindowWidth  = 1024
	DefaultWindowHeight = 576
	DefaultSettleDelay  = 100 * time.Millisecond
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "console"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.width", DefaultWindowWidth)
	v.SetDefault("window.height", DefaultWindowHeight)

	v.SetDefault("playback.wake_lock_inline", true)
	v.SetDefault("playback.wake_lock_fullscreen", true)
	v.SetDefault("playback.settle_delay", DefaultSettleDelay)
	v.SetDefault("playback.hide_cursor_fullscreen", true)

	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.format", DefaultLogFormat)
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  DefaultWindowWidth,
			Height: DefaultWindowHeight,
		},
		Playback: PlaybackConfig{
			WakeLockInline:       true,
			WakeLockFullscreen:   true,
			SettleDelay:          DefaultSettleDelay,
			HideCursorFullscreen: true,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
