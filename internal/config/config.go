// Package config loads pomo settings from the config file and command-line
// flags
package config

import (
	"io"
	"os"
	"time"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Work          SessionConfig      `mapstructure:"work"`
		Break         SessionConfig      `mapstructure:"break"`
		Settings      SettingsConfig     `mapstructure:"settings"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		Display       DisplayConfig      `mapstructure:"display"`
		CLI           CLIConfig
	}

	// SessionConfig holds the settings of one period kind.
	SessionConfig struct {
		Duration time.Duration `mapstructure:"duration"`
	}

	// SettingsConfig holds timer behaviour settings.
	SettingsConfig struct {
		Cmd            string `mapstructure:"cmd"`
		AutoReload     bool   `mapstructure:"auto_reload"`
		TwentyFourHour bool   `mapstructure:"24hr_clock"`
	}

	// NotificationConfig holds notification settings.
	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
		Sound   bool `mapstructure:"sound"`
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		DarkTheme bool `mapstructure:"dark_theme"`
	}

	// CLIConfig holds options that only exist on the command line.
	CLIConfig struct {
		Tasks []TaskSpec
		Plain bool
	}

	// TaskSpec is a task requested with --task.
	TaskSpec struct {
		TicketID    string
		Description string
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v0.3.0"

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a Config, applies opts in order and validates the result.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}
