// Package config loads the panasi settings from the config file and the
// command line
package config

import (
	"io"
	"os"
	"time"
)

type (
	// Config holds all configuration settings
	Config struct {
		Vocabulary VocabularyConfig `mapstructure:"vocabulary"`
		System     SystemConfig     `mapstructure:"-"`
		Voice      VoiceConfig      `mapstructure:"voice"`
		Timers     TimersConfig     `mapstructure:"timers"`
		Alerts     AlertsConfig     `mapstructure:"alerts"`
		Display    DisplayConfig    `mapstructure:"display"`
		prompt     *PromptOptions
	}

	// TimersConfig holds the timing of the countdown loop
	TimersConfig struct {
		Retention      time.Duration `mapstructure:"retention"`
		TickInterval   time.Duration `mapstructure:"tick_interval"`
		ResortInterval time.Duration `mapstructure:"resort_interval"`
	}

	// AlertsConfig holds sound and notification settings
	AlertsConfig struct {
		Sound        bool `mapstructure:"sound"`
		Warning      bool `mapstructure:"warning"`
		Notification bool `mapstructure:"notification"`
	}

	// VoiceConfig holds speech input and output settings
	VoiceConfig struct {
		SpeakCmd     string        `mapstructure:"speak_cmd"`
		RecognizeCmd string        `mapstructure:"recognize_cmd"`
		RestartDelay time.Duration `mapstructure:"restart_delay"`
		MaxRestarts  int           `mapstructure:"max_restarts"`
	}

	// VocabularyConfig holds the names accepted on their own as partial
	// commands
	VocabularyConfig struct {
		Breads    []string `mapstructure:"breads"`
		Processes []string `mapstructure:"processes"`
	}

	// DisplayConfig holds display-related settings
	DisplayConfig struct {
		DarkTheme bool `mapstructure:"dark_theme"`
	}

	// SystemConfig holds system-related settings
	SystemConfig struct {
		ConfigPath string
		DBPath     string
		StatusPath string
		LogPath    string
		Debug      bool
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v0.1.0"

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// WithPaths sets the data file locations.
func WithPaths(db, status, log string) Option {
	return func(c *Config) error {
		c.System.DBPath = db
		c.System.StatusPath = status
		c.System.LogPath = log

		return nil
	}
}

// New creates a new Config and applies options in order. The result is
// validated once every option has been applied.
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
