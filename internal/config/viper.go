package config

import (
	"errors"
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/panasi/panasi/voice"
)

// viperKeys defines the mapping between config keys and their Viper counterparts.
const (
	keyRetention      = "timers.retention"
	keyTickInterval   = "timers.tick_interval"
	keyResortInterval = "timers.resort_interval"
	keySound          = "alerts.sound"
	keyWarning        = "alerts.warning"
	keyNotification   = "alerts.notification"
	keyRestartDelay   = "voice.restart_delay"
	keyMaxRestarts    = "voice.max_restarts"
	keySpeakCmd       = "voice.speak_cmd"
	keyRecognizeCmd   = "voice.recognize_cmd"
	keyBreads         = "vocabulary.breads"
	keyProcesses      = "vocabulary.processes"
	keyDarkTheme      = "display.dark_theme"
)

// WithViperConfig returns an Option that loads configuration from Viper.
// The file is created with the defaults when it does not exist.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v, c)

		c.System.ConfigPath = configPath

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper configures Viper with defaults and prompt values.
func setupViper(v *viper.Viper, c *Config) {
	v.SetDefault(keyRetention, "10m")
	v.SetDefault(keyTickInterval, "1s")
	v.SetDefault(keyResortInterval, "1m")
	v.SetDefault(keySound, true)
	v.SetDefault(keyWarning, true)
	v.SetDefault(keyNotification, true)
	v.SetDefault(keyRestartDelay, "2s")
	v.SetDefault(keyMaxRestarts, 5)
	v.SetDefault(keySpeakCmd, "")
	v.SetDefault(keyRecognizeCmd, "")
	v.SetDefault(keyBreads, voice.DefaultBreads)
	v.SetDefault(keyProcesses, voice.DefaultProcesses)
	v.SetDefault(keyDarkTheme, true)

	if c.prompt != nil {
		v.SetDefault(keySound, c.prompt.Sound)
		v.SetDefault(keyWarning, c.prompt.Sound)
		v.SetDefault(keyNotification, c.prompt.Notification)
		v.SetDefault(keySpeakCmd, c.prompt.SpeakCmd)
	}
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	if err := v.Unmarshal(c); err != nil {
		return errReadConfig.Wrap(err)
	}

	return nil
}

// parseDuration parses a duration string, treating a bare number as
// minutes.
func parseDuration(s string) (time.Duration, error) {
	dur, err := time.ParseDuration(s)
	if err == nil {
		return dur, nil
	}

	return time.ParseDuration(s + "m")
}
