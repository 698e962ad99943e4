package config

import (
	"slices"
	"strings"
	"time"
)

var (
	minTickInterval = 100 * time.Millisecond
	maxTickInterval = 10 * time.Second

	minRetention = 1 * time.Minute
	maxRetention = 24 * time.Hour

	maxRestartDelay = 1 * time.Minute

	minRestarts = 1
	maxRestarts = 100
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := c.validateTimers(); err != nil {
		return err
	}

	if err := c.validateVoice(); err != nil {
		return err
	}

	if err := validateWords("breads", c.Vocabulary.Breads); err != nil {
		return err
	}

	return validateWords("processes", c.Vocabulary.Processes)
}

func (c *Config) validateTimers() error {
	t := c.Timers

	if t.TickInterval < minTickInterval || t.TickInterval > maxTickInterval {
		return errInvalidDuration.Fmt("tick interval", minTickInterval, maxTickInterval)
	}

	if t.ResortInterval < t.TickInterval {
		return errResortTooFast.Fmt(t.ResortInterval, t.TickInterval)
	}

	if t.Retention < minRetention || t.Retention > maxRetention {
		return errInvalidDuration.Fmt("retention", minRetention, maxRetention)
	}

	return nil
}

func (c *Config) validateVoice() error {
	if c.Voice.RestartDelay < 0 || c.Voice.RestartDelay > maxRestartDelay {
		return errInvalidDuration.Fmt("restart delay", time.Duration(0), maxRestartDelay)
	}

	if c.Voice.MaxRestarts < minRestarts || c.Voice.MaxRestarts > maxRestarts {
		return errInvalidMaxRestarts.Fmt(minRestarts, maxRestarts)
	}

	return nil
}

func validateWords(name string, words []string) error {
	if len(words) == 0 {
		return errEmptyVocabulary.Fmt(name)
	}

	blank := slices.ContainsFunc(words, func(w string) bool {
		return strings.TrimSpace(w) == ""
	})
	if blank {
		return errBlankWord.Fmt(name)
	}

	return nil
}
