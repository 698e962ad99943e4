package config

import (
	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	SpeakCmd      string
	RecognizeCmd  string
	Retention     string
	NoSound       bool
	DisableNotify bool
	Debug         bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			SpeakCmd:      ctx.String("speak-cmd"),
			RecognizeCmd:  ctx.String("recognize-cmd"),
			Retention:     ctx.String("retention"),
			NoSound:       ctx.Bool("no-sound"),
			DisableNotify: ctx.Bool("disable-notification"),
			Debug:         ctx.Bool("debug"),
		}

		return applyCLIOptions(c, opts)
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) error {
	if opts.Retention != "" {
		dur, err := parseDuration(opts.Retention)
		if err != nil {
			return errInvalidCLIDuration.Fmt("retention", err)
		}

		c.Timers.Retention = dur
	}

	if opts.NoSound {
		c.Alerts.Sound = false
		c.Alerts.Warning = false
	}

	if opts.DisableNotify {
		c.Alerts.Notification = false
	}

	if opts.SpeakCmd != "" {
		if opts.SpeakCmd == "off" {
			c.Voice.SpeakCmd = ""
		} else {
			c.Voice.SpeakCmd = opts.SpeakCmd
		}
	}

	if opts.RecognizeCmd != "" {
		c.Voice.RecognizeCmd = opts.RecognizeCmd
	}

	if opts.Debug {
		c.System.Debug = true
	}

	return nil
}
