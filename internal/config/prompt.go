package config

import (
	"errors"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

const asciiLogo = `
██████╗  █████╗ ███╗   ██╗ █████╗ ███████╗██╗
██╔══██╗██╔══██╗████╗  ██║██╔══██╗██╔════╝██║
██████╔╝███████║██╔██╗ ██║███████║███████╗██║
██╔═══╝ ██╔══██║██║╚██╗██║██╔══██║╚════██║██║
██║     ██║  ██║██║ ╚████║██║  ██║███████║██║
╚═╝     ╚═╝  ╚═╝╚═╝  ╚═══╝╚═╝  ╚═╝╚══════╝╚═╝`

// PromptOptions holds the user's responses to the configuration prompts.
type PromptOptions struct {
	SpeakCmd     string
	Sound        bool
	Notification bool
}

// WithPromptConfig returns an Option that asks for the alert and speech
// settings when the config file does not exist yet. It must precede
// WithViperConfig, which writes the answers to the new file.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		opts, err := promptUser()
		if err != nil {
			return errPrompt.Wrap(err)
		}

		c.prompt = &opts

		return nil
	}
}

// promptUser handles the interactive configuration process.
func promptUser() (PromptOptions, error) {
	opts := PromptOptions{
		Sound:        true,
		Notification: true,
	}

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Answer the questions below to set up panasi for the first time.
Press ENTER to accept the defaults.
Edit the config file with 'panasi edit-config' to change any settings.`, " ").
		Render()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Beep in the last minute and when a timer completes?").
				Value(&opts.Sound),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Show a desktop notification when a timer completes?").
				Value(&opts.Notification),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Command that reads responses aloud").
				Description("The response is appended as the last argument. Leave empty to print it instead.").
				Placeholder("say -v Kyoko").
				Value(&opts.SpeakCmd),
		),
	)

	if err := form.Run(); err != nil {
		return opts, err
	}

	return opts, nil
}
