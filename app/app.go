package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/panasi/panasi/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the panasi app instance.
func Get() *cli.App {
	panasiApp := &cli.App{
		Name: "panasi",
		Usage: `
		Panasi keeps track of the timers of a bread-making session. Start,
		query, pause and finish timers by speaking (or typing) Japanese
		commands such as 「食パン一次発酵40分スタート」.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "listen",
				Usage:  "Show the timers and take voice commands (default)",
				Flags:  []cli.Flag{plainFlag},
				Action: listenAction,
			},
			{
				Name:      "say",
				Usage:     "Run a single voice command",
				ArgsUsage: "<utterance>",
				Action:    sayAction,
			},
			{
				Name:      "add",
				Usage:     "Start a timer without speaking",
				ArgsUsage: "[bread] [process] [minutes]",
				Flags:     []cli.Flag{sinceFlag},
				Action:    addAction,
			},
			{
				Name:   "list",
				Usage:  "Print every timer",
				Flags:  []cli.Flag{jsonFlag, byNameFlag},
				Action: listAction,
			},
			{
				Name:   "status",
				Usage:  "Print the remaining time of every timer",
				Action: statusAction,
			},
			{
				Name:      "pause",
				Usage:     "Pause a timer",
				ArgsUsage: "<id>",
				Action:    pauseAction,
			},
			{
				Name:      "resume",
				Usage:     "Resume a paused timer",
				ArgsUsage: "<id>",
				Action:    resumeAction,
			},
			{
				Name:      "reset",
				Usage:     "Restart a timer from its full duration",
				ArgsUsage: "<id>",
				Action:    resetAction,
			},
			{
				Name:      "delete",
				Usage:     "Delete a timer",
				ArgsUsage: "<id>",
				Action:    deleteAction,
			},
			{
				Name:   "clear",
				Usage:  "Delete every timer",
				Flags:  []cli.Flag{yesFlag},
				Action: clearAction,
			},
			{
				Name:      "import",
				Usage:     "Import timers exported from the browser version",
				ArgsUsage: "<file>",
				Action:    importAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			noColorFlag,
			noSoundFlag,
			disableNotificationFlag,
			speakCmdFlag,
			recognizeCmdFlag,
			retentionFlag,
			debugFlag,
			plainFlag,
		},
		Action: listenAction,
		Before: beforeAction,
		After:  afterAction,
	}

	return panasiApp
}
