package app

import "github.com/urfave/cli/v2"

var (
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	noSoundFlag = &cli.BoolFlag{
		Name:  "no-sound",
		Usage: "Disable the warning beeps and the completion alarm",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears when a timer completes",
	}

	speakCmdFlag = &cli.StringFlag{
		Name:  "speak-cmd",
		Usage: "Command that reads responses aloud (e.g. 'say -v Kyoko'). Set to 'off' to print them instead",
	}

	recognizeCmdFlag = &cli.StringFlag{
		Name:  "recognize-cmd",
		Usage: "Speech-to-text command that prints one utterance per line",
	}

	retentionFlag = &cli.StringFlag{
		Name:  "retention",
		Usage: "How long completed timers stay on screen, in minutes or as a duration (default: 10)",
	}

	debugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "Write debug messages to the log file",
	}

	plainFlag = &cli.BoolFlag{
		Name:  "plain",
		Usage: "Read commands line by line from standard input instead of showing the full-screen view",
	}

	sinceFlag = &cli.StringFlag{
		Name:  "since",
		Usage: "Start the timer in the past (e.g. '10分前' or '20 mins ago')",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the timers as JSON",
	}

	byNameFlag = &cli.BoolFlag{
		Name:  "by-name",
		Usage: "Sort the timers by bread name",
	}

	yesFlag = &cli.BoolFlag{
		Name:    "yes",
		Aliases: []string{"y"},
		Usage:   "Do not ask for confirmation",
	}
)
