package app

import (
	"fmt"

	"github.com/pterm/pterm"
)

func helpText() string {
	description := fmt.Sprintf(
		"%s\n\t\t{{.Usage}}\n\n",
		pterm.Yellow("DESCRIPTION"),
	)

	usage := fmt.Sprintf(
		"%s\n\t\t{{.HelpName}} {{if .UsageText}}{{ .UsageText }}{{end}}\n\n",
		pterm.Yellow("USAGE"),
	)

	version := fmt.Sprintf(
		"{{if .Version}}%s\n\t\t{{.Version}}{{end}}\n\n",
		pterm.Yellow("VERSION"),
	)

	commands := fmt.Sprintf(
		"%s\n{{range .Commands}}{{if not .HideHelp}}   %s{{ `\t`}}{{.Usage}}{{ `\n` }}{{end}}{{end}}\n\n",
		pterm.Yellow("COMMANDS"),
		pterm.Green("{{join .Names `, `}}"),
	)

	options := fmt.Sprintf(
		"%s\n{{range .VisibleFlags}}\t\t{{if .Aliases}}{{range $element := .Aliases}}%s,{{end}}{{end}} %s\n\t\t\t\t{{.Usage}}\n\n{{end}}",
		pterm.Yellow("OPTIONS"),
		pterm.Green("-{{$element}}"),
		pterm.Green("--{{.Name}} {{.DefaultText}}"),
	)

	voice := fmt.Sprintf(
		"%s\n%s\n\n",
		pterm.Yellow("VOICE COMMANDS"),
		voiceHelp(),
	)

	env := fmt.Sprintf(
		"%s\n\t\t%s\n\n",
		pterm.Yellow("ENVIRONMENTAL VARIABLES"),
		envHelp(),
	)

	return description + usage + version + commands + options + voice + env
}

func voiceHelp() string {
	return `		食パン一次発酵40分スタート   start a timer
		タイマー設定                 start a guided conversation
		食パン止めて / 食パン再開     pause or resume a timer
		食パン完了                   finish a timer
		食パンを一番上に             move a timer to the top
		残り時間は？                 hear the remaining time
		すべて停止 / すべて終了       pause or delete every timer`
}

func envHelp() string {
	return `
PANASI_NO_COLOR, NO_COLOR: set to any value to avoid printing ANSI escape sequences for color output.

PANASI_ENV: set to any value to keep the config, database and log files apart (e.g. for testing).`
}
