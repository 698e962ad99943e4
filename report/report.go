// Package report prints command results and errors to the terminal
package report

import (
	"io"
	"os"

	"github.com/pterm/pterm"

	"github.com/panasi/panasi/timer"
	"github.com/panasi/panasi/voice"
)

func TimerAdded(w io.Writer, v timer.View) {
	pterm.Success.WithWriter(w).Printfln(
		"%s (#%d) を%d分でスタートしました",
		v.Title(),
		v.ID,
		v.Duration,
	)
}

// Outcome prints the result of a routed utterance. Unmatched input and
// errors go through the warning and error printers.
func Outcome(w io.Writer, out voice.Outcome) {
	text := out.DisplayText
	if text == "" {
		text = out.SpokenText
	}

	if text == "" {
		return
	}

	switch {
	case out.IsError:
		pterm.Error.WithWriter(w).Println(text)
	case !out.Matched:
		pterm.Warning.WithWriter(w).Println(text)
	default:
		pterm.Info.WithWriter(w).Println(text)
	}
}

func Quit(err error) {
	pterm.Error.Println(err)
	os.Exit(1)
}
