package ui

import (
	"github.com/pterm/pterm"

	"github.com/panasi/panasi/timer"
)

var DarkTheme bool

func Green(a any) string {
	if DarkTheme {
		return pterm.LightGreen(a)
	}

	return pterm.Green(a)
}

func Yellow(a any) string {
	if DarkTheme {
		return pterm.LightYellow(a)
	}

	return pterm.Yellow(a)
}

func Red(a any) string {
	if DarkTheme {
		return pterm.LightRed(a)
	}

	return pterm.Red(a)
}

func Highlight(a any) string {
	if DarkTheme {
		return pterm.LightWhite(a)
	}

	return pterm.Black(a)
}

// Status returns the coloured label of a timer status.
func Status(s timer.Status) string {
	switch s {
	case timer.Running:
		return Green(s.StatusText())
	case timer.Paused:
		return Yellow(s.StatusText())
	}

	return Red(s.StatusText())
}

// Clock returns the remaining time of a timer, highlighted in its final
// minute.
func Clock(v timer.View) string {
	if v.Urgent() {
		return Red(v.Clock())
	}

	return Highlight(v.Clock())
}
