package tui

import "github.com/charmbracelet/lipgloss"

// Style holds the lipgloss styles of the timer screen.
type Style struct {
	Base     lipgloss.Style
	Title    lipgloss.Style
	Card     lipgloss.Style
	Selected lipgloss.Style
	Running  lipgloss.Style
	Paused   lipgloss.Style
	Complete lipgloss.Style
	Urgent   lipgloss.Style
	Clock    lipgloss.Style
	Hint     lipgloss.Style
	Info     lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style
	Spoken   lipgloss.Style
}

// NewStyle returns the styles for a dark or light terminal.
func NewStyle(dark bool) Style {
	fg := lipgloss.Color("255")
	muted := lipgloss.Color("245")
	border := lipgloss.Color("240")

	if !dark {
		fg = lipgloss.Color("235")
		muted = lipgloss.Color("242")
		border = lipgloss.Color("250")
	}

	return Style{
		Base: lipgloss.NewStyle().Padding(1, 2),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F5E6D3")).
			Background(lipgloss.Color("#8B4513")).
			Bold(true).
			Padding(0, 1),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1).
			MarginTop(1),
		Selected: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#D2691E")).
			Padding(0, 1).
			MarginTop(1),
		Running:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Paused:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Complete: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Urgent:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Clock:    lipgloss.NewStyle().Foreground(fg).Bold(true),
		Hint:     lipgloss.NewStyle().Foreground(muted),
		Info:     lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Spoken:   lipgloss.NewStyle().Foreground(lipgloss.Color("117")).Italic(true),
	}
}
