package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	submit key.Binding
	up     key.Binding
	down   key.Binding
	toggle key.Binding
	reset  key.Binding
	delete key.Binding
	clear  key.Binding
	help   key.Binding
	quit   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.submit,
		k.toggle,
		k.reset,
		k.delete,
		k.help,
		k.quit,
	}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.submit, k.up, k.down},
		{k.toggle, k.reset, k.delete, k.clear},
		{k.help, k.quit},
	}
}

var defaultKeymap = keyMap{
	submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "send command"),
	),
	up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "previous timer"),
	),
	down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "next timer"),
	),
	toggle: key.NewBinding(
		key.WithKeys("ctrl+p"),
		key.WithHelp("ctrl+p", "pause/resume"),
	),
	reset: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("ctrl+r", "reset"),
	),
	delete: key.NewBinding(
		key.WithKeys("ctrl+d"),
		key.WithHelp("ctrl+d", "delete"),
	),
	clear: key.NewBinding(
		key.WithKeys("ctrl+x"),
		key.WithHelp("ctrl+x", "clear all"),
	),
	help: key.NewBinding(
		key.WithKeys("ctrl+g"),
		key.WithHelp("ctrl+g", "more"),
	),
	quit: key.NewBinding(
		key.WithKeys("ctrl+c", "esc"),
		key.WithHelp("esc", "quit"),
	),
}
