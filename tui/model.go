// Package tui shows the kitchen timers full-screen and takes typed commands
// in place of a microphone
package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"

	"github.com/panasi/panasi/speech"
	"github.com/panasi/panasi/timer"
	"github.com/panasi/panasi/voice"
)

const (
	padding  = 2
	maxWidth = 60
)

// Kitchen is the part of the kitchen driven by the screen.
type Kitchen interface {
	HandleUtterance(text string) voice.Outcome
	Pause(id int) error
	Resume(id int) error
	Reset(id int) error
	Delete(id int) error
	ClearAll() int
}

// Model is the bubbletea model of the timer screen.
type Model struct {
	kitchen   Kitchen
	listenErr error
	log       *slog.Logger
	views     map[int]timer.View
	help      help.Model
	style     Style
	input     textinput.Model
	feedback  voice.Outcome
	interim   string
	spoken    string
	order     []int
	progress  progress.Model
	selected  int
	listening bool
}

// New returns a model showing views, which must be in display order.
// listening tells the screen that a recognizer is feeding the kitchen.
func New(
	k Kitchen,
	views []timer.View,
	style Style,
	listening bool,
	log *slog.Logger,
) *Model {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	ti := textinput.New()
	ti.Placeholder = voice.Examples[0]
	ti.Prompt = "🎤 "
	ti.CharLimit = 128
	ti.Focus()

	m := &Model{
		kitchen:   k,
		log:       log,
		views:     make(map[int]timer.View, len(views)),
		help:      help.New(),
		style:     style,
		input:     ti,
		progress:  progress.New(progress.WithDefaultGradient()),
		listening: listening,
	}

	m.progress.Width = maxWidth

	for _, v := range views {
		m.views[v.ID] = v
		m.order = append(m.order, v.ID)
	}

	return m
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// selectedView returns the timer the card actions apply to.
func (m *Model) selectedView() (timer.View, bool) {
	if m.selected < 0 || m.selected >= len(m.order) {
		return timer.View{}, false
	}

	v, ok := m.views[m.order[m.selected]]

	return v, ok
}

func (m *Model) clampSelection() {
	m.selected = max(0, min(m.selected, len(m.order)-1))
}

func (m *Model) utter(text string) tea.Cmd {
	k := m.kitchen

	return func() tea.Msg {
		return feedbackMsg{outcome: k.HandleUtterance(text)}
	}
}

func (m *Model) act(fn func(id int) error, id int) tea.Cmd {
	return func() tea.Msg {
		return actionMsg{err: fn(id)}
	}
}

func (m *Model) toggle(v timer.View) tea.Cmd {
	switch v.Status {
	case timer.Running:
		return m.act(m.kitchen.Pause, v.ID)
	case timer.Paused:
		return m.act(m.kitchen.Resume, v.ID)
	}

	return m.act(m.kitchen.Reset, v.ID)
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeymap.quit):
		return m, tea.Quit

	case key.Matches(msg, defaultKeymap.submit):
		text := strings.TrimSpace(m.input.Value())
		m.input.Reset()

		if text == "" {
			return m, nil
		}

		m.interim = ""

		return m, m.utter(text)

	case key.Matches(msg, defaultKeymap.up):
		m.selected--
		m.clampSelection()

		return m, nil

	case key.Matches(msg, defaultKeymap.down):
		m.selected++
		m.clampSelection()

		return m, nil

	case key.Matches(msg, defaultKeymap.help):
		m.help.ShowAll = !m.help.ShowAll

		return m, nil

	case key.Matches(msg, defaultKeymap.clear):
		k := m.kitchen

		return m, func() tea.Msg {
			k.ClearAll()
			return actionMsg{}
		}
	}

	v, ok := m.selectedView()
	if ok {
		switch {
		case key.Matches(msg, defaultKeymap.toggle):
			return m, m.toggle(v)
		case key.Matches(msg, defaultKeymap.reset):
			return m, m.act(m.kitchen.Reset, v.ID)
		case key.Matches(msg, defaultKeymap.delete):
			return m, m.act(m.kitchen.Delete, v.ID)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.progress.Width = min(msg.Width-padding*2-8, maxWidth)
		m.help.Width = msg.Width

		return m, nil

	case timerMsg:
		if msg.deleted {
			delete(m.views, msg.view.ID)
		} else {
			m.views[msg.view.ID] = msg.view
		}

		return m, nil

	case orderMsg:
		m.order = msg.ids
		m.clampSelection()

		return m, nil

	case feedbackMsg:
		m.feedback = msg.outcome
		m.interim = ""

		return m, nil

	case interimMsg:
		m.interim = msg.text

		return m, nil

	case spokenMsg:
		m.spoken = msg.text

		return m, nil

	case actionMsg:
		if msg.err != nil {
			m.feedback = voice.Outcome{
				DisplayText: msg.err.Error(),
				IsError:     true,
			}
		}

		return m, nil

	case listenDoneMsg:
		m.listening = false
		m.listenErr = msg.err

		if msg.err != nil {
			m.log.Debug("speech input stopped", slog.String("msg", spew.Sdump(msg)))
		}

		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m *Model) headerView() string {
	var s strings.Builder

	s.WriteString(m.style.Title.Render("🍞 Panasi"))

	switch {
	case m.listening:
		s.WriteString(m.style.Running.Render("  🎤 音声認識中"))
	case m.listenErr != nil:
		s.WriteString(m.style.Error.Render("  " + speech.Message(m.listenErr)))
	}

	return s.String()
}

func (m *Model) statusView(v timer.View) string {
	switch v.Status {
	case timer.Running:
		return m.style.Running.Render(v.Status.StatusText())
	case timer.Paused:
		return m.style.Paused.Render(v.Status.StatusText())
	}

	return m.style.Complete.Render(v.Status.StatusText())
}

func (m *Model) cardView(v timer.View, selected bool) string {
	var s strings.Builder

	fmt.Fprintf(&s, "%s  %s  %s\n\n",
		m.style.Clock.Render(v.Title()),
		m.style.Hint.Render(fmt.Sprintf("#%d %d分", v.ID, v.Duration)),
		m.statusView(v),
	)

	clock := m.style.Clock
	if v.Urgent() {
		clock = m.style.Urgent
	}

	s.WriteString(clock.Render(v.Clock()))
	s.WriteString("  ")
	s.WriteString(m.progress.ViewAs(v.Progress))

	if selected {
		return m.style.Selected.Render(s.String())
	}

	return m.style.Card.Render(s.String())
}

func (m *Model) examplesView() string {
	var s strings.Builder

	s.WriteString(m.style.Hint.Render("タイマーはまだありません。話しかけてみてください:"))

	for _, ex := range voice.Examples {
		s.WriteString("\n")
		s.WriteString(m.style.Hint.Render("  • 「" + ex + "」"))
	}

	return s.String()
}

func (m *Model) feedbackView() string {
	text := m.feedback.DisplayText
	if text == "" {
		text = m.feedback.SpokenText
	}

	if text == "" {
		return ""
	}

	switch {
	case m.feedback.IsError:
		return m.style.Error.Render(text)
	case !m.feedback.Matched:
		return m.style.Warning.Render(text)
	}

	return m.style.Info.Render(text)
}

func (m *Model) View() string {
	var s strings.Builder

	s.WriteString(m.headerView())
	s.WriteString("\n")

	if len(m.order) == 0 {
		s.WriteString("\n" + m.examplesView() + "\n")
	}

	for i, id := range m.order {
		v, ok := m.views[id]
		if !ok {
			continue
		}

		s.WriteString(m.cardView(v, i == m.selected))
		s.WriteString("\n")
	}

	if fb := m.feedbackView(); fb != "" {
		s.WriteString("\n" + fb)
	}

	if m.spoken != "" {
		s.WriteString("\n" + m.style.Spoken.Render("🔊 "+m.spoken))
	}

	if m.interim != "" {
		s.WriteString("\n" + m.style.Hint.Render("… "+m.interim))
	}

	s.WriteString("\n\n" + m.input.View())
	s.WriteString("\n\n" + m.help.View(defaultKeymap))

	return m.style.Base.Render(s.String())
}
