package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/panasi/panasi/timer"
	"github.com/panasi/panasi/voice"
)

type (
	timerMsg struct {
		view    timer.View
		deleted bool
	}

	orderMsg struct {
		ids []int
	}

	feedbackMsg struct {
		outcome voice.Outcome
	}

	interimMsg struct {
		text string
	}

	spokenMsg struct {
		text string
	}

	actionMsg struct {
		err error
	}

	listenDoneMsg struct {
		err error
	}
)

type sender interface {
	Send(msg tea.Msg)
}

// Renderer forwards kitchen events to a running program. It also stands in
// for the synthesizer by showing spoken responses on screen.
//
// The kitchen calls the renderer with its lock held, so the model must never
// call back into the kitchen from Update. Every kitchen call runs in a
// tea.Cmd.
type Renderer struct {
	p sender
}

// NewRenderer returns a Renderer that sends to p.
func NewRenderer(p *tea.Program) *Renderer {
	return &Renderer{p: p}
}

func (r *Renderer) TimerCreated(v timer.View) {
	r.p.Send(timerMsg{view: v})
}

func (r *Renderer) TimerUpdated(v timer.View) {
	r.p.Send(timerMsg{view: v})
}

func (r *Renderer) TimerDeleted(v timer.View) {
	r.p.Send(timerMsg{view: v, deleted: true})
}

func (r *Renderer) DisplayOrderChanged(ids []int) {
	r.p.Send(orderMsg{ids: ids})
}

func (r *Renderer) Feedback(out voice.Outcome) {
	r.p.Send(feedbackMsg{outcome: out})
}

func (r *Renderer) Interim(text string) {
	r.p.Send(interimMsg{text: text})
}

func (r *Renderer) Speak(text string) error {
	r.p.Send(spokenMsg{text: text})

	return nil
}

func (r *Renderer) Cancel() {}

// ListenDone tells the program that speech input stopped.
func (r *Renderer) ListenDone(err error) {
	r.p.Send(listenDoneMsg{err: err})
}
