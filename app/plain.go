package app

import (
	"io"

	"github.com/pterm/pterm"

	"github.com/panasi/panasi/notify"
	"github.com/panasi/panasi/report"
	"github.com/panasi/panasi/timer"
	"github.com/panasi/panasi/voice"
)

// plainRenderer prints outcomes and completions as lines of text. Ticks
// are not printed.
type plainRenderer struct {
	w      io.Writer
	status map[int]timer.Status
	// spoken text is already printed by the synthesizer
	printed bool
}

func newPlainRenderer(w io.Writer, printed bool) *plainRenderer {
	return &plainRenderer{
		w:       w,
		status:  make(map[int]timer.Status),
		printed: printed,
	}
}

func (p *plainRenderer) TimerCreated(v timer.View) {
	p.status[v.ID] = v.Status
}

func (p *plainRenderer) TimerUpdated(v timer.View) {
	prev, seen := p.status[v.ID]
	p.status[v.ID] = v.Status

	if v.Status == timer.Completed && (!seen || prev != timer.Completed) {
		pterm.Success.WithWriter(p.w).Println("🔔 " + notify.Message(v))
	}
}

func (p *plainRenderer) TimerDeleted(v timer.View) {
	delete(p.status, v.ID)
}

func (p *plainRenderer) DisplayOrderChanged([]int) {}

func (p *plainRenderer) Feedback(out voice.Outcome) {
	if p.printed && out.SpokenText != "" && out.SpokenText == out.DisplayText {
		return
	}

	report.Outcome(p.w, out)
}

func (p *plainRenderer) Interim(text string) {
	pterm.Fprintln(p.w, pterm.FgGray.Sprint("… "+text))
}
