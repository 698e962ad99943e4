package tui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panasi/panasi/timer"
	"github.com/panasi/panasi/voice"
)

type fakeKitchen struct {
	err        error
	utterances []string
	calls      []string
	cleared    int
}

func (f *fakeKitchen) HandleUtterance(text string) voice.Outcome {
	f.utterances = append(f.utterances, text)

	return voice.Outcome{
		SpokenText:  "食パンの一次発酵を40分でスタートしました",
		DisplayText: "食パンの一次発酵を40分でスタートしました",
		Matched:     true,
	}
}

func (f *fakeKitchen) record(name string, id int) error {
	f.calls = append(f.calls, name+"#"+string(rune('0'+id)))

	return f.err
}

func (f *fakeKitchen) Pause(id int) error  { return f.record("pause", id) }
func (f *fakeKitchen) Resume(id int) error { return f.record("resume", id) }
func (f *fakeKitchen) Reset(id int) error  { return f.record("reset", id) }
func (f *fakeKitchen) Delete(id int) error { return f.record("delete", id) }

func (f *fakeKitchen) ClearAll() int {
	f.cleared++

	return 0
}

func bread(id int, status timer.Status) timer.View {
	return timer.View{
		ID:          id,
		BreadName:   "食パン",
		ProcessName: "一次発酵",
		Duration:    40,
		Status:      status,
		Remaining:   40 * time.Minute,
	}
}

// run executes cmd and feeds its message back into the model.
func run(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()

	require.NotNil(t, cmd)

	msg := cmd()
	_, _ = m.Update(msg)
}

func TestIdleShowsExamples(t *testing.T) {
	m := New(&fakeKitchen{}, nil, NewStyle(true), false, nil)

	view := m.View()

	for _, ex := range voice.Examples {
		assert.Contains(t, view, ex)
	}
}

func TestSubmitRunsUtteranceInCommand(t *testing.T) {
	k := &fakeKitchen{}
	m := New(k, nil, NewStyle(true), false, nil)

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("食パン一次発酵40分")})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Empty(t, k.utterances, "kitchen called from Update")
	assert.Empty(t, m.input.Value())

	run(t, m, cmd)

	assert.Equal(t, []string{"食パン一次発酵40分"}, k.utterances)
	assert.Contains(t, m.View(), "スタートしました")
}

func TestBlankSubmitIsIgnored(t *testing.T) {
	k := &fakeKitchen{}
	m := New(k, nil, NewStyle(true), false, nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Empty(t, k.utterances)
}

func TestRendererEventsUpdateCards(t *testing.T) {
	m := New(&fakeKitchen{}, nil, NewStyle(true), false, nil)

	_, _ = m.Update(timerMsg{view: bread(1, timer.Running)})
	_, _ = m.Update(orderMsg{ids: []int{1}})

	view := m.View()
	assert.Contains(t, view, "食パンの一次発酵")
	assert.Contains(t, view, "00:40:00")
	assert.Contains(t, view, "実行中")
	assert.NotContains(t, view, voice.Examples[1])

	_, _ = m.Update(timerMsg{view: bread(1, timer.Running), deleted: true})
	_, _ = m.Update(orderMsg{ids: []int{}})

	assert.NotContains(t, m.View(), "00:40:00")
}

func TestCardActions(t *testing.T) {
	k := &fakeKitchen{}
	m := New(
		k,
		[]timer.View{bread(1, timer.Running), bread(2, timer.Paused)},
		NewStyle(false),
		false,
		nil,
	)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	run(t, m, cmd)

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	run(t, m, cmd)

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	run(t, m, cmd)

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	run(t, m, cmd)

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlX})
	run(t, m, cmd)

	assert.Equal(t, []string{"pause#1", "resume#2", "reset#2", "delete#2"}, k.calls)
	assert.Equal(t, 1, k.cleared)
}

func TestActionErrorIsShown(t *testing.T) {
	k := &fakeKitchen{err: errors.New("timer 1 not found")}
	m := New(k, []timer.View{bread(1, timer.Completed)}, NewStyle(true), false, nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	run(t, m, cmd)

	assert.Equal(t, []string{"reset#1"}, k.calls)
	assert.True(t, m.feedback.IsError)
	assert.Contains(t, m.View(), "timer 1 not found")
}

func TestSelectionFollowsOrder(t *testing.T) {
	m := New(
		&fakeKitchen{},
		[]timer.View{bread(1, timer.Running), bread(2, timer.Running)},
		NewStyle(true),
		false,
		nil,
	)

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.selected)

	_, _ = m.Update(orderMsg{ids: []int{2}})
	assert.Equal(t, 0, m.selected)

	v, ok := m.selectedView()
	require.True(t, ok)
	assert.Equal(t, 2, v.ID)
}

func TestSpeechMessages(t *testing.T) {
	m := New(&fakeKitchen{}, nil, NewStyle(true), true, nil)

	assert.Contains(t, m.View(), "音声認識中")

	_, _ = m.Update(interimMsg{text: "食パン"})
	assert.Contains(t, m.View(), "… 食パン")

	_, _ = m.Update(spokenMsg{text: "残り10分です"})
	assert.Contains(t, m.View(), "残り10分です")

	_, _ = m.Update(listenDoneMsg{})
	assert.NotContains(t, m.View(), "音声認識中")
}

type fakeSender struct {
	msgs []tea.Msg
}

func (f *fakeSender) Send(msg tea.Msg) {
	f.msgs = append(f.msgs, msg)
}

func TestRendererSends(t *testing.T) {
	s := &fakeSender{}
	r := &Renderer{p: s}

	v := bread(1, timer.Running)

	r.TimerCreated(v)
	r.TimerDeleted(v)
	r.DisplayOrderChanged([]int{1})
	r.Feedback(voice.Outcome{Matched: true})
	r.Interim("食")
	require.NoError(t, r.Speak("はい"))
	r.ListenDone(nil)

	assert.Equal(t, []tea.Msg{
		timerMsg{view: v},
		timerMsg{view: v, deleted: true},
		orderMsg{ids: []int{1}},
		feedbackMsg{outcome: voice.Outcome{Matched: true}},
		interimMsg{text: "食"},
		spokenMsg{text: "はい"},
		listenDoneMsg{},
	}, s.msgs)
}
