package kitchen

import (
	"github.com/panasi/panasi/dialog"
	"github.com/panasi/panasi/timer"
	"github.com/panasi/panasi/voice"
)

// Persister stores the timer snapshot. Load returns a nil snapshot when
// nothing has been saved yet.
type Persister interface {
	Save(snap timer.Snapshot) error
	Load() (*timer.Snapshot, error)
}

// ConversationStore is implemented by persisters that can also keep the
// creation dialog between process runs.
type ConversationStore interface {
	SaveConversation(c dialog.Conversation) error
	LoadConversation() (dialog.Conversation, error)
}

// Renderer is told about every change to the timer collection.
type Renderer interface {
	TimerCreated(v timer.View)
	TimerUpdated(v timer.View)
	TimerDeleted(v timer.View)
	DisplayOrderChanged(ids []int)
}

// FeedbackRenderer is implemented by renderers that show command results.
type FeedbackRenderer interface {
	Feedback(out voice.Outcome)
}

// InterimRenderer is implemented by renderers that show partial recognition
// results while the user is still speaking.
type InterimRenderer interface {
	Interim(text string)
}

// Notifier alerts the user when a timer completes. Implementations must not
// block.
type Notifier interface {
	TimerCompleted(v timer.View)
}

// Warner is implemented by notifiers that also warn while a timer is about
// to complete.
type Warner interface {
	TimerUrgent(v timer.View)
}

// Synthesizer reads responses aloud.
type Synthesizer interface {
	Speak(text string) error
	Cancel()
}

type nopRenderer struct{}

func (nopRenderer) TimerCreated(timer.View)   {}
func (nopRenderer) TimerUpdated(timer.View)   {}
func (nopRenderer) TimerDeleted(timer.View)   {}
func (nopRenderer) DisplayOrderChanged([]int) {}

type nopNotifier struct{}

func (nopNotifier) TimerCompleted(timer.View) {}

type nopSynthesizer struct{}

func (nopSynthesizer) Speak(string) error { return nil }
func (nopSynthesizer) Cancel()            {}

type memoryStore struct {
	snap *timer.Snapshot
}

func (m *memoryStore) Save(snap timer.Snapshot) error {
	m.snap = &snap

	return nil
}

func (m *memoryStore) Load() (*timer.Snapshot, error) {
	return m.snap, nil
}
