package kitchen

import (
	"log/slog"
	"time"

	"github.com/panasi/panasi/timer"
	"github.com/panasi/panasi/voice"
)

var _ voice.Timers = (*session)(nil)

// session applies commands to the registry at a fixed instant and reports
// each change to the renderer. It is only used with the kitchen lock held.
type session struct {
	k       *Kitchen
	now     time.Time
	changed bool
}

func (k *Kitchen) session() *session {
	return &session{k: k, now: k.now()}
}

func (s *session) reg() *timer.Registry {
	return s.k.registry
}

func (s *session) reorder() {
	s.k.renderer.DisplayOrderChanged(s.reg().DisplayOrder())
}

func (s *session) All() []timer.View {
	all := s.reg().All()
	views := make([]timer.View, 0, len(all))

	for _, t := range all {
		views = append(views, t.View(s.now))
	}

	return views
}

func (s *session) Find(name string) (timer.View, bool) {
	t := s.reg().FindByName(name)
	if t == nil {
		return timer.View{}, false
	}

	return t.View(s.now), true
}

func (s *session) Create(
	breadName, processName string,
	minutes int,
) (timer.View, error) {
	t, err := s.reg().Create(breadName, processName, minutes, s.now)
	if err != nil {
		return timer.View{}, err
	}

	s.changed = true
	v := t.View(s.now)

	s.k.renderer.TimerCreated(v)
	s.reorder()

	s.k.log.Info(
		"timer created",
		slog.Int("id", t.ID),
		slog.String("bread", t.BreadName),
		slog.String("process", t.ProcessName),
		slog.Int("minutes", t.Duration),
	)

	return v, nil
}

// apply runs fn on the timer with the given ID and reports the result when
// fn changed it.
func (s *session) apply(id int, fn func(t *timer.Timer) bool) error {
	t, ok := s.reg().Get(id)
	if !ok {
		return timer.ErrNotFound.Fmt(id)
	}

	if fn(t) {
		s.changed = true
		delete(s.k.warned, id)
		s.k.renderer.TimerUpdated(t.View(s.now))
	}

	return nil
}

func (s *session) Pause(id int) error {
	return s.apply(id, func(t *timer.Timer) bool {
		return t.Pause(s.now)
	})
}

func (s *session) Resume(id int) error {
	return s.apply(id, func(t *timer.Timer) bool {
		return t.Resume(s.now)
	})
}

func (s *session) Reset(id int) error {
	err := s.apply(id, func(t *timer.Timer) bool {
		t.Reset(s.now)
		return true
	})
	if err != nil {
		return err
	}

	s.reorder()

	return nil
}

func (s *session) Delete(id int) error {
	t, err := s.reg().Delete(id)
	if err != nil {
		return err
	}

	s.changed = true
	delete(s.k.warned, id)

	s.k.renderer.TimerDeleted(t.View(s.now))
	s.reorder()

	return nil
}

func (s *session) PauseAll() (int, error) {
	paused, err := s.reg().PauseAll(s.now)
	if err != nil {
		return 0, err
	}

	s.changed = true

	for _, t := range paused {
		s.k.renderer.TimerUpdated(t.View(s.now))
	}

	return len(paused), nil
}

func (s *session) DeleteAll() int {
	removed := s.reg().DeleteAll()
	if len(removed) == 0 {
		return 0
	}

	s.changed = true
	clear(s.k.warned)

	for _, t := range removed {
		s.k.renderer.TimerDeleted(t.View(s.now))
	}

	s.reorder()

	return len(removed)
}

func (s *session) MoveToTop(id int) error {
	if !s.reg().MoveToTop(id) {
		return timer.ErrNotFound.Fmt(id)
	}

	s.reorder()

	return nil
}
