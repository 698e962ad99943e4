package timer

import (
	"cmp"
	"slices"
	"strings"
	"time"
)

// Registry owns every live timer. Iteration follows insertion order, which is
// also the order name lookups are resolved in.
type Registry struct {
	timers map[int]*Timer
	order  []int
	nextID int
	pinned int
}

// NewRegistry returns an empty registry whose first timer gets ID 1.
func NewRegistry() *Registry {
	return &Registry{
		timers: make(map[int]*Timer),
		nextID: 1,
	}
}

// Len returns the number of timers.
func (r *Registry) Len() int {
	return len(r.order)
}

// NextID returns the ID the next created timer will receive.
func (r *Registry) NextID() int {
	return r.nextID
}

// Get returns the timer with the given ID.
func (r *Registry) Get(id int) (*Timer, bool) {
	t, ok := r.timers[id]
	return t, ok
}

// All returns the timers in insertion order.
func (r *Registry) All() []*Timer {
	all := make([]*Timer, 0, len(r.order))
	for _, id := range r.order {
		all = append(all, r.timers[id])
	}

	return all
}

// Create validates the input and adds a new running timer.
func (r *Registry) Create(
	breadName, processName string,
	minutes int,
	now time.Time,
) (*Timer, error) {
	breadName = strings.TrimSpace(breadName)
	processName = strings.TrimSpace(processName)

	if breadName == "" || processName == "" || !ValidMinutes(minutes) {
		return nil, ErrInvalidTimer
	}

	t := New(r.nextID, breadName, processName, minutes, now)

	r.nextID++
	r.add(t)

	return t, nil
}

func (r *Registry) add(t *Timer) {
	r.timers[t.ID] = t
	r.order = append(r.order, t.ID)
	r.pinned = 0
}

// FindByName returns the first timer, in insertion order, whose bread name
// equals text, contains it, or is contained in it. Whitespace is ignored as a
// last resort. Matching is case-sensitive.
func (r *Registry) FindByName(text string) *Timer {
	if text == "" {
		return nil
	}

	compact := stripSpace(text)

	for _, id := range r.order {
		t := r.timers[id]
		name := t.BreadName

		if name == text ||
			strings.Contains(name, text) ||
			strings.Contains(text, name) {
			return t
		}

		n := stripSpace(name)
		if n != "" && compact != "" &&
			(strings.Contains(n, compact) || strings.Contains(compact, n)) {
			return t
		}
	}

	return nil
}

func stripSpace(s string) string {
	return strings.Join(strings.Fields(s), "")
}

// PauseAll pauses every running timer and returns the ones it paused. It
// fails with ErrNoTimers when the registry is empty and with ErrNoneRunning
// when nothing is running.
func (r *Registry) PauseAll(now time.Time) ([]*Timer, error) {
	if len(r.order) == 0 {
		return nil, ErrNoTimers
	}

	var paused []*Timer

	for _, t := range r.All() {
		if t.Pause(now) {
			paused = append(paused, t)
		}
	}

	if len(paused) == 0 {
		return nil, ErrNoneRunning
	}

	return paused, nil
}

// Delete stops and removes a timer.
func (r *Registry) Delete(id int) (*Timer, error) {
	t, ok := r.timers[id]
	if !ok {
		return nil, ErrNotFound.Fmt(id)
	}

	t.ForceComplete()

	delete(r.timers, id)

	r.order = slices.DeleteFunc(r.order, func(v int) bool {
		return v == id
	})

	r.pinned = 0

	return t, nil
}

// DeleteAll removes every timer and returns them.
func (r *Registry) DeleteAll() []*Timer {
	all := r.All()

	for _, t := range all {
		_, _ = r.Delete(t.ID)
	}

	return all
}

// Tick advances every running timer and returns those that completed during
// this call.
func (r *Registry) Tick(now time.Time) []*Timer {
	var done []*Timer

	for _, t := range r.All() {
		if t.Tick(now) {
			done = append(done, t)
		}
	}

	return done
}

// EvictStaleCompleted removes timers that completed on their own more than
// retention ago and returns them.
func (r *Registry) EvictStaleCompleted(
	now time.Time,
	retention time.Duration,
) []*Timer {
	var stale []*Timer

	for _, t := range r.All() {
		if t.Status != Completed || t.CompletedTime.IsZero() {
			continue
		}

		if now.Sub(t.CompletedTime) > retention {
			stale = append(stale, t)
		}
	}

	for _, t := range stale {
		_, _ = r.Delete(t.ID)
	}

	return stale
}

// MoveToTop lists the timer first in the display order until the next
// structural change or re-sort.
func (r *Registry) MoveToTop(id int) bool {
	if _, ok := r.timers[id]; !ok {
		return false
	}

	r.pinned = id

	return true
}

// Resort drops any move-to-top request and returns the standard order.
func (r *Registry) Resort() []int {
	r.pinned = 0

	return r.DisplayOrder()
}

// DisplayOrder returns timer IDs with non-completed timers first, each group
// in ascending ID order. A timer moved to the top precedes all others.
func (r *Registry) DisplayOrder() []int {
	ids := slices.Clone(r.order)

	slices.SortStableFunc(ids, func(a, b int) int {
		if a == b {
			return 0
		}

		if a == r.pinned {
			return -1
		}

		if b == r.pinned {
			return 1
		}

		ac := r.timers[a].Status == Completed
		bc := r.timers[b].Status == Completed

		if ac != bc {
			if ac {
				return 1
			}

			return -1
		}

		return cmp.Compare(a, b)
	})

	return ids
}
