// Package timer implements the kitchen process countdown timers and the
// registry that owns them
package timer

import (
	"time"
)

// Status is the lifecycle state of a timer.
type Status string

const (
	Running   Status = "running"
	Paused    Status = "paused"
	Completed Status = "completed"
)

// Timer represents a countdown for one step of one bread.
type Timer struct {
	// StartTime is the wall-clock instant the current countdown began
	StartTime time.Time
	// PausedTime is the instant of the most recent pause. It is only
	// meaningful while the timer is paused
	PausedTime time.Time
	// EndTime is StartTime plus the full duration. It does not account for
	// pauses and is kept for the persisted format
	EndTime time.Time
	// CompletedTime is zero until the timer completes on its own
	CompletedTime       time.Time
	BreadName           string
	ProcessName         string
	Status              Status
	TotalPausedDuration time.Duration
	ID                  int
	// Duration is the configured length in whole minutes
	Duration int
}

// MaxMinutes is the longest duration accepted for a timer: one week.
const MaxMinutes = 7 * 24 * 60

// ValidMinutes reports whether minutes is a usable timer duration.
func ValidMinutes(minutes int) bool {
	return minutes > 0 && minutes <= MaxMinutes
}

// New returns a running timer that starts at now.
func New(id int, breadName, processName string, minutes int, now time.Time) *Timer {
	t := &Timer{
		ID:          id,
		BreadName:   breadName,
		ProcessName: processName,
		Duration:    minutes,
	}

	t.Reset(now)

	return t
}

// Original returns the full length of the timer.
func (t *Timer) Original() time.Duration {
	return time.Duration(t.Duration) * time.Minute
}

// elapsed returns the running time between the start and at, excluding
// pauses.
func (t *Timer) elapsed(at time.Time) time.Duration {
	return at.Sub(t.StartTime) - t.TotalPausedDuration
}

// Remaining returns the time left on the timer at now. The result is frozen
// at the pause instant while paused, is zero once completed, and never leaves
// the range [0, Original()].
func (t *Timer) Remaining(now time.Time) time.Duration {
	var rem time.Duration

	switch t.Status {
	case Completed:
		return 0
	case Paused:
		rem = t.Original() - t.elapsed(t.PausedTime)
	default:
		rem = t.Original() - t.elapsed(now)
	}

	if rem < 0 {
		return 0
	}

	if rem > t.Original() {
		return t.Original()
	}

	return rem
}

// RemainingSeconds returns the remaining time in whole seconds, rounded down.
func (t *Timer) RemainingSeconds(now time.Time) int {
	return int(t.Remaining(now) / time.Second)
}

// Tick recomputes the timer at now and reports whether this call moved it
// from running to completed. It returns true at most once per countdown.
func (t *Timer) Tick(now time.Time) bool {
	if t.Status != Running {
		return false
	}

	if t.Remaining(now) > 0 {
		return false
	}

	t.Status = Completed
	t.CompletedTime = now

	return true
}

// Pause freezes a running timer. It reports whether the status changed.
func (t *Timer) Pause(now time.Time) bool {
	if t.Status != Running {
		return false
	}

	t.Status = Paused
	t.PausedTime = now

	return true
}

// Resume restarts a paused timer, adding the paused interval to the total so
// that the remaining time continues from where it stopped.
func (t *Timer) Resume(now time.Time) bool {
	if t.Status != Paused {
		return false
	}

	t.TotalPausedDuration += now.Sub(t.PausedTime)
	t.PausedTime = time.Time{}
	t.Status = Running

	return true
}

// Reset restarts the timer with its full duration from any status.
func (t *Timer) Reset(now time.Time) {
	t.StartTime = now
	t.PausedTime = time.Time{}
	t.TotalPausedDuration = 0
	t.CompletedTime = time.Time{}
	t.EndTime = now.Add(t.Original())
	t.Status = Running
}

// ForceComplete marks the timer completed without it counting as a natural
// completion. It is used when a timer is removed.
func (t *Timer) ForceComplete() {
	t.Status = Completed
}

// Progress returns the completed fraction of the timer in [0, 1].
func (t *Timer) Progress(now time.Time) float64 {
	if t.Duration <= 0 {
		return 1
	}

	return 1 - float64(t.Remaining(now))/float64(t.Original())
}
