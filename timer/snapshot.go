package timer

import (
	"time"
)

// Record is the persisted form of a timer. Instants are Unix milliseconds and
// durations are seconds or milliseconds as named.
type Record struct {
	PausedTime          *int64  `json:"pausedTime"`
	CompletedTime       *int64  `json:"completedTime"`
	BreadName           string  `json:"breadName"`
	ProcessName         string  `json:"processName"`
	Status              Status  `json:"status"`
	RemainingTime       float64 `json:"remainingTime"`
	ID                  int     `json:"id"`
	Duration            int     `json:"duration"`
	OriginalDuration    int     `json:"originalDuration"`
	StartTime           int64   `json:"startTime"`
	TotalPausedDuration int64   `json:"totalPausedDuration"`
	EndTime             int64   `json:"endTime"`
}

// Snapshot is the persisted form of a registry.
type Snapshot struct {
	Timers []Record `json:"timers"`
	NextID int      `json:"nextId"`
}

func millis(t time.Time) *int64 {
	if t.IsZero() {
		return nil
	}

	ms := t.UnixMilli()

	return &ms
}

func fromMillis(ms *int64) time.Time {
	if ms == nil || *ms == 0 {
		return time.Time{}
	}

	return time.UnixMilli(*ms)
}

// Record returns the persisted form of the timer as of now.
func (t *Timer) Record(now time.Time) Record {
	return Record{
		ID:                  t.ID,
		BreadName:           t.BreadName,
		ProcessName:         t.ProcessName,
		Duration:            t.Duration,
		RemainingTime:       t.Remaining(now).Seconds(),
		OriginalDuration:    t.Duration * 60,
		Status:              t.Status,
		StartTime:           t.StartTime.UnixMilli(),
		PausedTime:          millis(t.PausedTime),
		TotalPausedDuration: t.TotalPausedDuration.Milliseconds(),
		EndTime:             t.EndTime.UnixMilli(),
		CompletedTime:       millis(t.CompletedTime),
	}
}

// FromRecord rebuilds a timer from its persisted form, filling in fields that
// older snapshots did not carry.
func FromRecord(rec Record) (*Timer, error) {
	if !ValidMinutes(rec.Duration) {
		return nil, errInvalidSnapshot.
			Fmt(rec.ID, "a duration out of range").
			Wrap(ErrInvalidTimer)
	}

	switch rec.Status {
	case Running, Paused, Completed:
	default:
		return nil, errInvalidSnapshot.Fmt(rec.ID, "unknown status "+string(rec.Status))
	}

	t := &Timer{
		ID:                  rec.ID,
		BreadName:           rec.BreadName,
		ProcessName:         rec.ProcessName,
		Duration:            rec.Duration,
		Status:              rec.Status,
		StartTime:           time.UnixMilli(rec.StartTime),
		PausedTime:          fromMillis(rec.PausedTime),
		TotalPausedDuration: time.Duration(rec.TotalPausedDuration) * time.Millisecond,
		CompletedTime:       fromMillis(rec.CompletedTime),
	}

	if rec.EndTime == 0 {
		t.EndTime = t.StartTime.Add(t.Original())
	} else {
		t.EndTime = time.UnixMilli(rec.EndTime)
	}

	// A paused record without its pause instant is frozen at the remaining
	// time it was saved with.
	if t.Status == Paused && t.PausedTime.IsZero() {
		ran := t.Original() - time.Duration(rec.RemainingTime*float64(time.Second))
		t.PausedTime = t.StartTime.Add(t.TotalPausedDuration + ran)
	}

	return t, nil
}

// Snapshot returns the persisted form of the registry as of now.
func (r *Registry) Snapshot(now time.Time) Snapshot {
	snap := Snapshot{
		Timers: make([]Record, 0, len(r.order)),
		NextID: r.nextID,
	}

	for _, t := range r.All() {
		snap.Timers = append(snap.Timers, t.Record(now))
	}

	return snap
}

// Restore rebuilds a registry from a snapshot. The next ID is never lower
// than one past the highest restored ID.
func Restore(snap Snapshot) (*Registry, error) {
	r := NewRegistry()

	for _, rec := range snap.Timers {
		t, err := FromRecord(rec)
		if err != nil {
			return nil, err
		}

		if _, dup := r.timers[t.ID]; dup {
			continue
		}

		r.add(t)

		if t.ID >= r.nextID {
			r.nextID = t.ID + 1
		}
	}

	if snap.NextID > r.nextID {
		r.nextID = snap.NextID
	}

	return r, nil
}
