package timer

import (
	"fmt"
	"math"
	"time"
)

// View is a read-only copy of a timer handed to renderers and notifiers.
type View struct {
	BreadName   string
	ProcessName string
	Status      Status
	ID          int
	Duration    int
	Remaining   time.Duration
	Progress    float64
}

// View returns a copy of the timer as of now.
func (t *Timer) View(now time.Time) View {
	return View{
		ID:          t.ID,
		BreadName:   t.BreadName,
		ProcessName: t.ProcessName,
		Duration:    t.Duration,
		Status:      t.Status,
		Remaining:   t.Remaining(now),
		Progress:    t.Progress(now),
	}
}

// Title returns "<bread>の<process>".
func (v View) Title() string {
	return v.BreadName + "の" + v.ProcessName
}

// Clock formats the remaining time as HH:MM:SS.
func (v View) Clock() string {
	total := int(v.Remaining / time.Second)

	return fmt.Sprintf(
		"%02d:%02d:%02d",
		total/3600,
		(total%3600)/60,
		total%60,
	)
}

// MinutesLeft returns the remaining time in minutes, rounded up.
func (v View) MinutesLeft() int {
	return int(math.Ceil(v.Remaining.Seconds() / 60))
}

// Urgent reports whether a running timer is in its final minute.
func (v View) Urgent() bool {
	return v.Status == Running && v.Remaining > 0 && v.Remaining <= time.Minute
}

// StatusText returns the label shown for the status.
func (s Status) StatusText() string {
	switch s {
	case Running:
		return "実行中"
	case Paused:
		return "一時停止"
	case Completed:
		return "完了"
	}

	return string(s)
}

// Views returns a view of every timer in display order.
func (r *Registry) Views(now time.Time) []View {
	ids := r.DisplayOrder()
	views := make([]View, 0, len(ids))

	for _, id := range ids {
		if t, ok := r.timers[id]; ok {
			views = append(views, t.View(now))
		}
	}

	return views
}
