package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var epoch = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func at(d time.Duration) time.Time {
	return epoch.Add(d)
}

func TestRemainingBounds(t *testing.T) {
	testCases := []struct {
		Name string
		At   time.Duration
		Want time.Duration
	}{
		{Name: "at start", At: 0, Want: 40 * time.Minute},
		{Name: "midway", At: 15 * time.Minute, Want: 25 * time.Minute},
		{Name: "exactly at the end", At: 40 * time.Minute, Want: 0},
		{Name: "long after the end", At: 3 * time.Hour, Want: 0},
		{Name: "clock before start", At: -time.Minute, Want: 40 * time.Minute},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tm := New(1, "食パン", "一次発酵", 40, epoch)

			got := tm.Remaining(at(tc.At))

			assert.Equal(t, tc.Want, got)
			assert.GreaterOrEqual(t, got, time.Duration(0))
			assert.LessOrEqual(t, got, tm.Original())
		})
	}
}

func TestPauseResumeInvariance(t *testing.T) {
	tm := New(1, "食パン", "一次発酵", 40, epoch)

	assert.True(t, tm.Pause(at(10*time.Minute)))
	assert.Equal(t, Paused, tm.Status)

	// frozen while paused
	assert.Equal(t, 30*time.Minute, tm.Remaining(at(10*time.Minute)))
	assert.Equal(t, 30*time.Minute, tm.Remaining(at(25*time.Minute)))

	assert.True(t, tm.Resume(at(25*time.Minute)))
	assert.Equal(t, 15*time.Minute, tm.TotalPausedDuration)

	// remaining(t+Δ) = remaining(t) - Δ after resuming
	assert.Equal(t, 30*time.Minute, tm.Remaining(at(25*time.Minute)))
	assert.Equal(t, 20*time.Minute, tm.Remaining(at(35*time.Minute)))

	assert.False(t, tm.Resume(at(36*time.Minute)), "resume of a running timer")
}

func TestTickCompletesOnce(t *testing.T) {
	tm := New(1, "メロンパン", "焼成", 1, epoch)

	assert.False(t, tm.Tick(at(30*time.Second)))
	assert.True(t, tm.Tick(at(61*time.Second)))
	assert.Equal(t, Completed, tm.Status)
	assert.Equal(t, at(61*time.Second), tm.CompletedTime)

	assert.False(t, tm.Tick(at(62*time.Second)))
	assert.False(t, tm.Tick(at(time.Hour)))
	assert.Equal(t, at(61*time.Second), tm.CompletedTime)
}

func TestTickCompletesRetroactively(t *testing.T) {
	tm := New(1, "バゲット", "二次発酵", 5, epoch)

	// the process was asleep long past the end
	assert.True(t, tm.Tick(at(2*time.Hour)))
	assert.Equal(t, time.Duration(0), tm.Remaining(at(2*time.Hour)))
}

func TestPausedTimerDoesNotComplete(t *testing.T) {
	tm := New(1, "食パン", "成形", 1, epoch)
	tm.Pause(at(10 * time.Second))

	assert.False(t, tm.Tick(at(time.Hour)))
	assert.Equal(t, Paused, tm.Status)
	assert.Equal(t, 50*time.Second, tm.Remaining(at(time.Hour)))
}

func TestReset(t *testing.T) {
	tm := New(1, "食パン", "焼成", 10, epoch)
	tm.Pause(at(time.Minute))
	tm.Resume(at(2 * time.Minute))
	tm.Tick(at(time.Hour))

	tm.Reset(at(2 * time.Hour))

	assert.Equal(t, Running, tm.Status)
	assert.Equal(t, time.Duration(0), tm.TotalPausedDuration)
	assert.True(t, tm.CompletedTime.IsZero())
	assert.Equal(t, at(2*time.Hour+10*time.Minute), tm.EndTime)
	assert.Equal(t, 10*time.Minute, tm.Remaining(at(2*time.Hour)))

	assert.True(t, tm.Tick(at(3*time.Hour)), "a reset timer completes again")
}

func TestForceComplete(t *testing.T) {
	tm := New(1, "食パン", "焼成", 10, epoch)
	tm.ForceComplete()

	assert.Equal(t, Completed, tm.Status)
	assert.True(t, tm.CompletedTime.IsZero())
	assert.False(t, tm.Tick(at(time.Hour)))
}

func TestView(t *testing.T) {
	tm := New(4, "食パン", "一次発酵", 90, epoch)

	v := tm.View(at(29*time.Minute + 30*time.Second))

	assert.Equal(t, "食パンの一次発酵", v.Title())
	assert.Equal(t, "01:00:30", v.Clock())
	assert.Equal(t, 61, v.MinutesLeft())
	assert.False(t, v.Urgent())
	assert.Equal(t, "実行中", v.Status.StatusText())

	v = tm.View(at(89*time.Minute + 10*time.Second))
	assert.True(t, v.Urgent())
	assert.Equal(t, 1, v.MinutesLeft())
}
