package notify

import (
	"errors"
	"sync"
	"testing"

	"github.com/gopxl/beep/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panasi/panasi/timer"
)

const testRate = beep.SampleRate(8000)

func drain(t *testing.T, s beep.Streamer) (n int, peak float64) {
	t.Helper()

	buf := make([][2]float64, 512)

	for {
		got, ok := s.Stream(buf)

		for _, sample := range buf[:got] {
			peak = max(peak, sample[0], -sample[0])
		}

		n += got

		if !ok {
			return n, peak
		}
	}
}

func TestWarningTone(t *testing.T) {
	s, err := WarningTone(testRate)
	require.NoError(t, err)

	n, peak := drain(t, s)

	assert.Equal(t, testRate.N(warningLen), n)
	assert.InDelta(t, warningLevel, peak, 0.03)
}

func TestAlarmTone(t *testing.T) {
	s, err := AlarmTone(testRate)
	require.NoError(t, err)

	n, peak := drain(t, s)

	want := alarmSequence*(alarmBeeps*testRate.N(alarmLen)+
		(alarmBeeps-1)*testRate.N(alarmGap)) +
		(alarmSequence-1)*testRate.N(alarmRest)

	assert.Equal(t, want, n)
	assert.InDelta(t, alarmLevel, peak, 0.01)
}

func TestToneRejectsAliasedFrequency(t *testing.T) {
	_, err := WarningTone(beep.SampleRate(1000))
	assert.ErrorIs(t, err, errTone)
}

type fakePlayer struct {
	err    error
	played int
}

func (f *fakePlayer) Play(beep.Streamer) error {
	f.played++

	return f.err
}

func TestDesktop(t *testing.T) {
	v := timer.View{
		ID:          1,
		BreadName:   "食パン",
		ProcessName: "一次発酵",
		Status:      timer.Completed,
	}

	t.Run("completed", func(t *testing.T) {
		var (
			wg    sync.WaitGroup
			title string
			body  string
		)

		p := &fakePlayer{}
		d := New(Options{Sound: true, Notification: true}, nil, nil)
		d.player = p

		wg.Add(1)

		d.notify = func(ttl, msg, _ string) error {
			defer wg.Done()

			title, body = ttl, msg

			return nil
		}

		d.TimerCompleted(v)
		wg.Wait()

		assert.Equal(t, notificationTitle, title)
		assert.Equal(t, "食パンの一次発酵が完了しました！", body)
		assert.Equal(t, 1, p.played)
	})

	t.Run("warning disabled", func(t *testing.T) {
		p := &fakePlayer{}
		d := New(Options{Sound: true}, nil, nil)
		d.player = p

		d.TimerUrgent(v)

		assert.Zero(t, p.played)
	})

	t.Run("audio unavailable", func(t *testing.T) {
		p := &fakePlayer{err: errSpeakerInit.Wrap(errors.New("no device"))}
		d := New(Options{Warning: true}, nil, nil)
		d.player = p

		d.TimerUrgent(v)
		d.TimerUrgent(v)

		assert.Equal(t, 1, p.played)
	})
}

func TestPlayerInitialisesOnce(t *testing.T) {
	var inits, plays int

	p := &Player{
		init: func(sr beep.SampleRate, _ int) error {
			inits++

			assert.Equal(t, sampleRate, sr)

			return nil
		},
		play: func(...beep.Streamer) { plays++ },
	}

	require.NoError(t, p.Play(beep.Silence(1)))
	require.NoError(t, p.Play(beep.Silence(1)))

	assert.Equal(t, 1, inits)
	assert.Equal(t, 2, plays)

	failing := &Player{
		init: func(beep.SampleRate, int) error { return errors.New("busy") },
		play: func(...beep.Streamer) { t.Fatal("played without a speaker") },
	}

	assert.ErrorIs(t, failing.Play(beep.Silence(1)), errSpeakerInit)
}
