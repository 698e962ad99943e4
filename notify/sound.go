package notify

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	bufferSize = 10

	warningFreq  = 800
	warningLen   = 300 * time.Millisecond
	warningLevel = 0.3

	alarmFreq     = 1000
	alarmLen      = 500 * time.Millisecond
	alarmGap      = 100 * time.Millisecond
	alarmRest     = time.Second
	alarmLevel    = 0.5
	alarmBeeps    = 3
	alarmSequence = 3

	fadeTo = 0.01
)

// Player plays generated tones on the default audio device. The speaker is
// initialised on first use.
type Player struct {
	init    func(sr beep.SampleRate, bufferSize int) error
	play    func(s ...beep.Streamer)
	initErr error
	once    sync.Once
}

// NewPlayer returns a Player backed by the system speaker.
func NewPlayer() *Player {
	return &Player{
		init: speaker.Init,
		play: speaker.Play,
	}
}

// Play queues s on the speaker and returns immediately.
func (p *Player) Play(s beep.Streamer) error {
	p.once.Do(func() {
		p.initErr = p.init(
			sampleRate,
			sampleRate.N(time.Second/bufferSize),
		)
	})

	if p.initErr != nil {
		return errSpeakerInit.Wrap(p.initErr)
	}

	p.play(s)

	return nil
}

// WarningTone returns the short sine beep played during a timer's final
// minute.
func WarningTone(sr beep.SampleRate) (beep.Streamer, error) {
	return tone(sr, generators.SineTone, warningFreq, warningLen, warningLevel)
}

// AlarmTone returns the completion alarm: three sequences of three square
// wave beeps with a rest between the sequences.
func AlarmTone(sr beep.SampleRate) (beep.Streamer, error) {
	var parts []beep.Streamer

	for seq := range alarmSequence {
		if seq > 0 {
			parts = append(parts, beep.Silence(sr.N(alarmRest)))
		}

		for i := range alarmBeeps {
			if i > 0 {
				parts = append(parts, beep.Silence(sr.N(alarmGap)))
			}

			b, err := tone(
				sr,
				generators.SquareTone,
				alarmFreq,
				alarmLen,
				alarmLevel,
			)
			if err != nil {
				return nil, err
			}

			parts = append(parts, b)
		}
	}

	return beep.Seq(parts...), nil
}

type generator func(sr beep.SampleRate, freq float64) (beep.Streamer, error)

// tone plays freq for d at the given level, fading out exponentially.
func tone(
	sr beep.SampleRate,
	gen generator,
	freq float64,
	d time.Duration,
	level float64,
) (beep.Streamer, error) {
	osc, err := gen(sr, freq)
	if err != nil {
		return nil, errTone.Fmt(freq, err)
	}

	n := sr.N(d)

	return &effects.Volume{
		Streamer: beep.Take(n, fade(osc, n, fadeTo)),
		Base:     2,
		Volume:   math.Log2(level),
	}, nil
}

// fade scales s from full gain down to `to` over n samples.
func fade(s beep.Streamer, n int, to float64) beep.Streamer {
	pos := 0

	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		got, ok := s.Stream(samples)

		for i := range samples[:got] {
			gain := math.Pow(to, float64(pos)/float64(n))
			if pos >= n {
				gain = to
			}

			samples[i][0] *= gain
			samples[i][1] *= gain
			pos++
		}

		return got, ok
	})
}
