// Package notify alerts the user about timers through desktop notifications
// and generated beeps
package notify

import (
	"errors"
	"log/slog"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/gen2brain/beeep"
	"github.com/gopxl/beep/v2"

	"github.com/panasi/panasi/timer"
)

const notificationTitle = "Panasi - タイマー完了"

// Options selects which alerts are enabled.
type Options struct {
	Sound        bool
	Warning      bool
	Notification bool
}

type player interface {
	Play(s beep.Streamer) error
}

// Desktop sends completion notifications and plays the warning and alarm
// tones. None of its methods block.
type Desktop struct {
	player player
	notify func(title, message, icon string) error
	log    *slog.Logger
	icon   string
	opts   Options
}

// New returns a Desktop notifier. A nil player disables every tone.
func New(opts Options, p *Player, log *slog.Logger) *Desktop {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	// icon is empty if the file is not found
	icon, _ := xdg.SearchDataFile(filepath.Join("panasi", "icon.png"))

	d := &Desktop{
		notify: beeep.Notify,
		log:    log,
		icon:   icon,
		opts:   opts,
	}

	if p != nil {
		d.player = p
	}

	return d
}

// Message returns the notification body for a completed timer.
func Message(v timer.View) string {
	return v.Title() + "が完了しました！"
}

// TimerCompleted shows a desktop notification and plays the alarm.
func (d *Desktop) TimerCompleted(v timer.View) {
	if d.opts.Notification {
		go func() {
			err := d.notify(notificationTitle, Message(v), d.icon)
			if err != nil {
				d.log.Warn(
					"unable to display notification",
					slog.Int("timer_id", v.ID),
					slog.Any("error", err),
				)
			}
		}()
	}

	if d.opts.Sound {
		d.playTone(AlarmTone)
	}
}

// TimerUrgent plays the warning beep.
func (d *Desktop) TimerUrgent(v timer.View) {
	if !d.opts.Warning {
		return
	}

	d.log.Debug("urgent timer", slog.Int("timer_id", v.ID))

	d.playTone(WarningTone)
}

func (d *Desktop) playTone(build func(beep.SampleRate) (beep.Streamer, error)) {
	if d.player == nil {
		return
	}

	s, err := build(sampleRate)
	if err == nil {
		err = d.player.Play(s)
	}

	if err != nil {
		d.log.Warn("unable to play sound", slog.Any("error", err))
	}

	// callers are serialised by the kitchen
	if errors.Is(err, errSpeakerInit) {
		d.player = nil
	}
}
