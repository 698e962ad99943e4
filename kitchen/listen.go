package kitchen

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"

	"golang.org/x/time/rate"

	"github.com/panasi/panasi/internal/apperr"
	"github.com/panasi/panasi/speech"
	"github.com/panasi/panasi/voice"
)

var errListenGaveUp = &apperr.Error{
	Message: "音声認識を再開できませんでした",
}

// Listen feeds final recognition results to HandleUtterance and keeps the
// recognizer running. Sessions that end normally or with a recoverable
// failure are restarted no more often than RestartDelay. Listen returns nil
// when ctx is cancelled or the input is exhausted, and an error when access
// is denied or MaxRestarts consecutive sessions fail without hearing
// anything.
func (k *Kitchen) Listen(ctx context.Context, rec speech.Recognizer) error {
	k.listening.Store(true)
	defer k.listening.Store(false)

	limiter := rate.NewLimiter(rate.Every(k.opts.RestartDelay), 1)
	failures := 0

	for {
		if err := limiter.Wait(ctx); err != nil {
			return nil
		}

		var heard atomic.Bool

		err := rec.Listen(ctx, func(r speech.Result) {
			if !r.Final {
				k.interim(r.Text)
				return
			}

			heard.Store(true)
			k.HandleUtterance(r.Text)
		})

		if ctx.Err() != nil {
			return nil
		}

		if heard.Load() {
			failures = 0
		}

		switch {
		case err == nil:
			continue
		case errors.Is(err, speech.ErrClosed):
			k.log.Info("speech input closed")
			return nil
		case speech.Denied(err):
			k.log.Error("speech input denied", slog.Any("error", err))
			k.reportSpeechError(err)

			return err
		case speech.Recoverable(err):
			failures++

			k.reportSpeechError(err)

			if failures > k.opts.MaxRestarts {
				k.log.Error(
					"speech input keeps failing",
					slog.Int("attempts", failures),
					slog.Any("error", err),
				)

				return errListenGaveUp.Wrap(err)
			}

			k.log.Warn(
				"restarting speech input",
				slog.Int("attempt", failures),
				slog.Any("error", err),
			)
		default:
			k.log.Error("speech input failed", slog.Any("error", err))
			k.reportSpeechError(err)

			return err
		}
	}
}

func (k *Kitchen) reportSpeechError(err error) {
	k.feedback(voice.Outcome{
		DisplayText: speech.Message(err),
		IsError:     true,
	})
}
