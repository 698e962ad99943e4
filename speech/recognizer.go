// Package speech provides the speech input and output adapters used by the
// kitchen: recognizers that turn an input source into utterances and
// synthesizers that read responses aloud
package speech

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"

	"github.com/kballard/go-shellquote"
)

// Result is one recognition result. Interim results may be revised by later
// ones; only final results are acted upon.
type Result struct {
	Text  string
	Final bool
}

// Recognizer runs one recognition session. Listen delivers results until the
// session ends and returns nil when it ended normally, or an error
// describing why it stopped. Callers start a new session to keep listening.
type Recognizer interface {
	Listen(ctx context.Context, deliver func(Result)) error
}

// LineRecognizer treats every line read from r as a final utterance. An
// empty line ends the session with ErrNoSpeech, and the end of input or
// Close with ErrClosed.
type LineRecognizer struct {
	r         io.Reader
	lines     chan string
	done      chan struct{}
	stopped   chan struct{}
	err       error
	once      sync.Once
	closeOnce sync.Once
}

// NewLineRecognizer returns a recognizer that reads utterances from r.
func NewLineRecognizer(r io.Reader) *LineRecognizer {
	return &LineRecognizer{
		r:       r,
		lines:   make(chan string),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
}

// scan reads in the background so that Listen can return on cancellation
// while a read is blocked.
func (l *LineRecognizer) scan() {
	go func() {
		defer close(l.stopped)
		defer close(l.lines)

		sc := bufio.NewScanner(l.r)

		for sc.Scan() {
			select {
			case l.lines <- sc.Text():
			case <-l.done:
				return
			}
		}

		l.err = sc.Err()
	}()
}

// Close ends the current and every later session. A line that was read but
// not yet delivered is dropped. A read blocked on r is not interrupted; the
// background reader exits once it returns.
func (l *LineRecognizer) Close() error {
	l.closeOnce.Do(func() {
		close(l.done)
	})

	return nil
}

func (l *LineRecognizer) Listen(
	ctx context.Context,
	deliver func(Result),
) error {
	l.once.Do(l.scan)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.done:
			return ErrClosed
		case line, ok := <-l.lines:
			if !ok {
				if l.err != nil {
					return ErrAborted.Wrap(l.err)
				}

				return ErrClosed
			}

			line = strings.TrimSpace(line)
			if line == "" {
				return ErrNoSpeech
			}

			deliver(Result{Text: line, Final: true})
		}
	}
}

// CommandRecognizer runs an external speech-to-text program for each session
// and treats every line it prints as a final utterance. Lines prefixed with
// "~" are interim results.
type CommandRecognizer struct {
	args []string
}

var errEmptyCommand = errors.New("empty recognizer command")

// NewCommandRecognizer parses a shell-style command line.
func NewCommandRecognizer(command string) (*CommandRecognizer, error) {
	args, err := shellquote.Split(command)
	if err != nil {
		return nil, err
	}

	if len(args) == 0 {
		return nil, errEmptyCommand
	}

	return &CommandRecognizer{args: args}, nil
}

func (c *CommandRecognizer) Listen(
	ctx context.Context,
	deliver func(Result),
) error {
	//nolint:gosec // the command comes from the user's own configuration
	cmd := exec.CommandContext(ctx, c.args[0], c.args[1:]...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return ErrAudioCapture.Wrap(err)
	}

	if err = cmd.Start(); err != nil {
		switch {
		case errors.Is(err, exec.ErrNotFound):
			return ErrServiceNotAllowed.Wrap(err)
		case errors.Is(err, os.ErrPermission):
			return ErrNotAllowed.Wrap(err)
		}

		return ErrAudioCapture.Wrap(err)
	}

	sc := bufio.NewScanner(stdout)

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		if interim, ok := strings.CutPrefix(line, "~"); ok {
			deliver(Result{Text: strings.TrimSpace(interim)})
			continue
		}

		deliver(Result{Text: line, Final: true})
	}

	err = cmd.Wait()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	if err != nil {
		return ErrAborted.Wrap(err)
	}

	return nil
}
