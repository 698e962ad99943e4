package speech

import (
	"io"
	"log/slog"
	"os/exec"
	"sync"

	"github.com/kballard/go-shellquote"
	"github.com/pterm/pterm"
)

// CommandSynthesizer reads text aloud with an external program such as
// "say -v Kyoko" or "espeak-ng -v ja". The text is passed as the last
// argument. Only one utterance plays at a time.
type CommandSynthesizer struct {
	log  *slog.Logger
	cmd  *exec.Cmd
	args []string
	mu   sync.Mutex
}

// NewCommandSynthesizer parses a shell-style command line.
func NewCommandSynthesizer(
	command string,
	log *slog.Logger,
) (*CommandSynthesizer, error) {
	args, err := shellquote.Split(command)
	if err != nil {
		return nil, err
	}

	if len(args) == 0 {
		return nil, errEmptyCommand
	}

	if log == nil {
		log = slog.Default()
	}

	return &CommandSynthesizer{args: args, log: log}, nil
}

// Speak cancels any utterance in progress and starts reading text. It does
// not wait for the program to finish.
func (s *CommandSynthesizer) Speak(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelLocked()

	args := append(append([]string{}, s.args[1:]...), text)

	//nolint:gosec // the command comes from the user's own configuration
	cmd := exec.Command(s.args[0], args...)

	if err := cmd.Start(); err != nil {
		return err
	}

	s.cmd = cmd

	go func() {
		err := cmd.Wait()

		s.mu.Lock()
		if s.cmd == cmd {
			s.cmd = nil
		}
		s.mu.Unlock()

		if err != nil {
			s.log.Debug("speech command ended", slog.Any("error", err))
		}
	}()

	return nil
}

// Cancel stops the utterance in progress, if any.
func (s *CommandSynthesizer) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelLocked()
}

func (s *CommandSynthesizer) cancelLocked() {
	if s.cmd == nil || s.cmd.Process == nil {
		return
	}

	_ = s.cmd.Process.Kill()

	s.cmd = nil
}

// Printer writes spoken text to a terminal. It stands in for a voice when no
// speech program is configured.
type Printer struct {
	w io.Writer
}

// NewPrinter returns a synthesizer that prints to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

func (p *Printer) Speak(text string) error {
	pterm.Fprintln(p.w, pterm.LightCyan("🔊 "+text))

	return nil
}

func (p *Printer) Cancel() {}
