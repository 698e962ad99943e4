package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/panasi/panasi/internal/apperr"
	"github.com/panasi/panasi/internal/config"
	"github.com/panasi/panasi/internal/logger"
	"github.com/panasi/panasi/internal/pathutil"
	"github.com/panasi/panasi/internal/ui"
	"github.com/panasi/panasi/kitchen"
	"github.com/panasi/panasi/notify"
	"github.com/panasi/panasi/report"
	"github.com/panasi/panasi/speech"
	"github.com/panasi/panasi/store"
	"github.com/panasi/panasi/tui"
	"github.com/panasi/panasi/voice"
)

const (
	envNoColor       = "NO_COLOR"
	envPanasiNoColor = "PANASI_NO_COLOR"
)

var errNoUtterance = &apperr.Error{
	Message: "nothing to say: pass the command as an argument",
}

// env holds what every command that touches the timers needs.
type env struct {
	cfg     *config.Config
	log     *slog.Logger
	db      *store.Client
	k       *kitchen.Kitchen
	closers []io.Closer
}

func loadConfig(ctx *cli.Context) (*config.Config, error) {
	if err := pathutil.Initialize(); err != nil {
		return nil, err
	}

	cfg, err := config.New(
		config.WithPromptConfig(pathutil.ConfigFilePath()),
		config.WithViperConfig(pathutil.ConfigFilePath()),
		config.WithCLIConfig(ctx),
		config.WithPaths(
			pathutil.DBFilePath(),
			pathutil.StatusFilePath(),
			pathutil.LogFilePath(),
		),
	)
	if err != nil {
		return nil, err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	return cfg, nil
}

// open loads the configuration, opens the database and restores the
// kitchen.
func open(ctx *cli.Context) (*env, error) {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return nil, err
	}

	e := &env{cfg: cfg}

	log, closer, err := logger.New(cfg.System.LogPath, logger.Level(cfg.System.Debug))
	if err != nil {
		return nil, err
	}

	e.log = log
	e.closers = append(e.closers, closer)

	e.db, err = store.NewClient(cfg.System.DBPath, cfg.System.StatusPath)
	if err != nil {
		_ = e.Close()
		return nil, err
	}

	e.closers = append(e.closers, e.db)

	router := voice.NewRouter(
		voice.WithVocabulary(cfg.Vocabulary.Breads, cfg.Vocabulary.Processes),
		voice.WithLogger(log),
	)

	base := []kitchen.Option{
		kitchen.WithStore(e.db),
		kitchen.WithRouter(router),
		kitchen.WithLogger(log),
		kitchen.WithOptions(kitchen.Options{
			Retention:      cfg.Timers.Retention,
			TickInterval:   cfg.Timers.TickInterval,
			ResortInterval: cfg.Timers.ResortInterval,
			RestartDelay:   cfg.Voice.RestartDelay,
			MaxRestarts:    cfg.Voice.MaxRestarts,
		}),
	}

	if cfg.Voice.SpeakCmd != "" {
		synth, err := speech.NewCommandSynthesizer(cfg.Voice.SpeakCmd, log)
		if err != nil {
			_ = e.Close()
			return nil, err
		}

		base = append(base, kitchen.WithSynthesizer(synth))
	}

	e.k, err = kitchen.New(base...)
	if err != nil {
		_ = e.Close()
		return nil, err
	}

	return e, nil
}

// openSettled is open for one-shot commands. Timers that ran out while
// nothing was ticking are completed first.
func openSettled(ctx *cli.Context) (*env, error) {
	e, err := open(ctx)
	if err != nil {
		return nil, err
	}

	e.k.Tick()

	return e, nil
}

// Close releases the database and the log file.
func (e *env) Close() error {
	var errs []error

	for i := len(e.closers) - 1; i >= 0; i-- {
		errs = append(errs, e.closers[i].Close())
	}

	return errors.Join(errs...)
}

// notifier builds the desktop notifier from the alert settings.
func (e *env) notifier() *notify.Desktop {
	alerts := e.cfg.Alerts

	var player *notify.Player
	if alerts.Sound || alerts.Warning {
		player = notify.NewPlayer()
	}

	return notify.New(notify.Options{
		Sound:        alerts.Sound,
		Warning:      alerts.Warning,
		Notification: alerts.Notification,
	}, player, e.log)
}

// recognizer returns the configured speech-to-text command, or reads typed
// lines from stdin in plain mode. The full-screen view takes typed input
// itself, so it gets no recognizer.
func (e *env) recognizer(plain bool) (speech.Recognizer, error) {
	if cmd := e.cfg.Voice.RecognizeCmd; cmd != "" {
		return speech.NewCommandRecognizer(cmd)
	}

	if plain {
		return speech.NewLineRecognizer(config.Stdin), nil
	}

	return nil, nil
}

// listenAction runs the kitchen until the user quits.
func listenAction(ctx *cli.Context) error {
	plain := ctx.Bool("plain")

	e, err := open(ctx)
	if err != nil {
		return err
	}

	defer e.Close()

	rec, err := e.recognizer(plain)
	if err != nil {
		return err
	}

	if c, ok := rec.(io.Closer); ok {
		defer c.Close()
	}

	c, stop := signal.NotifyContext(ctx.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	e.k.Attach(kitchen.WithNotifier(e.notifier()))

	if plain {
		return e.listenPlain(c, rec)
	}

	return e.listenTUI(c, rec)
}

// listenPlain prints every outcome and stops when the input is exhausted.
func (e *env) listenPlain(ctx context.Context, rec speech.Recognizer) error {
	out := config.Stdout

	printed := e.cfg.Voice.SpeakCmd == ""

	opts := []kitchen.Option{kitchen.WithRenderer(newPlainRenderer(out, printed))}
	if printed {
		opts = append(opts, kitchen.WithSynthesizer(speech.NewPrinter(out)))
	}

	e.k.Attach(opts...)

	views := e.k.Timers()
	if len(views) > 0 {
		ui.PrintTable(ui.TimerRows(views), out)
	}

	pterm.Fprintln(out, pterm.FgGray.Sprint("例: "+strings.Join(voice.Examples, " / ")))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return e.k.Run(gctx)
	})

	g.Go(func() error {
		defer cancel()

		return e.k.Listen(gctx, rec)
	})

	return g.Wait()
}

// listenTUI shows the full-screen view. Speech input problems are shown on
// screen and do not end the program.
func (e *env) listenTUI(ctx context.Context, rec speech.Recognizer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := tui.New(
		e.k,
		e.k.Timers(),
		tui.NewStyle(e.cfg.Display.DarkTheme),
		rec != nil,
		e.log,
	)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	r := tui.NewRenderer(p)

	opts := []kitchen.Option{kitchen.WithRenderer(r)}
	if e.cfg.Voice.SpeakCmd == "" {
		opts = append(opts, kitchen.WithSynthesizer(r))
	}

	e.k.Attach(opts...)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return e.k.Run(gctx)
	})

	if rec != nil {
		g.Go(func() error {
			r.ListenDone(e.k.Listen(gctx, rec))
			return nil
		})
	}

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		err = nil
	}

	cancel()

	return errors.Join(err, g.Wait())
}

// sayAction routes a single utterance against the saved timers. The
// creation dialog is saved too, so it can be continued by the next call.
func sayAction(ctx *cli.Context) error {
	text := strings.TrimSpace(strings.Join(ctx.Args().Slice(), " "))
	if text == "" {
		return errNoUtterance
	}

	e, err := openSettled(ctx)
	if err != nil {
		return err
	}

	defer e.Close()

	out := e.k.HandleUtterance(text)

	report.Outcome(config.Stdout, out)

	return nil
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if PANASI_NO_COLOR is set
	if _, exists := os.LookupEnv(envPanasiNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.DebugContext(ctx.Context, "exiting panasi")

	return nil
}
