package app

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/panasi/panasi/internal/apperr"
	"github.com/panasi/panasi/internal/config"
	"github.com/panasi/panasi/internal/timeutil"
	"github.com/panasi/panasi/report"
	"github.com/panasi/panasi/store"
	"github.com/panasi/panasi/timer"
)

var (
	errMissingID = &apperr.Error{
		Message: "a timer ID is required (see 'panasi list')",
	}

	errInvalidID = &apperr.Error{
		Message: "invalid timer ID %q",
	}

	errMissingFile = &apperr.Error{
		Message: "the file to import is required",
	}
)

// manualInput holds the fields of the manual creation form.
type manualInput struct {
	Bread   string
	Process string
	Minutes string
}

func (in manualInput) complete() bool {
	return strings.TrimSpace(in.Bread) != "" &&
		strings.TrimSpace(in.Process) != "" &&
		strings.TrimSpace(in.Minutes) != ""
}

// minutes returns the duration in minutes. Invalid input is reported with
// the same message as a failed creation.
func (in manualInput) minutes() (int, error) {
	m, err := strconv.Atoi(strings.TrimSpace(in.Minutes))
	if err != nil || !timer.ValidMinutes(m) {
		return 0, timer.ErrInvalidTimer
	}

	return m, nil
}

func validateMinutes(s string) error {
	_, err := manualInput{Minutes: s}.minutes()
	return err
}

// prompt asks for the fields that were not given on the command line.
func (in *manualInput) prompt(cfg *config.Config) error {
	var fields []huh.Field

	if strings.TrimSpace(in.Bread) == "" {
		fields = append(fields, huh.NewInput().
			Title("パン名").
			Description(strings.Join(cfg.Vocabulary.Breads, "、")).
			Value(&in.Bread))
	}

	if strings.TrimSpace(in.Process) == "" {
		fields = append(fields, huh.NewInput().
			Title("工程名").
			Description(strings.Join(cfg.Vocabulary.Processes, "、")).
			Value(&in.Process))
	}

	if strings.TrimSpace(in.Minutes) == "" {
		fields = append(fields, huh.NewInput().
			Title("時間（分）").
			Validate(validateMinutes).
			Value(&in.Minutes))
	}

	return huh.NewForm(huh.NewGroup(fields...)).Run()
}

// addAction creates a timer from arguments or the creation form.
func addAction(ctx *cli.Context) error {
	args := ctx.Args()

	in := manualInput{
		Bread:   args.Get(0),
		Process: args.Get(1),
		Minutes: args.Get(2),
	}

	start := time.Now()

	if since := ctx.String("since"); since != "" {
		var err error

		start, err = timeutil.FromStr(since, start)
		if err != nil {
			return err
		}
	}

	e, err := openSettled(ctx)
	if err != nil {
		return err
	}

	defer e.Close()

	if !in.complete() {
		if err = in.prompt(e.cfg); err != nil {
			return err
		}
	}

	minutes, err := in.minutes()
	if err != nil {
		return err
	}

	v, err := e.k.CreateTimer(in.Bread, in.Process, minutes, start)
	if err != nil {
		return err
	}

	report.TimerAdded(config.Stdout, v)

	return nil
}

func timerID(ctx *cli.Context) (int, error) {
	arg := ctx.Args().First()
	if arg == "" {
		return 0, errMissingID
	}

	id, err := strconv.Atoi(strings.TrimPrefix(arg, "#"))
	if err != nil {
		return 0, errInvalidID.Fmt(arg)
	}

	return id, nil
}

// timerAction runs one of the per-timer operations and prints the timer
// afterwards.
func timerAction(op func(e *env, id int) error) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		id, err := timerID(ctx)
		if err != nil {
			return err
		}

		e, err := openSettled(ctx)
		if err != nil {
			return err
		}

		defer e.Close()

		if err = op(e, id); err != nil {
			return err
		}

		for _, v := range e.k.Timers() {
			if v.ID == id {
				printStatus(config.Stdout, []timer.View{v})
			}
		}

		return nil
	}
}

var (
	pauseAction = timerAction(func(e *env, id int) error {
		return e.k.Pause(id)
	})

	resumeAction = timerAction(func(e *env, id int) error {
		return e.k.Resume(id)
	})

	resetAction = timerAction(func(e *env, id int) error {
		return e.k.Reset(id)
	})
)

// importAction replaces the saved timers with a browser export.
func importAction(ctx *cli.Context) error {
	path := ctx.Args().First()
	if path == "" {
		return errMissingFile
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}

	defer f.Close()

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	db, err := store.NewClient(cfg.System.DBPath, cfg.System.StatusPath)
	if err != nil {
		return err
	}

	defer db.Close()

	snap, err := db.Import(f)
	if err != nil {
		return err
	}

	pterm.Success.WithWriter(config.Stdout).Printfln(
		"%d件のタイマーを読み込みました",
		len(snap.Timers),
	)

	return nil
}
