package app

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/maruel/natural"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/panasi/panasi/internal/config"
	"github.com/panasi/panasi/internal/ui"
	"github.com/panasi/panasi/store"
	"github.com/panasi/panasi/timer"
)

const noTimersMsg = "タイマーはありません"

// peekTimers reads the saved timers without taking over the database, so
// it works while another panasi process is listening.
func peekTimers(ctx *cli.Context) (*timer.Registry, time.Time, error) {
	now := time.Now()

	cfg, err := loadConfig(ctx)
	if err != nil {
		return nil, now, err
	}

	snap, err := store.Peek(cfg.System.DBPath, cfg.System.StatusPath)
	if err != nil || snap == nil {
		return timer.NewRegistry(), now, err
	}

	reg, err := timer.Restore(*snap)
	if err != nil {
		return nil, now, err
	}

	reg.Tick(now)

	return reg, now, nil
}

// sortByName orders views by bread name, then process name, comparing
// digits numerically.
func sortByName(views []timer.View) {
	slices.SortStableFunc(views, func(a, b timer.View) int {
		switch {
		case a.BreadName != b.BreadName:
			if natural.Less(a.BreadName, b.BreadName) {
				return -1
			}

			return 1
		case a.ProcessName != b.ProcessName:
			if natural.Less(a.ProcessName, b.ProcessName) {
				return -1
			}

			return 1
		}

		return a.ID - b.ID
	})
}

// printStatus prints one line per timer.
func printStatus(w io.Writer, views []timer.View) {
	if len(views) == 0 {
		pterm.Info.WithWriter(w).Println(noTimersMsg)
		return
	}

	for _, v := range views {
		fmt.Fprintf(
			w,
			"#%d %s: %s (%s)\n",
			v.ID,
			v.Title(),
			ui.Clock(v),
			ui.Status(v.Status),
		)
	}
}

// listAction prints a table of the timers in display order.
func listAction(ctx *cli.Context) error {
	reg, now, err := peekTimers(ctx)
	if err != nil {
		return err
	}

	if ctx.Bool("json") {
		b, err := json.MarshalIndent(reg.Snapshot(now), "", "  ")
		if err != nil {
			return err
		}

		fmt.Fprintln(config.Stdout, string(b))

		return nil
	}

	views := reg.Views(now)

	if len(views) == 0 {
		pterm.Info.WithWriter(config.Stdout).Println(noTimersMsg)
		return nil
	}

	if ctx.Bool("by-name") {
		sortByName(views)
	}

	ui.PrintTable(ui.TimerRows(views), config.Stdout)

	return nil
}

// statusAction prints the remaining time of every timer.
func statusAction(ctx *cli.Context) error {
	reg, now, err := peekTimers(ctx)
	if err != nil {
		return err
	}

	printStatus(config.Stdout, reg.Views(now))

	return nil
}
