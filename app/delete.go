package app

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/panasi/panasi/internal/config"
	"github.com/panasi/panasi/internal/ui"
)

var deleteAction = timerAction(func(e *env, id int) error {
	if err := e.k.Delete(id); err != nil {
		return err
	}

	pterm.Success.WithWriter(config.Stdout).Printfln("タイマー #%d を削除しました", id)

	return nil
})

// confirm prints warning and waits for ENTER. Any other input cancels.
func confirm(w io.Writer, r io.Reader, warning string) bool {
	fmt.Fprint(w, pterm.Warning.Sprint(warning))

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && line == "" {
		return false
	}

	return line == "\n" || line == "\r\n"
}

// clearAction deletes every timer. It requests confirmation before
// proceeding with the operation.
func clearAction(ctx *cli.Context) error {
	e, err := openSettled(ctx)
	if err != nil {
		return err
	}

	defer e.Close()

	views := e.k.Timers()
	if len(views) == 0 {
		pterm.Info.WithWriter(config.Stdout).Println(noTimersMsg)
		return nil
	}

	if !ctx.Bool("yes") {
		ui.PrintTable(ui.TimerRows(views), config.Stdout)

		ok := confirm(
			config.Stdout,
			config.Stdin,
			"The timers above will be deleted. Press ENTER to proceed",
		)
		if !ok {
			return nil
		}
	}

	n := e.k.ClearAll()

	pterm.Success.WithWriter(config.Stdout).Printfln("%d件のタイマーを削除しました", n)

	return nil
}
