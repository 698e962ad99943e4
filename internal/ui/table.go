package ui

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/panasi/panasi/timer"
)

func PrintTable(data [][]string, writer io.Writer) {
	table := pterm.DefaultTable
	table.Boxed = true

	str, err := table.WithHasHeader().WithData(data).Srender()
	if err != nil {
		pterm.Error.Printfln("Failed to output timer table: %s", err.Error())
		return
	}

	fmt.Fprintln(writer, str)
}

// TimerRows returns a table with a header row and one row per timer.
func TimerRows(views []timer.View) [][]string {
	rows := make([][]string, 0, len(views)+1)

	rows = append(rows, []string{"#", "パン", "工程", "時間", "残り", "進捗", "状態"})

	for _, v := range views {
		rows = append(rows, []string{
			strconv.Itoa(v.ID),
			v.BreadName,
			v.ProcessName,
			fmt.Sprintf("%d分", v.Duration),
			Clock(v),
			fmt.Sprintf("%3.0f%%", v.Progress*100),
			Status(v.Status),
		})
	}

	return rows
}
