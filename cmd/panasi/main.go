package main

import (
	"os"

	"github.com/panasi/panasi/app"
	"github.com/panasi/panasi/report"
)

func run(args []string) error {
	return app.Get().Run(args)
}

func main() {
	err := run(os.Args)
	if err != nil {
		report.Quit(err)
	}
}
