package main

import (
	"os"

	"github.com/ayoisaiah/focusboard/app"
	"github.com/ayoisaiah/focusboard/report"
)

func main() {
	err := app.Run(os.Args)
	if err != nil {
		report.Quit(err)
	}
}
