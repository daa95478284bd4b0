// Package report prints user-facing messages to the terminal.
package report

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/focusboard/internal/osutil"
)

func Success(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, pterm.Success.Sprintf(format, args...))
}

func Info(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, pterm.Info.Sprintf(format, args...))
}

func Warning(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, pterm.Warning.Sprintf(format, args...))
}

func Error(err error) {
	pterm.Error.Println(err)
}

// Quit prints err and exits the process with a failure code.
func Quit(err error) {
	pterm.Error.Println(err)
	osutil.Exit(osutil.ExitError)
}
