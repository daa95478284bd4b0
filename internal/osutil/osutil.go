// Package osutil holds process and file-system helpers.
package osutil

import (
	"os"
	"os/exec"
	"runtime"
)

const (
	Windows = "windows"
	Darwin  = "darwin"
)

type exitCode int

const (
	ExitOK    exitCode = 0
	ExitError exitCode = 1
)

const (
	DirPermission  = 0o755
	FilePermission = 0o600
)

// FirstNonEmpty returns its first non-empty argument, or "" if all
// arguments are empty.
func FirstNonEmpty(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// Editor returns the user's preferred text editor.
func Editor() string {
	defaultEditor := "nano"

	if runtime.GOOS == Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	return FirstNonEmpty(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)
}

// OpenInEditor opens path in the user's editor attached to the terminal.
func OpenInEditor(path string) error {
	cmd := exec.Command(Editor(), path)

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

// Exit terminates the process with the given code.
func Exit(code exitCode) {
	os.Exit(int(code))
}
