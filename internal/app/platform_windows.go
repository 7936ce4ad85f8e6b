//go:build windows

package app

import (
	"os"

	"golang.org/x/sys/windows"
)

// Windows has no job control signals.
func contSignals() []os.Signal { return nil }

func (app *Application) suspendToShell() {}

func (app *Application) resumeAfterStop() bool { return false }

// flushPendingInput drops keystrokes typed while the screen was shutting
// down so they do not reach the parent shell.
func flushPendingInput() {
	handle, err := windows.GetStdHandle(windows.STD_INPUT_HANDLE)
	if err != nil {
		return
	}
	_ = windows.FlushConsoleInputBuffer(handle)
}
