//go:build !windows

package app

import (
	"os"
	"syscall"

	"github.com/gdamore/tcell/v2"

	statepkg "github.com/kk-code-lab/rpeek/internal/state"
)

func contSignals() []os.Signal {
	return []os.Signal{syscall.SIGCONT}
}

// suspendToShell pauses playback, hands the terminal back and stops the
// process. Only this pid is signalled; stopping the process group would
// also stop the shell that started rpeek and break `fg`.
func (app *Application) suspendToShell() {
	if app.state.VideoPlaying {
		_, _ = app.reducer.Reduce(app.state, statepkg.VideoToggleAction{})
	}
	_ = app.screen.Suspend()
	_ = syscall.Kill(syscall.Getpid(), syscall.SIGTSTP)
}

// resumeAfterStop reclaims the terminal after SIGCONT.
func (app *Application) resumeAfterStop() bool {
	if err := app.screen.Resume(); err != nil {
		return false
	}
	app.screen.EnableMouse()
	app.screen.Sync()
	_ = app.screen.PostEvent(tcell.NewEventInterrupt("resume"))
	if w, h := app.screen.Size(); w > 0 && h > 0 {
		app.state.ScreenWidth = w
		app.state.ScreenHeight = h
	}
	return true
}

func flushPendingInput() {}
