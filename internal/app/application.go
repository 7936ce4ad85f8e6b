package app

import (
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	statepkg "github.com/kk-code-lab/rpeek/internal/state"
	inputui "github.com/kk-code-lab/rpeek/internal/ui/input"
	renderui "github.com/kk-code-lab/rpeek/internal/ui/render"
)

// Application represents the running app.
type Application struct {
	screen        tcell.Screen
	state         *statepkg.AppState
	reducer       *statepkg.StateReducer
	renderer      *renderui.Renderer
	input         *inputui.InputHandler
	video         *videoController
	actionCh      chan statepkg.Action
	shouldQuit    bool
	lastClickKey  string
	lastClickTime time.Time
}

// Close cleans up resources.
func (app *Application) Close() error {
	if app.video != nil {
		app.video.Stop()
	}
	close(app.actionCh)
	app.screen.Fini()
	flushPendingInput()
	return nil
}

// CurrentPath returns the directory shown when the app stopped.
func (app *Application) CurrentPath() string {
	return app.state.CurrentPath
}

// GetCwd returns current working directory.
func GetCwd() (string, error) {
	return os.Getwd()
}
