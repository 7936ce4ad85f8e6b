package app

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/kk-code-lab/rpeek/internal/config"
	"github.com/kk-code-lab/rpeek/internal/logger"
	"github.com/kk-code-lab/rpeek/internal/preview"
	statepkg "github.com/kk-code-lab/rpeek/internal/state"
	"github.com/kk-code-lab/rpeek/internal/ui/input"
	renderui "github.com/kk-code-lab/rpeek/internal/ui/render"
	"github.com/kk-code-lab/rpeek/internal/video"
)

const doubleClickThreshold = 300 * time.Millisecond

// NewApplication opens the terminal and lists the working directory.
func NewApplication(cfg config.Config) (*Application, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	// Parse mouse sequences so modified clicks don't leak as key events.
	screen.EnableMouse()

	cwd, err := GetCwd()
	if err != nil {
		screen.Fini()
		return nil, err
	}

	app, err := newApplication(screen, cwd, cfg)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	return app, nil
}

func newApplication(screen tcell.Screen, dir string, cfg config.Config) (*Application, error) {
	state := statepkg.NewAppState(dir, cfg.HideHidden)
	w, h := screen.Size()
	state.ScreenWidth = w
	state.ScreenHeight = h

	if err := statepkg.LoadDirectory(state, dir); err != nil {
		return nil, err
	}

	previewer := preview.NewPreviewer(preview.Options{
		MaxWidth:     cfg.MaxWidth,
		MaxHeight:    cfg.MaxHeight,
		MaxTextBytes: cfg.MaxTextBytes,
	})
	vc := newVideoController(video.NewFFmpegOpener(cfg.FFmpeg), video.Options{
		Interval:  cfg.FrameInterval(),
		MaxWidth:  cfg.MaxWidth,
		MaxHeight: cfg.MaxHeight,
	})

	reducer := statepkg.NewStateReducer(previewer)
	reducer.SetVideoController(vc)

	actionCh := make(chan statepkg.Action, 10)
	inputHandler := input.NewInputHandler(actionCh)
	inputHandler.SetState(state)

	logger.Info("application started", "dir", dir, "width", w, "height", h)

	return &Application{
		screen:   screen,
		state:    state,
		reducer:  reducer,
		renderer: renderui.NewRenderer(screen),
		input:    inputHandler,
		video:    vc,
		actionCh: actionCh,
	}, nil
}

func (app *Application) Run() {
	defer app.screen.Fini()

	app.renderer.Render(app.state)
	renderPending := false

	eventChan := make(chan tcell.Event)
	go func() {
		for {
			eventChan <- app.screen.PollEvent()
		}
	}()

	var sigContCh chan os.Signal
	if sigs := contSignals(); len(sigs) > 0 {
		sigContCh = make(chan os.Signal, 1)
		signal.Notify(sigContCh, sigs...)
		defer signal.Stop(sigContCh)
	}

	for !app.shouldQuit {
		if renderPending {
			app.renderer.Render(app.state)
			renderPending = false
		}

		// Re-read every pass: the reducer swaps players when a video opens.
		frameCh, eventCh := app.video.channels()

		select {
		case ev := <-eventChan:
			if app.handleEvent(ev) {
				renderPending = true
			}
		case action := <-app.actionCh:
			if app.handleAction(action) {
				renderPending = true
			}
		case frame := <-frameCh:
			if app.handleAction(statepkg.VideoFrameAction{Frame: frame}) {
				renderPending = true
			}
		case ev := <-eventCh:
			if app.handleAction(statepkg.VideoEventAction{Event: ev}) {
				renderPending = true
			}
		case <-sigContCh:
			if app.resumeAfterStop() {
				renderPending = true
			}
		}

		if app.processActions() {
			renderPending = true
		}
	}

	app.video.Stop()
	logger.Info("application stopped", "dir", app.state.CurrentPath)
}

func (app *Application) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if !app.input.ProcessEvent(ev) {
			app.shouldQuit = true
		}
	case *tcell.EventResize:
		if !app.input.ProcessEvent(ev) {
			app.shouldQuit = true
		}
	case *tcell.EventMouse:
		if !app.handleMouse(ev) {
			app.shouldQuit = true
		}
		return true
	case *tcell.EventInterrupt:
		return true
	default:
		return false
	}
	return true
}

// handleMouse maps primary-clicks to selection and navigation.
func (app *Application) handleMouse(ev *tcell.EventMouse) bool {
	if app.state == nil {
		return true
	}
	if ev.Buttons()&tcell.Button1 == 0 {
		return true
	}
	if app.state.HelpVisible || app.state.PathPromptActive {
		return true
	}

	x, y := ev.Position()

	// Breadcrumb (top row)
	if y == 0 {
		app.handleBreadcrumbClick(x)
		return true
	}

	if x >= renderui.ListPanelWidth(app.state.ScreenWidth) {
		return true
	}

	listStartY := 1
	bottomLimit := app.state.ScreenHeight - 1 // leave room for status line
	if y < listStartY || y >= bottomLimit {
		return true
	}
	row := y - listStartY

	clickKey := fmt.Sprintf("list-%d", row)
	doubleClick := app.lastClickKey == clickKey && time.Since(app.lastClickTime) <= doubleClickThreshold
	app.lastClickKey = clickKey
	app.lastClickTime = time.Now()

	displayIdx := app.state.ScrollOffset + row
	if app.state.ActualIndexFromDisplayIndex(displayIdx) < 0 {
		return true
	}
	app.actionCh <- statepkg.MouseSelectAction{DisplayIndex: displayIdx}
	if doubleClick {
		app.actionCh <- statepkg.RightArrowAction{}
	}
	return true
}

func (app *Application) handleBreadcrumbClick(x int) bool {
	if x < 0 || app.state == nil {
		return false
	}
	pos := runewidth.StringWidth(renderui.HeaderText)
	if x < pos {
		return false
	}
	if pos < app.state.ScreenWidth {
		pos++ // space after header
	}

	available := app.state.ScreenWidth - pos
	segments := renderui.FormatBreadcrumbSegments(app.state.CurrentPath)
	if len(segments) == 0 {
		return false
	}

	// A trimmed breadcrumb no longer maps columns to segments.
	sepW := runewidth.StringWidth(renderui.BreadcrumbSeparator)
	totalWidth := 0
	for i, s := range segments {
		if i > 0 {
			totalWidth += sepW
		}
		totalWidth += runewidth.StringWidth(s)
	}
	if totalWidth > available {
		return false
	}

	currentX := pos
	for i, s := range segments {
		if i > 0 {
			if x >= currentX && x < currentX+sepW {
				// click on separator -> treat as previous segment
				app.actionCh <- statepkg.GoToPathAction{Path: buildBreadcrumbPath(segments, i-1)}
				return true
			}
			currentX += sepW
		}

		segW := runewidth.StringWidth(s)
		if x >= currentX && x < currentX+segW {
			app.actionCh <- statepkg.GoToPathAction{Path: buildBreadcrumbPath(segments, i)}
			return true
		}
		currentX += segW
	}
	return false
}

// buildBreadcrumbPath rebuilds the directory for segments[:idx+1].
func buildBreadcrumbPath(segments []string, idx int) string {
	if idx < 0 || idx >= len(segments) {
		return ""
	}

	sep := string(filepath.Separator)
	path := ""
	for i := 0; i <= idx; i++ {
		seg := segments[i]
		switch {
		case seg == "/":
			path = sep
		case path == "" && strings.HasSuffix(seg, ":"):
			// Drive letters need a trailing separator to mean the root.
			path = seg + sep
		default:
			path = filepath.Join(path, seg)
		}
	}
	if path == "" {
		path = sep
	}
	return path
}

func (app *Application) processActions() bool {
	changed := false
	for {
		select {
		case action := <-app.actionCh:
			if app.handleAction(action) {
				changed = true
			}
		default:
			return changed
		}
	}
}

func (app *Application) handleAction(action statepkg.Action) bool {
	if action == nil {
		return false
	}

	switch action.(type) {
	case statepkg.QuitAction:
		app.shouldQuit = true
		return false
	case statepkg.SuspendAction:
		app.suspendToShell()
		app.resumeAfterStop()
		return true
	}

	if _, err := app.reducer.Reduce(app.state, action); err != nil {
		app.state.LastError = err
	}
	return true
}
