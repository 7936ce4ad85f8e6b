package state

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/kk-code-lab/rpeek/internal/logger"
	"github.com/kk-code-lab/rpeek/internal/preview"
	"github.com/kk-code-lab/rpeek/internal/video"
)

var (
	userHomeDirFn = os.UserHomeDir
	statFn        = os.Stat
)

var errNotDirectory = errors.New("not a directory")

// ===== REDUCER =====

// StateReducer applies actions to state
type StateReducer struct {
	selectionHistory map[string]int // path -> selected index
	previewer        Previewer
	video            VideoController
}

// NewStateReducer creates a new reducer. A nil previewer gets the default
// preview chain.
func NewStateReducer(previewer Previewer) *StateReducer {
	if previewer == nil {
		previewer = preview.NewPreviewer(preview.DefaultOptions())
	}
	return &StateReducer{
		selectionHistory: make(map[string]int),
		previewer:        previewer,
	}
}

// SetVideoController installs the playback hook used for video previews.
func (r *StateReducer) SetVideoController(vc VideoController) {
	r.video = vc
}

// Reduce applies an action to state. A returned error means the action was
// rejected; navigation state is unchanged in that case.
func (r *StateReducer) Reduce(state *AppState, action Action) (*AppState, error) {
	switch a := action.(type) {

	// ===== NAVIGATION =====

	case NavigateDownAction:
		displayFiles := state.getDisplayFiles()
		if len(displayFiles) == 0 {
			return state, nil
		}

		displayIdx := state.getDisplaySelectedIndex()
		if displayIdx < 0 {
			displayIdx = 0
		} else if displayIdx >= len(displayFiles)-1 {
			return state, nil
		} else {
			displayIdx++
		}

		state.setDisplaySelectedIndex(displayIdx)
		state.updateScrollVisibility()
		return state, nil

	case NavigateUpAction:
		displayFiles := state.getDisplayFiles()
		if len(displayFiles) == 0 {
			return state, nil
		}

		displayIdx := state.getDisplaySelectedIndex()
		if displayIdx < 0 {
			displayIdx = len(displayFiles) - 1
		} else {
			if displayIdx == 0 {
				return state, nil
			}
			displayIdx--
		}

		state.setDisplaySelectedIndex(displayIdx)
		state.updateScrollVisibility()
		return state, nil

	case EnterDirectoryAction, RightArrowAction:
		return state, r.openSelected(state)

	case GoUpAction:
		parent := filepath.Dir(state.CurrentPath)
		if parent == state.CurrentPath {
			return state, nil // Already at root
		}

		cameFrom := filepath.Base(state.CurrentPath)
		if err := r.navigateTo(state, parent); err != nil {
			return state, err
		}
		if state.selectByName(cameFrom) {
			state.ensureSelectionVisible()
			state.centerScrollOnSelection()
		}
		return state, nil

	case GoToPathAction:
		if strings.TrimSpace(a.Path) == "" {
			return state, nil
		}
		target, err := r.resolvePath(state, a.Path)
		if err != nil {
			return state, &InvalidPathError{Path: a.Path, Err: err}
		}
		info, err := statFn(target)
		if err != nil {
			return state, &InvalidPathError{Path: a.Path, Err: err}
		}
		if !info.IsDir() {
			return state, &InvalidPathError{Path: a.Path, Err: errNotDirectory}
		}
		return state, r.navigateTo(state, target)

	case GoToHistoryAction:
		var (
			target string
			ok     bool
		)
		switch a.Direction {
		case "back":
			target, ok = state.History.PeekBack()
		case "forward":
			target, ok = state.History.PeekForward()
		default:
			return state, fmt.Errorf("unknown history direction: %q", a.Direction)
		}
		if !ok {
			return state, nil
		}

		// Save current position before changing
		r.selectionHistory[state.CurrentPath] = state.SelectedIndex

		if err := r.changeDirectory(state, target); err != nil {
			return state, err
		}
		if a.Direction == "back" {
			state.History.Back()
		} else {
			state.History.Forward()
		}
		r.restoreSelection(state, target)
		return state, nil

	case RefreshDirectoryAction:
		prevName := ""
		if file := state.getCurrentFile(); file != nil {
			prevName = file.Name
		}
		prevIndex := state.SelectedIndex
		prevScroll := state.ScrollOffset

		if err := r.loadDirectory(state, state.CurrentPath); err != nil {
			return state, err
		}

		if prevName == "" || !state.selectByName(prevName) {
			switch {
			case prevIndex < 0 || len(state.Files) == 0:
				state.resetViewport()
			case prevIndex < len(state.Files):
				state.SelectedIndex = prevIndex
			default:
				state.SelectedIndex = len(state.Files) - 1
			}
		}
		state.ensureSelectionVisible()
		state.ScrollOffset = prevScroll
		state.updateScrollVisibility()
		state.LastError = nil
		return state, nil

	// ===== SCROLLING =====

	case ScrollPageUpAction:
		displayIdx := state.getDisplaySelectedIndex()
		if len(state.getDisplayFiles()) == 0 || displayIdx <= 0 {
			return state, nil
		}

		newIdx := displayIdx - state.ListHeight()
		if newIdx < 0 {
			newIdx = 0
		}
		state.setDisplaySelectedIndex(newIdx)
		state.updateScrollVisibility()
		return state, nil

	case ScrollPageDownAction:
		displayFiles := state.getDisplayFiles()
		if len(displayFiles) == 0 {
			return state, nil
		}

		displayIdx := state.getDisplaySelectedIndex()
		newIdx := displayIdx + state.ListHeight()
		if newIdx >= len(displayFiles) {
			newIdx = len(displayFiles) - 1
		}
		if newIdx == displayIdx {
			return state, nil
		}
		state.setDisplaySelectedIndex(newIdx)
		state.updateScrollVisibility()
		return state, nil

	case ScrollToStartAction:
		if len(state.getDisplayFiles()) == 0 {
			return state, nil
		}
		state.setDisplaySelectedIndex(0)
		state.updateScrollVisibility()
		return state, nil

	case ScrollToEndAction:
		displayFiles := state.getDisplayFiles()
		if len(displayFiles) == 0 {
			return state, nil
		}
		state.setDisplaySelectedIndex(len(displayFiles) - 1)
		state.updateScrollVisibility()
		return state, nil

	case MouseSelectAction:
		displayFiles := state.getDisplayFiles()
		if a.DisplayIndex < 0 || a.DisplayIndex >= len(displayFiles) {
			return state, nil
		}
		state.setDisplaySelectedIndex(a.DisplayIndex)
		state.updateScrollVisibility()
		return state, nil

	// ===== PREVIEW =====

	case PreviewScrollUpAction:
		state.PreviewScrollOffset -= previewScrollStep(state)
		state.clampPreviewScroll()
		return state, nil

	case PreviewScrollDownAction:
		state.PreviewScrollOffset += previewScrollStep(state)
		state.clampPreviewScroll()
		return state, nil

	// ===== VIDEO =====

	case VideoToggleAction:
		if !state.HasVideo() || r.video == nil {
			return state, nil
		}
		playing, err := r.video.Toggle()
		state.VideoPlaying = playing
		return state, err

	case VideoFrameAction:
		if a.Frame.SessionID == "" || a.Frame.SessionID != state.VideoSessionID {
			return state, nil // stale frame from a previous session
		}
		if !state.VideoPlaying {
			return state, nil // still buffered after pause or end of stream
		}
		state.VideoFrame = a.Frame.Image
		return state, nil

	case VideoEventAction:
		if a.Event.SessionID != state.VideoSessionID {
			return state, nil
		}
		state.VideoPlaying = false
		if a.Event.Kind == video.EventEnded {
			// Replay starts from the first frame, so the session is idle again.
			state.VideoFrame = nil
		}
		return state, a.Event.Err

	// ===== PATH PROMPT =====

	case PathPromptStartAction:
		state.PathPromptActive = true
		state.PathPromptQuery = state.CurrentPath
		return state, nil

	case PathPromptCharAction:
		if !state.PathPromptActive {
			return state, nil
		}
		state.PathPromptQuery += string(a.Char)
		return state, nil

	case PathPromptBackspaceAction:
		if !state.PathPromptActive || state.PathPromptQuery == "" {
			return state, nil
		}
		_, size := utf8.DecodeLastRuneInString(state.PathPromptQuery)
		state.PathPromptQuery = state.PathPromptQuery[:len(state.PathPromptQuery)-size]
		return state, nil

	case PathPromptCancelAction:
		state.PathPromptActive = false
		state.PathPromptQuery = ""
		return state, nil

	case PathPromptSubmitAction:
		if !state.PathPromptActive {
			return state, nil
		}
		path := state.PathPromptQuery
		state.PathPromptActive = false
		state.PathPromptQuery = ""
		return r.Reduce(state, GoToPathAction{Path: path})

	// ===== VIEW =====

	case ResizeAction:
		state.ScreenWidth = a.Width
		state.ScreenHeight = a.Height
		state.updateScrollVisibility()
		state.clampPreviewScroll()
		return state, nil

	case ToggleHiddenFilesAction:
		state.HideHiddenFiles = !state.HideHiddenFiles
		state.invalidateDisplayFilesCache()

		state.ensureSelectionVisible()
		if state.getDisplaySelectedIndex() < 0 && len(state.getDisplayFiles()) > 0 {
			state.setDisplaySelectedIndex(0)
		}
		state.centerScrollOnSelection()
		return state, nil

	case HelpToggleAction:
		state.HelpVisible = !state.HelpVisible
		return state, nil

	case HelpHideAction:
		state.HelpVisible = false
		return state, nil

	default:
		return state, fmt.Errorf("unknown action: %T", action)
	}
}

// ===== PRIVATE HELPER METHODS =====

// openSelected enters the selected directory or previews the selected file.
func (r *StateReducer) openSelected(state *AppState) error {
	file := state.getCurrentFile()
	if file == nil {
		return nil
	}
	if file.IsDirectory() {
		return r.navigateTo(state, file.FullPath)
	}
	return r.openFile(state, file.FullPath)
}

// navigateTo lists target and records it as a forward visit.
func (r *StateReducer) navigateTo(state *AppState, target string) error {
	r.selectionHistory[state.CurrentPath] = state.SelectedIndex

	if err := r.changeDirectory(state, target); err != nil {
		return err
	}
	state.History.Navigate(state.CurrentPath)
	r.restoreSelection(state, state.CurrentPath)
	return nil
}

// changeDirectory lists path and, on success, leaves the previous directory:
// playback stops, the preview panel empties and the error line clears.
func (r *StateReducer) changeDirectory(state *AppState, path string) error {
	if err := r.loadDirectory(state, path); err != nil {
		return err
	}
	r.stopVideo(state)
	state.clearPreview()
	state.LastError = nil
	logger.Debug("directory changed", "path", state.CurrentPath)
	return nil
}

func (r *StateReducer) loadDirectory(state *AppState, path string) error {
	if err := LoadDirectory(state, path); err != nil {
		logger.Warn("directory listing failed", "path", path, "error", err)
		return err
	}
	return nil
}

func (r *StateReducer) restoreSelection(state *AppState, path string) {
	if savedIdx, ok := r.selectionHistory[path]; ok && savedIdx >= 0 && savedIdx < len(state.Files) {
		state.SelectedIndex = savedIdx
		state.ensureSelectionVisible()
	}
	state.centerScrollOnSelection()
}

// openFile stops playback and replaces the preview panel. A failed preview
// keeps the previous content and surfaces the error.
func (r *StateReducer) openFile(state *AppState, path string) error {
	r.stopVideo(state)

	result := r.previewer.Preview(path)
	if result.Kind == preview.KindError {
		return result.Err
	}

	state.setPreview(result)
	if result.Kind == preview.KindVideo && result.Video != nil && r.video != nil {
		r.video.Load(*result.Video)
	}
	state.LastError = nil
	return nil
}

func (r *StateReducer) stopVideo(state *AppState) {
	if r.video != nil {
		r.video.Stop()
	}
	state.VideoPlaying = false
}

// resolvePath expands a leading ~ and resolves relative paths against the
// current directory.
func (r *StateReducer) resolvePath(state *AppState, raw string) (string, error) {
	path := strings.TrimSpace(raw)
	if path == "~" || strings.HasPrefix(path, "~/") || strings.HasPrefix(path, `~\`) {
		home, err := userHomeDirFn()
		if err != nil {
			return "", fmt.Errorf("cannot resolve home directory: %w", err)
		}
		if home == "" {
			return "", fmt.Errorf("home directory not available")
		}
		path = filepath.Join(home, path[1:])
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(state.CurrentPath, path)
	}
	return filepath.Clean(path), nil
}

func previewScrollStep(state *AppState) int {
	step := state.ListHeight() / 2
	if step < 1 {
		step = 1
	}
	return step
}
