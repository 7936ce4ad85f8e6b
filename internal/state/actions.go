package state

import "github.com/kk-code-lab/rpeek/internal/video"

// Action is the base interface for all state mutations
type Action interface{}

// ===== NAVIGATION ACTIONS =====

type NavigateUpAction struct{}
type NavigateDownAction struct{}
type EnterDirectoryAction struct{} // Enter: open the selected directory or file
type RightArrowAction struct{}
type GoUpAction struct{}
type GoToPathAction struct {
	Path string
}
type GoToHistoryAction struct {
	Direction string // "back" or "forward"
}
type RefreshDirectoryAction struct{}

// ===== SCROLL ACTIONS =====

type ScrollPageUpAction struct{}
type ScrollPageDownAction struct{}
type ScrollToStartAction struct{}
type ScrollToEndAction struct{}
type MouseSelectAction struct {
	DisplayIndex int
}

// ===== PREVIEW ACTIONS =====

type PreviewScrollUpAction struct{}
type PreviewScrollDownAction struct{}

// ===== VIDEO ACTIONS =====

type VideoToggleAction struct{}
type VideoFrameAction struct {
	Frame video.Frame
}
type VideoEventAction struct {
	Event video.Event
}

// ===== PATH PROMPT ACTIONS =====

type PathPromptStartAction struct{}
type PathPromptCharAction struct {
	Char rune
}
type PathPromptBackspaceAction struct{}
type PathPromptCancelAction struct{}
type PathPromptSubmitAction struct{}

// ===== VIEW ACTIONS =====

type ResizeAction struct {
	Width  int
	Height int
}

type ToggleHiddenFilesAction struct{}
type HelpToggleAction struct{}
type HelpHideAction struct{}

// ===== APPLICATION ACTIONS =====

type QuitAction struct{}
type SuspendAction struct{} // Ctrl+Z - stop the process, resume on SIGCONT
