package input

import (
	"github.com/gdamore/tcell/v2"

	statepkg "github.com/kk-code-lab/rpeek/internal/state"
)

// InputHandler converts tcell events to Actions
type InputHandler struct {
	actionChan chan statepkg.Action
	state      *statepkg.AppState // Reference to current state for mode checking
}

// NewInputHandler creates a new input handler
func NewInputHandler(actionChan chan statepkg.Action) *InputHandler {
	return &InputHandler{
		actionChan: actionChan,
	}
}

// SetState sets the state reference for mode checking
func (ih *InputHandler) SetState(state *statepkg.AppState) {
	ih.state = state
}

// ProcessEvent converts a tcell event into an Action. It returns false when
// the application should quit.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ih.processKeyEvent(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		ih.actionChan <- statepkg.ResizeAction{Width: w, Height: h}
		return true
	default:
		return true
	}
}

// processKeyEvent handles keyboard input
func (ih *InputHandler) processKeyEvent(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		ih.actionChan <- statepkg.QuitAction{}
		return false
	}

	if ih.state != nil && ih.state.HelpVisible {
		switch ev.Key() {
		case tcell.KeyEscape:
			ih.actionChan <- statepkg.HelpHideAction{}
		case tcell.KeyRune:
			r := ev.Rune()
			if r == '?' || r == 'q' || r == 'Q' {
				ih.actionChan <- statepkg.HelpHideAction{}
			}
		}
		return true
	}

	if ih.state != nil && ih.state.PathPromptActive {
		ih.processPromptKey(ev)
		return true
	}

	switch ev.Key() {
	case tcell.KeyCtrlZ:
		ih.actionChan <- statepkg.SuspendAction{}
	case tcell.KeyUp:
		ih.actionChan <- statepkg.NavigateUpAction{}
	case tcell.KeyDown:
		ih.actionChan <- statepkg.NavigateDownAction{}
	case tcell.KeyEnter, tcell.KeyRight:
		ih.actionChan <- statepkg.RightArrowAction{}
	case tcell.KeyLeft, tcell.KeyBackspace, tcell.KeyBackspace2:
		ih.actionChan <- statepkg.GoUpAction{}
	case tcell.KeyPgUp:
		ih.actionChan <- statepkg.ScrollPageUpAction{}
	case tcell.KeyPgDn:
		ih.actionChan <- statepkg.ScrollPageDownAction{}
	case tcell.KeyHome:
		ih.actionChan <- statepkg.ScrollToStartAction{}
	case tcell.KeyEnd:
		ih.actionChan <- statepkg.ScrollToEndAction{}
	case tcell.KeyCtrlU:
		ih.actionChan <- statepkg.PreviewScrollUpAction{}
	case tcell.KeyCtrlD:
		ih.actionChan <- statepkg.PreviewScrollDownAction{}
	case tcell.KeyRune:
		return ih.processRune(ev.Rune())
	}
	return true
}

func (ih *InputHandler) processPromptKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		ih.actionChan <- statepkg.PathPromptCancelAction{}
	case tcell.KeyEnter:
		ih.actionChan <- statepkg.PathPromptSubmitAction{}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		ih.actionChan <- statepkg.PathPromptBackspaceAction{}
	case tcell.KeyRune:
		ih.actionChan <- statepkg.PathPromptCharAction{Char: ev.Rune()}
	}
}

func (ih *InputHandler) processRune(r rune) bool {
	switch r {
	case 'q':
		ih.actionChan <- statepkg.QuitAction{}
		return false
	case '?':
		ih.actionChan <- statepkg.HelpToggleAction{}
	case '.':
		ih.actionChan <- statepkg.ToggleHiddenFilesAction{}
	case '[':
		ih.actionChan <- statepkg.GoToHistoryAction{Direction: "back"}
	case ']':
		ih.actionChan <- statepkg.GoToHistoryAction{Direction: "forward"}
	case 'g', ':':
		ih.actionChan <- statepkg.PathPromptStartAction{}
	case ' ':
		ih.actionChan <- statepkg.VideoToggleAction{}
	case 'r', 'R':
		ih.actionChan <- statepkg.RefreshDirectoryAction{}
	case 'j':
		ih.actionChan <- statepkg.NavigateDownAction{}
	case 'k':
		ih.actionChan <- statepkg.NavigateUpAction{}
	case 'l':
		ih.actionChan <- statepkg.RightArrowAction{}
	case 'h':
		ih.actionChan <- statepkg.GoUpAction{}
	case 'J':
		ih.actionChan <- statepkg.PreviewScrollDownAction{}
	case 'K':
		ih.actionChan <- statepkg.PreviewScrollUpAction{}
	}
	return true
}
