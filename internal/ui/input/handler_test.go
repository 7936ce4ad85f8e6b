package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	statepkg "github.com/kk-code-lab/rpeek/internal/state"
)

func newTestHandler(state *statepkg.AppState) (*InputHandler, chan statepkg.Action) {
	actionChan := make(chan statepkg.Action, 4)
	handler := NewInputHandler(actionChan)
	handler.SetState(state)
	return handler, actionChan
}

func expectAction[T statepkg.Action](t *testing.T, actionChan chan statepkg.Action) T {
	t.Helper()
	select {
	case action := <-actionChan:
		typed, ok := action.(T)
		if !ok {
			var zero T
			t.Fatalf("Expected %T, got %T", zero, action)
		}
		return typed
	default:
		var zero T
		t.Fatalf("Expected %T to be emitted", zero)
		return zero
	}
}

func expectNoAction(t *testing.T, actionChan chan statepkg.Action) {
	t.Helper()
	select {
	case action := <-actionChan:
		t.Fatalf("Expected no action, got %T", action)
	default:
	}
}

func TestQuestionMarkTogglesHelpInNormalMode(t *testing.T) {
	handler, actionChan := newTestHandler(&statepkg.AppState{})

	handler.ProcessEvent(tcell.NewEventKey(tcell.KeyRune, '?', 0))
	expectAction[statepkg.HelpToggleAction](t, actionChan)
}

func TestEscapeHidesHelpBeforeOtherModes(t *testing.T) {
	handler, actionChan := newTestHandler(&statepkg.AppState{
		HelpVisible:      true,
		PathPromptActive: true,
	})

	handler.ProcessEvent(tcell.NewEventKey(tcell.KeyEscape, 0, 0))
	expectAction[statepkg.HelpHideAction](t, actionChan)
}

func TestQClosesHelpWithoutQuitting(t *testing.T) {
	handler, actionChan := newTestHandler(&statepkg.AppState{HelpVisible: true})

	if !handler.ProcessEvent(tcell.NewEventKey(tcell.KeyRune, 'q', 0)) {
		t.Fatal("q must not quit while help is visible")
	}
	expectAction[statepkg.HelpHideAction](t, actionChan)
}

func TestQQuitsInNormalMode(t *testing.T) {
	handler, actionChan := newTestHandler(&statepkg.AppState{})

	if handler.ProcessEvent(tcell.NewEventKey(tcell.KeyRune, 'q', 0)) {
		t.Fatal("Expected q to request quit")
	}
	expectAction[statepkg.QuitAction](t, actionChan)
}

func TestCtrlCQuitsFromPrompt(t *testing.T) {
	handler, actionChan := newTestHandler(&statepkg.AppState{PathPromptActive: true})

	if handler.ProcessEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)) {
		t.Fatal("Expected Ctrl+C to request quit")
	}
	expectAction[statepkg.QuitAction](t, actionChan)
}

func TestNormalModeKeyBindings(t *testing.T) {
	cases := []struct {
		name  string
		event *tcell.EventKey
		check func(t *testing.T, ch chan statepkg.Action)
	}{
		{"enter opens", tcell.NewEventKey(tcell.KeyEnter, 0, 0), func(t *testing.T, ch chan statepkg.Action) {
			expectAction[statepkg.RightArrowAction](t, ch)
		}},
		{"left goes up", tcell.NewEventKey(tcell.KeyLeft, 0, 0), func(t *testing.T, ch chan statepkg.Action) {
			expectAction[statepkg.GoUpAction](t, ch)
		}},
		{"backspace goes up", tcell.NewEventKey(tcell.KeyBackspace2, 0, 0), func(t *testing.T, ch chan statepkg.Action) {
			expectAction[statepkg.GoUpAction](t, ch)
		}},
		{"down", tcell.NewEventKey(tcell.KeyDown, 0, 0), func(t *testing.T, ch chan statepkg.Action) {
			expectAction[statepkg.NavigateDownAction](t, ch)
		}},
		{"page down", tcell.NewEventKey(tcell.KeyPgDn, 0, 0), func(t *testing.T, ch chan statepkg.Action) {
			expectAction[statepkg.ScrollPageDownAction](t, ch)
		}},
		{"history back", tcell.NewEventKey(tcell.KeyRune, '[', 0), func(t *testing.T, ch chan statepkg.Action) {
			if a := expectAction[statepkg.GoToHistoryAction](t, ch); a.Direction != "back" {
				t.Fatalf("Expected back, got %q", a.Direction)
			}
		}},
		{"history forward", tcell.NewEventKey(tcell.KeyRune, ']', 0), func(t *testing.T, ch chan statepkg.Action) {
			if a := expectAction[statepkg.GoToHistoryAction](t, ch); a.Direction != "forward" {
				t.Fatalf("Expected forward, got %q", a.Direction)
			}
		}},
		{"path prompt", tcell.NewEventKey(tcell.KeyRune, 'g', 0), func(t *testing.T, ch chan statepkg.Action) {
			expectAction[statepkg.PathPromptStartAction](t, ch)
		}},
		{"video toggle", tcell.NewEventKey(tcell.KeyRune, ' ', 0), func(t *testing.T, ch chan statepkg.Action) {
			expectAction[statepkg.VideoToggleAction](t, ch)
		}},
		{"refresh", tcell.NewEventKey(tcell.KeyRune, 'r', 0), func(t *testing.T, ch chan statepkg.Action) {
			expectAction[statepkg.RefreshDirectoryAction](t, ch)
		}},
		{"hidden files", tcell.NewEventKey(tcell.KeyRune, '.', 0), func(t *testing.T, ch chan statepkg.Action) {
			expectAction[statepkg.ToggleHiddenFilesAction](t, ch)
		}},
		{"preview scroll", tcell.NewEventKey(tcell.KeyRune, 'J', 0), func(t *testing.T, ch chan statepkg.Action) {
			expectAction[statepkg.PreviewScrollDownAction](t, ch)
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			handler, actionChan := newTestHandler(&statepkg.AppState{})
			if !handler.ProcessEvent(tc.event) {
				t.Fatal("Unexpected quit")
			}
			tc.check(t, actionChan)
			expectNoAction(t, actionChan)
		})
	}
}

func TestPromptCapturesRunes(t *testing.T) {
	handler, actionChan := newTestHandler(&statepkg.AppState{PathPromptActive: true})

	handler.ProcessEvent(tcell.NewEventKey(tcell.KeyRune, 'q', 0))
	if a := expectAction[statepkg.PathPromptCharAction](t, actionChan); a.Char != 'q' {
		t.Fatalf("Expected 'q', got %q", a.Char)
	}

	handler.ProcessEvent(tcell.NewEventKey(tcell.KeyBackspace2, 0, 0))
	expectAction[statepkg.PathPromptBackspaceAction](t, actionChan)

	handler.ProcessEvent(tcell.NewEventKey(tcell.KeyEnter, 0, 0))
	expectAction[statepkg.PathPromptSubmitAction](t, actionChan)

	handler.ProcessEvent(tcell.NewEventKey(tcell.KeyEscape, 0, 0))
	expectAction[statepkg.PathPromptCancelAction](t, actionChan)
}

func TestResizeEmitsDimensions(t *testing.T) {
	handler, actionChan := newTestHandler(&statepkg.AppState{})

	handler.ProcessEvent(tcell.NewEventResize(120, 40))
	a := expectAction[statepkg.ResizeAction](t, actionChan)
	if a.Width != 120 || a.Height != 40 {
		t.Fatalf("Expected 120x40, got %dx%d", a.Width, a.Height)
	}
}
