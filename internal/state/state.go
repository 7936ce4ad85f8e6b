package state

import (
	"image"

	fsutil "github.com/kk-code-lab/rpeek/internal/fs"
	"github.com/kk-code-lab/rpeek/internal/preview"
)

// FileEntry mirrors fs.Entry so UI/state code can rely on a stable type.
type FileEntry = fsutil.Entry

// Previewer turns a file path into display-ready content.
type Previewer interface {
	Preview(path string) preview.Result
}

// VideoController drives playback for the preview panel. The application
// owns the player; the reducer only tells it what to do.
type VideoController interface {
	// Load stops any running playback and prepares session without playing.
	Load(session preview.VideoSession)
	// Toggle plays or pauses the loaded session and reports the new state.
	Toggle() (playing bool, err error)
	// Stop halts playback and waits for the frame pump to exit.
	Stop()
}

// ===== STATE DEFINITIONS =====

// AppState is the single source of truth
type AppState struct {
	// Navigation & filesystem
	CurrentPath string
	Files       []FileEntry // Children of CurrentPath in filesystem order
	History     *PathHistory

	// Selection & viewport
	SelectedIndex int
	ScrollOffset  int

	// Hidden files
	HideHiddenFiles bool

	// Preview
	Preview             *preview.Result
	PreviewLines        []string // Text preview split into display lines
	PreviewScrollOffset int

	// Video
	VideoSessionID string
	VideoFrame     image.Image // Latest frame of the loaded session
	VideoPlaying   bool

	// Path prompt
	PathPromptActive bool
	PathPromptQuery  string

	HelpVisible bool

	// Dimensions
	ScreenWidth  int
	ScreenHeight int

	// Error state
	LastError error

	// Display files cache (optimization to reduce allocations)
	displayFilesCache []FileEntry
	displayFilesDirty bool // True if cache is invalid
}

// NewAppState builds the startup state for dir. The directory is not listed
// until LoadDirectory runs.
func NewAppState(dir string, hideHidden bool) *AppState {
	return &AppState{
		CurrentPath:     dir,
		Files:           []FileEntry{},
		History:         NewPathHistory(dir),
		HideHiddenFiles: hideHidden,
	}
}

// HasVideo reports whether the preview panel holds a video session.
func (s *AppState) HasVideo() bool {
	return s.Preview != nil && s.Preview.Kind == preview.KindVideo && s.VideoSessionID != ""
}
