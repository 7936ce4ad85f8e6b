package app

import (
	"github.com/kk-code-lab/rpeek/internal/preview"
	"github.com/kk-code-lab/rpeek/internal/video"
)

// videoController owns the player for the video in the preview panel. It is
// only touched from the event loop goroutine.
type videoController struct {
	open   video.Opener
	opts   video.Options
	player *video.Player
}

func newVideoController(open video.Opener, opts video.Options) *videoController {
	return &videoController{open: open, opts: opts}
}

// Load replaces the current player with an idle one for session.
func (vc *videoController) Load(session preview.VideoSession) {
	vc.Stop()
	vc.player = video.NewPlayer(vc.open, session, vc.opts)
}

// Toggle plays or pauses the loaded session.
func (vc *videoController) Toggle() (bool, error) {
	if vc.player == nil {
		return false, nil
	}
	if err := vc.player.Toggle(); err != nil {
		return false, err
	}
	return vc.player.Playing(), nil
}

// Stop halts playback. The player stays loaded, so a later Toggle replays
// the session from the first frame.
func (vc *videoController) Stop() {
	if vc.player != nil {
		vc.player.Stop()
	}
}

// channels returns the live player's outputs, nil when nothing is loaded so
// the loop's select ignores them.
func (vc *videoController) channels() (<-chan video.Frame, <-chan video.Event) {
	if vc == nil || vc.player == nil {
		return nil, nil
	}
	return vc.player.Frames(), vc.player.Events()
}
