package state

import (
	"github.com/kk-code-lab/rpeek/internal/preview"
	"github.com/kk-code-lab/rpeek/internal/textutil"
)

// setPreview installs result in the preview panel and resets its scroll.
func (s *AppState) setPreview(result preview.Result) {
	s.Preview = &result
	s.PreviewLines = nil
	s.PreviewScrollOffset = 0
	s.VideoSessionID = ""
	s.VideoFrame = nil
	s.VideoPlaying = false

	switch result.Kind {
	case preview.KindText:
		s.PreviewLines = textutil.SplitLines(result.Text, textutil.DefaultTabWidth)
	case preview.KindVideo:
		if result.Video != nil {
			s.VideoSessionID = result.Video.ID
		}
	}
}

func (s *AppState) clearPreview() {
	s.Preview = nil
	s.PreviewLines = nil
	s.PreviewScrollOffset = 0
	s.VideoSessionID = ""
	s.VideoFrame = nil
	s.VideoPlaying = false
}
