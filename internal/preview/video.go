package preview

import (
	"os"

	"github.com/google/uuid"
)

var videoExtensions = map[string]struct{}{
	".mp4":  {},
	".avi":  {},
	".mov":  {},
	".mkv":  {},
	".webm": {},
}

func isVideoExt(ext string) bool {
	_, ok := videoExtensions[ext]
	return ok
}

// videoProducer only hands out a session; frames are decoded later by the
// playback loop.
type videoProducer struct{}

func (videoProducer) Handles(ext string) bool { return isVideoExt(ext) }

func (videoProducer) Produce(path string) Result {
	f, err := os.Open(path)
	if err != nil {
		return errorResult(path, "video", err)
	}
	_ = f.Close()

	return videoResult(path, &VideoSession{
		ID:   uuid.NewString(),
		Path: path,
	})
}
