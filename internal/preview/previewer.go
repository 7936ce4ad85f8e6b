// Package preview turns files into display-ready content: text, a scaled
// bitmap, or a video session handle for the playback loop.
package preview

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/kk-code-lab/rpeek/internal/logger"
)

// Producer builds a Result for the file kinds it handles.
type Producer interface {
	Handles(ext string) bool
	Produce(path string) Result
}

// Options bounds what the previewer produces.
type Options struct {
	MaxWidth     int
	MaxHeight    int
	MaxTextBytes int64
}

// DefaultOptions matches the 700x500 display bound.
func DefaultOptions() Options {
	return Options{
		MaxWidth:     700,
		MaxHeight:    500,
		MaxTextBytes: 4 << 20,
	}
}

// Previewer dispatches on file extension. The last producer is the text
// fallback and accepts every extension.
type Previewer struct {
	producers []Producer
}

// NewPreviewer builds the default producer chain.
func NewPreviewer(opts Options) *Previewer {
	def := DefaultOptions()
	if opts.MaxWidth <= 0 {
		opts.MaxWidth = def.MaxWidth
	}
	if opts.MaxHeight <= 0 {
		opts.MaxHeight = def.MaxHeight
	}
	if opts.MaxTextBytes <= 0 {
		opts.MaxTextBytes = def.MaxTextBytes
	}
	return &Previewer{
		producers: []Producer{
			pdfProducer{},
			imageProducer{maxWidth: opts.MaxWidth, maxHeight: opts.MaxHeight},
			videoProducer{},
			textProducer{limit: opts.MaxTextBytes},
		},
	}
}

// Preview never panics and never returns a bare error: failures come back
// as KindError results.
func (p *Previewer) Preview(path string) Result {
	ext := strings.ToLower(filepath.Ext(path))
	for _, producer := range p.producers {
		if producer.Handles(ext) {
			result := produce(producer, path, ext)
			if result.Kind == KindError {
				logger.Warn("preview failed", "path", path, "error", result.Err)
			}
			return result
		}
	}
	return errorResult(path, formatName(ext), fmt.Errorf("no previewer for %q", ext))
}

func produce(producer Producer, path, ext string) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			result = errorResult(path, formatName(ext), fmt.Errorf("decoder panic: %v", r))
		}
	}()
	return producer.Produce(path)
}

func formatName(ext string) string {
	switch {
	case ext == ".pdf":
		return "pdf"
	case isImageExt(ext):
		return "image"
	case isVideoExt(ext):
		return "video"
	default:
		return "text"
	}
}
