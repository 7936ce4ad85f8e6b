package preview

import (
	"fmt"
	"image"
)

// Kind tags the variant held by a Result.
type Kind int

const (
	KindError Kind = iota
	KindText
	KindImage
	KindVideo
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindImage:
		return "image"
	case KindVideo:
		return "video"
	default:
		return "error"
	}
}

// Result is the display-ready form of a file. Exactly one payload field is
// meaningful, selected by Kind.
type Result struct {
	Kind  Kind
	Path  string
	Text  string
	Image image.Image
	Video *VideoSession
	Err   error
}

// VideoSession identifies an opened video that has not started playing.
// Decoding happens in the playback loop, not here.
type VideoSession struct {
	ID   string
	Path string
}

// DecodeError reports a file that could not be turned into a preview.
type DecodeError struct {
	Format string
	Path   string
	Err    error
}

func (e *DecodeError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return fmt.Sprintf("unable to read %s file %s", e.Format, e.Path)
	}
	return fmt.Sprintf("unable to read %s file %s: %v", e.Format, e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func textResult(path, text string) Result {
	return Result{Kind: KindText, Path: path, Text: text}
}

func imageResult(path string, img image.Image) Result {
	return Result{Kind: KindImage, Path: path, Image: img}
}

func videoResult(path string, session *VideoSession) Result {
	return Result{Kind: KindVideo, Path: path, Video: session}
}

func errorResult(path, format string, err error) Result {
	return Result{Kind: KindError, Path: path, Err: &DecodeError{Format: format, Path: path, Err: err}}
}

// Message returns the user-facing error text for KindError results.
func (r Result) Message() string {
	if r.Kind != KindError || r.Err == nil {
		return ""
	}
	return r.Err.Error()
}
