package video

import (
	"errors"
	"image"
	"io"
	"sync"
	"time"

	"github.com/nfnt/resize"

	"github.com/kk-code-lab/rpeek/internal/logger"
	"github.com/kk-code-lab/rpeek/internal/preview"
)

// DefaultFrameInterval is the pause between delivered frames.
const DefaultFrameInterval = 30 * time.Millisecond

// Frame is one decoded, display-sized picture. Seq starts at 1 for the first
// frame of the file and keeps counting across pause/resume.
type Frame struct {
	SessionID string
	Seq       int
	Image     image.Image
}

// EventKind classifies why the pump stopped on its own.
type EventKind int

const (
	EventEnded EventKind = iota
	EventFailed
)

func (k EventKind) String() string {
	if k == EventFailed {
		return "failed"
	}
	return "ended"
}

// Event is emitted when playback stops without being asked to.
type Event struct {
	Kind      EventKind
	SessionID string
	Err       error
}

// Options configures a Player.
type Options struct {
	Interval  time.Duration
	MaxWidth  int
	MaxHeight int
}

// Player runs at most one frame pump for a single video session.
//
// The source stays open across Pause so Play resumes with the next frame.
// It is closed when the stream ends, fails, or Stop is called, and the next
// Play reopens it from the start.
type Player struct {
	open      Opener
	path      string
	sessionID string
	opts      Options

	frames chan Frame
	events chan Event

	// ctl serializes Play, Pause and Stop, including the wait for the pump.
	ctl sync.Mutex

	mu      sync.Mutex
	source  FrameSource
	seq     int
	playing bool
	cancel  chan struct{}
	done    chan struct{}
}

// NewPlayer prepares a stopped player for the session. Nothing is opened
// until Play.
func NewPlayer(open Opener, session preview.VideoSession, opts Options) *Player {
	if opts.Interval <= 0 {
		opts.Interval = DefaultFrameInterval
	}
	return &Player{
		open:      open,
		path:      session.Path,
		sessionID: session.ID,
		opts:      opts,
		frames:    make(chan Frame, 1),
		events:    make(chan Event, 1),
	}
}

func (p *Player) Path() string      { return p.path }
func (p *Player) SessionID() string { return p.sessionID }

// Frames delivers decoded frames. Only the most recent undelivered frame is
// kept when the reader falls behind.
func (p *Player) Frames() <-chan Frame { return p.frames }

// Events reports end of stream and decode failures.
func (p *Player) Events() <-chan Event { return p.events }

// Playing reports whether the pump goroutine is running.
func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}

// Play starts or resumes playback. It is a no-op while already playing.
func (p *Player) Play() error {
	p.ctl.Lock()
	defer p.ctl.Unlock()

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.playing {
		return nil
	}

	if p.source == nil {
		src, err := p.open(p.path)
		if err != nil {
			return &preview.DecodeError{Format: "video", Path: p.path, Err: err}
		}
		p.source = src
		p.seq = 0
		logger.Info("video session started", "session", p.sessionID, "path", p.path)
	}

	p.cancel = make(chan struct{})
	p.done = make(chan struct{})
	p.playing = true
	go p.pump(p.source, p.seq, p.cancel, p.done)
	return nil
}

// Pause stops the pump and waits for it to exit. The source stays open.
func (p *Player) Pause() {
	p.ctl.Lock()
	defer p.ctl.Unlock()
	p.halt()
}

// Toggle pauses a playing player and plays a paused or stopped one.
func (p *Player) Toggle() error {
	if p.Playing() {
		p.Pause()
		return nil
	}
	return p.Play()
}

// Stop halts playback, waits for the pump to exit and releases the source.
// Undelivered frames are discarded.
func (p *Player) Stop() {
	p.ctl.Lock()
	defer p.ctl.Unlock()
	p.halt()

	p.mu.Lock()
	src := p.source
	p.source = nil
	p.seq = 0
	p.mu.Unlock()

	if src != nil {
		_ = src.Close()
		logger.Info("video session stopped", "session", p.sessionID)
	}
	select {
	case <-p.frames:
	default:
	}
}

// halt must be called with ctl held.
func (p *Player) halt() {
	p.mu.Lock()
	if !p.playing {
		p.mu.Unlock()
		return
	}
	cancel, done := p.cancel, p.done
	p.mu.Unlock()

	close(cancel)
	<-done
}

func (p *Player) pump(src FrameSource, seq int, cancel <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	timer := time.NewTimer(p.opts.Interval)
	defer timer.Stop()

	for {
		select {
		case <-cancel:
			p.paused(seq)
			return
		default:
		}

		img, err := src.Next()
		if err != nil {
			p.finished(src, err)
			return
		}

		seq++
		p.deliver(Frame{
			SessionID: p.sessionID,
			Seq:       seq,
			Image:     preview.Fit(img, p.opts.MaxWidth, p.opts.MaxHeight, resize.Bilinear),
		})

		timer.Reset(p.opts.Interval)
		select {
		case <-cancel:
			p.paused(seq)
			return
		case <-timer.C:
		}
	}
}

func (p *Player) paused(seq int) {
	p.mu.Lock()
	p.seq = seq
	p.playing = false
	p.mu.Unlock()
}

func (p *Player) finished(src FrameSource, err error) {
	_ = src.Close()

	p.mu.Lock()
	if p.source == src {
		p.source = nil
	}
	p.seq = 0
	p.playing = false
	p.mu.Unlock()

	ev := Event{Kind: EventEnded, SessionID: p.sessionID}
	if errors.Is(err, io.EOF) {
		logger.Info("video session ended", "session", p.sessionID)
	} else {
		ev.Kind = EventFailed
		ev.Err = &preview.DecodeError{Format: "video", Path: p.path, Err: err}
		logger.Warn("video decode failed", "session", p.sessionID, "path", p.path, "error", err)
	}
	select {
	case <-p.events:
	default:
	}
	p.events <- ev
}

// deliver hands f to the reader, replacing any frame it has not taken yet.
func (p *Player) deliver(f Frame) {
	for {
		select {
		case p.frames <- f:
			return
		default:
		}
		select {
		case <-p.frames:
		default:
		}
	}
}
