// Package video pumps decoded frames from a video file to the UI at a fixed
// cadence. Decoding is delegated to a FrameSource; the default source is an
// ffmpeg subprocess writing binary PPM frames to a pipe.
package video

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"os/exec"
	"strings"
	"sync"
)

// FrameSource yields decoded frames in order. Next returns io.EOF once the
// stream is exhausted.
type FrameSource interface {
	Next() (*image.RGBA, error)
	Close() error
}

// Opener starts decoding path from its first frame.
type Opener func(path string) (FrameSource, error)

const stderrTailLimit = 4 << 10

// NewFFmpegOpener returns an Opener backed by the ffmpeg binary at bin.
func NewFFmpegOpener(bin string) Opener {
	if strings.TrimSpace(bin) == "" {
		bin = "ffmpeg"
	}
	return func(path string) (FrameSource, error) {
		cmd := exec.Command(bin,
			"-v", "error",
			"-nostdin",
			"-i", path,
			"-f", "image2pipe",
			"-vcodec", "ppm",
			"-",
		)
		stderr := &tailBuffer{limit: stderrTailLimit}
		cmd.Stderr = stderr

		stdout, err := cmd.StdoutPipe()
		if err != nil {
			return nil, err
		}
		if err := cmd.Start(); err != nil {
			return nil, fmt.Errorf("start %s: %w", bin, err)
		}
		return &ffmpegSource{
			cmd:    cmd,
			stdout: stdout,
			reader: bufio.NewReaderSize(stdout, 256<<10),
			stderr: stderr,
		}, nil
	}
}

type ffmpegSource struct {
	cmd    *exec.Cmd
	stdout io.ReadCloser
	reader *bufio.Reader
	stderr *tailBuffer

	frames    int
	closeOnce sync.Once
	closeErr  error
}

func (s *ffmpegSource) Next() (*image.RGBA, error) {
	img, err := readPPM(s.reader)
	if err == nil {
		s.frames++
		return img, nil
	}
	if !errors.Is(err, io.EOF) {
		return nil, err
	}

	// The pipe closed. A process that failed before producing anything is
	// an unreadable file, not an empty one.
	if waitErr := s.wait(); waitErr != nil && s.frames == 0 {
		if msg := s.stderr.String(); msg != "" {
			return nil, fmt.Errorf("%s", msg)
		}
		return nil, waitErr
	}
	return nil, io.EOF
}

func (s *ffmpegSource) wait() error {
	s.closeOnce.Do(func() {
		s.closeErr = s.cmd.Wait()
	})
	return s.closeErr
}

func (s *ffmpegSource) Close() error {
	if s.cmd.ProcessState == nil && s.cmd.Process != nil {
		_ = s.cmd.Process.Kill()
	}
	_ = s.stdout.Close()
	_ = s.wait()
	return nil
}

// tailBuffer keeps the last limit bytes written to it.
type tailBuffer struct {
	mu    sync.Mutex
	buf   bytes.Buffer
	limit int
}

func (t *tailBuffer) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := len(p)
	t.buf.Write(p)
	if over := t.buf.Len() - t.limit; over > 0 {
		t.buf.Next(over)
	}
	return n, nil
}

func (t *tailBuffer) String() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return strings.TrimSpace(t.buf.String())
}
