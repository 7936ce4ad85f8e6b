package preview

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func writePNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", name, err)
	}
	defer func() {
		_ = f.Close()
	}()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", name, err)
	}
	return path
}

func TestPreviewTextFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "notes.txt", []byte("hello"))

	result := NewPreviewer(DefaultOptions()).Preview(path)
	if result.Kind != KindText {
		t.Fatalf("expected text result, got %v (%v)", result.Kind, result.Err)
	}
	if result.Text != "hello" {
		t.Fatalf("expected %q, got %q", "hello", result.Text)
	}
}

func TestPreviewUnknownExtensionReturnsRawContent(t *testing.T) {
	dir := t.TempDir()
	content := "line one\r\nline\ttwo\n"
	for _, name := range []string{"Makefile", "data.xyz", "archive.TAR.unknown"} {
		path := writeFile(t, dir, name, []byte(content))
		result := NewPreviewer(DefaultOptions()).Preview(path)
		if result.Kind != KindText || result.Text != content {
			t.Errorf("%s: expected exact content, got kind=%v text=%q err=%v", name, result.Kind, result.Text, result.Err)
		}
	}
}

func TestPreviewInvalidUTF8IsError(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "blob.bin", []byte{'a', 0xff, 0xfe, 0xc3})

	result := NewPreviewer(DefaultOptions()).Preview(path)
	if result.Kind != KindError {
		t.Fatalf("expected error result, got %v", result.Kind)
	}
	var decodeErr *DecodeError
	if !errors.As(result.Err, &decodeErr) || decodeErr.Format != "text" {
		t.Fatalf("expected text DecodeError, got %v", result.Err)
	}
	if result.Message() == "" {
		t.Fatal("expected a user-facing message")
	}
}

func TestPreviewKeepsNULAndUTF8BOM(t *testing.T) {
	dir := t.TempDir()
	for name, content := range map[string]string{
		"nul.dat": "a\x00b",
		"bom.txt": "\xef\xbb\xbfhello",
	} {
		path := writeFile(t, dir, name, []byte(content))
		result := NewPreviewer(DefaultOptions()).Preview(path)
		if result.Kind != KindText || result.Text != content {
			t.Errorf("%s: expected raw text %q, got kind=%v text=%q err=%v", name, content, result.Kind, result.Text, result.Err)
		}
	}
}

func TestPreviewTextTooLarge(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "big.log", []byte(strings.Repeat("a", 64)))

	result := NewPreviewer(Options{MaxTextBytes: 16}).Preview(path)
	if result.Kind != KindError {
		t.Fatalf("expected error for oversized text, got %v", result.Kind)
	}
}

func TestPreviewMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gone.txt")
	result := NewPreviewer(DefaultOptions()).Preview(path)
	if result.Kind != KindError || !errors.Is(result.Err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error result, got %v (%v)", result.Kind, result.Err)
	}
}

func TestPreviewImageIsScaledToBound(t *testing.T) {
	dir := t.TempDir()
	path := writePNG(t, dir, "photo.png", 1400, 1000)

	result := NewPreviewer(DefaultOptions()).Preview(path)
	if result.Kind != KindImage {
		t.Fatalf("expected image result, got %v (%v)", result.Kind, result.Err)
	}
	b := result.Image.Bounds()
	if b.Dx() != 700 || b.Dy() != 500 {
		t.Fatalf("expected 700x500, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestPreviewImageExtensionIsCaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	path := writePNG(t, dir, "SMALL.PNG", 40, 20)

	result := NewPreviewer(DefaultOptions()).Preview(path)
	if result.Kind != KindImage {
		t.Fatalf("expected image result, got %v (%v)", result.Kind, result.Err)
	}
	if b := result.Image.Bounds(); b.Dx() != 40 || b.Dy() != 20 {
		t.Fatalf("small image should not be rescaled, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestPreviewCorruptImageIsError(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "broken.jpg", []byte("definitely not a jpeg"))

	result := NewPreviewer(DefaultOptions()).Preview(path)
	var decodeErr *DecodeError
	if result.Kind != KindError || !errors.As(result.Err, &decodeErr) || decodeErr.Format != "image" {
		t.Fatalf("expected image DecodeError, got %v (%v)", result.Kind, result.Err)
	}
}

func TestPreviewCorruptPDFIsError(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "report.pdf", []byte("%PDF-1.4\nthis is not really a pdf"))

	result := NewPreviewer(DefaultOptions()).Preview(path)
	var decodeErr *DecodeError
	if result.Kind != KindError || !errors.As(result.Err, &decodeErr) || decodeErr.Format != "pdf" {
		t.Fatalf("expected pdf DecodeError, got %v (%v)", result.Kind, result.Err)
	}
}

func TestPreviewVideoReturnsIdleSession(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "clip.MP4", []byte("not decoded yet"))

	result := NewPreviewer(DefaultOptions()).Preview(path)
	if result.Kind != KindVideo {
		t.Fatalf("expected video result, got %v (%v)", result.Kind, result.Err)
	}
	if result.Video == nil || result.Video.Path != path || result.Video.ID == "" {
		t.Fatalf("unexpected session %+v", result.Video)
	}

	other := NewPreviewer(DefaultOptions()).Preview(path)
	if other.Video.ID == result.Video.ID {
		t.Fatal("expected a fresh session id per open")
	}
}

type panickingProducer struct{}

func (panickingProducer) Handles(string) bool   { return true }
func (panickingProducer) Produce(string) Result { panic("boom") }

func TestPreviewRecoversProducerPanic(t *testing.T) {
	p := &Previewer{producers: []Producer{panickingProducer{}}}
	result := p.Preview("whatever.txt")
	if result.Kind != KindError || !strings.Contains(result.Message(), "boom") {
		t.Fatalf("expected recovered panic error, got %v (%v)", result.Kind, result.Err)
	}
}

func TestFitSize(t *testing.T) {
	tests := []struct {
		w, h, maxW, maxH int
		wantW, wantH     int
	}{
		{1400, 1000, 700, 500, 700, 500},
		{2000, 500, 700, 500, 700, 175},
		{500, 2000, 700, 500, 125, 500},
		{700, 500, 700, 500, 700, 500},
		{100, 80, 700, 500, 100, 80},
		{1000, 1000, 700, 500, 500, 500},
		{10000, 1, 700, 500, 700, 1},
	}
	for _, tt := range tests {
		gotW, gotH := FitSize(tt.w, tt.h, tt.maxW, tt.maxH)
		if gotW != tt.wantW || gotH != tt.wantH {
			t.Errorf("FitSize(%d,%d,%d,%d) = %dx%d, want %dx%d", tt.w, tt.h, tt.maxW, tt.maxH, gotW, gotH, tt.wantW, tt.wantH)
		}
	}
}
