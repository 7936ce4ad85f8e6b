package render

import (
	"image"
	"image/color"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/rpeek/internal/preview"
	statepkg "github.com/kk-code-lab/rpeek/internal/state"
)

func TestTruncateTextToWidth(t *testing.T) {
	r := NewRenderer(nil)

	tests := []struct {
		name   string
		text   string
		width  int
		expect string
	}{
		{
			name:   "fits without truncation",
			text:   "file.txt",
			width:  20,
			expect: "file.txt",
		},
		{
			name:   "adds ellipsis when needed",
			text:   "verylongname",
			width:  6,
			expect: "veryl…",
		},
		{
			name:   "only ellipsis when width too small",
			text:   "example",
			width:  1,
			expect: "…",
		},
		{
			name:   "multi-byte characters respected",
			text:   "你好世界",
			width:  5,
			expect: "你好…",
		},
		{
			name:   "returns empty when width is zero",
			text:   "anything",
			width:  0,
			expect: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := r.truncateTextToWidth(tt.text, tt.width)
			if actual != tt.expect {
				t.Fatalf("expected %q, got %q (width %d)", tt.expect, actual, tt.width)
			}
		})
	}
}

func TestMeasureTextWidth(t *testing.T) {
	r := NewRenderer(nil)

	if got := r.measureTextWidth("abc"); got != 3 {
		t.Fatalf("expected ASCII width 3, got %d", got)
	}

	if got := r.measureTextWidth("你好"); got != 4 {
		t.Fatalf("expected wide rune width 4, got %d", got)
	}
}

func TestComputeLayoutShowsPreviewOnModerateScreen(t *testing.T) {
	layout := computeLayout(80)
	if !layout.showPreview {
		t.Fatalf("expected preview on 80 columns")
	}
	if layout.listWidth+layout.separatorWidth+layout.previewWidth != 80 {
		t.Fatalf("layout does not cover screen: %+v", layout)
	}
	if layout.previewStart != layout.listWidth+1 {
		t.Fatalf("preview should start after separator: %+v", layout)
	}
}

func TestComputeLayoutClampsListWidth(t *testing.T) {
	if got := ListPanelWidth(300); got != maxListPanelWidth {
		t.Fatalf("expected list width clamped to %d, got %d", maxListPanelWidth, got)
	}
	if got := computeLayout(60).listWidth; got != minListPanelWidth+1 {
		t.Fatalf("expected ratio width %d, got %d", minListPanelWidth+1, got)
	}
}

func TestComputeLayoutHidesPreviewOnSmallScreens(t *testing.T) {
	layout := computeLayout(35)
	if layout.showPreview {
		t.Fatalf("expected preview hidden on narrow screen, got %+v", layout)
	}
	if layout.listWidth != 35 {
		t.Fatalf("list should take whole width, got %d", layout.listWidth)
	}
}

func TestFormatBreadcrumbSegments(t *testing.T) {
	tests := []struct {
		path string
		want []string
	}{
		{path: "", want: []string{"/"}},
		{path: "/", want: []string{"/"}},
		{path: "/home/user/docs", want: []string{"/", "home", "user", "docs"}},
		{path: "/tmp/", want: []string{"/", "tmp"}},
	}

	for _, tt := range tests {
		got := FormatBreadcrumbSegments(tt.path)
		if strings.Join(got, "|") != strings.Join(tt.want, "|") {
			t.Fatalf("FormatBreadcrumbSegments(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestFitBreadcrumbKeepsTail(t *testing.T) {
	r := NewRenderer(nil)
	got := r.fitBreadcrumb("/very/long/path/name", 8)
	if got != "…th/name" {
		t.Fatalf("expected tail kept, got %q", got)
	}
}

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)
	return screen
}

func rowText(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		mainc, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(mainc)
	}
	return b.String()
}

func renderState(t *testing.T, state *statepkg.AppState, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := newSimScreen(t, w, h)
	state.ScreenWidth, state.ScreenHeight = w, h
	NewRenderer(screen).Render(state)
	return screen
}

func listState(dir string, names ...string) *statepkg.AppState {
	state := statepkg.NewAppState(dir, false)
	for _, name := range names {
		state.Files = append(state.Files, statepkg.FileEntry{Name: name, FullPath: filepath.Join(dir, name)})
	}
	return state
}

func TestRenderDrawsHeaderListAndFooter(t *testing.T) {
	state := listState("/srv/media", "alpha.txt", "beta.png")
	state.SelectedIndex = 1

	screen := renderState(t, state, 80, 10)

	header := rowText(screen, 0)
	if !strings.HasPrefix(header, HeaderText) || !strings.Contains(header, "media") {
		t.Fatalf("unexpected header %q", header)
	}
	if !strings.Contains(rowText(screen, 1), "alpha.txt") {
		t.Fatalf("expected first entry on row 1, got %q", rowText(screen, 1))
	}
	if !strings.Contains(rowText(screen, 2), "beta.png") {
		t.Fatalf("expected second entry on row 2, got %q", rowText(screen, 2))
	}

	_, _, style, _ := screen.GetContent(3, 2)
	_, bg, _ := style.Decompose()
	if bg != GetColorTheme().SelectionBg {
		t.Fatalf("selected row should use selection background, got %v", bg)
	}

	if !strings.Contains(rowText(screen, 9), "navigate") {
		t.Fatalf("expected key hints in status line, got %q", rowText(screen, 9))
	}
}

func TestRenderShowsLastErrorInStatusLine(t *testing.T) {
	state := listState("/srv")
	state.LastError = &statepkg.InvalidPathError{Path: "/nope"}

	screen := renderState(t, state, 80, 6)

	status := rowText(screen, 5)
	if !strings.Contains(status, "/nope") {
		t.Fatalf("expected error in status line, got %q", status)
	}
	if !strings.Contains(rowText(screen, 1), "(empty)") {
		t.Fatalf("expected empty placeholder, got %q", rowText(screen, 1))
	}
}

func TestRenderShowsPathPrompt(t *testing.T) {
	state := listState("/srv")
	state.PathPromptActive = true
	state.PathPromptQuery = "/etc"

	screen := renderState(t, state, 80, 6)

	if status := rowText(screen, 5); !strings.HasPrefix(status, "Go to: /etc█") {
		t.Fatalf("expected prompt in status line, got %q", status)
	}
}

func TestRenderTextPreviewHonoursScrollOffset(t *testing.T) {
	state := listState("/srv", "notes.txt")
	state.Preview = &preview.Result{Kind: preview.KindText, Path: "/srv/notes.txt", Text: "one\ntwo\nthree"}
	state.PreviewLines = []string{"one", "two", "three"}
	state.PreviewScrollOffset = 1

	screen := renderState(t, state, 80, 6)

	previewX := computeLayout(80).previewStart + previewInnerPadding
	row := string([]rune(rowText(screen, 1))[previewX:])
	if !strings.HasPrefix(row, "two") {
		t.Fatalf("expected scrolled preview to start with second line, got %q", row)
	}
}

func TestRenderImagePreviewUsesHalfBlocks(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}
	img.Set(0, 0, red)
	img.Set(1, 0, red)
	img.Set(0, 1, blue)
	img.Set(1, 1, blue)

	state := listState("/srv", "pic.png")
	state.Preview = &preview.Result{Kind: preview.KindImage, Path: "/srv/pic.png", Image: img}

	screen := renderState(t, state, 80, 6)

	x := computeLayout(80).previewStart + previewInnerPadding
	mainc, _, style, _ := screen.GetContent(x, 1)
	if mainc != '▀' {
		t.Fatalf("expected half block, got %q", mainc)
	}
	fg, bg, _ := style.Decompose()
	if fg != tcell.NewRGBColor(255, 0, 0) || bg != tcell.NewRGBColor(0, 0, 255) {
		t.Fatalf("expected red over blue, got fg=%v bg=%v", fg, bg)
	}
}

func TestRenderVideoPreviewShowsPlaybackHint(t *testing.T) {
	state := listState("/srv", "clip.mp4")
	state.Preview = &preview.Result{
		Kind:  preview.KindVideo,
		Path:  "/srv/clip.mp4",
		Video: &preview.VideoSession{ID: "v1", Path: "/srv/clip.mp4"},
	}
	state.VideoSessionID = "v1"

	screen := renderState(t, state, 80, 8)
	if !strings.Contains(rowText(screen, 6), videoIdleHint) {
		t.Fatalf("expected idle hint, got %q", rowText(screen, 6))
	}

	state.VideoPlaying = true
	state.VideoFrame = image.NewRGBA(image.Rect(0, 0, 4, 4))
	screen = renderState(t, state, 80, 8)
	if !strings.Contains(rowText(screen, 6), "playing") {
		t.Fatalf("expected playing hint, got %q", rowText(screen, 6))
	}

	state.VideoPlaying = false
	screen = renderState(t, state, 80, 8)
	if !strings.Contains(rowText(screen, 6), "paused") {
		t.Fatalf("expected paused hint, got %q", rowText(screen, 6))
	}

	// End of stream leaves the session idle.
	state.VideoFrame = nil
	screen = renderState(t, state, 80, 8)
	if row := rowText(screen, 6); !strings.Contains(row, videoIdleHint) || strings.Contains(row, "paused") {
		t.Fatalf("expected idle hint after end of stream, got %q", row)
	}
}

func TestRenderHelpOverlay(t *testing.T) {
	state := listState("/srv")
	state.HelpVisible = true

	screen := renderState(t, state, 80, 30)

	if !strings.Contains(rowText(screen, 0), "Help") {
		t.Fatalf("expected help title, got %q", rowText(screen, 0))
	}
}
