package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	statepkg "github.com/kk-code-lab/rpeek/internal/state"
)

const helpKeyColumn = 16

type helpBinding struct {
	keys string
	desc string
}

type helpSection struct {
	title    string
	bindings []helpBinding
}

func helpSections(state *statepkg.AppState) []helpSection {
	hiddenDesc := "Hide hidden files"
	if state != nil && state.HideHiddenFiles {
		hiddenDesc = "Show hidden files"
	}

	return []helpSection{
		{"Navigation", []helpBinding{
			{"↑/↓ or k/j", "Move selection"},
			{"↵ or → or l", "Open directory / preview file"},
			{"← or h", "Parent directory"},
			{"[ / ]", "History back/forward"},
			{"g or :", "Go to path"},
			{"PgUp/PgDn", "Page through listing"},
			{"Home/End", "First / last entry"},
		}},
		{"Preview", []helpBinding{
			{"K/J", "Scroll preview up/down"},
			{"Ctrl+U/Ctrl+D", "Scroll preview up/down"},
			{"Space", "Play / pause video"},
		}},
		{"Actions", []helpBinding{
			{".", hiddenDesc},
			{"r", "Refresh directory"},
			{"Ctrl+Z", "Suspend"},
		}},
		{"Exit", []helpBinding{
			{"q", "Quit"},
			{"Ctrl+C", "Quit immediately"},
			{"?", "Close this help"},
		}},
	}
}

// buildHelpOverlayLines flattens the help sections into display lines with
// a blank line between sections.
func buildHelpOverlayLines(state *statepkg.AppState) []string {
	var lines []string
	for i, section := range helpSections(state) {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, section.title)
		for _, b := range section.bindings {
			lines = append(lines, fmt.Sprintf("  %-*s %s", helpKeyColumn-2, b.keys, b.desc))
		}
	}
	return lines
}

func (r *Renderer) drawHelpOverlay(state *statepkg.AppState, w, h int) {
	base := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.Foreground)
	bar := base.Background(r.theme.FooterBg).Foreground(r.theme.FooterFg).Bold(true)
	titleStyle := base.Bold(true).Underline(true)
	keyStyle := base.Foreground(r.theme.DirectoryFg)

	for y := 0; y < h; y++ {
		r.fillRow(0, w, y, base)
	}

	const title = " Help "
	r.fillRow(0, w, 0, bar)
	r.drawTextLine(max((w-r.measureTextWidth(title))/2, 0), 0, w, title, bar)

	y := 2
	for i, section := range helpSections(state) {
		if i > 0 {
			y++
		}
		if y >= h-1 {
			break
		}
		r.drawTextLine(2, y, w-4, r.truncateTextToWidth(section.title, w-4), titleStyle)
		y++
		for _, b := range section.bindings {
			if y >= h-1 {
				break
			}
			r.drawTextLine(4, y, helpKeyColumn-2, r.truncateTextToWidth(b.keys, helpKeyColumn-3), keyStyle)
			descX := 4 + helpKeyColumn - 1
			r.drawTextLine(descX, y, w-descX, r.truncateTextToWidth(b.desc, w-descX), base)
			y++
		}
	}

	if h > 1 {
		r.fillRow(0, w, h-1, bar)
		r.drawTextLine(0, h-1, w, r.truncateTextToWidth(" ? toggle · Esc/q close", w), bar)
	}
}
