package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	statepkg "github.com/kk-code-lab/rpeek/internal/state"
	textutil "github.com/kk-code-lab/rpeek/internal/textutil"
)

// HeaderText is the application name drawn before the breadcrumb.
const HeaderText = "rpeek"

// BreadcrumbSeparator sits between breadcrumb segments.
const BreadcrumbSeparator = " › "

// Renderer handles all UI rendering
type Renderer struct {
	screen tcell.Screen
	theme  ColorTheme
	widths widthCache
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		theme:  GetColorTheme(),
	}
}

// Render draws the entire UI based on state
func (r *Renderer) Render(state *statepkg.AppState) {
	r.screen.Clear()

	w, h := r.screen.Size()

	if state.HelpVisible {
		r.drawHelpOverlay(state, w, h)
		r.screen.Show()
		return
	}

	layout := computeLayout(w)

	r.drawHeader(state, w)
	r.drawFileList(state, 0, layout.listWidth, h)
	if layout.showPreview {
		sepX := layout.previewStart - layout.separatorWidth
		for y := 1; y < h-1; y++ {
			r.screen.SetContent(sepX, y, '│', nil, tcell.StyleDefault.Foreground(r.theme.PlaceholderFg))
		}
		r.drawPreviewPanel(state, layout.previewStart, layout.previewWidth, h)
	}
	r.drawStatusLine(state, w, h)

	r.screen.Show()
}

// drawHeader renders the top bar with title and breadcrumb
func (r *Renderer) drawHeader(state *statepkg.AppState, w int) {
	headerStyle := tcell.StyleDefault.Background(r.theme.FooterBg).Foreground(r.theme.FooterFg)

	endX := r.drawTextLine(0, 0, w, HeaderText, headerStyle)
	if endX < w {
		r.screen.SetContent(endX, 0, ' ', nil, headerStyle)
		endX++
	}

	if endX < w {
		available := w - endX
		segments := FormatBreadcrumbSegments(state.CurrentPath)
		if len(segments) > 0 {
			lastIdx := len(segments) - 1
			if lastIdx > 0 {
				prefix := strings.Join(segments[:lastIdx], BreadcrumbSeparator)
				prefix = textutil.SanitizeTerminalText(r.fitBreadcrumb(prefix, available))
				endX = r.drawTextLine(endX, 0, available, prefix, headerStyle)
				if endX < w {
					sep := r.fitBreadcrumb(BreadcrumbSeparator, w-endX)
					endX = r.drawTextLine(endX, 0, w-endX, sep, headerStyle)
				}
			}

			if endX < w {
				lastSegment := textutil.SanitizeTerminalText(r.fitBreadcrumb(segments[lastIdx], w-endX))
				endX = r.drawTextLine(endX, 0, w-endX, lastSegment, headerStyle.Bold(true))
			}
		}
	}

	r.fillRow(endX, w, 0, headerStyle)
}

// drawFileList renders the directory listing column.
func (r *Renderer) drawFileList(state *statepkg.AppState, startX, panelWidth, h int) {
	baseBgStyle := tcell.StyleDefault.Background(r.theme.ListBg).Foreground(r.theme.ListFg)
	displayFiles := state.DisplayFiles()

	listStartY := 1
	bottomLimit := h - 1
	visibleLines := bottomLimit - listStartY
	if visibleLines < 0 {
		visibleLines = 0
	}

	endIndex := state.ScrollOffset + visibleLines
	if endIndex > len(displayFiles) {
		endIndex = len(displayFiles)
	}

	displayY := listStartY
	if len(displayFiles) == 0 && displayY < bottomLimit {
		placeholder := baseBgStyle.Foreground(r.theme.PlaceholderFg)
		r.drawTextLine(startX, displayY, panelWidth, " (empty)", placeholder)
	}

	selectedDisplay := state.DisplaySelectedIndex()
	for displayIdx := state.ScrollOffset; displayIdx < endIndex; displayIdx++ {
		if displayY >= bottomLimit {
			break
		}

		f := displayFiles[displayIdx]
		isSelected := displayIdx == selectedDisplay
		isDir := f.IsDirectory()
		isSymlink := f.IsSymlink()

		// Highlight selected row
		var rowStyle tcell.Style
		switch {
		case isSelected:
			rowStyle = tcell.StyleDefault.Background(r.theme.SelectionBg).Foreground(r.theme.SelectionFg)
		case isSymlink:
			rowStyle = baseBgStyle.Foreground(r.theme.SymlinkFg)
		case isDir:
			rowStyle = baseBgStyle.Foreground(r.theme.DirectoryFg)
		default:
			rowStyle = baseBgStyle.Foreground(r.theme.FileFg)
		}
		if f.IsHidden() && !isSelected {
			rowStyle = rowStyle.Foreground(r.theme.HiddenFg)
		}

		// Icon: @ for symlinks, / for directories, space for files
		icon := " "
		if isSymlink {
			icon = "@"
		} else if isDir {
			icon = "/"
		}

		prefix := fmt.Sprintf(" %s ", icon)
		nameWidth := panelWidth - r.measureTextWidth(prefix)
		displayName := textutil.SanitizeTerminalText(f.Name)
		if nameWidth > 0 {
			displayName = r.truncateTextToWidth(displayName, nameWidth)
		} else {
			displayName = ""
		}

		endX := r.drawTextLine(startX, displayY, panelWidth, prefix+displayName, rowStyle)
		r.fillRow(endX, startX+panelWidth, displayY, rowStyle)

		displayY++
	}
}

// drawStatusLine renders the bottom row: the path prompt while it is open,
// the last error if there is one, otherwise the selected path and key hints.
func (r *Renderer) drawStatusLine(state *statepkg.AppState, w, h int) {
	if h <= 1 {
		return
	}
	y := h - 1
	normalStyle := tcell.StyleDefault.Background(r.theme.FooterBg).Foreground(r.theme.FooterFg)

	var (
		text  string
		style = normalStyle
	)
	switch {
	case state.PathPromptActive:
		style = tcell.StyleDefault.Background(r.theme.PromptBg).Foreground(r.theme.PromptFg)
		text = "Go to: " + textutil.SanitizeTerminalText(state.PathPromptQuery) + "█"
		// Keep the cursor end visible when the query is long.
		text = r.fitBreadcrumb(text, w)
	case state.LastError != nil:
		style = tcell.StyleDefault.Background(r.theme.ErrorBg).Foreground(r.theme.ErrorFg)
		text = r.truncateTextToWidth(" "+textutil.SanitizeTerminalText(state.LastError.Error()), w)
	default:
		text = textutil.SanitizeTerminalText(buildFooterHelpText(state))
		text = r.truncateTextToWidth(text, w)
	}

	endX := r.drawTextLine(0, y, w, text, style)
	r.fillRow(endX, w, y, style)
}
