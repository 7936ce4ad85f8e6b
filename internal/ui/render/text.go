package render

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const ellipsis = "…"

var asciiWidths = func() (widths [128]int) {
	for ru := range widths {
		widths[ru] = max(runewidth.RuneWidth(rune(ru)), 0)
	}
	return widths
}()

// widthCache memoizes terminal cell widths of non-ASCII runes.
type widthCache struct {
	wide sync.Map // rune -> int
}

func (c *widthCache) runeWidth(ru rune) int {
	if ru >= 0 && ru < 128 {
		return asciiWidths[ru]
	}
	if w, ok := c.wide.Load(ru); ok {
		return w.(int)
	}
	w := max(runewidth.RuneWidth(ru), 0)
	c.wide.Store(ru, w)
	return w
}

func (r *Renderer) runeWidth(ru rune) int {
	return r.widths.runeWidth(ru)
}

func (r *Renderer) measureTextWidth(text string) int {
	width := 0
	for _, ru := range text {
		width += r.runeWidth(ru)
	}
	return width
}

// clipTextToWidth cuts text at the last rune that still fits in maxWidth
// cells and reports whether anything was dropped.
func (r *Renderer) clipTextToWidth(text string, maxWidth int) (string, bool) {
	if maxWidth <= 0 {
		return "", text != ""
	}
	width := 0
	for i, ru := range text {
		width += r.runeWidth(ru)
		if width > maxWidth {
			return text[:i], true
		}
	}
	return text, false
}

// truncateTextToWidth is clipTextToWidth with an ellipsis marking the cut.
func (r *Renderer) truncateTextToWidth(text string, maxWidth int) string {
	if maxWidth <= 0 || text == "" {
		return ""
	}
	if r.measureTextWidth(text) <= maxWidth {
		return text
	}

	ellipsisWidth := max(r.measureTextWidth(ellipsis), 1)
	if maxWidth <= ellipsisWidth {
		return ellipsis
	}
	head, _ := r.clipTextToWidth(text, maxWidth-ellipsisWidth)
	return head + ellipsis
}

// drawTextLine draws text from startX and returns the column after the last
// cell written. Zero-width runes ride along with the preceding rune.
func (r *Renderer) drawTextLine(startX, y, maxWidth int, text string, style tcell.Style) int {
	x := startX
	runes := []rune(text)
	for i := 0; i < len(runes); {
		if x-startX >= maxWidth {
			break
		}
		mainc := runes[i]
		i++

		var combc []rune
		for i < len(runes) && r.runeWidth(runes[i]) == 0 {
			combc = append(combc, runes[i])
			i++
		}

		r.screen.SetContent(x, y, mainc, combc, style)
		x += r.runeWidth(mainc)
	}
	return x
}

// fillRow paints blank cells from x up to endX.
func (r *Renderer) fillRow(x, endX, y int, style tcell.Style) {
	for ; x < endX; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}
}

// fitBreadcrumb keeps the end of path when it is wider than width.
func (r *Renderer) fitBreadcrumb(path string, width int) string {
	if width <= 0 {
		return ""
	}
	if r.measureTextWidth(path) <= width {
		return path
	}

	ellipsisWidth := max(r.measureTextWidth(ellipsis), 1)
	if width <= ellipsisWidth {
		return ellipsis
	}

	runes := []rune(path)
	start := len(runes)
	used := 0
	for i := len(runes) - 1; i >= 0; i-- {
		used += r.runeWidth(runes[i])
		if used > width-ellipsisWidth {
			break
		}
		start = i
	}
	return ellipsis + string(runes[start:])
}
