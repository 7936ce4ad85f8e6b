package render

import (
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/nfnt/resize"

	"github.com/kk-code-lab/rpeek/internal/preview"
	statepkg "github.com/kk-code-lab/rpeek/internal/state"
)

const (
	videoIdleHint    = "Space: play"
	videoPlayingHint = "▶ playing · Space: pause"
	videoPausedHint  = "❚❚ paused · Space: play"
)

// drawPreviewPanel renders the right-hand column for the current preview.
func (r *Renderer) drawPreviewPanel(state *statepkg.AppState, startX, panelWidth, h int) {
	bgStyle := tcell.StyleDefault.Background(r.theme.PreviewBg).Foreground(r.theme.PreviewFg)
	top, bottom := 1, h-1
	for y := top; y < bottom; y++ {
		r.fillRow(startX, startX+panelWidth, y, bgStyle)
	}

	innerX := startX + previewInnerPadding
	innerW := panelWidth - 2*previewInnerPadding
	if innerW <= 0 || bottom <= top {
		return
	}

	placeholder := bgStyle.Foreground(r.theme.PlaceholderFg)
	res := state.Preview
	if res == nil {
		r.drawTextLine(innerX, top, innerW, r.truncateTextToWidth("Select a file and press ↵ to preview", innerW), placeholder)
		return
	}

	switch res.Kind {
	case preview.KindText:
		r.drawPreviewText(state, innerX, top, innerW, bottom, bgStyle)
	case preview.KindImage:
		r.drawBitmap(res.Image, innerX, top, innerW, bottom-top)
	case preview.KindVideo:
		// Last row holds the playback hint.
		bitmapRows := bottom - top - 1
		if state.VideoFrame != nil && bitmapRows > 0 {
			r.drawBitmap(state.VideoFrame, innerX, top, innerW, bitmapRows)
		}
		hint := videoIdleHint
		switch {
		case state.VideoPlaying:
			hint = videoPlayingHint
		case state.VideoFrame != nil:
			hint = videoPausedHint
		}
		r.drawTextLine(innerX, bottom-1, innerW, r.truncateTextToWidth(hint, innerW), placeholder)
	case preview.KindError:
		errStyle := bgStyle.Foreground(r.theme.ErrorFg)
		r.drawTextLine(innerX, top, innerW, r.truncateTextToWidth(res.Message(), innerW), errStyle)
	}
}

func (r *Renderer) drawPreviewText(state *statepkg.AppState, x, top, width, bottom int, style tcell.Style) {
	lines := state.PreviewLines
	start := state.PreviewScrollOffset
	if start < 0 {
		start = 0
	}
	y := top
	for i := start; i < len(lines) && y < bottom; i++ {
		line, _ := r.clipTextToWidth(lines[i], width)
		r.drawTextLine(x, y, width, line, style)
		y++
	}
}

// drawBitmap paints img with upper half blocks so each cell carries two
// vertically stacked pixels. The image is downscaled to fit, never enlarged.
func (r *Renderer) drawBitmap(img image.Image, x, y, cols, rows int) {
	if img == nil || cols <= 0 || rows <= 0 {
		return
	}

	scaled := preview.Fit(img, cols, rows*2, resize.NearestNeighbor)
	b := scaled.Bounds()
	for dy := 0; dy < b.Dy(); dy += 2 {
		row := y + dy/2
		if row >= y+rows {
			break
		}
		for dx := 0; dx < b.Dx() && dx < cols; dx++ {
			top := toTCellColor(scaled.At(b.Min.X+dx, b.Min.Y+dy))
			style := tcell.StyleDefault.Foreground(top)
			if dy+1 < b.Dy() {
				style = style.Background(toTCellColor(scaled.At(b.Min.X+dx, b.Min.Y+dy+1)))
			} else {
				style = style.Background(r.theme.PreviewBg)
			}
			r.screen.SetContent(x+dx, row, '▀', nil, style)
		}
	}
}

func toTCellColor(c color.Color) tcell.Color {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	return tcell.NewRGBColor(int32(rgba.R), int32(rgba.G), int32(rgba.B))
}
