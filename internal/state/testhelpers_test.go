package state

import (
	"image"
	"image/color"
)

func image1x1() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.RGBA{R: 0xff, A: 0xff})
	return img
}
