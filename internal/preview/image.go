package preview

import (
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/nfnt/resize"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var imageExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".bmp":  {},
	".webp": {},
	".tif":  {},
	".tiff": {},
}

func isImageExt(ext string) bool {
	_, ok := imageExtensions[ext]
	return ok
}

type imageProducer struct {
	maxWidth  int
	maxHeight int
}

func (imageProducer) Handles(ext string) bool { return isImageExt(ext) }

func (p imageProducer) Produce(path string) Result {
	img, err := decodeImageFile(path)
	if err != nil {
		return errorResult(path, "image", err)
	}
	return imageResult(path, Fit(img, p.maxWidth, p.maxHeight, resize.Lanczos3))
}

func decodeImageFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}

	// Paletted GIF/PNG frames resize poorly; flatten to RGBA first.
	if _, isPaletted := img.(*image.Paletted); isPaletted {
		rgba := image.NewRGBA(img.Bounds())
		draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
		img = rgba
	}
	return img, nil
}

// FitSize scales w x h down, preserving aspect ratio, until neither side
// exceeds maxW x maxH. Sizes already inside the bound are returned unchanged.
func FitSize(w, h, maxW, maxH int) (int, int) {
	if w <= 0 || h <= 0 || maxW <= 0 || maxH <= 0 {
		return w, h
	}
	if w <= maxW && h <= maxH {
		return w, h
	}

	newW, newH := w, h
	if newW > maxW {
		newH = h * maxW / w
		if newH < 1 {
			newH = 1
		}
		newW = maxW
	}
	if newH > maxH {
		newW = newW * maxH / newH
		if newW < 1 {
			newW = 1
		}
		newH = maxH
	}
	return newW, newH
}

// Fit downscales img into the bound using interp. It never upscales.
func Fit(img image.Image, maxW, maxH int, interp resize.InterpolationFunction) image.Image {
	b := img.Bounds()
	w, h := FitSize(b.Dx(), b.Dy(), maxW, maxH)
	if w == b.Dx() && h == b.Dy() {
		return img
	}
	return resize.Resize(uint(w), uint(h), img, interp)
}
