package video

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"io"
)

var errBadPPM = errors.New("malformed ppm frame")

// readPPM decodes one binary PPM (P6) image. It returns io.EOF only when the
// reader is exhausted before the first byte of the header.
func readPPM(r *bufio.Reader) (*image.RGBA, error) {
	magic := make([]byte, 2)
	if _, err := io.ReadFull(r, magic); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, io.ErrUnexpectedEOF
	}
	if magic[0] != 'P' || magic[1] != '6' {
		return nil, fmt.Errorf("%w: magic %q", errBadPPM, magic)
	}

	var header [3]int
	for i := range header {
		v, err := readPPMInt(r)
		if err != nil {
			return nil, err
		}
		header[i] = v
	}
	width, height, maxval := header[0], header[1], header[2]
	if width <= 0 || height <= 0 || maxval <= 0 || maxval > 65535 {
		return nil, fmt.Errorf("%w: header %dx%d max %d", errBadPPM, width, height, maxval)
	}

	// Exactly one whitespace byte separates the header from the raster.
	if _, err := r.ReadByte(); err != nil {
		return nil, io.ErrUnexpectedEOF
	}

	sample := 1
	if maxval > 255 {
		sample = 2
	}
	raw := make([]byte, width*height*3*sample)
	if _, err := io.ReadFull(r, raw); err != nil {
		return nil, io.ErrUnexpectedEOF
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	pix := img.Pix
	for i, j := 0, 0; i < len(raw); i, j = i+3*sample, j+4 {
		if sample == 1 {
			pix[j] = scaleSample(int(raw[i]), maxval)
			pix[j+1] = scaleSample(int(raw[i+1]), maxval)
			pix[j+2] = scaleSample(int(raw[i+2]), maxval)
		} else {
			pix[j] = scaleSample(int(raw[i])<<8|int(raw[i+1]), maxval)
			pix[j+1] = scaleSample(int(raw[i+2])<<8|int(raw[i+3]), maxval)
			pix[j+2] = scaleSample(int(raw[i+4])<<8|int(raw[i+5]), maxval)
		}
		pix[j+3] = 0xff
	}
	return img, nil
}

func scaleSample(v, maxval int) uint8 {
	if maxval == 255 {
		return uint8(v)
	}
	if v > maxval {
		v = maxval
	}
	return uint8(v * 255 / maxval)
}

// readPPMInt skips whitespace and '#' comments, then reads a decimal number.
func readPPMInt(r *bufio.Reader) (int, error) {
	var c byte
	var err error
	for {
		c, err = r.ReadByte()
		if err != nil {
			return 0, io.ErrUnexpectedEOF
		}
		if c == '#' {
			if _, err := r.ReadString('\n'); err != nil {
				return 0, io.ErrUnexpectedEOF
			}
			continue
		}
		if !isPPMSpace(c) {
			break
		}
	}

	if c < '0' || c > '9' {
		return 0, fmt.Errorf("%w: unexpected byte %q in header", errBadPPM, c)
	}
	n := 0
	for {
		n = n*10 + int(c-'0')
		if n > 1<<24 {
			return 0, fmt.Errorf("%w: header value too large", errBadPPM)
		}
		c, err = r.ReadByte()
		if err != nil {
			return 0, io.ErrUnexpectedEOF
		}
		if c < '0' || c > '9' {
			break
		}
	}
	if !isPPMSpace(c) {
		return 0, fmt.Errorf("%w: unexpected byte %q in header", errBadPPM, c)
	}
	// Leave the delimiter for the caller when it ends the header.
	return n, r.UnreadByte()
}

func isPPMSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
