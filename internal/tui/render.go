package tui

import (
	"image"
	"image/color"
	"strings"

	"github.com/blacktop/go-termimg"
)

// dividerColor matches accentColor.
var dividerColor = color.RGBA{R: 0x4F, G: 0x46, B: 0xE5, A: 0xFF}

// renderImage draws img as half-block cells: one column per pixel and two
// pixel rows per line.
func renderImage(img image.Image) (string, error) {
	b := img.Bounds()
	out, err := termimg.New(img).
		Width(b.Dx()).
		Height((b.Dy() + 1) / 2).
		Protocol(termimg.Halfblocks).
		Render()
	if err != nil {
		return "", err
	}
	return strings.TrimRight(out, "\n"), nil
}
