package compare

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

// Composite renders the wipe: after fills the container, before is shown
// only in the left percent of it. The container is after's size. No scaling
// is done, so before and after must share dimensions to line up.
func Composite(before, after image.Image, percent float64) *image.RGBA {
	ab := after.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, ab.Dx(), ab.Dy()))
	draw.Draw(out, out.Bounds(), after, ab.Min, draw.Src)

	clipW := DividerX(ab.Dx(), percent)
	if clipW > 0 {
		clip := image.Rect(0, 0, clipW, ab.Dy())
		draw.Draw(out, clip, before, before.Bounds().Min, draw.Src)
	}
	return out
}

// DrawDivider paints a one pixel wide vertical bar at column x of img,
// pulled inside the image at either edge.
func DrawDivider(img *image.RGBA, x int, c color.Color) {
	b := img.Bounds()
	if b.Empty() {
		return
	}
	x = min(max(b.Min.X+x, b.Min.X), b.Max.X-1)
	draw.Draw(img, image.Rect(x, b.Min.Y, x+1, b.Max.Y), image.NewUniform(c), image.Point{}, draw.Src)
}

// DividerX is the column of the divider in a container width wide.
func DividerX(width int, percent float64) int {
	return int(math.Round(float64(width) * clamp(percent, 0, 100) / 100))
}

// Thumbnail scales img to exactly w x h.
func Thumbnail(img image.Image, w, h int) *image.RGBA {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// FitWithin returns the largest size with img's aspect ratio that fits in
// maxW x maxH.
func FitWithin(img image.Image, maxW, maxH int) (int, int) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 || maxW <= 0 || maxH <= 0 {
		return 0, 0
	}
	scale := math.Min(float64(maxW)/float64(b.Dx()), float64(maxH)/float64(b.Dy()))
	w := int(math.Max(1, math.Floor(float64(b.Dx())*scale)))
	h := int(math.Max(1, math.Floor(float64(b.Dy())*scale)))
	return w, h
}
