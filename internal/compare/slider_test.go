package compare

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSliderDefaults(t *testing.T) {
	s := NewSlider()
	assert.Equal(t, 50.0, s.Percent())
	assert.False(t, s.Dragging())
}

func TestSliderDrag(t *testing.T) {
	s := NewSlider()
	s.SetBounds(Bounds{Left: 100, Width: 400})

	// Moves before a pointer-down are ignored.
	assert.False(t, s.PointerMove(200))
	assert.Equal(t, 50.0, s.Percent())

	assert.True(t, s.PointerDown(300))
	assert.Equal(t, 50.0, s.Percent(), "pointer-down does not move the divider")

	s.PointerMove(100 + 0.25*400)
	assert.InDelta(t, 25.0, s.Percent(), 1e-9)

	s.PointerUp()
	assert.False(t, s.Dragging())
	assert.False(t, s.PointerMove(500))
	assert.InDelta(t, 25.0, s.Percent(), 1e-9)
}

func TestSliderPointerDownOutsideIgnored(t *testing.T) {
	s := NewSlider()
	s.SetBounds(Bounds{Left: 10, Width: 20})
	assert.False(t, s.PointerDown(5))
	assert.False(t, s.Dragging())
}

func TestSliderClamps(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{"left edge", 0, 0},
		{"far left", -50, 0},
		{"right edge", 200, 100},
		{"far right", 900, 100},
		{"middle", 100, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSlider()
			s.SetBounds(Bounds{Left: 0, Width: 200})
			s.PointerDown(10)
			s.PointerMove(tt.x)
			assert.InDelta(t, tt.want, s.Percent(), 1e-9)
		})
	}
}

func TestSliderZeroWidthIgnoresMoves(t *testing.T) {
	s := NewSlider()
	assert.False(t, s.PointerDown(0))
	assert.False(t, s.PointerMove(10))
	assert.Equal(t, 50.0, s.Percent())
}

func TestNudge(t *testing.T) {
	s := NewSlider()
	s.Nudge(-NudgeStep)
	assert.Equal(t, 45.0, s.Percent())
	s.Nudge(200)
	assert.Equal(t, 100.0, s.Percent())
	s.Nudge(-500)
	assert.Equal(t, 0.0, s.Percent())
}

func solid(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestComposite(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}
	before := solid(10, 4, red)
	after := solid(10, 4, blue)

	out := Composite(before, after, 30)
	assert.Equal(t, image.Rect(0, 0, 10, 4), out.Bounds())
	assert.Equal(t, red, out.RGBAAt(0, 0))
	assert.Equal(t, red, out.RGBAAt(2, 3))
	assert.Equal(t, blue, out.RGBAAt(3, 0))
	assert.Equal(t, blue, out.RGBAAt(9, 3))

	assert.Equal(t, blue, Composite(before, after, 0).RGBAAt(0, 0))
	assert.Equal(t, red, Composite(before, after, 100).RGBAAt(9, 0))
}

func TestThumbnailAndFit(t *testing.T) {
	img := solid(400, 200, color.White)

	w, h := FitWithin(img, 80, 80)
	assert.Equal(t, 80, w)
	assert.Equal(t, 40, h)

	thumb := Thumbnail(img, w, h)
	assert.Equal(t, image.Rect(0, 0, 80, 40), thumb.Bounds())
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, thumb.RGBAAt(40, 20))

	w, h = FitWithin(img, 0, 10)
	assert.Zero(t, w)
	assert.Zero(t, h)
}

func TestDrawDivider(t *testing.T) {
	bar := color.RGBA{R: 79, G: 70, B: 229, A: 255}
	tests := []struct {
		name string
		x    int
		want int
	}{
		{"middle", 5, 5},
		{"left edge", 0, 0},
		{"right edge", 10, 9},
		{"past the edge", 42, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := solid(10, 4, color.White)
			DrawDivider(img, tt.x, bar)
			for y := 0; y < 4; y++ {
				assert.Equal(t, bar, img.RGBAAt(tt.want, y))
			}
			if tt.want > 0 {
				assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, img.RGBAAt(tt.want-1, 0))
			}
		})
	}
}
