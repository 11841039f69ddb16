// Package compare implements the before/after wipe slider: divider state
// driven by pointer drags, and the composite image it reveals.
package compare

import "math"

const (
	DefaultPercent = 50.0
	NudgeStep      = 5.0
)

// Bounds is the horizontal extent of the slider container, in whatever unit
// pointer coordinates use (pixels, terminal cells).
type Bounds struct {
	Left  float64
	Width float64
}

// Contains reports whether x falls inside the container.
func (b Bounds) Contains(x float64) bool {
	return b.Width > 0 && x >= b.Left && x <= b.Left+b.Width
}

// PercentAt maps a pointer x coordinate to a divider position in [0,100].
func (b Bounds) PercentAt(x float64) float64 {
	if b.Width <= 0 {
		return 0
	}
	return clamp((x-b.Left)/b.Width*100, 0, 100)
}

// Slider holds the divider position and drag state. Mouse and touch input
// both go through PointerDown, PointerMove and PointerUp.
type Slider struct {
	bounds   Bounds
	percent  float64
	dragging bool
}

func NewSlider() *Slider {
	return &Slider{percent: DefaultPercent}
}

func (s *Slider) SetBounds(b Bounds) {
	s.bounds = b
}

func (s *Slider) Percent() float64 {
	return s.percent
}

func (s *Slider) Dragging() bool {
	return s.dragging
}

// SetPercent moves the divider directly, clamped to [0,100].
func (s *Slider) SetPercent(p float64) {
	s.percent = clamp(p, 0, 100)
}

// Nudge moves the divider by delta points. It is the keyboard alternative
// to dragging.
func (s *Slider) Nudge(delta float64) {
	s.SetPercent(s.percent + delta)
}

// PointerDown starts a drag if x is inside the container. The divider does
// not move until the pointer does.
func (s *Slider) PointerDown(x float64) bool {
	if !s.bounds.Contains(x) {
		return false
	}
	s.dragging = true
	return true
}

// PointerMove repositions the divider while dragging. Moves outside the
// container clamp to the edges. It reports whether the divider moved.
func (s *Slider) PointerMove(x float64) bool {
	if !s.dragging || s.bounds.Width <= 0 {
		return false
	}
	p := s.bounds.PercentAt(x)
	if p == s.percent {
		return false
	}
	s.percent = p
	return true
}

// PointerUp ends a drag. It is accepted from anywhere, not just inside the
// container.
func (s *Slider) PointerUp() {
	s.dragging = false
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(v, hi))
}
