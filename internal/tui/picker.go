package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/PabloGalante/lumina/internal/domain"
)

const pickerGap = 1

// stylePicker renders the catalog as one horizontally scrolling row.
type stylePicker struct {
	styles   []domain.Style
	cursor   int
	offset   int
	width    int
	disabled bool
}

type pickerSpan struct {
	index      int
	start, end int // columns relative to the picker, end exclusive
}

func newStylePicker(styles []domain.Style) stylePicker {
	return stylePicker{styles: styles}
}

func (p *stylePicker) SetWidth(w int) {
	p.width = w
	p.scrollToCursor()
}

// Move shifts the cursor by delta, staying within the catalog.
func (p *stylePicker) Move(delta int) {
	if len(p.styles) == 0 {
		return
	}
	p.cursor = min(max(p.cursor+delta, 0), len(p.styles)-1)
	p.scrollToCursor()
}

// Selected returns the style under the cursor.
func (p stylePicker) Selected() (domain.Style, bool) {
	if p.cursor < 0 || p.cursor >= len(p.styles) {
		return domain.Style{}, false
	}
	return p.styles[p.cursor], true
}

// ItemAt maps a column inside the picker to a style index.
func (p stylePicker) ItemAt(x int) (int, bool) {
	for _, s := range p.visible() {
		if x >= s.start && x < s.end {
			return s.index, true
		}
	}
	return 0, false
}

// Focus moves the cursor to index i.
func (p *stylePicker) Focus(i int) {
	if i >= 0 && i < len(p.styles) {
		p.cursor = i
		p.scrollToCursor()
	}
}

func (p stylePicker) itemWidth(i int) int {
	return lipgloss.Width(styleItemStyle.Render(p.styles[i].Name))
}

func (p stylePicker) visible() []pickerSpan {
	var spans []pickerSpan
	x := 0
	if p.offset > 0 {
		x = 2 // room for the "‹ " marker
	}
	for i := p.offset; i < len(p.styles); i++ {
		w := p.itemWidth(i)
		if p.width > 0 && x+w > p.width && len(spans) > 0 {
			break
		}
		spans = append(spans, pickerSpan{index: i, start: x, end: x + w})
		x += w + pickerGap
	}
	return spans
}

func (p *stylePicker) scrollToCursor() {
	if p.cursor < p.offset {
		p.offset = p.cursor
		return
	}
	for p.offset < p.cursor {
		spans := p.visible()
		if len(spans) > 0 && spans[len(spans)-1].index >= p.cursor {
			return
		}
		p.offset++
	}
}

func (p stylePicker) View() string {
	spans := p.visible()
	items := make([]string, 0, len(spans)+2)
	if p.offset > 0 {
		items = append(items, subtitleStyle.Render("‹"))
	}
	for _, s := range spans {
		st := styleItemStyle
		switch {
		case p.disabled:
			st = styleItemDisabled
		case s.index == p.cursor:
			st = styleItemSelected
		}
		items = append(items, st.Render(p.styles[s.index].Name))
	}
	if len(spans) > 0 && spans[len(spans)-1].index < len(p.styles)-1 {
		items = append(items, subtitleStyle.Render("›"))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Center, interleave(items, strings.Repeat(" ", pickerGap))...)
	return row
}

func interleave(items []string, sep string) []string {
	if len(items) < 2 {
		return items
	}
	out := make([]string, 0, len(items)*2-1)
	for i, it := range items {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, it)
	}
	return out
}
