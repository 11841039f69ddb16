package tui

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/PabloGalante/lumina/internal/app/studio"
	"github.com/PabloGalante/lumina/internal/compare"
	"github.com/PabloGalante/lumina/internal/domain"
	"github.com/PabloGalante/lumina/internal/observability"
)

// Pane identifies which component receives keyboard input.
type Pane int

const (
	PanePicker Pane = iota // style carousel
	PaneSlider             // before/after comparison
	PaneChat               // conversation input
)

const (
	headerHeight = 1
	footerHeight = 1
	pickerHeight = 4 // label + bordered items
	openCommand  = "/open "
)

// opDoneMsg is sent when a controller operation returns.
type opDoneMsg struct {
	err error
}

// Model is the root bubbletea model. The controller is the source of truth;
// the model re-reads its snapshot on every result and spinner tick.
type Model struct {
	ctx        context.Context
	controller *studio.Controller
	keys       KeyMap
	help       help.Model

	picker stylePicker
	chat   chatPanel
	slider *compare.Slider

	focus  Pane
	snap   domain.SessionSnapshot
	notice string
	images imageCache

	initialImage string

	width, height int
	imageArea     image.Rectangle // inner image pane, in cells
	pickerTop     int
}

// New builds the root model. initialImage, if set, is uploaded on start.
func New(ctx context.Context, controller *studio.Controller, styles []domain.Style, initialImage string) Model {
	m := Model{
		ctx:          ctx,
		controller:   controller,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		picker:       newStylePicker(styles),
		chat:         newChatPanel(),
		slider:       compare.NewSlider(),
		focus:        PaneChat,
		initialImage: initialImage,
	}
	m.chat.Focus()
	m.sync()
	return m
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textarea.Blink, m.chat.spinner.Tick}
	if m.initialImage != "" {
		cmds = append(cmds, m.uploadCmd(m.initialImage))
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.chat, cmd = m.chat.Update(msg)
		m.sync()
		return m, cmd

	case opDoneMsg:
		m.notice = noticeFor(msg.err)
		m.sync()
		return m, nil
	}

	var cmd tea.Cmd
	m.chat, cmd = m.chat.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.NextPane) {
		return m, m.setFocus((m.focus + 1) % 3)
	}

	switch m.focus {
	case PanePicker:
		switch {
		case key.Matches(msg, m.keys.Left):
			m.picker.Move(-1)
		case key.Matches(msg, m.keys.Right):
			m.picker.Move(1)
		case key.Matches(msg, m.keys.Apply):
			return m, m.applyStyle()
		}
		return m, nil

	case PaneSlider:
		switch {
		case key.Matches(msg, m.keys.Left):
			m.slider.Nudge(-compare.NudgeStep)
		case key.Matches(msg, m.keys.Right):
			m.slider.Nudge(compare.NudgeStep)
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Refine):
		return m, m.submit(true)
	case key.Matches(msg, m.keys.Chat):
		return m, m.submit(false)
	}

	var cmd tea.Cmd
	m.chat, cmd = m.chat.Update(msg)
	return m, cmd
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionRelease:
		// A drag ends wherever the button is released.
		m.slider.PointerUp()
		return m, nil

	case tea.MouseActionMotion:
		m.slider.PointerMove(float64(msg.X))
		return m, nil
	}

	if msg.Button != tea.MouseButtonLeft {
		if m.inChat(msg.X, msg.Y) {
			var cmd tea.Cmd
			m.chat, cmd = m.chat.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	pt := image.Pt(msg.X, msg.Y)
	switch {
	case pt.In(m.imageArea):
		if m.snap.CurrentImage != nil && m.slider.PointerDown(float64(msg.X)) {
			m.focus = PaneSlider
			m.chat.Blur()
		}
		return m, nil

	case msg.Y >= m.pickerTop+1 && msg.Y < m.pickerTop+pickerHeight && msg.X < m.imageArea.Max.X+1:
		if i, ok := m.picker.ItemAt(msg.X); ok {
			m.picker.Focus(i)
			cmd := m.setFocus(PanePicker)
			return m, tea.Batch(cmd, m.applyStyle())
		}
		return m, nil

	case m.inChat(msg.X, msg.Y):
		return m, m.setFocus(PaneChat)
	}
	return m, nil
}

func (m Model) inChat(x, y int) bool {
	return x > m.imageArea.Max.X && y >= headerHeight && y < m.height-footerHeight
}

func (m *Model) setFocus(p Pane) tea.Cmd {
	m.focus = p
	if p == PaneChat {
		return m.chat.Focus()
	}
	m.chat.Blur()
	return nil
}

func (m *Model) applyStyle() tea.Cmd {
	if m.picker.disabled {
		return nil
	}
	style, ok := m.picker.Selected()
	if !ok {
		return nil
	}
	ctx, ctrl := m.ctx, m.controller
	return func() tea.Msg {
		return opDoneMsg{err: ctrl.SelectStyle(ctx, style)}
	}
}

func (m *Model) submit(refine bool) tea.Cmd {
	text, ok := m.chat.Take()
	if !ok {
		return nil
	}
	if path, isOpen := strings.CutPrefix(strings.TrimSpace(text), openCommand); isOpen {
		return m.uploadCmd(strings.TrimSpace(path))
	}

	ctx, ctrl := m.ctx, m.controller
	return func() tea.Msg {
		return opDoneMsg{err: ctrl.SendMessage(ctx, text, refine)}
	}
}

func (m Model) uploadCmd(path string) tea.Cmd {
	ctx, ctrl := m.ctx, m.controller
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			observability.LoggerFromContext(ctx).Warn("reading upload failed", "path", path, "error", err)
			return opDoneMsg{err: fmt.Errorf("opening %s: %w", path, err)}
		}
		return opDoneMsg{err: ctrl.Upload(ctx, data)}
	}
}

// sync pulls a fresh snapshot into every component.
func (m *Model) sync() {
	m.snap = m.controller.Snapshot()
	m.chat.SetState(m.snap.Messages, m.snap.Status)
	m.picker.disabled = m.snap.Status == domain.StatusGenerating
	// One row under the picture is kept for the caption.
	if err := m.images.update(m.snap, m.imageArea.Dx(), (m.imageArea.Dy()-1)*2); err != nil {
		m.notice = noticeFor(err)
	}
	m.slider.SetBounds(compare.Bounds{
		Left:  float64(m.imageArea.Min.X),
		Width: float64(m.images.width()),
	})
}

func (m *Model) layout() {
	leftW := max(m.width*2/3, 20)
	rightW := max(m.width-leftW, 20)
	bodyH := max(m.height-headerHeight-footerHeight, 8)
	imageH := max(bodyH-pickerHeight, 4)

	// The image pane is bordered: one cell on every side.
	m.imageArea = image.Rect(1, headerHeight+1, leftW-1, headerHeight+imageH-1)
	m.pickerTop = headerHeight + imageH

	m.picker.SetWidth(leftW)
	m.chat.SetSize(rightW-2, bodyH-2)
	m.help.Width = m.width
	m.sync()
}

func (m Model) View() string {
	if m.width == 0 {
		return "loading..."
	}

	header := titleStyle.Render("Lumina Design") + "  " + subtitleStyle.Render("AI interior consultant")

	imgPane := paneStyle
	if m.focus == PaneSlider {
		imgPane = focusedPaneStyle
	}
	left := lipgloss.JoinVertical(lipgloss.Left,
		imgPane.
			Width(m.imageArea.Dx()).
			Height(m.imageArea.Dy()).
			Render(m.imageView()),
		subtitleStyle.Render("CHOOSE A STYLE"),
		m.picker.View(),
	)

	chatPane := paneStyle
	if m.focus == PaneChat {
		chatPane = focusedPaneStyle
	}
	right := chatPane.Render(m.chat.View())

	footer := m.help.ShortHelpView(m.helpBindings())
	if m.notice != "" {
		footer = noticeStyle.Render(m.notice)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.JoinHorizontal(lipgloss.Top, left, right),
		footer,
	)
}

func (m Model) imageView() string {
	w, h := m.imageArea.Dx(), m.imageArea.Dy()
	place := func(s string) string {
		return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, placeholderStyle.Render(s))
	}

	switch {
	case m.snap.SourceImage == nil:
		return place("Visualize your dream room\n\nType /open <path-to-photo> in the chat to upload a room photo.")
	case m.images.beforeThumb == nil:
		return place("Cannot display this image.")
	case m.images.afterThumb == nil:
		view, err := renderImage(m.images.beforeThumb)
		if err != nil {
			return place("Cannot display this image.")
		}
		if m.snap.Status == domain.StatusGenerating {
			return view + "\n" + subtitleStyle.Render("Designing your room...")
		}
		return view + "\n" + subtitleStyle.Render("Select a style below to begin")
	}

	composite := compare.Composite(m.images.beforeThumb, m.images.afterThumb, m.slider.Percent())
	compare.DrawDivider(composite, compare.DividerX(composite.Bounds().Dx(), m.slider.Percent()), dividerColor)
	view, err := renderImage(composite)
	if err != nil {
		return place("Cannot display this image.")
	}
	return view + "\n" +
		subtitleStyle.Render(fmt.Sprintf("Original ◀ %3.0f%% ▶ Redesigned", m.slider.Percent()))
}

func (m Model) helpBindings() []key.Binding {
	switch m.focus {
	case PanePicker:
		return []key.Binding{m.keys.Left, m.keys.Right, m.keys.Apply, m.keys.NextPane, m.keys.Quit}
	case PaneSlider:
		return []key.Binding{m.keys.Left, m.keys.Right, m.keys.NextPane, m.keys.Quit}
	default:
		return []key.Binding{m.keys.Chat, m.keys.Refine, m.keys.NextPane, m.keys.Quit}
	}
}

func noticeFor(err error) string {
	switch {
	case err == nil, errors.Is(err, context.Canceled):
		return ""
	case errors.Is(err, domain.ErrNoSourceImage):
		return "Upload a photo first: /open <path>"
	case errors.Is(err, domain.ErrBusy):
		return "Still working on the last request."
	case errors.Is(err, domain.ErrInvalidInput):
		return "That file is not an image we can read."
	default:
		return err.Error()
	}
}
