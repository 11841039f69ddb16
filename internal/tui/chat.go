package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/PabloGalante/lumina/internal/domain"
)

const (
	inputHeight   = 2
	statusHeight  = 1
	inputPrompt   = "E.g., 'Make the rug blue' or 'Where can I buy this lamp?'"
	emptyChatHint = "Ask for colour palettes, furniture ideas or where to shop."
)

// chatPanel is the conversation log plus the pending input buffer. The
// buffer is the only state it owns; messages and status come from the
// session snapshot.
type chatPanel struct {
	input    textarea.Model
	viewport viewport.Model
	spinner  spinner.Model

	messages []domain.Message
	status   domain.Status
	width    int
}

func newChatPanel() chatPanel {
	ta := textarea.New()
	ta.Placeholder = inputPrompt
	ta.ShowLineNumbers = false
	ta.Prompt = "┃ "
	ta.CharLimit = 0
	ta.SetHeight(inputHeight)
	ta.KeyMap.InsertNewline.SetKeys("alt+enter")

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = subtitleStyle

	return chatPanel{
		input:    ta,
		viewport: viewport.New(0, 0),
		spinner:  sp,
		status:   domain.StatusIdle,
	}
}

func (c *chatPanel) SetSize(w, h int) {
	c.width = w
	c.input.SetWidth(w)
	c.viewport.Width = w
	c.viewport.Height = max(h-inputHeight-statusHeight, 1)
	c.refresh()
}

// SetState replaces the rendered log; the view follows the newest message.
func (c *chatPanel) SetState(msgs []domain.Message, status domain.Status) {
	changed := len(msgs) != len(c.messages) || status != c.status
	c.messages = msgs
	c.status = status
	if changed {
		c.refresh()
	}
}

func (c *chatPanel) refresh() {
	c.viewport.SetContent(renderMessages(c.messages, c.width))
	c.viewport.GotoBottom()
}

// Take returns the buffered text and clears the buffer, but only when the
// session is idle and the text is not blank.
func (c *chatPanel) Take() (string, bool) {
	text := c.input.Value()
	if c.status.Busy() || strings.TrimSpace(text) == "" {
		return "", false
	}
	c.input.Reset()
	return text, true
}

func (c *chatPanel) Focus() tea.Cmd {
	return c.input.Focus()
}

func (c *chatPanel) Blur() {
	c.input.Blur()
}

func (c chatPanel) Update(msg tea.Msg) (chatPanel, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case spinner.TickMsg:
		c.spinner, cmd = c.spinner.Update(msg)
		return c, cmd
	case tea.MouseMsg:
		c.viewport, cmd = c.viewport.Update(msg)
		return c, cmd
	}

	c.input, cmd = c.input.Update(msg)
	cmds = append(cmds, cmd)
	return c, tea.Batch(cmds...)
}

func (c chatPanel) View() string {
	status := ""
	if c.status.Busy() {
		status = c.spinner.View() + " " + subtitleStyle.Render(progressLabel(c.status))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		c.viewport.View(),
		status,
		c.input.View(),
	)
}

func progressLabel(s domain.Status) string {
	switch s {
	case domain.StatusGenerating:
		return "Rendering design..."
	case domain.StatusChatting:
		return "Thinking..."
	default:
		return ""
	}
}

func renderMessages(msgs []domain.Message, width int) string {
	if width <= 0 {
		return ""
	}
	if len(msgs) == 0 {
		return subtitleStyle.Width(width).Render(emptyChatHint)
	}

	blocks := make([]string, 0, len(msgs))
	for _, m := range msgs {
		switch m.Role {
		case domain.RoleUser:
			bubble := userMsgStyle.Width(min(lipgloss.Width(m.Text)+2, width*3/4)).Render(m.Text)
			blocks = append(blocks, lipgloss.PlaceHorizontal(width, lipgloss.Right, bubble))
		case domain.RoleAssistant:
			blocks = append(blocks, assistantMsgStyle.Width(width-1).Render(m.Text))
		}
	}
	return strings.Join(blocks, "\n\n")
}
