package tui

import "github.com/charmbracelet/lipgloss"

var (
	accentColor = lipgloss.Color("#4F46E5")
	mutedColor  = lipgloss.Color("#64748B")
	borderColor = lipgloss.Color("#CBD5E1")
	userBg      = lipgloss.Color("#4F46E5")
	errorColor  = lipgloss.Color("#DC2626")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor)

	focusedPaneStyle = paneStyle.
				BorderForeground(accentColor)

	userMsgStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(userBg).
			Padding(0, 1)

	assistantMsgStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#334155")).
				Border(lipgloss.NormalBorder(), false, false, false, true).
				BorderForeground(borderColor).
				PaddingLeft(1)

	styleItemStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor)

	styleItemSelected = styleItemStyle.
				BorderForeground(accentColor).
				Bold(true)

	styleItemDisabled = styleItemStyle.
				Foreground(mutedColor)

	noticeStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	placeholderStyle = lipgloss.NewStyle().
				Foreground(mutedColor).
				Align(lipgloss.Center)
)
