package chat

import "github.com/charmbracelet/lipgloss"

var (
	orange    = lipgloss.Color("208")
	softGrey  = lipgloss.Color("252")
	darkGrey  = lipgloss.Color("240")
	textColor = lipgloss.Color("235")

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(orange).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(orange).
			Padding(0, 1)

	subtitleStyle = lipgloss.NewStyle().Foreground(darkGrey)

	userBubble = lipgloss.NewStyle().
			Background(softGrey).
			Foreground(textColor).
			Padding(0, 1)

	botBubble = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(orange).
			Padding(0, 1)

	timestampStyle = lipgloss.NewStyle().Foreground(darkGrey).Faint(true)

	typingStyle = lipgloss.NewStyle().Foreground(orange)

	helpStyle = lipgloss.NewStyle().Faint(true)
)
