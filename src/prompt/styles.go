package prompt

import "github.com/charmbracelet/lipgloss"

// Dracula colors
var (
	foreground = lipgloss.Color("#f8f8f2")
	comment    = lipgloss.Color("#6272a4")
	cyan       = lipgloss.Color("#8be9fd")
	green      = lipgloss.Color("#50fa7b")
	pink       = lipgloss.Color("#ff79c6")
	purple     = lipgloss.Color("#bd93f9")
	red        = lipgloss.Color("#ff5555")
)

var (
	questionStyle = lipgloss.NewStyle().
			Foreground(green).
			Bold(true)

	messageStyle = lipgloss.NewStyle().
			Foreground(foreground).
			Bold(true)

	answerStyle = lipgloss.NewStyle().
			Foreground(cyan)

	cursorStyle = lipgloss.NewStyle().
			Foreground(pink).
			Bold(true)

	selectedStyle = lipgloss.NewStyle().
			Foreground(purple)

	helpStyle = lipgloss.NewStyle().
			Foreground(comment)

	errorStyle = lipgloss.NewStyle().
			Foreground(red)
)

// header renders "? message" with an optional answer after it
func header(message, answer string) string {
	s := questionStyle.Render("?") + " " + messageStyle.Render(message)
	if answer != "" {
		s += " " + answerStyle.Render(answer)
	}
	return s
}
