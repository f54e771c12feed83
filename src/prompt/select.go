package prompt

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/apimgr/employee-tracker/src/choice"
)

// pageSize is the number of entries visible at once
const pageSize = 10

type selectModel struct {
	message string
	choices []choice.Choice
	cursor  int
	done    bool
	aborted bool
}

func newSelectModel(message string, choices []choice.Choice) selectModel {
	return selectModel{
		message: message,
		choices: choices,
	}
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc":
		m.aborted = true
		return m, tea.Quit
	case "enter":
		m.done = true
		return m, tea.Quit
	case "up", "k", "shift+tab":
		if m.cursor > 0 {
			m.cursor--
		} else {
			m.cursor = len(m.choices) - 1
		}
	case "down", "j", "tab":
		if m.cursor < len(m.choices)-1 {
			m.cursor++
		} else {
			m.cursor = 0
		}
	case "home", "g":
		m.cursor = 0
	case "end", "G":
		m.cursor = len(m.choices) - 1
	}
	return m, nil
}

// window returns the slice bounds of the visible page around the cursor
func (m selectModel) window() (int, int) {
	if len(m.choices) <= pageSize {
		return 0, len(m.choices)
	}
	start := m.cursor - pageSize/2
	if start < 0 {
		start = 0
	}
	if start+pageSize > len(m.choices) {
		start = len(m.choices) - pageSize
	}
	return start, start + pageSize
}

func (m selectModel) View() string {
	if m.done {
		return header(m.message, m.choices[m.cursor].Label) + "\n"
	}
	if m.aborted {
		return header(m.message, "") + "\n"
	}

	var sb strings.Builder
	sb.WriteString(header(m.message, ""))
	sb.WriteString("\n")

	start, end := m.window()
	for i := start; i < end; i++ {
		if i == m.cursor {
			sb.WriteString(cursorStyle.Render("❯ "))
			sb.WriteString(selectedStyle.Render(m.choices[i].Label))
		} else {
			sb.WriteString("  ")
			sb.WriteString(m.choices[i].Label)
		}
		sb.WriteString("\n")
	}

	sb.WriteString(helpStyle.Render("↑/↓: move • Enter: select • Esc: cancel"))
	sb.WriteString("\n")
	return sb.String()
}
