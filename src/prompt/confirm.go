package prompt

import (
	tea "github.com/charmbracelet/bubbletea"
)

type confirmModel struct {
	message string
	def     bool
	value   bool
	done    bool
	aborted bool
}

func newConfirmModel(message string, def bool) confirmModel {
	return confirmModel{
		message: message,
		def:     def,
		value:   def,
	}
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc":
		m.aborted = true
		return m, tea.Quit
	case "y", "Y":
		m.value = true
		m.done = true
		return m, tea.Quit
	case "n", "N":
		m.value = false
		m.done = true
		return m, tea.Quit
	case "enter":
		m.done = true
		return m, tea.Quit
	case "left", "right", "h", "l", "tab":
		m.value = !m.value
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done {
		answer := "No"
		if m.value {
			answer = "Yes"
		}
		return header(m.message, answer) + "\n"
	}
	if m.aborted {
		return header(m.message, "") + "\n"
	}

	hint := "(y/N)"
	if m.def {
		hint = "(Y/n)"
	}

	yes, no := "Yes", "No"
	if m.value {
		yes = selectedStyle.Render("[Yes]")
	} else {
		no = selectedStyle.Render("[No]")
	}
	return header(m.message, helpStyle.Render(hint)) + " " + yes + " / " + no + "\n"
}
