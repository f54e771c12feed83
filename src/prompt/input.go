package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// inputLimit matches the VARCHAR(100) name columns
const inputLimit = 100

type inputModel struct {
	message  string
	input    textinput.Model
	validate func(string) error
	err      error
	done     bool
	aborted  bool
}

func newInputModel(message string, validate func(string) error) inputModel {
	ti := textinput.New()
	ti.Prompt = "› "
	ti.CharLimit = inputLimit
	ti.Width = 50
	ti.Focus()

	return inputModel{
		message:  message,
		input:    ti,
		validate: validate,
	}
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			if m.validate != nil {
				if err := m.validate(m.input.Value()); err != nil {
					m.err = err
					return m, nil
				}
			}
			m.done = true
			return m, tea.Quit
		default:
			m.err = nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// Value returns the trimmed text typed so far
func (m inputModel) Value() string {
	return strings.TrimSpace(m.input.Value())
}

func (m inputModel) View() string {
	if m.done {
		return header(m.message, m.Value()) + "\n"
	}
	if m.aborted {
		return header(m.message, "") + "\n"
	}

	var sb strings.Builder
	sb.WriteString(header(m.message, ""))
	sb.WriteString("\n")
	sb.WriteString(m.input.View())
	sb.WriteString("\n")
	if m.err != nil {
		sb.WriteString(errorStyle.Render(">> " + m.err.Error()))
		sb.WriteString("\n")
	}
	return sb.String()
}
