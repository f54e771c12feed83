package prompt

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/apimgr/employee-tracker/src/choice"
)

// Terminal runs each prompt as a short-lived bubbletea program
type Terminal struct {
	in  io.Reader
	out io.Writer
}

// NewTerminal creates a prompter reading keys from in and drawing to out
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: in, out: out}
}

func (t *Terminal) run(m tea.Model) (tea.Model, error) {
	p := tea.NewProgram(m, tea.WithInput(t.in), tea.WithOutput(t.out))
	return p.Run()
}

// Select shows choices and returns the highlighted one on Enter
func (t *Terminal) Select(message string, choices []choice.Choice) (choice.Choice, error) {
	if len(choices) == 0 {
		return choice.Choice{}, choice.ErrNoItems
	}

	final, err := t.run(newSelectModel(message, choices))
	if err != nil {
		return choice.Choice{}, fmt.Errorf("select prompt: %w", err)
	}

	m := final.(selectModel)
	if m.aborted || !m.done {
		return choice.Choice{}, ErrAborted
	}
	return m.choices[m.cursor], nil
}

// Input reads a line of text, re-asking until validate accepts it
func (t *Terminal) Input(message string, validate func(string) error) (string, error) {
	final, err := t.run(newInputModel(message, validate))
	if err != nil {
		return "", fmt.Errorf("input prompt: %w", err)
	}

	m := final.(inputModel)
	if m.aborted || !m.done {
		return "", ErrAborted
	}
	return m.Value(), nil
}

// Decimal reads a number, re-asking until it parses and validate accepts it
func (t *Terminal) Decimal(message string, validate func(decimal.Decimal) error) (decimal.Decimal, error) {
	raw, err := t.Input(message, func(s string) error {
		d, err := parseDecimal(s)
		if err != nil {
			return err
		}
		if validate != nil {
			return validate(d)
		}
		return nil
	})
	if err != nil {
		return decimal.Zero, err
	}
	return parseDecimal(raw)
}

// Confirm asks a yes/no question
func (t *Terminal) Confirm(message string, def bool) (bool, error) {
	final, err := t.run(newConfirmModel(message, def))
	if err != nil {
		return false, fmt.Errorf("confirm prompt: %w", err)
	}

	m := final.(confirmModel)
	if m.aborted || !m.done {
		return false, ErrAborted
	}
	return m.value, nil
}

// parseDecimal accepts plain numbers with an optional thousands separator
func parseDecimal(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return decimal.Zero, ErrNotANumber
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrNotANumber
	}
	return d, nil
}

var _ Prompter = (*Terminal)(nil)
