// Package prompt collects interactive input: single-select lists, validated
// free text, decimal amounts and yes/no confirmations.
package prompt

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/apimgr/employee-tracker/src/choice"
)

// ErrAborted is returned when the user leaves a prompt with Ctrl+C or Esc
var ErrAborted = errors.New("prompt aborted")

// ErrNotANumber is shown when a numeric prompt receives something else
var ErrNotANumber = errors.New("please enter a valid number")

// Prompter asks the user for input. Each call blocks until the user answers
// or aborts.
type Prompter interface {
	Select(message string, choices []choice.Choice) (choice.Choice, error)
	Input(message string, validate func(string) error) (string, error)
	Decimal(message string, validate func(decimal.Decimal) error) (decimal.Decimal, error)
	Confirm(message string, def bool) (bool, error)
}
