package tracker

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// ErrValidation wraps input rejected before reaching the database
	ErrValidation = errors.New("invalid input")

	// ErrSelfManager is returned when an employee would manage themselves
	ErrSelfManager = errors.New("an employee cannot be their own manager")
)

// maxSalary fits DECIMAL(12,2)
var maxSalary = decimal.RequireFromString("9999999999.99")

// salaryPlaces is the scale of the salary column
const salaryPlaces = 2

// hint is a validator message shown verbatim under the prompt
type hint string

func (h hint) Error() string { return string(h) }

const (
	hintDepartmentName hint = "Department name cannot be empty."
	hintRoleTitle      hint = "Role title cannot be empty."
	hintFirstName      hint = "First name cannot be empty."
	hintLastName       hint = "Last name cannot be empty."
	hintPositiveSalary hint = "Please enter a valid positive number."
	hintSalaryCents    hint = "Salary can have at most 2 decimal places."
)

// requireName returns a validator rejecting blank input with h
func requireName(h hint) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return h
		}
		return nil
	}
}

// positiveSalary accepts amounts greater than zero with at most two
// decimal places that fit the column
func positiveSalary(d decimal.Decimal) error {
	if !d.IsPositive() {
		return hintPositiveSalary
	}
	if !d.Equal(d.Round(salaryPlaces)) {
		return hintSalaryCents
	}
	if d.GreaterThan(maxSalary) {
		return hint("Salary cannot exceed " + maxSalary.StringFixed(salaryPlaces) + ".")
	}
	return nil
}

// checkName re-validates a name right before it is written
func checkName(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s cannot be empty", ErrValidation, field)
	}
	return nil
}

// checkSalary re-validates a salary right before it is written
func checkSalary(d decimal.Decimal) error {
	if err := positiveSalary(d); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}

// checkManager rejects self management
func checkManager(employeeID int64, managerID sql.NullInt64) error {
	if managerID.Valid && managerID.Int64 == employeeID {
		return ErrSelfManager
	}
	return nil
}
