package tracker

import (
	"github.com/apimgr/employee-tracker/src/choice"
)

// Action is one entry of the main menu
type Action int

// Menu actions, in display order
const (
	ViewDepartments Action = iota
	ViewRoles
	ViewEmployees
	AddDepartment
	AddRole
	AddEmployee
	UpdateEmployeeRole
	UpdateEmployeeManager
	ViewEmployeesByDepartment
	ViewEmployeesByManager
	DeleteDepartment
	DeleteRole
	DeleteEmployee
	ViewDepartmentBudgets
	Exit

	actionCount
)

type actionInfo struct {
	label       string // menu text
	name        string // log field value
	description string // completes "error ..."
}

var actionInfos = map[Action]actionInfo{
	ViewDepartments:           {"View all departments", "view_departments", "fetching departments"},
	ViewRoles:                 {"View all roles", "view_roles", "fetching roles"},
	ViewEmployees:             {"View all employees", "view_employees", "fetching employees"},
	AddDepartment:             {"Add a department", "add_department", "adding department"},
	AddRole:                   {"Add a role", "add_role", "adding role"},
	AddEmployee:               {"Add an employee", "add_employee", "adding employee"},
	UpdateEmployeeRole:        {"Update an employee role", "update_employee_role", "updating employee role"},
	UpdateEmployeeManager:     {"Update an employee manager", "update_employee_manager", "updating employee manager"},
	ViewEmployeesByDepartment: {"View employees by department", "view_employees_by_department", "viewing employees by department"},
	ViewEmployeesByManager:    {"View employees by manager", "view_employees_by_manager", "viewing employees by manager"},
	DeleteDepartment:          {"Delete a department", "delete_department", "deleting department"},
	DeleteRole:                {"Delete a role", "delete_role", "deleting role"},
	DeleteEmployee:            {"Delete an employee", "delete_employee", "deleting employee"},
	ViewDepartmentBudgets:     {"View department budgets", "view_department_budgets", "viewing department budgets"},
	Exit:                      {"Exit", "exit", "exiting"},
}

// Actions returns every action in menu order
func Actions() []Action {
	actions := make([]Action, 0, actionCount)
	for a := Action(0); a < actionCount; a++ {
		actions = append(actions, a)
	}
	return actions
}

// Valid reports whether a is a known action
func (a Action) Valid() bool {
	return a >= 0 && a < actionCount
}

// String returns the menu label
func (a Action) String() string {
	if info, ok := actionInfos[a]; ok {
		return info.label
	}
	return "Unknown action"
}

// Name returns the identifier used in log lines
func (a Action) Name() string {
	if info, ok := actionInfos[a]; ok {
		return info.name
	}
	return "unknown"
}

// Description names the operation in error messages, e.g. "adding role"
func (a Action) Description() string {
	if info, ok := actionInfos[a]; ok {
		return info.description
	}
	return "running action"
}

// menuChoices builds the main menu
func menuChoices() []choice.Choice {
	return choice.Build(Actions(), Action.String, func(a Action) int64 { return int64(a) })
}
