// Package tracker runs the interactive menu: it maps each menu action to a
// handler that gathers input through a Prompter and reads or writes through
// a Store.
package tracker

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/apimgr/employee-tracker/src/database"
	"github.com/apimgr/employee-tracker/src/display"
	"github.com/apimgr/employee-tracker/src/logging"
	"github.com/apimgr/employee-tracker/src/prompt"
)

// MenuMessage is the question shown above the main menu
const MenuMessage = "What would you like to do?"

// Store is the data access the handlers need. *database.Repository
// satisfies it.
type Store interface {
	ListDepartments(ctx context.Context) ([]database.Department, error)
	CreateDepartment(ctx context.Context, name string) error
	DeleteDepartment(ctx context.Context, id int64) (database.CascadeResult, error)

	ListRoles(ctx context.Context) ([]database.Role, error)
	ListRoleDetails(ctx context.Context) ([]database.RoleDetail, error)
	CreateRole(ctx context.Context, role database.NewRole) error
	DeleteRole(ctx context.Context, id int64) (database.CascadeResult, error)

	ListEmployees(ctx context.Context) ([]database.Employee, error)
	ListManagers(ctx context.Context) ([]database.Employee, error)
	ListEmployeeDetails(ctx context.Context) ([]database.EmployeeDetail, error)
	EmployeesByDepartment(ctx context.Context, departmentID int64) ([]database.EmployeeDetail, error)
	EmployeesByManager(ctx context.Context, managerID int64) ([]database.EmployeeDetail, error)
	CreateEmployee(ctx context.Context, employee database.NewEmployee) error
	UpdateEmployeeRole(ctx context.Context, employeeID, roleID int64) error
	UpdateEmployeeManager(ctx context.Context, employeeID int64, managerID sql.NullInt64) error
	DeleteEmployee(ctx context.Context, id int64) error

	DepartmentBudgets(ctx context.Context) ([]database.DepartmentBudget, error)

	Close() error
}

var _ Store = (*database.Repository)(nil)

type handler func(ctx context.Context) error

// Tracker owns the menu loop
type Tracker struct {
	store    Store
	prompt   prompt.Prompter
	out      *display.Printer
	logger   *slog.Logger
	handlers map[Action]handler
}

// New creates a tracker. The store stays open until Exit.
func New(store Store, p prompt.Prompter, out *display.Printer, logger *slog.Logger) *Tracker {
	if logger == nil {
		logger = logging.Discard()
	}
	t := &Tracker{
		store:  store,
		prompt: p,
		out:    out,
		logger: logger,
	}
	t.handlers = t.handlerTable()
	return t
}

// handlerTable maps every action except Exit to its handler
func (t *Tracker) handlerTable() map[Action]handler {
	return map[Action]handler{
		ViewDepartments:           t.viewDepartments,
		ViewRoles:                 t.viewRoles,
		ViewEmployees:             t.viewEmployees,
		AddDepartment:             t.addDepartment,
		AddRole:                   t.addRole,
		AddEmployee:               t.addEmployee,
		UpdateEmployeeRole:        t.updateEmployeeRole,
		UpdateEmployeeManager:     t.updateEmployeeManager,
		ViewEmployeesByDepartment: t.viewEmployeesByDepartment,
		ViewEmployeesByManager:    t.viewEmployeesByManager,
		DeleteDepartment:          t.deleteDepartment,
		DeleteRole:                t.deleteRole,
		DeleteEmployee:            t.deleteEmployee,
		ViewDepartmentBudgets:     t.viewDepartmentBudgets,
	}
}

// Run shows the menu until the user picks Exit. Aborting the menu prompt
// counts as Exit. It returns an error only when the menu itself cannot be
// shown or ctx is cancelled.
func (t *Tracker) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			t.close()
			return err
		}

		action, err := t.selectAction()
		if errors.Is(err, prompt.ErrAborted) {
			action = Exit
		} else if err != nil {
			return fmt.Errorf("menu prompt: %w", err)
		}

		if t.Dispatch(ctx, action) {
			return nil
		}
	}
}

func (t *Tracker) selectAction() (Action, error) {
	c, err := t.prompt.Select(MenuMessage, menuChoices())
	if err != nil {
		return 0, err
	}
	return Action(c.Value.Int64), nil
}

// Dispatch runs one action to completion and reports whether the loop
// should stop. Handler errors are logged, shown and absorbed.
func (t *Tracker) Dispatch(ctx context.Context, action Action) bool {
	if action == Exit {
		t.close()
		t.out.Println("Goodbye!")
		return true
	}

	h, ok := t.handlers[action]
	if !ok {
		t.out.Error("Invalid action")
		return false
	}

	log := t.logger.With("action", action.Name(), "op_id", logging.NewOpID())
	log.Debug("action started")

	err := h(ctx)
	switch {
	case err == nil:
		log.Debug("action completed")
	case errors.Is(err, prompt.ErrAborted):
		t.out.Info("Cancelled.")
	default:
		log.Error("error "+action.Description(), "error", err)
		t.out.Error(fmt.Sprintf("Error %s: %s", action.Description(), database.DescribeError(err)))
	}
	return false
}

func (t *Tracker) close() {
	if err := t.store.Close(); err != nil {
		t.logger.Warn("close database", "error", err)
	}
}
