package tracker

import (
	"context"
	"fmt"
	"strings"

	"github.com/apimgr/employee-tracker/src/choice"
	"github.com/apimgr/employee-tracker/src/database"
)

func departmentLabel(d database.Department) string { return d.Name }
func departmentID(d database.Department) int64     { return d.ID }
func roleLabel(r database.Role) string             { return r.Title }
func roleID(r database.Role) int64                 { return r.ID }
func employeeID(e database.Employee) int64         { return e.ID }

// departmentChoices loads departments as a choice list
func (t *Tracker) departmentChoices(ctx context.Context) ([]choice.Choice, error) {
	departments, err := t.store.ListDepartments(ctx)
	if err != nil {
		return nil, err
	}
	return choice.Build(departments, departmentLabel, departmentID), nil
}

func (t *Tracker) roleChoices(ctx context.Context) ([]choice.Choice, error) {
	roles, err := t.store.ListRoles(ctx)
	if err != nil {
		return nil, err
	}
	return choice.Build(roles, roleLabel, roleID), nil
}

func (t *Tracker) employeeChoices(ctx context.Context, opts ...choice.Option) ([]choice.Choice, error) {
	employees, err := t.store.ListEmployees(ctx)
	if err != nil {
		return nil, err
	}
	return choice.Build(employees, database.Employee.FullName, employeeID, opts...), nil
}

// View handlers

func (t *Tracker) viewDepartments(ctx context.Context) error {
	departments, err := t.store.ListDepartments(ctx)
	if err != nil {
		return err
	}
	t.showDepartments("Departments", departments)
	return nil
}

func (t *Tracker) viewRoles(ctx context.Context) error {
	roles, err := t.store.ListRoleDetails(ctx)
	if err != nil {
		return err
	}
	t.showRoles("Roles", roles)
	return nil
}

func (t *Tracker) viewEmployees(ctx context.Context) error {
	employees, err := t.store.ListEmployeeDetails(ctx)
	if err != nil {
		return err
	}
	t.showEmployees("Employees", employees, colID, colFirstName, colLastName, colTitle, colDepartment, colSalary, colManager)
	return nil
}

func (t *Tracker) viewEmployeesByDepartment(ctx context.Context) error {
	departments, err := t.departmentChoices(ctx)
	if err != nil {
		return err
	}
	if choice.Require(departments) != nil {
		t.out.Info("No departments found.")
		return nil
	}

	dept, err := t.prompt.Select("Select the department to view its employees:", departments)
	if err != nil {
		return err
	}

	employees, err := t.store.EmployeesByDepartment(ctx, dept.Value.Int64)
	if err != nil {
		return err
	}
	if len(employees) == 0 {
		t.out.Info("No employees found in this department.")
		return nil
	}
	t.showEmployees("Employees in "+dept.Label, employees, colID, colFirstName, colLastName, colTitle, colSalary, colManager)
	return nil
}

func (t *Tracker) viewEmployeesByManager(ctx context.Context) error {
	managers, err := t.store.ListManagers(ctx)
	if err != nil {
		return err
	}
	choices := choice.Build(managers, database.Employee.FullName, employeeID)
	if choice.Require(choices) != nil {
		t.out.Info("No managers found.")
		return nil
	}

	manager, err := t.prompt.Select("Select the manager to view their employees:", choices)
	if err != nil {
		return err
	}

	employees, err := t.store.EmployeesByManager(ctx, manager.Value.Int64)
	if err != nil {
		return err
	}
	if len(employees) == 0 {
		t.out.Info("No employees found under this manager.")
		return nil
	}
	t.showEmployees("Direct reports", employees, colID, colFirstName, colLastName, colTitle, colDepartment, colSalary)
	return nil
}

func (t *Tracker) viewDepartmentBudgets(ctx context.Context) error {
	budgets, err := t.store.DepartmentBudgets(ctx)
	if err != nil {
		return err
	}
	if len(budgets) == 0 {
		t.out.Info("No employees found.")
		return nil
	}
	t.showBudgets("Department budgets", budgets)
	return nil
}

// Add handlers

func (t *Tracker) addDepartment(ctx context.Context) error {
	name, err := t.prompt.Input("Enter the name of the new department:",
		requireName(hintDepartmentName))
	if err != nil {
		return err
	}

	name = strings.TrimSpace(name)
	if err := checkName("department name", name); err != nil {
		return err
	}

	if err := t.store.CreateDepartment(ctx, name); err != nil {
		return err
	}
	t.out.Success(fmt.Sprintf("Department %q added successfully.", name))
	return nil
}

func (t *Tracker) addRole(ctx context.Context) error {
	departments, err := t.departmentChoices(ctx)
	if err != nil {
		return err
	}
	if choice.Require(departments) != nil {
		t.out.Info("No departments found. Please add a department first.")
		return nil
	}

	title, err := t.prompt.Input("Enter the title of the new role:",
		requireName(hintRoleTitle))
	if err != nil {
		return err
	}
	salary, err := t.prompt.Decimal("Enter the salary for the new role:", positiveSalary)
	if err != nil {
		return err
	}
	dept, err := t.prompt.Select("Select the department for the new role:", departments)
	if err != nil {
		return err
	}

	title = strings.TrimSpace(title)
	if err := checkName("role title", title); err != nil {
		return err
	}
	if err := checkSalary(salary); err != nil {
		return err
	}

	if err := t.store.CreateRole(ctx, database.NewRole{
		Title:        title,
		Salary:       salary,
		DepartmentID: dept.Value.Int64,
	}); err != nil {
		return err
	}
	t.out.Success(fmt.Sprintf("Role %q added successfully.", title))
	return nil
}

func (t *Tracker) addEmployee(ctx context.Context) error {
	roles, err := t.roleChoices(ctx)
	if err != nil {
		return err
	}
	if choice.Require(roles) != nil {
		t.out.Info("No roles found. Please add a role first.")
		return nil
	}

	managers, err := t.employeeChoices(ctx, choice.WithNone())
	if err != nil {
		return err
	}

	first, err := t.prompt.Input("Enter the employee's first name:",
		requireName(hintFirstName))
	if err != nil {
		return err
	}
	last, err := t.prompt.Input("Enter the employee's last name:",
		requireName(hintLastName))
	if err != nil {
		return err
	}
	role, err := t.prompt.Select("Select the employee's role:", roles)
	if err != nil {
		return err
	}
	manager, err := t.prompt.Select("Select the employee's manager:", managers)
	if err != nil {
		return err
	}

	first, last = strings.TrimSpace(first), strings.TrimSpace(last)
	if err := checkName("first name", first); err != nil {
		return err
	}
	if err := checkName("last name", last); err != nil {
		return err
	}

	if err := t.store.CreateEmployee(ctx, database.NewEmployee{
		FirstName: first,
		LastName:  last,
		RoleID:    role.Value.Int64,
		ManagerID: manager.Value,
	}); err != nil {
		return err
	}
	t.out.Success(fmt.Sprintf("Employee \"%s %s\" added successfully.", first, last))
	return nil
}

// Update handlers

func (t *Tracker) updateEmployeeRole(ctx context.Context) error {
	employees, err := t.employeeChoices(ctx)
	if err != nil {
		return err
	}
	if choice.Require(employees) != nil {
		t.out.Info("No employees found.")
		return nil
	}

	roles, err := t.roleChoices(ctx)
	if err != nil {
		return err
	}
	if choice.Require(roles) != nil {
		t.out.Info("No roles found. Please add a role first.")
		return nil
	}

	employee, err := t.prompt.Select("Select the employee whose role you want to update:", employees)
	if err != nil {
		return err
	}
	role, err := t.prompt.Select("Select the new role:", roles)
	if err != nil {
		return err
	}

	if err := t.store.UpdateEmployeeRole(ctx, employee.Value.Int64, role.Value.Int64); err != nil {
		return err
	}
	t.out.Success("Employee role updated successfully.")
	return nil
}

func (t *Tracker) updateEmployeeManager(ctx context.Context) error {
	employees, err := t.employeeChoices(ctx)
	if err != nil {
		return err
	}
	if choice.Require(employees) != nil {
		t.out.Info("No employees found.")
		return nil
	}

	employee, err := t.prompt.Select("Select the employee whose manager you want to update:", employees)
	if err != nil {
		return err
	}

	candidates := choice.Exclude(append([]choice.Choice{choice.None()}, employees...), employee.Value.Int64)
	manager, err := t.prompt.Select("Select the new manager:", candidates)
	if err != nil {
		return err
	}

	if err := checkManager(employee.Value.Int64, manager.Value); err != nil {
		return err
	}

	if err := t.store.UpdateEmployeeManager(ctx, employee.Value.Int64, manager.Value); err != nil {
		return err
	}
	t.out.Success("Employee manager updated successfully.")
	return nil
}

// Delete handlers

// confirmDelete asks before a destructive operation; false means the user
// declined and nothing should be written
func (t *Tracker) confirmDelete(message string) (bool, error) {
	ok, err := t.prompt.Confirm(message, false)
	if err != nil {
		return false, err
	}
	if !ok {
		t.out.Info("Deletion cancelled.")
	}
	return ok, nil
}

func (t *Tracker) reportCascade(res database.CascadeResult) {
	if res.Roles == 0 && res.Employees == 0 {
		return
	}
	t.out.Info(fmt.Sprintf("Also removed %d role(s) and %d employee(s).", res.Roles, res.Employees))
}

func (t *Tracker) deleteDepartment(ctx context.Context) error {
	departments, err := t.departmentChoices(ctx)
	if err != nil {
		return err
	}
	if choice.Require(departments) != nil {
		t.out.Info("No departments to delete.")
		return nil
	}

	dept, err := t.prompt.Select("Select the department to delete:", departments)
	if err != nil {
		return err
	}
	ok, err := t.confirmDelete("Are you sure you want to delete this department? All associated roles and employees will also be deleted.")
	if err != nil || !ok {
		return err
	}

	res, err := t.store.DeleteDepartment(ctx, dept.Value.Int64)
	if err != nil {
		return err
	}
	t.out.Success("Department deleted successfully.")
	t.reportCascade(res)
	return nil
}

func (t *Tracker) deleteRole(ctx context.Context) error {
	roles, err := t.roleChoices(ctx)
	if err != nil {
		return err
	}
	if choice.Require(roles) != nil {
		t.out.Info("No roles to delete.")
		return nil
	}

	role, err := t.prompt.Select("Select the role to delete:", roles)
	if err != nil {
		return err
	}
	ok, err := t.confirmDelete("Are you sure you want to delete this role? All associated employees will also be deleted.")
	if err != nil || !ok {
		return err
	}

	res, err := t.store.DeleteRole(ctx, role.Value.Int64)
	if err != nil {
		return err
	}
	t.out.Success("Role deleted successfully.")
	res.Roles = 0
	t.reportCascade(res)
	return nil
}

func (t *Tracker) deleteEmployee(ctx context.Context) error {
	employees, err := t.employeeChoices(ctx)
	if err != nil {
		return err
	}
	if choice.Require(employees) != nil {
		t.out.Info("No employees to delete.")
		return nil
	}

	employee, err := t.prompt.Select("Select the employee to delete:", employees)
	if err != nil {
		return err
	}
	ok, err := t.confirmDelete("Are you sure you want to delete this employee?")
	if err != nil || !ok {
		return err
	}

	if err := t.store.DeleteEmployee(ctx, employee.Value.Int64); err != nil {
		return err
	}
	t.out.Success("Employee deleted successfully.")
	return nil
}
