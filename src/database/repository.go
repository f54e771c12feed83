package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// ErrNotFound is returned when a mutation targets a row that no longer exists
var ErrNotFound = errors.New("record not found")

const employeeDetailColumns = `
	e.id, e.first_name, e.last_name, r.title, d.name AS department, r.salary,
	m.first_name AS manager_first_name, m.last_name AS manager_last_name`

const employeeDetailJoins = `
	FROM employees e
	LEFT JOIN roles r ON e.role_id = r.id
	LEFT JOIN departments d ON r.department_id = d.id
	LEFT JOIN employees m ON e.manager_id = m.id`

// Repository provides database operations over departments, roles and employees.
// Queries are written with ? placeholders and rebound per driver.
type Repository struct {
	db *DB
}

// NewRepository creates a new repository
func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

// Close releases the underlying connection
func (r *Repository) Close() error {
	return r.db.Close()
}

// Department Operations

// ListDepartments returns every department ordered by id
func (r *Repository) ListDepartments(ctx context.Context) ([]Department, error) {
	departments := []Department{}
	if err := r.db.Select(ctx, &departments,
		`SELECT id, name FROM departments ORDER BY id`); err != nil {
		return nil, err
	}
	return departments, nil
}

// CreateDepartment inserts a department
func (r *Repository) CreateDepartment(ctx context.Context, name string) error {
	_, err := r.db.Exec(ctx, `INSERT INTO departments (name) VALUES (?)`, name)
	return err
}

// DeleteDepartment removes a department, its roles and the employees holding
// those roles in one transaction. Surviving employees managed by a removed
// employee lose their manager.
func (r *Repository) DeleteDepartment(ctx context.Context, id int64) (CascadeResult, error) {
	var result CascadeResult
	err := r.db.InTx(ctx, func(tx *sqlx.Tx) error {
		var employeeIDs []int64
		if err := tx.SelectContext(ctx, &employeeIDs, tx.Rebind(
			`SELECT e.id FROM employees e
			 INNER JOIN roles r ON e.role_id = r.id
			 WHERE r.department_id = ?`), id); err != nil {
			return fmt.Errorf("find department employees: %w", err)
		}

		removed, err := deleteEmployees(ctx, tx, employeeIDs)
		if err != nil {
			return err
		}
		result.Employees = removed

		res, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM roles WHERE department_id = ?`), id)
		if err != nil {
			return fmt.Errorf("delete department roles: %w", err)
		}
		if result.Roles, err = res.RowsAffected(); err != nil {
			return err
		}

		res, err = tx.ExecContext(ctx, tx.Rebind(`DELETE FROM departments WHERE id = ?`), id)
		if err != nil {
			return fmt.Errorf("delete department: %w", err)
		}
		return requireAffected(res)
	})
	if err != nil {
		return CascadeResult{}, err
	}
	return result, nil
}

// Role Operations

// ListRoles returns every role ordered by id
func (r *Repository) ListRoles(ctx context.Context) ([]Role, error) {
	roles := []Role{}
	if err := r.db.Select(ctx, &roles,
		`SELECT id, title, salary, department_id FROM roles ORDER BY id`); err != nil {
		return nil, err
	}
	return roles, nil
}

// ListRoleDetails returns roles with their department name. Roles whose
// department is missing are still listed.
func (r *Repository) ListRoleDetails(ctx context.Context) ([]RoleDetail, error) {
	roles := []RoleDetail{}
	if err := r.db.Select(ctx, &roles,
		`SELECT r.id, r.title, d.name AS department, r.salary
		 FROM roles r
		 LEFT JOIN departments d ON r.department_id = d.id
		 ORDER BY r.id`); err != nil {
		return nil, err
	}
	return roles, nil
}

// CreateRole inserts a role
func (r *Repository) CreateRole(ctx context.Context, role NewRole) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO roles (title, salary, department_id) VALUES (?, ?, ?)`,
		role.Title, role.Salary, role.DepartmentID)
	return err
}

// DeleteRole removes a role and every employee holding it in one transaction
func (r *Repository) DeleteRole(ctx context.Context, id int64) (CascadeResult, error) {
	var result CascadeResult
	err := r.db.InTx(ctx, func(tx *sqlx.Tx) error {
		var employeeIDs []int64
		if err := tx.SelectContext(ctx, &employeeIDs, tx.Rebind(
			`SELECT id FROM employees WHERE role_id = ?`), id); err != nil {
			return fmt.Errorf("find role employees: %w", err)
		}

		removed, err := deleteEmployees(ctx, tx, employeeIDs)
		if err != nil {
			return err
		}
		result.Employees = removed

		res, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM roles WHERE id = ?`), id)
		if err != nil {
			return fmt.Errorf("delete role: %w", err)
		}
		if err := requireAffected(res); err != nil {
			return err
		}
		result.Roles = 1
		return nil
	})
	if err != nil {
		return CascadeResult{}, err
	}
	return result, nil
}

// Employee Operations

// ListEmployees returns every employee ordered by id
func (r *Repository) ListEmployees(ctx context.Context) ([]Employee, error) {
	employees := []Employee{}
	if err := r.db.Select(ctx, &employees,
		`SELECT id, first_name, last_name, role_id, manager_id FROM employees ORDER BY id`); err != nil {
		return nil, err
	}
	return employees, nil
}

// ListManagers returns the distinct employees referenced as someone's manager
func (r *Repository) ListManagers(ctx context.Context) ([]Employee, error) {
	managers := []Employee{}
	if err := r.db.Select(ctx, &managers,
		`SELECT DISTINCT m.id, m.first_name, m.last_name, m.role_id, m.manager_id
		 FROM employees e
		 INNER JOIN employees m ON e.manager_id = m.id
		 ORDER BY m.id`); err != nil {
		return nil, err
	}
	return managers, nil
}

// ListEmployeeDetails returns employees with role, department and manager name
func (r *Repository) ListEmployeeDetails(ctx context.Context) ([]EmployeeDetail, error) {
	employees := []EmployeeDetail{}
	if err := r.db.Select(ctx, &employees,
		`SELECT `+employeeDetailColumns+employeeDetailJoins+` ORDER BY e.id`); err != nil {
		return nil, err
	}
	return employees, nil
}

// EmployeesByDepartment returns the employees whose role belongs to the department
func (r *Repository) EmployeesByDepartment(ctx context.Context, departmentID int64) ([]EmployeeDetail, error) {
	employees := []EmployeeDetail{}
	if err := r.db.Select(ctx, &employees,
		`SELECT `+employeeDetailColumns+employeeDetailJoins+`
		 WHERE d.id = ?
		 ORDER BY e.id`, departmentID); err != nil {
		return nil, err
	}
	return employees, nil
}

// EmployeesByManager returns the direct reports of a manager
func (r *Repository) EmployeesByManager(ctx context.Context, managerID int64) ([]EmployeeDetail, error) {
	employees := []EmployeeDetail{}
	if err := r.db.Select(ctx, &employees,
		`SELECT `+employeeDetailColumns+employeeDetailJoins+`
		 WHERE e.manager_id = ?
		 ORDER BY e.id`, managerID); err != nil {
		return nil, err
	}
	return employees, nil
}

// CreateEmployee inserts an employee
func (r *Repository) CreateEmployee(ctx context.Context, employee NewEmployee) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO employees (first_name, last_name, role_id, manager_id) VALUES (?, ?, ?, ?)`,
		employee.FirstName, employee.LastName, employee.RoleID, employee.ManagerID)
	return err
}

// UpdateEmployeeRole changes an employee's role
func (r *Repository) UpdateEmployeeRole(ctx context.Context, employeeID, roleID int64) error {
	res, err := r.db.Exec(ctx,
		`UPDATE employees SET role_id = ? WHERE id = ?`, roleID, employeeID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

// UpdateEmployeeManager changes or clears an employee's manager
func (r *Repository) UpdateEmployeeManager(ctx context.Context, employeeID int64, managerID sql.NullInt64) error {
	res, err := r.db.Exec(ctx,
		`UPDATE employees SET manager_id = ? WHERE id = ?`, managerID, employeeID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

// DeleteEmployee removes one employee. Reports of that employee keep their
// row and lose their manager.
func (r *Repository) DeleteEmployee(ctx context.Context, id int64) error {
	return r.db.InTx(ctx, func(tx *sqlx.Tx) error {
		removed, err := deleteEmployees(ctx, tx, []int64{id})
		if err != nil {
			return err
		}
		if removed == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// Reporting

// DepartmentBudgets sums, per department, the salary of the role held by each
// employee. Only departments with at least one employee appear.
func (r *Repository) DepartmentBudgets(ctx context.Context) ([]DepartmentBudget, error) {
	budgets := []DepartmentBudget{}
	if err := r.db.Select(ctx, &budgets,
		`SELECT d.name AS department, SUM(r.salary) AS utilized_budget
		 FROM employees e
		 INNER JOIN roles r ON e.role_id = r.id
		 INNER JOIN departments d ON r.department_id = d.id
		 GROUP BY d.id, d.name
		 ORDER BY d.name`); err != nil {
		return nil, err
	}
	return budgets, nil
}

// deleteEmployees clears manager references to ids and then deletes them
func deleteEmployees(ctx context.Context, tx *sqlx.Tx, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query, args, err := sqlx.In(`UPDATE employees SET manager_id = NULL WHERE manager_id IN (?)`, ids)
	if err != nil {
		return 0, err
	}
	if _, err := tx.ExecContext(ctx, tx.Rebind(query), args...); err != nil {
		return 0, fmt.Errorf("clear manager references: %w", err)
	}

	query, args, err = sqlx.In(`DELETE FROM employees WHERE id IN (?)`, ids)
	if err != nil {
		return 0, err
	}
	res, err := tx.ExecContext(ctx, tx.Rebind(query), args...)
	if err != nil {
		return 0, fmt.Errorf("delete employees: %w", err)
	}
	return res.RowsAffected()
}

// requireAffected maps a zero-row mutation to ErrNotFound
func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
