package database

import (
	"database/sql"
	"strings"

	"github.com/shopspring/decimal"
)

// Department represents a row of the departments table
type Department struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

// Role represents a row of the roles table
type Role struct {
	ID           int64           `db:"id"`
	Title        string          `db:"title"`
	Salary       decimal.Decimal `db:"salary"`
	DepartmentID sql.NullInt64   `db:"department_id"`
}

// Employee represents a row of the employees table
type Employee struct {
	ID        int64         `db:"id"`
	FirstName string        `db:"first_name"`
	LastName  string        `db:"last_name"`
	RoleID    int64         `db:"role_id"`
	ManagerID sql.NullInt64 `db:"manager_id"`
}

// FullName returns "first last"
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// RoleDetail is a role joined to its department name
type RoleDetail struct {
	ID         int64           `db:"id"`
	Title      string          `db:"title"`
	Department sql.NullString  `db:"department"`
	Salary     decimal.Decimal `db:"salary"`
}

// EmployeeDetail is an employee joined to role, department and manager
type EmployeeDetail struct {
	ID               int64               `db:"id"`
	FirstName        string              `db:"first_name"`
	LastName         string              `db:"last_name"`
	Title            sql.NullString      `db:"title"`
	Department       sql.NullString      `db:"department"`
	Salary           decimal.NullDecimal `db:"salary"`
	ManagerFirstName sql.NullString      `db:"manager_first_name"`
	ManagerLastName  sql.NullString      `db:"manager_last_name"`
}

// ManagerName concatenates the manager's names, empty when there is no manager
func (e EmployeeDetail) ManagerName() string {
	return strings.TrimSpace(e.ManagerFirstName.String + " " + e.ManagerLastName.String)
}

// DepartmentBudget is the summed salary of the roles held in one department
type DepartmentBudget struct {
	Department     string          `db:"department"`
	UtilizedBudget decimal.Decimal `db:"utilized_budget"`
}

// NewRole holds the fields required to insert a role
type NewRole struct {
	Title        string
	Salary       decimal.Decimal
	DepartmentID int64
}

// NewEmployee holds the fields required to insert an employee
type NewEmployee struct {
	FirstName string
	LastName  string
	RoleID    int64
	ManagerID sql.NullInt64
}

// CascadeResult counts the dependent rows removed by a cascading delete
type CascadeResult struct {
	Roles     int64
	Employees int64
}
