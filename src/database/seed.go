package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

// ErrNotEmpty is returned by Seed when the tables already hold data
var ErrNotEmpty = errors.New("database already contains data")

type seedRole struct {
	title      string
	salary     int64
	department string
}

type seedEmployee struct {
	first, last string
	role        string
	manager     string // first name of an earlier seed employee
}

var seedDepartments = []string{"Engineering", "Finance", "Legal", "Sales"}

var seedRoles = []seedRole{
	{"Lead Engineer", 150000, "Engineering"},
	{"Software Engineer", 120000, "Engineering"},
	{"Account Manager", 160000, "Finance"},
	{"Accountant", 125000, "Finance"},
	{"Legal Team Lead", 250000, "Legal"},
	{"Lawyer", 190000, "Legal"},
	{"Sales Lead", 100000, "Sales"},
	{"Salesperson", 80000, "Sales"},
}

var seedEmployees = []seedEmployee{
	{"Ashley", "Rodriguez", "Lead Engineer", ""},
	{"Kevin", "Tupik", "Software Engineer", "Ashley"},
	{"Kunal", "Singh", "Account Manager", ""},
	{"Malia", "Brown", "Accountant", "Kunal"},
	{"Sarah", "Lourd", "Legal Team Lead", ""},
	{"Tom", "Allen", "Lawyer", "Sarah"},
	{"John", "Doe", "Sales Lead", ""},
	{"Mike", "Chan", "Salesperson", "John"},
}

// Seed inserts the demo dataset into an empty database in one transaction
func (r *Repository) Seed(ctx context.Context) error {
	return r.db.InTx(ctx, func(tx *sqlx.Tx) error {
		for _, table := range []string{"departments", "roles", "employees"} {
			var count int
			if err := tx.GetContext(ctx, &count, `SELECT COUNT(*) FROM `+table); err != nil {
				return fmt.Errorf("count %s: %w", table, err)
			}
			if count > 0 {
				return ErrNotEmpty
			}
		}

		departmentIDs := make(map[string]int64, len(seedDepartments))
		for _, name := range seedDepartments {
			if _, err := tx.ExecContext(ctx, tx.Rebind(`INSERT INTO departments (name) VALUES (?)`), name); err != nil {
				return fmt.Errorf("insert department %s: %w", name, err)
			}
			id, err := lookupID(ctx, tx, `SELECT MAX(id) FROM departments WHERE name = ?`, name)
			if err != nil {
				return err
			}
			departmentIDs[name] = id
		}

		roleIDs := make(map[string]int64, len(seedRoles))
		for _, role := range seedRoles {
			if _, err := tx.ExecContext(ctx,
				tx.Rebind(`INSERT INTO roles (title, salary, department_id) VALUES (?, ?, ?)`),
				role.title, decimal.NewFromInt(role.salary), departmentIDs[role.department]); err != nil {
				return fmt.Errorf("insert role %s: %w", role.title, err)
			}
			id, err := lookupID(ctx, tx, `SELECT MAX(id) FROM roles WHERE title = ?`, role.title)
			if err != nil {
				return err
			}
			roleIDs[role.title] = id
		}

		employeeIDs := make(map[string]int64, len(seedEmployees))
		for _, emp := range seedEmployees {
			var manager sql.NullInt64
			if emp.manager != "" {
				manager = sql.NullInt64{Int64: employeeIDs[emp.manager], Valid: true}
			}
			if _, err := tx.ExecContext(ctx,
				tx.Rebind(`INSERT INTO employees (first_name, last_name, role_id, manager_id) VALUES (?, ?, ?, ?)`),
				emp.first, emp.last, roleIDs[emp.role], manager); err != nil {
				return fmt.Errorf("insert employee %s %s: %w", emp.first, emp.last, err)
			}
			id, err := lookupID(ctx, tx, `SELECT MAX(id) FROM employees WHERE first_name = ?`, emp.first)
			if err != nil {
				return err
			}
			employeeIDs[emp.first] = id
		}
		return nil
	})
}

// lookupID reads back a generated key; LastInsertId is not available on every driver
func lookupID(ctx context.Context, tx *sqlx.Tx, query string, arg interface{}) (int64, error) {
	var id int64
	if err := tx.GetContext(ctx, &id, tx.Rebind(query), arg); err != nil {
		return 0, fmt.Errorf("read generated id: %w", err)
	}
	return id, nil
}
