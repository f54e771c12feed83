package tracker

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/apimgr/employee-tracker/src/database"
)

func id(v int64) string {
	return strconv.FormatInt(v, 10)
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func nullMoney(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return money(d.Decimal)
}

func (t *Tracker) showDepartments(title string, departments []database.Department) {
	rows := make([][]string, 0, len(departments))
	for _, d := range departments {
		rows = append(rows, []string{id(d.ID), d.Name})
	}
	t.out.Title(title)
	t.out.Table([]string{"id", "name"}, rows)
}

func (t *Tracker) showRoles(title string, roles []database.RoleDetail) {
	rows := make([][]string, 0, len(roles))
	for _, r := range roles {
		rows = append(rows, []string{id(r.ID), r.Title, r.Department.String, money(r.Salary)})
	}
	t.out.Title(title)
	t.out.Table([]string{"id", "title", "department", "salary"}, rows)
}

// employeeColumn selects one column of the employee tables
type employeeColumn struct {
	header string
	value  func(database.EmployeeDetail) string
}

var (
	colID         = employeeColumn{"id", func(e database.EmployeeDetail) string { return id(e.ID) }}
	colFirstName  = employeeColumn{"first_name", func(e database.EmployeeDetail) string { return e.FirstName }}
	colLastName   = employeeColumn{"last_name", func(e database.EmployeeDetail) string { return e.LastName }}
	colTitle      = employeeColumn{"title", func(e database.EmployeeDetail) string { return e.Title.String }}
	colDepartment = employeeColumn{"department", func(e database.EmployeeDetail) string { return e.Department.String }}
	colSalary     = employeeColumn{"salary", func(e database.EmployeeDetail) string { return nullMoney(e.Salary) }}
	colManager    = employeeColumn{"manager", database.EmployeeDetail.ManagerName}
)

func (t *Tracker) showEmployees(title string, employees []database.EmployeeDetail, cols ...employeeColumn) {
	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = c.header
	}

	rows := make([][]string, 0, len(employees))
	for _, e := range employees {
		row := make([]string, len(cols))
		for i, c := range cols {
			row[i] = c.value(e)
		}
		rows = append(rows, row)
	}
	t.out.Title(title)
	t.out.Table(headers, rows)
}

func (t *Tracker) showBudgets(title string, budgets []database.DepartmentBudget) {
	rows := make([][]string, 0, len(budgets))
	for _, b := range budgets {
		rows = append(rows, []string{b.Department, money(b.UtilizedBudget)})
	}
	t.out.Title(title)
	t.out.Table([]string{"department", "utilized_budget"}, rows)
}
