package database

import (
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
)

// DescribeError turns driver errors into a message fit for the terminal.
// Unknown errors are returned verbatim.
func DescribeError(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, ErrNotFound) {
		return "the selected record no longer exists"
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23503":
			return "invalid foreign key reference"
		case "23505":
			return "a record with the same unique attributes already exists"
		case "23514":
			return "value rejected by a check constraint"
		}
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case 1451, 1452:
			return "invalid foreign key reference"
		case 1062:
			return "a record with the same unique attributes already exists"
		}
	}

	return err.Error()
}
