package database

import (
	"regexp"
	"strings"
)

var createTableIfNotExists = regexp.MustCompile(`(?i)CREATE TABLE IF NOT EXISTS (\w+)`)

// convertSchema converts SQLite flavoured DDL into the target driver's dialect.
// Migrations are written once, in SQLite syntax.
func convertSchema(driver, schema string) string {
	switch driver {
	case "pgx":
		schema = strings.ReplaceAll(schema, "INTEGER PRIMARY KEY AUTOINCREMENT", "SERIAL PRIMARY KEY")
		schema = strings.ReplaceAll(schema, "DATETIME", "TIMESTAMP")

	case "mysql":
		schema = strings.ReplaceAll(schema, "INTEGER PRIMARY KEY AUTOINCREMENT", "INT AUTO_INCREMENT PRIMARY KEY")
		if strings.Contains(strings.ToUpper(schema), "CREATE TABLE") {
			schema = strings.TrimRight(strings.TrimSpace(schema), ";") + " ENGINE=InnoDB DEFAULT CHARSET=utf8mb4"
		}

	case "sqlserver":
		schema = strings.ReplaceAll(schema, "INTEGER PRIMARY KEY AUTOINCREMENT", "INT IDENTITY(1,1) PRIMARY KEY")
		schema = strings.ReplaceAll(schema, "DATETIME", "DATETIME2")
		schema = createTableIfNotExists.ReplaceAllString(schema, "IF OBJECT_ID(N'$1', N'U') IS NULL CREATE TABLE $1")
	}

	return schema
}

// splitStatements splits a migration body on semicolons, dropping blanks.
// Not every driver accepts several statements in one Exec.
func splitStatements(body string) []string {
	parts := strings.Split(body, ";")
	stmts := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			stmts = append(stmts, s)
		}
	}
	return stmts
}
