package database

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-sql-driver/mysql"
)

// newTestDB opens a migrated SQLite database in a temp dir
func newTestDB(t *testing.T) *DB {
	t.Helper()

	cfg := &Config{
		Driver:  "sqlite",
		DataDir: t.TempDir(),
		MaxOpen: 1,
		MaxIdle: 1,
	}

	db, err := Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, err := NewMigrator(db).Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	return db
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg == nil {
		t.Fatal("DefaultConfig() returned nil")
	}
	if cfg.Driver != "postgres" {
		t.Errorf("Driver = %q, want postgres", cfg.Driver)
	}
	if cfg.Port != 0 {
		t.Errorf("Port = %d, want 0 (driver default)", cfg.Port)
	}
	if cfg.MaxOpen != 1 {
		t.Errorf("MaxOpen = %d, want 1", cfg.MaxOpen)
	}
	if !cfg.AutoMigrate {
		t.Error("AutoMigrate should default to true")
	}
}

func TestNormalizeDriver(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", "pgx"},
		{"postgres", "pgx"},
		{"PostgreSQL", "pgx"},
		{"mysql", "mysql"},
		{"mariadb", "mysql"},
		{"sqlite3", "sqlite"},
		{"turso", "libsql"},
		{"mssql", "sqlserver"},
		{"oracle", "oracle"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := normalizeDriver(tt.input); got != tt.expected {
				t.Errorf("normalizeDriver(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestIsSupportedDriver(t *testing.T) {
	for _, d := range SupportedDrivers() {
		if !IsSupportedDriver(d) {
			t.Errorf("IsSupportedDriver(%q) = false", d)
		}
	}
	if IsSupportedDriver("oracle") {
		t.Error("IsSupportedDriver(oracle) = true")
	}
}

func TestBuildDSN(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		want    string
		wantErr bool
	}{
		{
			name: "explicit dsn wins",
			cfg:  Config{Driver: "postgres", DSN: "postgres://x/y", Name: "ignored"},
			want: "postgres://x/y",
		},
		{
			name: "postgres from parts",
			cfg:  Config{Driver: "postgres", Host: "db", Port: 5433, Name: "employees", User: "root", Password: "secret"},
			want: "postgres://root:secret@db:5433/employees?sslmode=disable",
		},
		{
			name: "postgres default port",
			cfg:  Config{Driver: "postgres", Name: "employees", User: "root", SSLMode: "require"},
			want: "postgres://root:@localhost:5432/employees?sslmode=require",
		},
		{
			name: "sqlserver from parts",
			cfg:  Config{Driver: "mssql", Host: "db", Name: "employees", User: "sa", Password: "pw"},
			want: "sqlserver://sa:pw@db:1433?database=employees",
		},
		{
			name: "sqlite default name",
			cfg:  Config{Driver: "sqlite", DataDir: "/data"},
			want: filepath.Join("/data", "employee_tracker.db"),
		},
		{
			name: "sqlite memory",
			cfg:  Config{Driver: "sqlite", Name: ":memory:", DataDir: "/data"},
			want: ":memory:",
		},
		{
			name:    "libsql needs dsn",
			cfg:     Config{Driver: "libsql"},
			wantErr: true,
		},
		{
			name:    "postgres needs name",
			cfg:     Config{Driver: "postgres", Host: "db"},
			wantErr: true,
		},
		{
			name:    "unknown driver",
			cfg:     Config{Driver: "oracle", Name: "x"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.cfg.BuildDSN()
			if (err != nil) != tt.wantErr {
				t.Fatalf("BuildDSN() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("BuildDSN() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildDSNMySQL(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		addr string
	}{
		{"default port", Config{Driver: "mysql", Host: "db", Name: "employees", User: "root", Password: "pw"}, "db:3306"},
		{"explicit port", Config{Driver: "mariadb", Host: "db", Port: 3307, Name: "employees", User: "root", Password: "pw"}, "db:3307"},
		{"default host", Config{Driver: "mysql", Name: "employees", User: "root"}, "localhost:3306"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dsn, err := tt.cfg.BuildDSN()
			if err != nil {
				t.Fatalf("BuildDSN() error = %v", err)
			}
			parsed, err := mysql.ParseDSN(dsn)
			if err != nil {
				t.Fatalf("ParseDSN(%q) error = %v", dsn, err)
			}
			if parsed.Net != "tcp" || parsed.Addr != tt.addr {
				t.Errorf("address = %s(%s), want tcp(%s)", parsed.Net, parsed.Addr, tt.addr)
			}
			if parsed.DBName != "employees" || parsed.User != tt.cfg.User || parsed.Passwd != tt.cfg.Password {
				t.Errorf("parsed = %+v", parsed)
			}
			if !parsed.ParseTime || !parsed.ClientFoundRows {
				t.Errorf("parseTime = %v, clientFoundRows = %v, want both true", parsed.ParseTime, parsed.ClientFoundRows)
			}
			if parsed.Params["charset"] != "utf8mb4" {
				t.Errorf("charset = %q", parsed.Params["charset"])
			}
		})
	}
}

func TestBuildDSNDefaultPorts(t *testing.T) {
	tests := []struct {
		driver string
		want   string
	}{
		{"postgres", "@localhost:5432/"},
		{"mssql", "@localhost:1433?"},
		{"mysql", "tcp(localhost:3306)"},
	}

	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Driver = tt.driver
			cfg.Name = "employees"
			cfg.User = "app"

			dsn, err := cfg.BuildDSN()
			if err != nil {
				t.Fatalf("BuildDSN() error = %v", err)
			}
			if !strings.Contains(dsn, tt.want) {
				t.Errorf("BuildDSN() = %q, want it to contain %q", dsn, tt.want)
			}
		})
	}
}

func TestDescribeHidesPassword(t *testing.T) {
	cfg := Config{Driver: "postgres", Host: "db", Name: "employees", User: "root", Password: "hunter2"}
	desc := cfg.Describe()

	if strings.Contains(desc, "hunter2") {
		t.Errorf("Describe() leaked password: %q", desc)
	}
	if desc != "pgx db:5432/employees" {
		t.Errorf("Describe() = %q", desc)
	}
}

func TestOpenUnsupportedDriver(t *testing.T) {
	_, err := Open(context.Background(), &Config{Driver: "oracle"})
	if err == nil {
		t.Fatal("Open() should fail for unsupported driver")
	}
	if !strings.Contains(err.Error(), "unsupported") {
		t.Errorf("error = %v", err)
	}
}

func TestDBLifecycle(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	if db.IsRemote() {
		t.Error("IsRemote() = true for sqlite")
	}
	if db.Driver() != "sqlite" {
		t.Errorf("Driver() = %q", db.Driver())
	}
	var one int
	if err := db.Get(ctx, &one, "SELECT 1"); err != nil || one != 1 {
		t.Errorf("Get() = %d, %v", one, err)
	}

	if err := db.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	// closing twice is a no-op
	if err := db.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}

	if _, err := db.Exec(ctx, "SELECT 1"); err == nil {
		t.Error("Exec() on closed db should fail")
	}
	var n int
	if err := db.Get(ctx, &n, "SELECT 1"); err == nil {
		t.Error("Get() on closed db should fail")
	}
}

func TestSQLiteForeignKeysEnabled(t *testing.T) {
	db := newTestDB(t)

	var enabled int
	if err := db.Get(context.Background(), &enabled, "PRAGMA foreign_keys"); err != nil {
		t.Fatalf("PRAGMA foreign_keys error = %v", err)
	}
	if enabled != 1 {
		t.Errorf("foreign_keys = %d, want 1", enabled)
	}
}

func TestConvertSchema(t *testing.T) {
	ddl := "CREATE TABLE IF NOT EXISTS departments (id INTEGER PRIMARY KEY AUTOINCREMENT, applied_at DATETIME)"

	tests := []struct {
		driver   string
		contains []string
	}{
		{"sqlite", []string{"INTEGER PRIMARY KEY AUTOINCREMENT", "DATETIME"}},
		{"pgx", []string{"SERIAL PRIMARY KEY", "TIMESTAMP"}},
		{"mysql", []string{"INT AUTO_INCREMENT PRIMARY KEY", "ENGINE=InnoDB"}},
		{"sqlserver", []string{"INT IDENTITY(1,1) PRIMARY KEY", "DATETIME2", "IF OBJECT_ID(N'departments', N'U') IS NULL CREATE TABLE departments"}},
	}

	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			got := convertSchema(tt.driver, ddl)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("convertSchema(%s) = %q, missing %q", tt.driver, got, want)
				}
			}
		})
	}
}

func TestConvertSchemaMySQLIndexUntouched(t *testing.T) {
	got := convertSchema("mysql", "CREATE INDEX idx_roles_department ON roles(department_id)")
	if strings.Contains(got, "ENGINE") {
		t.Errorf("index statement got table options: %q", got)
	}
}

func TestSplitStatements(t *testing.T) {
	body := `
		CREATE TABLE a (id INTEGER);
		CREATE INDEX idx_a ON a(id);
	`
	stmts := splitStatements(body)
	if len(stmts) != 2 {
		t.Fatalf("splitStatements() returned %d statements, want 2", len(stmts))
	}
	if stmts[1] != "CREATE INDEX idx_a ON a(id)" {
		t.Errorf("stmts[1] = %q", stmts[1])
	}
}

func TestMaskDSN(t *testing.T) {
	tests := []struct {
		name    string
		dsn     string
		hidden  string
		keep    string
	}{
		{"empty", "", "", ""},
		{"postgres", "postgres://root:hunter2@db:5432/employees?sslmode=disable", "hunter2", "root"},
		{"sqlserver", "sqlserver://sa:hunter2@db:1433?database=employees", "hunter2", "database=employees"},
		{"libsql token", "libsql://db.turso.io?authToken=hunter2", "hunter2", "db.turso.io"},
		{"mysql", "root:hunter2@tcp(db:3306)/employees?parseTime=true", "hunter2", "tcp(db:3306)"},
		{"sqlite path", "/data/employee_tracker.db", "", "/data/employee_tracker.db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MaskDSN(tt.dsn)
			if tt.hidden != "" && strings.Contains(got, tt.hidden) {
				t.Errorf("MaskDSN() = %q still contains password", got)
			}
			if !strings.Contains(got, tt.keep) {
				t.Errorf("MaskDSN() = %q, want it to keep %q", got, tt.keep)
			}
		})
	}
}
