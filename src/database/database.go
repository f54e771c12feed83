package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"

	// Database drivers
	_ "github.com/go-sql-driver/mysql"                  // MySQL/MariaDB
	_ "github.com/jackc/pgx/v5/stdlib"                   // PostgreSQL
	_ "github.com/microsoft/go-mssqldb"                  // MSSQL
	_ "github.com/tursodatabase/libsql-client-go/libsql" // libSQL/Turso
	_ "modernc.org/sqlite"                               // SQLite
)

// normalizeDriver maps user-friendly config values to actual Go driver names.
func normalizeDriver(driver string) string {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "sqlite", "sqlite2", "sqlite3":
		return "sqlite"
	case "libsql", "turso":
		return "libsql"
	case "postgres", "pgsql", "postgresql", "pgx", "":
		return "pgx"
	case "mysql", "mariadb":
		return "mysql"
	case "mssql", "sqlserver":
		return "sqlserver"
	default:
		return driver
	}
}

// SupportedDrivers lists the driver names accepted in configuration
func SupportedDrivers() []string {
	return []string{"postgres", "mysql", "sqlite", "libsql", "mssql"}
}

// IsSupportedDriver reports whether the configured driver can be opened
func IsSupportedDriver(driver string) bool {
	switch normalizeDriver(driver) {
	case "sqlite", "libsql", "pgx", "mysql", "sqlserver":
		return true
	}
	return false
}

// Config holds database configuration
type Config struct {
	Driver      string `mapstructure:"driver" yaml:"driver"`             // postgres, mysql, sqlite, libsql, mssql
	DSN         string `mapstructure:"dsn" yaml:"dsn"`                   // full connection string, wins over the parts below
	Host        string `mapstructure:"host" yaml:"host"`                 // database host
	Port        int    `mapstructure:"port" yaml:"port"`                 // database port (0 = driver default)
	Name        string `mapstructure:"name" yaml:"name"`                 // database name
	User        string `mapstructure:"user" yaml:"user"`                 // database user
	Password    string `mapstructure:"password" yaml:"password"`         // database password
	SSLMode     string `mapstructure:"ssl_mode" yaml:"ssl_mode"`         // postgres only
	DataDir     string `mapstructure:"data_dir" yaml:"data_dir"`         // sqlite file directory
	MaxOpen     int    `mapstructure:"max_open" yaml:"max_open"`         // max open connections
	MaxIdle     int    `mapstructure:"max_idle" yaml:"max_idle"`         // max idle connections
	Lifetime    int    `mapstructure:"lifetime" yaml:"lifetime"`         // connection max lifetime in seconds
	AutoMigrate bool   `mapstructure:"auto_migrate" yaml:"auto_migrate"` // apply pending migrations on startup
}

// DefaultConfig returns default database configuration.
// The tracker runs one statement at a time, so a single connection is enough.
func DefaultConfig() *Config {
	return &Config{
		Driver:      "postgres",
		Host:        "localhost",
		Port:        0, // driver default
		SSLMode:     "disable",
		MaxOpen:     1,
		MaxIdle:     1,
		Lifetime:    0,
		AutoMigrate: true,
	}
}

// DB wraps the single long-lived connection handle shared by every action
type DB struct {
	db     *sqlx.DB
	driver string
	mu     sync.RWMutex
	ready  bool
}

// Open connects using cfg and verifies the connection with a ping
func Open(ctx context.Context, cfg *Config) (*DB, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	driver := normalizeDriver(cfg.Driver)
	if !IsSupportedDriver(driver) {
		return nil, fmt.Errorf("unsupported database driver: %s (supported: %s)",
			cfg.Driver, strings.Join(SupportedDrivers(), ", "))
	}

	dsn, err := cfg.BuildDSN()
	if err != nil {
		return nil, err
	}

	if driver == "sqlite" && dsn != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dsn), 0700); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	sqlDB, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(cfg.MaxOpen)
	sqlDB.SetMaxIdleConns(cfg.MaxIdle)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.Lifetime) * time.Second)

	// Test connection
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(pingCtx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// SQLite does not enforce foreign keys unless asked to
	if driver == "sqlite" {
		if _, err := sqlDB.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
			sqlDB.Close()
			return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}
		if _, err := sqlDB.ExecContext(ctx, "PRAGMA busy_timeout = 5000"); err != nil {
			sqlDB.Close()
			return nil, fmt.Errorf("failed to set busy timeout: %w", err)
		}
	}

	return NewFromSQL(sqlDB, driver), nil
}

// NewFromSQL wraps an already opened *sql.DB. The driver name selects the
// placeholder style used when rebinding queries.
func NewFromSQL(sqlDB *sql.DB, driver string) *DB {
	driver = normalizeDriver(driver)
	return &DB{
		db:     sqlx.NewDb(sqlDB, driver),
		driver: driver,
		ready:  true,
	}
}

// Close closes the database connection
func (db *DB) Close() error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.db != nil && db.ready {
		db.ready = false
		return db.db.Close()
	}
	return nil
}

// IsRemote returns true if using a network database (not a local SQLite file)
func (db *DB) IsRemote() bool {
	return db.driver != "" && db.driver != "sqlite"
}

// Driver returns the normalized driver name
func (db *DB) Driver() string {
	return db.driver
}

// Rebind converts ? placeholders into the driver's native style
func (db *DB) Rebind(query string) string {
	return db.db.Rebind(query)
}

// Exec executes a query without returning rows
func (db *DB) Exec(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	if !db.ready {
		return nil, fmt.Errorf("database not ready")
	}

	return db.db.ExecContext(ctx, db.db.Rebind(query), args...)
}

// Select runs a query and scans every row into dest, a pointer to a slice
func (db *DB) Select(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	db.mu.RLock()
	defer db.mu.RUnlock()

	if !db.ready {
		return fmt.Errorf("database not ready")
	}

	return db.db.SelectContext(ctx, dest, db.db.Rebind(query), args...)
}

// Get runs a query expected to return a single row and scans it into dest
func (db *DB) Get(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	db.mu.RLock()
	defer db.mu.RUnlock()

	if !db.ready {
		return fmt.Errorf("database not ready")
	}

	return db.db.GetContext(ctx, dest, db.db.Rebind(query), args...)
}

// Begin starts a transaction
func (db *DB) Begin(ctx context.Context) (*sqlx.Tx, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	if !db.ready {
		return nil, fmt.Errorf("database not ready")
	}

	return db.db.BeginTxx(ctx, nil)
}

// InTx runs fn inside a transaction, committing on success and rolling back otherwise
func (db *DB) InTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}
