package database

import (
	"context"
	"fmt"
	"sort"
	"time"
)

// Migration represents a database migration.
// Up and Down are written in SQLite syntax and converted per driver.
type Migration struct {
	Version     int
	Description string
	Up          string
	Down        string
}

// Migrator handles database migrations
type Migrator struct {
	db         *DB
	migrations []Migration
}

// NewMigrator creates a migrator with the tracker schema registered
func NewMigrator(db *DB) *Migrator {
	m := &Migrator{
		db:         db,
		migrations: make([]Migration, 0),
	}
	m.registerMigrations()
	return m
}

// registerMigrations registers the departments/roles/employees schema.
// Foreign keys carry no ON DELETE action: cascades are performed by the
// repository inside a transaction so every driver behaves the same.
func (m *Migrator) registerMigrations() {
	// Migration 1: Schema version table
	m.Register(Migration{
		Version:     1,
		Description: "Create schema_version table",
		Up: `
			CREATE TABLE IF NOT EXISTS schema_version (
				version INTEGER PRIMARY KEY,
				description VARCHAR(255) NOT NULL,
				applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
			)
		`,
		Down: `DROP TABLE IF EXISTS schema_version`,
	})

	// Migration 2: Departments
	m.Register(Migration{
		Version:     2,
		Description: "Create departments table",
		Up: `
			CREATE TABLE IF NOT EXISTS departments (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				name VARCHAR(100) NOT NULL
			)
		`,
		Down: `DROP TABLE IF EXISTS departments`,
	})

	// Migration 3: Roles
	m.Register(Migration{
		Version:     3,
		Description: "Create roles table",
		Up: `
			CREATE TABLE IF NOT EXISTS roles (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				title VARCHAR(100) NOT NULL,
				salary DECIMAL(12,2) NOT NULL,
				department_id INTEGER,
				FOREIGN KEY (department_id) REFERENCES departments(id)
			);
			CREATE INDEX idx_roles_department ON roles(department_id);
		`,
		Down: `DROP TABLE IF EXISTS roles`,
	})

	// Migration 4: Employees
	m.Register(Migration{
		Version:     4,
		Description: "Create employees table",
		Up: `
			CREATE TABLE IF NOT EXISTS employees (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				first_name VARCHAR(100) NOT NULL,
				last_name VARCHAR(100) NOT NULL,
				role_id INTEGER NOT NULL,
				manager_id INTEGER,
				FOREIGN KEY (role_id) REFERENCES roles(id),
				FOREIGN KEY (manager_id) REFERENCES employees(id)
			);
			CREATE INDEX idx_employees_role ON employees(role_id);
			CREATE INDEX idx_employees_manager ON employees(manager_id);
		`,
		Down: `DROP TABLE IF EXISTS employees`,
	})

	// Sort migrations by version
	sort.Slice(m.migrations, func(i, j int) bool {
		return m.migrations[i].Version < m.migrations[j].Version
	})
}

// Register adds a migration
func (m *Migrator) Register(migration Migration) {
	m.migrations = append(m.migrations, migration)
}

// Migrate runs all pending migrations and returns how many were applied
func (m *Migrator) Migrate(ctx context.Context) (int, error) {
	currentVersion, err := m.getCurrentVersion(ctx)
	if err != nil {
		// Schema version table might not exist yet
		if err := m.applyMigration(ctx, m.migrations[0]); err != nil {
			return 0, fmt.Errorf("failed to create schema_version table: %w", err)
		}
		currentVersion = m.migrations[0].Version
	}

	applied := 0
	for _, migration := range m.migrations {
		if migration.Version <= currentVersion {
			continue
		}

		if err := m.applyMigration(ctx, migration); err != nil {
			return applied, fmt.Errorf("migration %d failed: %w", migration.Version, err)
		}
		applied++
	}

	return applied, nil
}

// getCurrentVersion returns the current schema version
func (m *Migrator) getCurrentVersion(ctx context.Context) (int, error) {
	var version int
	if err := m.db.Get(ctx, &version, "SELECT COALESCE(MAX(version), 0) FROM schema_version"); err != nil {
		return 0, err
	}
	return version, nil
}

// applyMigration applies a single migration
func (m *Migrator) applyMigration(ctx context.Context, migration Migration) error {
	tx, err := m.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range splitStatements(migration.Up) {
		if _, err := tx.ExecContext(ctx, convertSchema(m.db.Driver(), stmt)); err != nil {
			return fmt.Errorf("failed to execute migration: %w", err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		tx.Rebind("INSERT INTO schema_version (version, description, applied_at) VALUES (?, ?, ?)"),
		migration.Version, migration.Description, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to record migration: %w", err)
	}

	return tx.Commit()
}

// Rollback rolls back the last migration. The schema_version table itself
// is never dropped.
func (m *Migrator) Rollback(ctx context.Context) error {
	currentVersion, err := m.getCurrentVersion(ctx)
	if err != nil {
		return err
	}

	if currentVersion <= 1 {
		return fmt.Errorf("no migrations to rollback")
	}

	for i := len(m.migrations) - 1; i >= 0; i-- {
		if m.migrations[i].Version == currentVersion {
			return m.rollbackMigration(ctx, m.migrations[i])
		}
	}

	return fmt.Errorf("migration %d not found", currentVersion)
}

// rollbackMigration rolls back a single migration
func (m *Migrator) rollbackMigration(ctx context.Context, migration Migration) error {
	tx, err := m.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range splitStatements(migration.Down) {
		if _, err := tx.ExecContext(ctx, convertSchema(m.db.Driver(), stmt)); err != nil {
			return fmt.Errorf("failed to rollback migration: %w", err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		tx.Rebind("DELETE FROM schema_version WHERE version = ?"),
		migration.Version); err != nil {
		return fmt.Errorf("failed to remove migration record: %w", err)
	}

	return tx.Commit()
}

// GetVersion returns the current schema version
func (m *Migrator) GetVersion(ctx context.Context) (int, error) {
	return m.getCurrentVersion(ctx)
}

// Latest returns the highest registered version
func (m *Migrator) Latest() int {
	if len(m.migrations) == 0 {
		return 0
	}
	return m.migrations[len(m.migrations)-1].Version
}

// GetMigrations returns all migrations
func (m *Migrator) GetMigrations() []Migration {
	return m.migrations
}
