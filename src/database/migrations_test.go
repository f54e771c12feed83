package database

import (
	"context"
	"testing"
)

func TestMigrateFresh(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	m := NewMigrator(db)

	version, err := m.GetVersion(ctx)
	if err != nil {
		t.Fatalf("GetVersion() error = %v", err)
	}
	if version != m.Latest() {
		t.Errorf("version = %d, want %d", version, m.Latest())
	}

	for _, table := range []string{"departments", "roles", "employees"} {
		var n int
		if err := db.Get(ctx, &n, "SELECT COUNT(*) FROM "+table); err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}
}

func TestMigrateIdempotent(t *testing.T) {
	db := newTestDB(t)

	applied, err := NewMigrator(db).Migrate(context.Background())
	if err != nil {
		t.Fatalf("second Migrate() error = %v", err)
	}
	if applied != 0 {
		t.Errorf("second Migrate() applied %d, want 0", applied)
	}
}

func TestMigrationsSorted(t *testing.T) {
	migrations := NewMigrator(nil).GetMigrations()
	if len(migrations) == 0 {
		t.Fatal("no migrations registered")
	}
	for i := 1; i < len(migrations); i++ {
		if migrations[i].Version <= migrations[i-1].Version {
			t.Errorf("migration %d out of order", migrations[i].Version)
		}
	}
	if migrations[0].Version != 1 {
		t.Errorf("first migration = %d, want 1", migrations[0].Version)
	}
}

func TestRollback(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	m := NewMigrator(db)

	if err := m.Rollback(ctx); err != nil {
		t.Fatalf("Rollback() error = %v", err)
	}

	version, err := m.GetVersion(ctx)
	if err != nil {
		t.Fatalf("GetVersion() error = %v", err)
	}
	if version != m.Latest()-1 {
		t.Errorf("version = %d, want %d", version, m.Latest()-1)
	}

	var n int
	if err := db.Get(ctx, &n, "SELECT COUNT(*) FROM employees"); err == nil {
		t.Error("employees table should be dropped")
	}

	applied, err := m.Migrate(ctx)
	if err != nil {
		t.Fatalf("Migrate() after rollback error = %v", err)
	}
	if applied != 1 {
		t.Errorf("applied = %d, want 1", applied)
	}
}

func TestRollbackStopsAtVersionTable(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	m := NewMigrator(db)

	for i := m.Latest(); i > 1; i-- {
		if err := m.Rollback(ctx); err != nil {
			t.Fatalf("Rollback() at %d error = %v", i, err)
		}
	}
	if err := m.Rollback(ctx); err == nil {
		t.Error("Rollback() at version 1 should fail")
	}
}
