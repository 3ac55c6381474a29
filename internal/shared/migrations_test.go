package shared

import (
	"database/sql"
	"testing"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

func TestMigrations(t *testing.T) {
	t.Run("loadMigrations", func(t *testing.T) {
		migrations, err := loadMigrations()
		if err != nil {
			t.Fatalf("failed to load migrations: %v", err)
		}
		if len(migrations) == 0 {
			t.Fatal("expected at least one migration")
		}
		for _, m := range migrations {
			if m.Up == "" || m.Down == "" {
				t.Errorf("migration %d is incomplete", m.Version)
			}
		}
	})

	t.Run("RunMigrations creates schema", func(t *testing.T) {
		db := setupTestDB(t)

		if err := RunMigrations(db); err != nil {
			t.Fatalf("failed to run migrations: %v", err)
		}

		var name string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='sync_runs'").Scan(&name)
		if err != nil {
			t.Fatalf("sync_runs table should exist: %v", err)
		}
	})

	t.Run("RunMigrations is idempotent", func(t *testing.T) {
		db := setupTestDB(t)

		if err := RunMigrations(db); err != nil {
			t.Fatalf("first run failed: %v", err)
		}
		if err := RunMigrations(db); err != nil {
			t.Fatalf("second run failed: %v", err)
		}

		var count int
		if err := db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count); err != nil {
			t.Fatalf("failed to count migrations: %v", err)
		}

		migrations, _ := loadMigrations()
		if count != len(migrations) {
			t.Errorf("expected %d applied migrations, got %d", len(migrations), count)
		}
	})

	t.Run("RollbackMigration drops the table", func(t *testing.T) {
		db := setupTestDB(t)

		if err := RunMigrations(db); err != nil {
			t.Fatalf("failed to run migrations: %v", err)
		}
		if err := RollbackMigration(db); err != nil {
			t.Fatalf("failed to rollback: %v", err)
		}

		var name string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='sync_runs'").Scan(&name)
		if err != sql.ErrNoRows {
			t.Errorf("expected sync_runs to be dropped, got %v", err)
		}
	})

	t.Run("RollbackMigration with nothing applied fails", func(t *testing.T) {
		db := setupTestDB(t)

		if err := RunMigrations(db); err != nil {
			t.Fatalf("failed to run migrations: %v", err)
		}
		if err := RollbackMigration(db); err != nil {
			t.Fatalf("failed to rollback: %v", err)
		}
		if err := RollbackMigration(db); err == nil {
			t.Error("expected error when nothing left to rollback")
		}
	})

	t.Run("removeComments", func(t *testing.T) {
		in := "CREATE TABLE x ( -- comment\n  id TEXT -- another\n)"
		out := removeComments(in)
		if out != "CREATE TABLE x (\nid TEXT\n)" {
			t.Errorf("unexpected output: %q", out)
		}
	})
}
