// Package testdb opens migrated sqlite databases for tests.
package testdb

import (
	"context"
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	config "task-tracker.com/task-tracker/internal/configs"
	"task-tracker.com/task-tracker/internal/migrations"
)

// New returns a gorm handle on a fresh sqlite file in t.TempDir with the
// schema applied. sqlite allows one writer, so the pool is capped at one
// connection. The handle is closed when the test ends.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := config.NewDatabaseClient(filepath.Join(t.TempDir(), "tasks.db"), "error")
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql handle: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := migrations.Run(context.Background(), sqlDB, migrations.DialectSQLite, "up"); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	return db
}

// Close closes the underlying connection pool so later queries fail.
func Close(t testing.TB, db *gorm.DB) {
	t.Helper()

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql handle: %v", err)
	}
	if err := sqlDB.Close(); err != nil {
		t.Fatalf("failed to close database: %v", err)
	}
}
