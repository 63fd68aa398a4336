// Package dbtest opens throwaway sqlite databases for package tests.
package dbtest

import (
	"context"
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	"github.com/Skotchmaster/restaurant/internal/db"
)

// Open returns a migrated, empty database stored in the test's temp dir.
func Open(t *testing.T) *gorm.DB {
	t.Helper()

	ctx := context.Background()
	gdb, err := db.Open(ctx, db.Options{
		Driver: db.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "restaurant.db"),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close(gdb) })

	if err := db.Migrate(ctx, gdb); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	return gdb
}

// OpenSeeded is Open plus the sample data set.
func OpenSeeded(t *testing.T) *gorm.DB {
	t.Helper()

	gdb := Open(t)
	if err := db.Seed(context.Background(), gdb); err != nil {
		t.Fatalf("failed to seed test db: %v", err)
	}
	return gdb
}
