// Package dbtest provides an in-memory database for tests.
package dbtest

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/kj-requests/kj-requests/internal/config"
	"github.com/kj-requests/kj-requests/internal/db"
)

// Open creates a migrated in-memory SQLite database that is closed when the test ends.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	gdb, err := db.Open(&config.DB{GormEngine: config.EngineSQLite})
	require.NoError(t, err, "failed to create test database")

	require.NoError(t, db.Migrate(gdb), "failed to migrate test database")

	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return gdb
}

// Break closes the connection pool so every following query fails,
// simulating an unreachable database.
func Break(t testing.TB, gdb *gorm.DB) {
	t.Helper()

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())
}
