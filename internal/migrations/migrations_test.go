package migrations

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openSQLite(t *testing.T) *sql.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "tasks.db")), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return sqlDB
}

func TestRun_UpAndDown(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)

	require.NoError(t, Run(ctx, db, DialectSQLite, "up"))

	version, err := Version(ctx, db, DialectSQLite)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	_, err = db.ExecContext(ctx, `INSERT INTO tasks (deadline, title, memo) VALUES (?, ?, ?)`, "2019-06-11 05:00:00", "t", "m")
	require.NoError(t, err)

	require.NoError(t, Run(ctx, db, DialectSQLite, "down"))

	_, err = db.ExecContext(ctx, `SELECT id FROM tasks`)
	assert.Error(t, err)
}

func TestRun_UpIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)

	require.NoError(t, Run(ctx, db, DialectSQLite, "up"))
	require.NoError(t, Run(ctx, db, DialectSQLite, "up"))
}

func TestRun_UnknownCommand(t *testing.T) {
	err := Run(context.Background(), openSQLite(t), DialectSQLite, "sideways")
	assert.ErrorContains(t, err, "unknown migration command")
}
