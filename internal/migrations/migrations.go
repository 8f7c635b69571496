// Package migrations provisions the tasks table with goose and SQL files
// embedded per dialect.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"path"
	"sync"

	"github.com/pressly/goose/v3"

	"task-tracker.com/task-tracker/internal/logger"
)

type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite3"
)

//go:embed sql/postgres/*.sql sql/sqlite3/*.sql
var embedMigrations embed.FS

// goose keeps its base FS, dialect and logger in package globals.
var gooseMu sync.Mutex

type slogGooseLogger struct{}

func (slogGooseLogger) Printf(format string, v ...interface{}) {
	logger.Info(fmt.Sprintf(format, v...))
}

func (slogGooseLogger) Fatalf(format string, v ...interface{}) {
	logger.Error(fmt.Sprintf(format, v...))
}

// Run executes one goose command (up, down, status, version) against db.
func Run(ctx context.Context, db *sql.DB, dialect Dialect, command string) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(slogGooseLogger{})

	if err := goose.SetDialect(string(dialect)); err != nil {
		return fmt.Errorf("set migration dialect %q: %w", dialect, err)
	}

	dir := path.Join("sql", string(dialect))

	var err error
	switch command {
	case "up":
		err = goose.UpContext(ctx, db, dir)
	case "down":
		err = goose.DownContext(ctx, db, dir)
	case "status":
		err = goose.StatusContext(ctx, db, dir)
	case "version":
		err = goose.VersionContext(ctx, db, dir)
	default:
		return fmt.Errorf("unknown migration command %q", command)
	}

	if err != nil {
		return fmt.Errorf("migration %s failed: %w", command, err)
	}
	return nil
}

// Version returns the currently applied schema version.
func Version(ctx context.Context, db *sql.DB, dialect Dialect) (int64, error) {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	if err := goose.SetDialect(string(dialect)); err != nil {
		return 0, fmt.Errorf("set migration dialect %q: %w", dialect, err)
	}
	return goose.GetDBVersionContext(ctx, db)
}
