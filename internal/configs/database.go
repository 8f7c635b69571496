package config

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"task-tracker.com/task-tracker/internal/migrations"
)

// DialectFor picks the storage dialect from the DSN: postgres URLs go to
// PostgreSQL, anything else is treated as a sqlite file path.
func DialectFor(dsn string) migrations.Dialect {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return migrations.DialectPostgres
	}
	return migrations.DialectSQLite
}

func NewDatabaseClient(dsn string, logLevel string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch DialectFor(dsn) {
	case migrations.DialectPostgres:
		dialector = postgres.Open(dsn)
	default:
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(gormLogLevel(logLevel)),
	})
	if err != nil {
		return nil, fmt.Errorf("db open failed: %w", err)
	}

	return db, nil
}

func gormLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return logger.Info
	case "error":
		return logger.Error
	default:
		return logger.Warn
	}
}
