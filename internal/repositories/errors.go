package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	apperrors "task-tracker.com/task-tracker/internal/errors"
)

// mapError turns a gorm or driver error into the application taxonomy.
func mapError(op string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrTaskNotFound
	}

	storageErr := &apperrors.StorageError{Op: op, Err: err}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		storageErr.Code = pgErr.Code
	}

	return storageErr
}
