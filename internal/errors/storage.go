package errors

import (
	"errors"
	"fmt"
	"strings"
)

// StorageError wraps a connection or query failure. The wrapped driver error is
// kept for logs and must never be written to a client.
type StorageError struct {
	Op   string
	Code string
	Err  error
}

func (e *StorageError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("storage: %s (sqlstate %s): %v", e.Op, e.Code, e.Err)
	}
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func IsStorageError(err error) bool {
	var storageErr *StorageError
	return errors.As(err, &storageErr)
}

// IsConstraintViolation reports whether err is a storage error in SQLSTATE class 23.
func IsConstraintViolation(err error) bool {
	var storageErr *StorageError
	if !errors.As(err, &storageErr) {
		return false
	}
	return strings.HasPrefix(storageErr.Code, "23")
}
