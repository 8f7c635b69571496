package errors

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "invalid date", err: ErrInvalidDateFormat, want: http.StatusBadRequest},
		{name: "invalid json", err: ErrInvalidJSON, want: http.StatusBadRequest},
		{name: "not found", err: ErrTaskNotFound, want: http.StatusNotFound},
		{name: "wrapped not found", err: fmt.Errorf("lookup: %w", ErrTaskNotFound), want: http.StatusNotFound},
		{name: "queue full", err: ErrTaskQueueFull, want: http.StatusServiceUnavailable},
		{name: "storage", err: &StorageError{Op: "insert", Err: context.DeadlineExceeded}, want: http.StatusInternalServerError},
		{name: "plain", err: fmt.Errorf("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusCode(tt.err))
		})
	}
}

func TestStorageError(t *testing.T) {
	err := fmt.Errorf("create: %w", &StorageError{Op: "insert task", Code: "23505", Err: context.Canceled})

	assert.True(t, IsStorageError(err))
	assert.True(t, IsConstraintViolation(err))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, err.Error(), "sqlstate 23505")

	assert.False(t, IsConstraintViolation(&StorageError{Op: "list tasks", Code: "08006", Err: context.Canceled}))
	assert.False(t, IsStorageError(ErrTaskNotFound))
}
