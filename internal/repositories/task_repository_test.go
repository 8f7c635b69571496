package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "task-tracker.com/task-tracker/internal/errors"
	model "task-tracker.com/task-tracker/internal/models"
	"task-tracker.com/task-tracker/internal/testdb"
)

func newTask(title string, deadline time.Time) model.NewTask {
	return model.NewTask{Deadline: deadline, Title: title, Memo: title + " memo"}
}

func TestTaskRepository_ListAllEmpty(t *testing.T) {
	repo := NewTaskRepository(testdb.New(t))

	tasks, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
}

func TestTaskRepository_InsertAssignsIncreasingIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewTaskRepository(testdb.New(t))
	deadline := time.Date(2021, 1, 11, 3, 34, 50, 0, time.UTC)

	var last int64
	for i := 0; i < 5; i++ {
		id, err := repo.Insert(ctx, newTask("task", deadline))
		require.NoError(t, err)
		assert.Greater(t, id, last)
		last = id
	}

	tasks, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 5)
	for i := 1; i < len(tasks); i++ {
		assert.Less(t, tasks[i-1].ID, tasks[i].ID)
	}
}

func TestTaskRepository_FindByID(t *testing.T) {
	ctx := context.Background()
	repo := NewTaskRepository(testdb.New(t))

	jst := time.FixedZone("JST", 9*60*60)
	deadline := time.Date(2019, 6, 11, 14, 0, 0, 0, jst)

	id, err := repo.Insert(ctx, newTask("test title 1", deadline))
	require.NoError(t, err)

	task, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, task.ID)
	assert.Equal(t, "test title 1", task.Title)
	assert.Equal(t, "test title 1 memo", task.Memo)
	assert.True(t, task.Deadline.Equal(deadline))
	assert.Equal(t, time.UTC, task.Deadline.Location())
}

func TestTaskRepository_FindByIDNotFound(t *testing.T) {
	repo := NewTaskRepository(testdb.New(t))

	_, err := repo.FindByID(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrTaskNotFound)
}

func TestTaskRepository_AcceptsEmptyFields(t *testing.T) {
	ctx := context.Background()
	repo := NewTaskRepository(testdb.New(t))

	id, err := repo.Insert(ctx, model.NewTask{Deadline: time.Now()})
	require.NoError(t, err)

	task, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, task.Title)
	assert.Empty(t, task.Memo)
}

func TestTaskRepository_StorageErrorWhenClosed(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	repo := NewTaskRepository(db)
	testdb.Close(t, db)

	_, err := repo.ListAll(ctx)
	assert.True(t, apperrors.IsStorageError(err))

	_, err = repo.Insert(ctx, newTask("t", time.Now()))
	assert.True(t, apperrors.IsStorageError(err))

	_, err = repo.FindByID(ctx, 1)
	assert.True(t, apperrors.IsStorageError(err))

	assert.True(t, apperrors.IsStorageError(repo.Ping(ctx)))
}
