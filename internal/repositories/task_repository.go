package repository

import (
	"context"

	"gorm.io/gorm"

	model "task-tracker.com/task-tracker/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Insert stores task with its deadline normalized to UTC and returns the id
// assigned by the database.
func (r *TaskRepository) Insert(ctx context.Context, task model.NewTask) (int64, error) {
	row := &model.Task{
		Deadline: task.Deadline.UTC(),
		Title:    task.Title,
		Memo:     task.Memo,
	}

	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return 0, mapError("insert task", err)
	}

	return row.ID, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id int64) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if err != nil {
		return nil, mapError("find task", err)
	}
	task.Deadline = task.Deadline.UTC()
	return &task, nil
}

// ListAll returns every task ordered by id. It never returns a nil slice.
func (r *TaskRepository) ListAll(ctx context.Context) ([]model.Task, error) {
	tasks := make([]model.Task, 0)
	err := r.db.WithContext(ctx).Order("id asc").Find(&tasks).Error
	if err != nil {
		return nil, mapError("list tasks", err)
	}
	for i := range tasks {
		tasks[i].Deadline = tasks[i].Deadline.UTC()
	}
	return tasks, nil
}

func (r *TaskRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return mapError("ping", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return mapError("ping", err)
	}
	return nil
}
